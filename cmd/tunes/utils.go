// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"syscall"

	"github.com/elastic/gosigar"
	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/genesis"
	"github.com/tangletunes/tunes/lvldb"
	"github.com/tangletunes/tunes/tunes"
)

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, fmt.Errorf("invalid value %d: exceeds max int", val)
	}
	return int(val), nil
}

func initLogger(lvl int) {
	fd := os.Stderr.Fd()
	useColor := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
	handler := log.NewTerminalHandlerWithLevel(os.Stderr, log.FromLegacyLevel(lvl), useColor)
	log.SetDefault(log.NewLogger(handler))
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		log.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func loadGenesis(name string) (*genesis.Genesis, error) {
	switch name {
	case "":
		return &genesis.Genesis{}, nil
	case "devnet":
		return genesis.NewDevnet(), nil
	default:
		return genesis.Load(name)
	}
}

func defaultDataDir() string {
	if home := homeDir(); home != "" {
		return filepath.Join(home, ".tunes")
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// makeInstanceDir returns a directory dedicated to the genesis, so ledgers of different genesis never share a database.
func makeInstanceDir(dataDir string, gene *genesis.Genesis) (string, error) {
	if dataDir == "" {
		return "", fmt.Errorf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name)
	}
	id, err := gene.ID()
	if err != nil {
		return "", err
	}
	instanceDir := filepath.Join(dataDir, fmt.Sprintf("instance-%x", id.Bytes()[24:]))
	if err := os.MkdirAll(instanceDir, 0700); err != nil {
		return "", errors.Wrapf(err, "create instance dir [%v]", instanceDir)
	}
	return instanceDir, nil
}

func normalizeCacheSize(sizeMB int) int {
	if sizeMB < 128 {
		sizeMB = 128
	}

	var mem gosigar.Mem
	if err := mem.Get(); err != nil {
		log.Warn("failed to get total mem:", "err", err)
	} else {
		// limit to 1/2 os physical ram
		limitMB := int(mem.Total / 1024 / 1024 / 2)
		if sizeMB > limitMB {
			sizeMB = limitMB
			log.Warn("cache size(MB) limited", "limit", limitMB)
		}
	}
	return sizeMB
}

// stateCacheSize gives the committed-slot cache an eighth of the cache budget, at roughly 64 bytes per slot.
func stateCacheSize(cacheMB int) int {
	return cacheMB * 1024 * 1024 / 8 / 64
}

func openMainDB(instanceDir string, cacheMB int) (*lvldb.LevelDB, error) {
	dir := filepath.Join(instanceDir, "main.db")
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              cacheMB / 2,
		OpenFilesCacheCapacity: 1024,
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "open ledger database [%v]", dir)
	}
	log.Debug("main database opened", "dir", dir, "cache", cacheMB/2)
	return db, nil
}

func printStartupMessage(genesisID tunes.Bytes32, dataDir, apiURL string) {
	fmt.Printf(`Starting %v
    Genesis ID   [ %v ]
    Data dir     [ %v ]
    API portal   [ %v ]
`,
		fullVersion(),
		genesisID,
		dataDir,
		apiURL)
}
