// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// tunes runs the song distributor ledger behind its HTTP API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/tangletunes/tunes/api"
	"github.com/tangletunes/tunes/cmd/tunes/httpserver"
	"github.com/tangletunes/tunes/ledger"
	"github.com/tangletunes/tunes/metrics"
)

var (
	version   string
	gitCommit string
	gitTag    string

	flags = []cli.Flag{
		dataDirFlag,
		genesisFlag,
		apiAddrFlag,
		apiCorsFlag,
		apiTimeoutFlag,
		apiRequestLoggingFlag,
		gasLimitFlag,
		cacheFlag,
		verbosityFlag,
		enableMetricsFlag,
		metricsAddrFlag,
	}
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Tunes",
		Usage:     "Song distributor ledger",
		Copyright: "2025 The VeChainThor developers",
		Flags:     flags,
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	defer func() { log.Info("exited") }()

	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse verbosity flag")
	}
	initLogger(lvl)

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return errors.WithMessage(err, "start metrics server")
		}
		defer func() { log.Info("stopping metrics server..."); closeFunc() }()
		log.Info("metrics server started", "url", url)
	}

	gene, err := loadGenesis(ctx.String(genesisFlag.Name))
	if err != nil {
		return errors.WithMessage(err, "-genesis")
	}
	instanceDir, err := makeInstanceDir(ctx.String(dataDirFlag.Name), gene)
	if err != nil {
		return err
	}

	cacheMB := normalizeCacheSize(ctx.Int(cacheFlag.Name))
	mainDB, err := openMainDB(instanceDir, cacheMB)
	if err != nil {
		return err
	}
	defer func() { log.Info("closing main database..."); mainDB.Close() }()

	l := ledger.New(mainDB, ledger.Options{
		CacheSize: stateCacheSize(cacheMB),
		GasLimit:  ctx.Uint64(gasLimitFlag.Name),
	})
	genesisID, err := l.Initialize(gene)
	if err != nil {
		return err
	}

	handler := api.New(l, api.Options{
		AllowedOrigins:  ctx.String(apiCorsFlag.Name),
		EnableReqLogger: ctx.Bool(apiRequestLoggingFlag.Name),
		EnableMetrics:   ctx.Bool(enableMetricsFlag.Name),
	})
	apiURL, closeAPI, err := httpserver.StartAPIServer(ctx.String(apiAddrFlag.Name), handler, httpserver.APIOptions{
		Timeout:   time.Duration(ctx.Uint64(apiTimeoutFlag.Name)) * time.Millisecond,
		GenesisID: genesisID,
	})
	if err != nil {
		return err
	}
	defer func() { log.Info("stopping API server..."); closeAPI() }()

	printStartupMessage(genesisID, instanceDir, apiURL)

	<-handleExitSignal().Done()
	return nil
}
