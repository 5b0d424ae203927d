// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

func envVar(name string) string {
	return "TUNES_" + name
}

var (
	dataDirFlag = cli.StringFlag{
		Name:   "data-dir",
		Value:  defaultDataDir(),
		Usage:  "directory for the ledger database",
		EnvVar: envVar("DATA_DIR"),
	}
	genesisFlag = cli.StringFlag{
		Name:   "genesis",
		Usage:  "path to a YAML genesis file, or 'devnet'; empty starts an empty ledger",
		EnvVar: envVar("GENESIS"),
	}
	apiAddrFlag = cli.StringFlag{
		Name:   "api-addr",
		Value:  "localhost:8690",
		Usage:  "API service listening address",
		EnvVar: envVar("API_ADDR"),
	}
	apiCorsFlag = cli.StringFlag{
		Name:   "api-cors",
		Value:  "",
		Usage:  "comma separated list of domains from which to accept cross origin requests to API",
		EnvVar: envVar("API_CORS"),
	}
	apiTimeoutFlag = cli.Uint64Flag{
		Name:   "api-timeout",
		Value:  10000,
		Usage:  "API request timeout value in milliseconds",
		EnvVar: envVar("API_TIMEOUT"),
	}
	apiRequestLoggingFlag = cli.BoolFlag{
		Name:   "api-request-logging",
		Usage:  "enables API requests logging",
		EnvVar: envVar("API_REQUEST_LOGGING"),
	}
	gasLimitFlag = cli.Uint64Flag{
		Name:   "gas-limit",
		Value:  10_000_000,
		Usage:  "gas limit of a single ledger call, 0 for unlimited",
		EnvVar: envVar("GAS_LIMIT"),
	}
	cacheFlag = cli.IntFlag{
		Name:   "cache",
		Value:  1024,
		Usage:  "megabytes of ram allocated to the database cache",
		EnvVar: envVar("CACHE"),
	}
	verbosityFlag = cli.Uint64Flag{
		Name:   "verbosity",
		Value:  3,
		Usage:  "log verbosity (0-9)",
		EnvVar: envVar("VERBOSITY"),
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:   "enable-metrics",
		Usage:  "enables metrics collection",
		EnvVar: envVar("ENABLE_METRICS"),
	}
	metricsAddrFlag = cli.StringFlag{
		Name:   "metrics-addr",
		Value:  "localhost:2112",
		Usage:  "metrics service listening address",
		EnvVar: envVar("METRICS_ADDR"),
	}
)
