package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/joulecoin/jouled/chaincfg"
	"github.com/joulecoin/jouled/version"
)

const (
	defaultLogFilename    = "retargetsim.log"
	defaultErrLogFilename = "retargetsim_err.log"
)

var (
	// Default configuration options
	defaultHomeDir = btcutil.AppDataDir("retargetsim", false)

	// activeNetParams is the network the simulation runs against.
	activeNetParams = &chaincfg.MainNetParams
)

// config defines the configuration options for retargetsim.
//
// See loadConfig for details on the configuration load process.
type config struct {
	NumBlocks   uint64 `short:"n" long:"numblocks" description:"Number of blocks to simulate"`
	BlockDelay  int64  `short:"d" long:"blockdelay" description:"Actual number of seconds between simulated blocks"`
	StartTime   int64  `long:"starttime" description:"Unix timestamp of the first simulated block"`
	TestNet     bool   `long:"testnet" description:"Simulate the test network"`
	RegTest     bool   `long:"regtest" description:"Simulate the regression test network"`
	SimNet      bool   `long:"simnet" description:"Simulate the simulation test network"`
	LogLevel    string `short:"l" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

func loadConfig() (*config, error) {
	cfg := &config{
		NumBlocks:  1000,
		BlockDelay: 45,
		StartTime:  1377557832,
		LogLevel:   "info",
	}

	parser := flags.NewParser(cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if cfg.ShowVersion {
		fmt.Println("retargetsim version", version.Version())
		os.Exit(0)
	}

	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if cfg.TestNet {
		numNets++
		activeNetParams = &chaincfg.TestNetParams
	}
	if cfg.RegTest {
		numNets++
		activeNetParams = &chaincfg.RegressionNetParams
	}
	if cfg.SimNet {
		numNets++
		activeNetParams = &chaincfg.SimNetParams
	}
	if numNets > 1 {
		return nil, errors.New("the testnet, regtest and simnet params can't " +
			"be used together -- choose one of the three")
	}

	if cfg.NumBlocks == 0 {
		return nil, errors.New("numblocks must be a positive number of blocks")
	}
	if cfg.BlockDelay <= 0 {
		return nil, errors.New("blockdelay must be a positive number of seconds")
	}

	err = initLog(filepath.Join(defaultHomeDir, defaultLogFilename),
		filepath.Join(defaultHomeDir, defaultErrLogFilename), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
