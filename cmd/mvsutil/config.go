// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvs-org/mvsd/chaincfg"
)

const (
	defaultLogLevel = "info"
	defaultHashType = "ALL"
	defaultKeyPath  = "m/0"
)

var (
	activeNetParams = &chaincfg.MainNetParams

	// Default global config.
	cfg = &config{
		DebugLevel: defaultLogLevel,
	}
)

// config defines the global configuration options.
type config struct {
	TestNet    bool   `long:"testnet" description:"Use the test network"`
	LogFile    string `long:"logfile" description:"Also write log output to this file, rotating it as it grows"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// mvsHomeDir returns an OS appropriate home directory for mvs.
func mvsHomeDir() string {
	// Search for Windows APPDATA first.  This won't exist on POSIX OSes.
	appData := os.Getenv("APPDATA")
	if appData != "" {
		return filepath.Join(appData, "mvs")
	}

	// Fall back to standard HOME directory that works for most POSIX OSes.
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".mvs")
	}

	// In the worst case, use the current directory.
	return "."
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(mvsHomeDir())
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// setupGlobalConfig examines the global configuration options for any
// conditions which are invalid as well as performs any additional setup
// necessary after the initial parse.
func setupGlobalConfig() error {
	activeNetParams = &chaincfg.MainNetParams
	if cfg.TestNet {
		activeNetParams = &chaincfg.TestNetParams
	}

	if !validLogLevel(cfg.DebugLevel) {
		return fmt.Errorf("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
	}
	setLogLevels(cfg.DebugLevel)

	if cfg.LogFile != "" && logRotator == nil {
		if err := initLogRotator(cleanAndExpandPath(cfg.LogFile)); err != nil {
			return err
		}
	}

	log.Debugf("Using %s network", activeNetParams.Name)
	return nil
}
