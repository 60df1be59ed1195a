/*
 * Ofdecode - An OpenFlow Action Decoder
 *
 * Copyright (C) 2015 Samjung Data Service, Inc. All rights reserved.
 * Kitae Kim <superkkt@sds.co.kr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ofwire/ofdecode/api"
	"github.com/ofwire/ofdecode/decoder"
	"github.com/ofwire/ofdecode/log"

	"github.com/fsnotify/fsnotify"
	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

const (
	programName     = "ofdecode"
	programVersion  = "0.3.0"
	defaultLogLevel = logging.WARNING
)

var (
	logger        = logging.MustGetLogger("main")
	loggerLeveled logging.LeveledBackend

	showHelp          = flag.Bool("help", false, "show this help and exit")
	showVersion       = flag.Bool("version", false, "show program version and exit")
	defaultConfigFile = flag.String("config", fmt.Sprintf("/usr/local/etc/%v.yaml", programName), "absolute path of the configuration file")
	protocolVersion   = flag.String("of", "1.3", "OpenFlow version of the input actions: 1.0 or 1.3")
	serve             = flag.Bool("serve", false, "run the REST API server instead of decoding the arguments")
	dump              = flag.Bool("dump", false, "dump the decoded actions with their Go types")
)

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())
}

func main() {
	parseCmdLines()
	initConfig()
	initLog()

	d, registries := initDecoder()
	if *serve {
		initAPIServer(d, registries)
		waitSignal(d)
		logger.Infof("%v (version %v) shutdown complete!", programName, programVersion)
		return
	}

	version, err := parseVersion(*protocolVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if err := decodeInputs(os.Stdout, d, version, flag.Args(), os.Stdin, *dump); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// Handle the command-line arguments.
func parseCmdLines() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [options] [hex action list ...]\n", programName)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("%v v%v\n", programName, programVersion)
		os.Exit(0)
	}
}

func initConfig() {
	viper.SetDefault("log.driver", "stderr")
	viper.SetDefault("log.level", defaultLogLevel.String())
	viper.SetDefault("decode.skip_unknown", false)
	viper.SetDefault("decode.suppress_expiration", "5m")
	viper.SetDefault("rest.port", 7070)
	viper.SetConfigFile(*defaultConfigFile)

	// Read the config file.
	if err := viper.ReadInConfig(); err != nil {
		// The decoding mode works without a config file.
		if *serve {
			logger.Fatalf("failed to read the config file: %v", err)
		}
		logger.Debugf("using the default configurations: %v", err)
		return
	}

	// Watching and re-reading config file whenever it changes.
	viper.OnConfigChange(func(e fsnotify.Event) {
		// Ignore all the fsnotify operations except WRITE to avoid reading empty config.
		if e.Op != fsnotify.Write {
			return
		}
		logger.Infof("config file changed: %v", e.Name)
		if loggerLeveled == nil {
			return
		}
		// Set log level for all modules
		loggerLeveled.SetLevel(getLogLevel(), "")
	})
	viper.WatchConfig()

	if err := validateConfig(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
}

// validateConfig validates essential configurations.
func validateConfig() error {
	if port := viper.GetInt("rest.port"); port <= 0 || port > 0xFFFF {
		return fmt.Errorf("invalid rest.port: %v", port)
	}
	if viper.GetDuration("decode.suppress_expiration") < 0 {
		return fmt.Errorf("negative decode.suppress_expiration")
	}
	cert, key := viper.GetString("rest.tls.cert_file"), viper.GetString("rest.tls.key_file")
	if (cert == "") != (key == "") {
		return fmt.Errorf("rest.tls.cert_file and rest.tls.key_file should be specified together")
	}

	return nil
}

func initLog() {
	backend, err := log.NewBackend(viper.GetString("log.driver"), programName, os.Stderr)
	if err != nil {
		logger.Fatalf("failed to init log: %v", err)
	}
	loggerLeveled = log.Init(backend, getLogLevel())
}

func getLogLevel() logging.Level {
	level := viper.GetString("log.level")
	ret, err := log.ParseLevel(level)
	if err != nil {
		logger.Errorf("invalid log.level=%v, defaulting to %v..", level, defaultLogLevel)
		return defaultLogLevel
	}

	return ret
}

func initDecoder() (*decoder.Decoder, *decoder.Registries) {
	d, registries, err := decoder.Default(decoder.Config{
		SkipUnknown:        viper.GetBool("decode.skip_unknown"),
		SuppressExpiration: viper.GetDuration("decode.suppress_expiration"),
	})
	if err != nil {
		logger.Fatalf("failed to init the action decoder: %v", err)
	}

	return d, registries
}

func initAPIServer(d *decoder.Decoder, registries *decoder.Registries) {
	go func() {
		s := api.Server{}
		s.Port = uint16(viper.GetInt("rest.port"))
		s.TLS.Cert = viper.GetString("rest.tls.cert_file")
		s.TLS.Key = viper.GetString("rest.tls.key_file")
		s.Decoder = d
		s.Registry = registries

		srv := &api.API{Server: s}
		logger.Infof("REST API server is listening on %v port", s.Port)
		if err := srv.Serve(); err != nil {
			logger.Fatalf("failed to run the API server: %v", err)
		}
	}()
}

type suppressionResetter interface {
	ResetSuppression()
}

// waitSignal waits until we receive SIGTERM or SIGINT signals.
func waitSignal(d suppressionResetter) {
	c := make(chan os.Signal, 1)
	// Following signals will be transferred to the channel c.
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP, syscall.SIGUSR1, syscall.SIGUSR2, syscall.SIGPIPE)
	handleSignals(c, d)
}

func handleSignals(c <-chan os.Signal, d suppressionResetter) {
	// Infinite loop.
	for s := range c {
		switch s {
		case syscall.SIGTERM, syscall.SIGINT:
			logger.Infof("caught %v signal: shutting down...", s)
			return
		case syscall.SIGHUP:
			// Log the skipped actions again from now on.
			logger.Infof("caught %v signal: resetting the suppressed log messages", s)
			d.ResetSuppression()
		default:
			logger.Infof("caught %v signal: ignored!", s)
		}
	}
}
