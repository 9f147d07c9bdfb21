// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sandia-minimega/minikey/internal/teleserve"
	"github.com/sandia-minimega/minikey/pkg/minikey"
	log "github.com/sandia-minimega/minikey/pkg/minilog"
	"github.com/sandia-minimega/minikey/pkg/minipager"
	"github.com/sandia-minimega/minikey/pkg/miniterm"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// recent log lines, shown by the "l" command
	logRing = log.NewRing(256)
)

var rootCmd = &cobra.Command{
	Use:   "minikey",
	Short: "An interactive single-key command demo",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.LevelFlag.Set(viper.GetString("log.level")); err != nil {
			return err
		}

		log.VerboseFlag = viper.GetBool("log.verbose")
		log.ColorFlag = viper.GetBool("log.color")
		log.FileFlag = viper.GetString("log.file")

		if err := log.Init(); err != nil {
			return fmt.Errorf("unable to initialize logging: %w", err)
		}

		log.AddRing("ring", logRing, log.LevelFlag)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := programConfig()
		if err != nil {
			return err
		}

		if addr := viper.GetString("serve"); addr != "" {
			return serve(addr, viper.GetInt("max-sessions"), cfg)
		}

		return runLocal(cfg, viper.GetString("history"))
	},
	SilenceUsage: true, // don't print help when the program returns an error
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is minikey.yaml in ., ~/.config/minikey or /etc/minikey)")
	flags.Bool("print-help", minikey.DefaultConfig.PrintHelp, "print the command listing on start")
	flags.String("prompt", minikey.DefaultConfig.ReadyIndicator, "ready indicator, empty for none")
	flags.String("exit-key", minikey.DefaultConfig.ExitKey, "key that exits the program")
	flags.String("serve", "", "serve sessions over telnet on this address instead of using stdin")
	flags.Int("max-sessions", 8, "maximum concurrent telnet sessions, 0 for no limit")
	flags.String("history", defaultHistory(), "history file for interactive sessions, empty to disable")
	flags.Var(&log.LevelFlag, "log.level", "log level: debug, info, warn, error, fatal")
	flags.Bool("log.verbose", false, "log to stderr")
	flags.Bool("log.color", false, "colorize stderr logs")
	flags.String("log.file", "", "log to this file")

	viper.BindPFlags(flags)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("minikey")

		// Config paths - first look in current directory, then home directory
		// (if discoverable), then finally global config directory.
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "minikey"))
		}
		viper.AddConfigPath("/etc/minikey")
	}

	viper.SetEnvPrefix("MINIKEY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		log.Info("using config file: %v", viper.ConfigFileUsed())
	}
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".minikey_history")
}

// programConfig collects the program settings from flags, environment and
// config file.
func programConfig() (minikey.Config, error) {
	cfg := minikey.DefaultConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid program config: %w", err)
	}

	if cfg.ExitKey == "" || strings.ContainsAny(cfg.ExitKey, " \t\r\n") {
		return cfg, fmt.Errorf("invalid exit key: %q", cfg.ExitKey)
	}

	return cfg, nil
}

func runLocal(cfg minikey.Config, history string) error {
	var in minikey.TokenReader

	var term *miniterm.Terminal
	if miniterm.IsTerminal(os.Stdin) {
		term = miniterm.New()
		defer term.Close()

		if history != "" {
			loadHistory(term, history)
			defer saveHistory(term, history)
		}

		in = term
	} else {
		log.Debugln("stdin is not a terminal, reading tokens directly")
		in = minikey.NewScanner(os.Stdin)
	}

	p := newDemoProgram(in, os.Stdout)
	p.Configure(cfg)
	p.SetPager(minipager.DefaultPager)

	if term != nil {
		term.SetCompleter(func() []string {
			var keys []string
			for _, c := range p.Commands() {
				keys = append(keys, c.Key)
			}
			return append(keys, p.Config().ExitKey)
		})
	}

	return p.Run()
}

func loadHistory(term *miniterm.Terminal, path string) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return
	} else if err != nil {
		log.Warn("unable to read history: %v", err)
		return
	}
	defer f.Close()

	if err := term.LoadHistory(f); err != nil {
		log.Warn("unable to read history: %v", err)
	}
}

func saveHistory(term *miniterm.Terminal, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Warn("unable to write history: %v", err)
		return
	}
	defer f.Close()

	if err := term.SaveHistory(f); err != nil {
		log.Warn("unable to write history: %v", err)
	}
}

func serve(addr string, maxSessions int, cfg minikey.Config) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %v: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &teleserve.Server{
		NewProgram:  sessionProgram(cfg),
		MaxSessions: maxSessions,
	}

	fmt.Fprintf(os.Stderr, "serving on %v, ^C to stop\n", l.Addr())

	return s.Serve(ctx, l)
}
