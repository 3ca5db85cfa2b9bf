// Command ollamakit is a small CLI over the ollamakit client library.
// It exists both as a usable tool and as a reference for wiring the
// library into an application.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/ollamakit/config"
	"github.com/kbukum/ollamakit/logger"
	"github.com/kbukum/ollamakit/ollama"
)

var (
	flagHost       string
	flagToken      string
	flagTimeout    time.Duration
	flagConfigFile string
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "ollamakit",
	Short:         "Talk to an Ollama server from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagHost, "host", "", "server address (default from OLLAMA_HOST or http://localhost:11434)")
	pf.StringVar(&flagToken, "token", "", "bearer token (default from OLLAMA_TOKEN)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "timeout for single-shot calls")
	pf.StringVar(&flagConfigFile, "config", "", "path to a YAML config file")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(heartbeatCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers command-line flags over environment/file configuration.
func loadConfig() (*config.Client, error) {
	var opts []config.LoaderOption
	if flagConfigFile != "" {
		opts = append(opts, config.WithConfigFile(flagConfigFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient() (*ollama.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return ollama.NewFromConfig(cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.NewFromEnv()
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
