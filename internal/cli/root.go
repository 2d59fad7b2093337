// Package cli implements the viddler command.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-viddler/viddler"
	"github.com/go-viddler/viddler/config"
)

var (
	cfgFile string
	envOnly bool
	cfg     *config.Config
	logger  zerolog.Logger
	client  *viddler.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "viddler",
	Short: "Command line client for the Viddler API",
	Long: `viddler calls the Viddler REST API: look up and list videos, upload
new ones, or make arbitrary API calls and print the response as JSON.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&envOnly, "env", false, "read settings from VIDDLER_* environment variables only")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(videosCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration and creates the client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	if envOnly {
		cfg, err = config.FromEnv()
	} else {
		cfg, err = config.Load(cfgFile)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create Viddler client: %w", err)
	}
	return nil
}

func newClient(cfg *config.Config, logger zerolog.Logger) (*viddler.Client, error) {
	opts := []viddler.Option{
		viddler.WithBaseURL(cfg.API.URL),
		viddler.WithTimeout(cfg.HTTP.Timeout),
		viddler.WithLogger(logger),
	}
	if cfg.Auth.Username != "" {
		opts = append(opts, viddler.WithCredentials(cfg.Auth.Username, cfg.Auth.Password))
	}
	if cfg.HTTP.UserAgent != "" {
		opts = append(opts, viddler.WithUserAgent(cfg.HTTP.UserAgent))
	}
	return viddler.New(cfg.API.Key, opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
