package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zostay/go-ical/internal/charset"
	"github.com/zostay/go-ical/property"
)

// EnvPrefix is the prefix of environment variables read as configuration,
// e.g., ICALTOOL_MODE=strict.
const EnvPrefix = "ICALTOOL"

// RootCommand builds the icaltool command tree.
func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "icaltool",
		Short:        "Tools for checking and round-tripping iCalendar content lines",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "read settings from this config file")
	rootCmd.PersistentFlags().String("mode", "loose", "parse mode, loose or strict")
	rootCmd.PersistentFlags().String("charset", charset.UTF8, "charset of the input files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every content line checked")

	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newRoundtripCmd())
	rootCmd.AddCommand(newDateCmd())
	rootCmd.AddCommand(newUnfoldCmd())

	return rootCmd
}

// Execute runs the icaltool command line.
func Execute() error {
	return RootCommand().Execute()
}

// Config holds the settings shared by all commands.
type Config struct {
	Mode    property.Mode
	Charset string
	Verbose bool
}

// LoadConfig merges the defaults, the config file, ICALTOOL_* environment
// variables, and the command line flags of cmd, in increasing order of
// precedence.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetDefault("mode", "loose")
	v.SetDefault("charset", charset.UTF8)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %q: %w", configFile, err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	mode, err := property.ParseMode(v.GetString("mode"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Mode:    mode,
		Charset: v.GetString("charset"),
		Verbose: v.GetBool("verbose"),
	}, nil
}

// NewLogger builds the logger used by the commands.
func (c *Config) NewLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "icaltool",
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// ReadFile reads the named file and decodes it from the configured charset.
func (c *Config) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text, err := charset.Decode(c.Charset, b)
	if err != nil {
		return "", fmt.Errorf("unable to decode %q as %s: %w", path, c.Charset, err)
	}

	return text, nil
}

// ParseOptions returns the parse options matching the configuration.
func (c *Config) ParseOptions() []property.ParseOption {
	return []property.ParseOption{property.WithMode(c.Mode)}
}
