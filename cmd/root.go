package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/shell"
)

var (
	cfgFile string
	debug   bool
)

// Swapped by tests.
var (
	newRunner    = func() shell.Runner { return shell.New() }
	appFs        = afero.NewOsFs()
	requireTools = shell.Require
)

var rootCmd = &cobra.Command{
	Use:   "belt",
	Short: "Personal utility belt for releases, documents and media",
	Long: `belt bundles small tools that sequence well-known programs:

  semver        cut a semantic version release of the current repository
  git-email     prepare a repository for git send-email
  pdf-crop      trim PDF margins
  pdf-embed     embed all fonts into PDFs
  plain-photos  strip image metadata and rename sequentially
  passgen       generate a random password
  vp9           two-pass VP9 encode
  wifiqr        print a WiFi QR code card`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%s\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/belt/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print external command output and timings")
}

func initConfig() {
	logger.Init(debug)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Error("%s\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".config", "belt"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("belt")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file: %s\n", viper.ConfigFileUsed())
	}
}
