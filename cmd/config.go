package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/logger"
)

var configPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the belt configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Create $HOME/.config/belt/config.toml with every setting at its
default value. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().StringVar(&configPath, "path", "", "write to this file instead of the default location")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	if err := config.WriteDefault(path); err != nil {
		if errors.Is(err, os.ErrExist) {
			logger.Warn("Config already exists: %s\n", path)
			return nil
		}
		return err
	}

	logger.Info("Created default config: %s\n", path)
	return nil
}
