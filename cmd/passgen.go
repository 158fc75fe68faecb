package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/passgen"
)

var passgenNoSymbols bool

var passgenCmd = &cobra.Command{
	Use:   "passgen [length]",
	Short: "Generate a random password",
	Long: `Print a random password drawn uniformly from letters, digits and the
OWASP password special characters.

The length defaults to passgen.length from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPassgen,
}

func init() {
	rootCmd.AddCommand(passgenCmd)

	passgenCmd.Flags().BoolVar(&passgenNoSymbols, "no-symbols", false, "Use letters and digits only")
}

func runPassgen(cmd *cobra.Command, args []string) error {
	length := config.GetPassgenLength()
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[0], err)
		}
		length = n
	}

	password, err := passgen.Generate(length, passgenNoSymbols)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), password)
	return nil
}
