package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/photos"
)

var plainPhotosBasename string

var plainPhotosCmd = &cobra.Command{
	Use:   "plain-photos -b <basename> [files...]",
	Short: "Strip metadata from photos and rename them sequentially",
	Long: `Remove all metadata from the given images with mat2, then rename them
to <basename>_0000.<ext>, <basename>_0001.<ext>, ... in argument order.

Example:
  belt plain-photos -b holiday IMG_*.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlainPhotos,
}

func init() {
	rootCmd.AddCommand(plainPhotosCmd)

	plainPhotosCmd.Flags().StringVarP(&plainPhotosBasename, "basename", "b", "", "Base name of the renamed files")
	plainPhotosCmd.MarkFlagRequired("basename") //nolint:errcheck
}

func runPlainPhotos(cmd *cobra.Command, args []string) error {
	if err := requireTools("mat2"); err != nil {
		return err
	}
	return photos.Plain(newRunner(), appFs, plainPhotosBasename, args)
}
