package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/video"
)

var (
	vp9Input     string
	vp9Output    string
	vp9CRF       int
	vp9Overwrite bool
)

var vp9Cmd = &cobra.Command{
	Use:   "vp9 -i <input> -o <name>",
	Short: "Encode a video to WebM with two-pass constant quality VP9",
	Long: `Run a two-pass libvpx-vp9 encode with Opus audio into <name>.webm.

The constant rate factor ranges from 0 (best) to 63 and defaults to
vp9.crf from the config file.

Example:
  belt vp9 -i talk.mkv -o talk -c 32`,
	Args: cobra.NoArgs,
	RunE: runVP9,
}

func init() {
	rootCmd.AddCommand(vp9Cmd)

	vp9Cmd.Flags().StringVarP(&vp9Input, "input", "i", "", "Input video")
	vp9Cmd.Flags().StringVarP(&vp9Output, "output", "o", "", "Output name without extension")
	vp9Cmd.Flags().IntVarP(&vp9CRF, "crf", "c", -1, "Constant rate factor (default from vp9.crf)")
	vp9Cmd.Flags().BoolVarP(&vp9Overwrite, "overwrite", "y", false, "Overwrite an existing output file")
	vp9Cmd.MarkFlagRequired("input")  //nolint:errcheck
	vp9Cmd.MarkFlagRequired("output") //nolint:errcheck
}

func runVP9(cmd *cobra.Command, args []string) error {
	if err := requireTools("ffmpeg"); err != nil {
		return err
	}

	crf := vp9CRF
	if crf < 0 {
		crf = config.GetVP9CRF()
	}

	return video.EncodeVP9(newRunner(), appFs, video.VP9Options{
		Input:     vp9Input,
		Output:    vp9Output,
		CRF:       crf,
		Overwrite: vp9Overwrite,
	})
}
