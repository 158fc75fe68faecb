package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/pdf"
)

var (
	pdfOverwrite bool
	pdfJobs      int
)

var pdfCropCmd = &cobra.Command{
	Use:   "pdf-crop [files...]",
	Short: "Trim the margins of PDFs",
	Long: `Crop every page of each PDF to its content with pdfcrop.

Results are written next to the input as crop_<name>.pdf unless
--overwrite is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPDFCrop,
}

var pdfEmbedCmd = &cobra.Command{
	Use:   "pdf-embed [files...]",
	Short: "Embed all fonts into PDFs",
	Long: `Rewrite each PDF with pdftocairo so every font is embedded, then
print the pdffonts report of the result.

Results are written next to the input as emb_<name>.pdf unless
--overwrite is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPDFEmbed,
}

func init() {
	rootCmd.AddCommand(pdfCropCmd)
	rootCmd.AddCommand(pdfEmbedCmd)

	for _, c := range []*cobra.Command{pdfCropCmd, pdfEmbedCmd} {
		c.Flags().BoolVarP(&pdfOverwrite, "overwrite", "o", false, "Replace the input files")
		c.Flags().IntVarP(&pdfJobs, "jobs", "j", 0, "Files processed at once (default from pdf.jobs)")
	}
}

func newPDFProcessor(cmd *cobra.Command) *pdf.Processor {
	jobs := pdfJobs
	if jobs < 1 {
		jobs = config.GetPDFJobs()
	}
	return &pdf.Processor{
		Runner: newRunner(),
		Fs:     appFs,
		Jobs:   jobs,
		Out:    cmd.OutOrStdout(),
	}
}

func runPDFCrop(cmd *cobra.Command, args []string) error {
	if err := requireTools("pdfcrop"); err != nil {
		return err
	}
	return newPDFProcessor(cmd).Crop(args, pdfOverwrite)
}

func runPDFEmbed(cmd *cobra.Command, args []string) error {
	if err := requireTools("pdftocairo", "pdffonts"); err != nil {
		return err
	}
	return newPDFProcessor(cmd).Embed(args, pdfOverwrite)
}
