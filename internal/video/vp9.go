// Package video wraps ffmpeg encodes.
package video

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"

	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/shell"
	"github.com/pders01/belt/internal/spinner"
)

// ErrOutputExists is returned when the target exists and overwriting was
// not requested.
var ErrOutputExists = errors.New("the output file already exists, use -y to overwrite it")

// VP9Options describes a two-pass constant quality encode.
type VP9Options struct {
	Input     string
	Output    string
	CRF       int
	Overwrite bool
}

// OutputFile is the file the encode writes.
func (o VP9Options) OutputFile() string {
	return o.Output + ".webm"
}

// Passes returns the ffmpeg argument lists of the analysis and the encode
// pass.
func (o VP9Options) Passes() [][]string {
	crf := strconv.Itoa(o.CRF)
	overwrite := "-n"
	if o.Overwrite {
		overwrite = "-y"
	}
	return [][]string{
		{"-y", "-i", o.Input, "-c:v", "libvpx-vp9", "-row-mt", "1", "-b:v", "0", "-crf", crf,
			"-pass", "1", "-an", "-f", "null", os.DevNull},
		{overwrite, "-i", o.Input, "-c:v", "libvpx-vp9", "-row-mt", "1", "-b:v", "0", "-crf", crf,
			"-pass", "2", "-c:a", "libopus", o.OutputFile()},
	}
}

// EncodeVP9 runs both passes. The existence check happens first so a long
// first pass is not wasted.
func EncodeVP9(runner shell.Runner, fs afero.Fs, opts VP9Options) error {
	if opts.Input == "" || opts.Output == "" {
		return fmt.Errorf("input and output are required")
	}
	if opts.CRF < 0 || opts.CRF > 63 {
		return fmt.Errorf("crf must be between 0 and 63, got %d", opts.CRF)
	}
	if exists, _ := afero.Exists(fs, opts.OutputFile()); exists && !opts.Overwrite {
		return ErrOutputExists
	}

	for i, args := range opts.Passes() {
		name := fmt.Sprintf("VP9 pass %d/2", i+1)
		done := logger.Section(name)
		stop := spinner.Start("Encoding " + opts.Input + " (" + name + ")")
		_, err := runner.Output("", "ffmpeg", args...)
		stop()
		done()
		if err != nil {
			return fmt.Errorf("%s failed: %w", name, err)
		}
	}

	logger.Info("File written to %s\n", opts.OutputFile())
	return nil
}
