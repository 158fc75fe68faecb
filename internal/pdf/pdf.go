// Package pdf post-processes PDFs with poppler and TeX Live tools.
package pdf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/shell"
)

const (
	CropPrefix  = "crop"
	EmbedPrefix = "emb"
)

// Processor runs one external tool per input file, up to Jobs at a time.
type Processor struct {
	Runner shell.Runner
	Fs     afero.Fs
	Jobs   int
	// Out receives the font reports of Embed.
	Out io.Writer
}

// OutputPath returns the sibling of file named <prefix>_<stem><ext>.
func OutputPath(file, prefix string) string {
	dir, base := filepath.Split(file)
	return filepath.Join(dir, prefix+"_"+base)
}

// Crop trims every file's margins with `pdfcrop --hires`. Results are
// written next to the input with the crop_ prefix, or replace the input
// when overwrite is set.
func (p *Processor) Crop(files []string, overwrite bool) error {
	_, err := p.each(files, func(file string) (string, error) {
		out := OutputPath(file, CropPrefix)
		output, err := p.Runner.Output("", "pdfcrop", "--hires", file, out)
		if err != nil {
			return "", fmt.Errorf("failed to crop %s: %w", file, err)
		}
		logger.Debug("%s\n", output)

		if overwrite {
			if err := p.Fs.Rename(out, file); err != nil {
				return "", fmt.Errorf("failed to replace %s: %w", file, err)
			}
		}
		return "", nil
	})
	return err
}

// Embed rewrites every file through `pdftocairo -pdf`, which embeds all
// fonts, then prints the `pdffonts` report of each result in input order.
func (p *Processor) Embed(files []string, overwrite bool) error {
	reports, err := p.each(files, func(file string) (string, error) {
		out := OutputPath(file, EmbedPrefix)
		if _, err := p.Runner.Output("", "pdftocairo", "-pdf", file, out); err != nil {
			return "", fmt.Errorf("failed to embed fonts in %s: %w", file, err)
		}

		result := out
		if overwrite {
			if err := p.Fs.Rename(out, file); err != nil {
				return "", fmt.Errorf("failed to replace %s: %w", file, err)
			}
			result = file
		}

		fonts, err := p.Runner.Output("", "pdffonts", result)
		if err != nil {
			return "", fmt.Errorf("failed to list fonts of %s: %w", result, err)
		}
		return fmt.Sprintf("%s\n%s\n", result, fonts), nil
	})

	for _, report := range reports {
		if report != "" {
			fmt.Fprint(p.Out, report)
		}
	}
	return err
}

// each runs fn for every file on a bounded pool and returns the results
// indexed like files. All failures are joined.
func (p *Processor) each(files []string, fn func(file string) (string, error)) ([]string, error) {
	jobs := p.Jobs
	if jobs < 1 {
		jobs = 1
	}

	for i, file := range files {
		if strings.TrimSpace(file) == "" {
			return nil, fmt.Errorf("empty file name in argument %d", i+1)
		}
	}

	results := make([]string, len(files))
	workers := pool.New().WithErrors().WithMaxGoroutines(jobs)
	for i, file := range files {
		workers.Go(func() error {
			result, err := fn(file)
			results[i] = result
			return err
		})
	}
	return results, workers.Wait()
}
