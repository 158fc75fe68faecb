// Package wifiqr renders a business-card-sized PDF with a QR code that
// joins a WiFi network.
package wifiqr

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/shell"
	"github.com/pders01/belt/internal/spinner"
)

//go:embed data/wifi.tex
var cardTemplate string

// authTypes maps the accepted authentication types to the T: value of the
// WIFI: QR payload.
var authTypes = map[string]string{
	"WPA2":   "WPA",
	"WPA":    "WPA",
	"WEP":    "WEP",
	"nopass": "nopass",
}

// Options describes the network printed on the card.
type Options struct {
	SSID     string
	Password string
	AuthType string
	Location string
}

type card struct {
	SSID, Password, AuthType, Location string
	QRSSID, QRPassword, QRAuthType     string
}

var (
	// Characters with meaning in the WIFI: payload.
	qrEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)
	// Characters \qrcode needs escaped inside its argument.
	qrcodeEscaper = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`, `#`, `\#`, `%`, `\%`,
		`&`, `\&`, `^`, `\^`, `_`, `\_`, `~`, `\~`, `$`, `\$`)
	// Characters special to LaTeX in running text.
	latexEscaper = strings.NewReplacer(`\`, `\textbackslash{}`, `{`, `\{`, `}`, `\}`, `#`, `\#`,
		`%`, `\%`, `&`, `\&`, `^`, `\textasciicircum{}`, `_`, `\_`, `~`, `\textasciitilde{}`, `$`, `\$`)
)

// Render fills the LaTeX template for opts.
func Render(opts Options) (string, error) {
	if opts.SSID == "" {
		return "", fmt.Errorf("ssid is required")
	}
	qrAuth, ok := authTypes[opts.AuthType]
	if !ok {
		return "", fmt.Errorf("unsupported authentication type %q (use WPA2, WPA, WEP or nopass)", opts.AuthType)
	}
	if qrAuth != "nopass" && opts.Password == "" {
		return "", fmt.Errorf("password is required for %s networks", opts.AuthType)
	}

	tmpl, err := template.New("wifi.tex").Delims("((", "))").Parse(cardTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := card{
		SSID:       latexEscaper.Replace(opts.SSID),
		Password:   latexEscaper.Replace(opts.Password),
		AuthType:   latexEscaper.Replace(opts.AuthType),
		Location:   latexEscaper.Replace(opts.Location),
		QRSSID:     qrcodeEscaper.Replace(qrEscaper.Replace(opts.SSID)),
		QRPassword: qrcodeEscaper.Replace(qrEscaper.Replace(opts.Password)),
		QRAuthType: qrAuth,
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return out.String(), nil
}

// Build renders the card, compiles it with tectonic in a temporary
// directory and moves the PDF to dest.
func Build(runner shell.Runner, fs afero.Fs, opts Options, dest string) error {
	done := logger.Section("Populating LaTeX template")
	tex, err := Render(opts)
	done()
	if err != nil {
		return err
	}
	logger.Debug("%s\n", tex)

	dir, err := afero.TempDir(fs, "", "belt-wifiqr-")
	if err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}
	defer fs.RemoveAll(dir)

	texPath := filepath.Join(dir, "wifi.tex")
	if err := afero.WriteFile(fs, texPath, []byte(tex), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", texPath, err)
	}

	done = logger.Section("Running tectonic")
	stop := spinner.Start("Compiling wifi.tex")
	_, err = runner.Output(dir, "tectonic", texPath)
	stop()
	done()
	if err != nil {
		return fmt.Errorf("failed to compile card: %w", err)
	}

	// The build directory may live on another filesystem, so copy rather
	// than rename.
	pdf, err := afero.ReadFile(fs, filepath.Join(dir, "wifi.pdf"))
	if err != nil {
		return fmt.Errorf("tectonic did not produce wifi.pdf: %w", err)
	}
	if err := afero.WriteFile(fs, dest, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	logger.Info("File written to %s\n", dest)
	return nil
}
