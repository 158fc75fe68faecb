package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/shell"
	"github.com/pders01/belt/internal/spinner"
	"github.com/pders01/belt/internal/testutil"
)

// setupCommand silences output, resets configuration and flag variables,
// and returns a command whose stdout is captured.
func setupCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	oldOut, oldNoColor, oldSpin := logger.Output, color.NoColor, spinner.Enabled
	logger.Output = io.Discard
	color.NoColor = true
	spinner.Enabled = false

	viper.Reset()
	config.SetDefaults(viper.GetViper())
	resetFlags()

	t.Cleanup(func() {
		logger.Output = oldOut
		color.NoColor = oldNoColor
		spinner.Enabled = oldSpin
		viper.Reset()
		resetFlags()
	})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

// fakeTools replaces process spawning and the filesystem for one test.
func fakeTools(t *testing.T) (*testutil.FakeRunner, afero.Fs) {
	t.Helper()

	runner := testutil.NewFakeRunner()
	fs := afero.NewMemMapFs()

	oldRunner, oldFs, oldRequire := newRunner, appFs, requireTools
	newRunner = func() shell.Runner { return runner }
	appFs = fs
	requireTools = func(...string) error { return nil }
	t.Cleanup(func() {
		newRunner = oldRunner
		appFs = oldFs
		requireTools = oldRequire
	})
	return runner, fs
}

func resetFlags() {
	semverHook, semverRemote = "", ""
	semverNoEdit, semverDryRun, semverJSON, semverToon = false, false, false, false

	gitEmailTo, gitEmailPrefix = nil, ""

	pdfOverwrite, pdfJobs = false, 0
	plainPhotosBasename = ""
	passgenNoSymbols = false

	vp9Input, vp9Output, vp9CRF, vp9Overwrite = "", "", -1, false
	wifiSSID, wifiPassword, wifiAuthType, wifiLocation = "", "", "", ""

	configPath = ""
}
