package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/belt/internal/testutil"
)

func TestWifiQRCommand(t *testing.T) {
	cmd, _ := setupCommand(t)
	runner, fs := fakeTools(t)
	var tex string
	runner.Do("tectonic", func(call testutil.Call) {
		content, _ := afero.ReadFile(fs, call.Args[0])
		tex = string(content)
		afero.WriteFile(fs, filepath.Join(call.Dir, "wifi.pdf"), []byte("%PDF"), 0644)
	})
	wifiSSID, wifiPassword, wifiLocation = "home", "hunter2", "Hall"

	require.NoError(t, runWifiQR(cmd, nil))

	assert.Contains(t, tex, "WIFI:T:WPA;S:home;P:hunter2;;")
	assert.Contains(t, tex, "Hall")
	exists, _ := afero.Exists(fs, "wifi.pdf")
	assert.True(t, exists)
}

func TestWifiQRCommandRejectsUnknownAuthType(t *testing.T) {
	cmd, _ := setupCommand(t)
	runner, _ := fakeTools(t)
	wifiSSID, wifiPassword, wifiAuthType = "home", "pw", "WPA9"

	assert.Error(t, runWifiQR(cmd, nil))
	assert.Empty(t, runner.Calls())
}
