package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

func TestDefaultsRegistered(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults(viper.GetViper())

	if got := GetHookPath(); got != "contrib/_incr_version" {
		t.Errorf("expected default hook, got '%s'", got)
	}
	if got := GetRemote(); got != "origin" {
		t.Errorf("expected remote 'origin', got '%s'", got)
	}
	if !GetEditTag() {
		t.Error("tag editing should default to on")
	}
	if got := GetPassgenLength(); got != 24 {
		t.Errorf("expected passgen length 24, got %d", got)
	}
	if got := GetVP9CRF(); got != 30 {
		t.Errorf("expected crf 30, got %d", got)
	}
	if got := GetWifiAuthType(); got != "WPA2" {
		t.Errorf("expected WPA2, got '%s'", got)
	}
}

func TestGetPDFJobsFloor(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set(KeyPDFJobs, 0)
	if got := GetPDFJobs(); got != 1 {
		t.Errorf("expected at least 1 job, got %d", got)
	}

	viper.Set(KeyPDFJobs, 4)
	if got := GetPDFJobs(); got != 4 {
		t.Errorf("expected 4 jobs, got %d", got)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "belt", "config.toml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	var file File
	if _, err := toml.DecodeFile(path, &file); err != nil {
		t.Fatalf("failed to decode written config: %v", err)
	}
	if file != DefaultFile() {
		t.Errorf("written config differs from defaults: %+v", file)
	}

	// The written file must be readable by viper with the same keys
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("viper could not read config: %v", err)
	}
	if got := v.GetString(KeySemverHook); got != "contrib/_incr_version" {
		t.Errorf("unexpected hook from file: '%s'", got)
	}
	if got := v.GetInt(KeyVP9CRF); got != 30 {
		t.Errorf("unexpected crf from file: %d", got)
	}
}

func TestWriteDefaultKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[semver]\nhook = \"bin/bump\"\n"), 0644); err != nil {
		t.Fatalf("failed to seed config: %v", err)
	}

	err := WriteDefault(path)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected os.ErrExist, got %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "[semver]\nhook = \"bin/bump\"\n" {
		t.Error("existing config was overwritten")
	}
}
