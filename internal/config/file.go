package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File mirrors config.toml
type File struct {
	Semver  SemverConfig  `toml:"semver"`
	Passgen PassgenConfig `toml:"passgen"`
	VP9     VP9Config     `toml:"vp9"`
	PDF     PDFConfig     `toml:"pdf"`
	WifiQR  WifiQRConfig  `toml:"wifiqr"`
}

type SemverConfig struct {
	Hook   string `toml:"hook"`
	Remote string `toml:"remote"`
	Edit   bool   `toml:"edit"`
}

type PassgenConfig struct {
	Length int `toml:"length"`
}

type VP9Config struct {
	CRF int `toml:"crf"`
}

type PDFConfig struct {
	Jobs int `toml:"jobs"`
}

type WifiQRConfig struct {
	AuthType string `toml:"authtype"`
}

// DefaultFile returns the configuration written by `belt config init`
func DefaultFile() File {
	d := Defaults()
	return File{
		Semver: SemverConfig{
			Hook:   d[KeySemverHook].(string),
			Remote: d[KeySemverRemote].(string),
			Edit:   d[KeySemverEdit].(bool),
		},
		Passgen: PassgenConfig{Length: d[KeyPassgenLen].(int)},
		VP9:     VP9Config{CRF: d[KeyVP9CRF].(int)},
		PDF:     PDFConfig{Jobs: d[KeyPDFJobs].(int)},
		WifiQR:  WifiQRConfig{AuthType: d[KeyWifiAuthType].(string)},
	}
}

// DefaultPath returns $HOME/.config/belt/config.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "belt", "config.toml"), nil
}

// WriteDefault writes the default configuration to path. An existing file
// is left alone and reported with os.ErrExist.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s: %w", path, os.ErrExist)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(DefaultFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
