package config

import (
	"github.com/spf13/viper"
)

// Keys and their defaults. SetDefaults registers them with viper.
const (
	KeySemverHook   = "semver.hook"
	KeySemverRemote = "semver.remote"
	KeySemverEdit   = "semver.edit"
	KeyPassgenLen   = "passgen.length"
	KeyVP9CRF       = "vp9.crf"
	KeyPDFJobs      = "pdf.jobs"
	KeyWifiAuthType = "wifiqr.authtype"
)

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
}

// Defaults returns the default configuration keyed by dotted name
func Defaults() map[string]any {
	return map[string]any{
		KeySemverHook:   "contrib/_incr_version",
		KeySemverRemote: "origin",
		KeySemverEdit:   true,
		KeyPassgenLen:   24,
		KeyVP9CRF:       30,
		KeyPDFJobs:      1,
		KeyWifiAuthType: "WPA2",
	}
}

// GetHookPath returns the project-relative version hook run by semver
func GetHookPath() string {
	return viper.GetString(KeySemverHook)
}

// GetRemote returns the remote whose default branch releases are cut from
func GetRemote() string {
	return viper.GetString(KeySemverRemote)
}

// GetEditTag reports whether the tag message is opened in an editor
func GetEditTag() bool {
	return viper.GetBool(KeySemverEdit)
}

// GetPassgenLength returns the default password length
func GetPassgenLength() int {
	return viper.GetInt(KeyPassgenLen)
}

// GetVP9CRF returns the default constant rate factor for VP9 encodes
func GetVP9CRF() int {
	return viper.GetInt(KeyVP9CRF)
}

// GetPDFJobs returns how many PDFs are processed at once
func GetPDFJobs() int {
	jobs := viper.GetInt(KeyPDFJobs)
	if jobs < 1 {
		return 1
	}
	return jobs
}

// GetWifiAuthType returns the default WiFi authentication type
func GetWifiAuthType() string {
	return viper.GetString(KeyWifiAuthType)
}
