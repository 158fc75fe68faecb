package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/passgen"
)

func TestPassgenDefaultLength(t *testing.T) {
	cmd, out := setupCommand(t)

	require.NoError(t, runPassgen(cmd, nil))
	assert.Len(t, strings.TrimSpace(out.String()), 24)
}

func TestPassgenLengthArgument(t *testing.T) {
	cmd, out := setupCommand(t)
	passgenNoSymbols = true

	require.NoError(t, runPassgen(cmd, []string{"40"}))
	password := strings.TrimSpace(out.String())
	assert.Len(t, password, 40)
	for _, r := range password {
		assert.True(t, strings.ContainsRune(passgen.Alphanumeric, r), "unexpected %q", r)
	}
}

func TestPassgenLengthFromConfig(t *testing.T) {
	cmd, out := setupCommand(t)
	viper.Set(config.KeyPassgenLen, 12)

	require.NoError(t, runPassgen(cmd, nil))
	assert.Len(t, strings.TrimSpace(out.String()), 12)
}

func TestPassgenInvalidLength(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-3"} {
		t.Run(arg, func(t *testing.T) {
			cmd, out := setupCommand(t)
			assert.Error(t, runPassgen(cmd, []string{arg}))
			assert.Empty(t, out.String())
		})
	}
}
