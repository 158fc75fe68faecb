package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainPhotosCommand(t *testing.T) {
	cmd, _ := setupCommand(t)
	runner, fs := fakeTools(t)
	afero.WriteFile(fs, "IMG_1.jpg", []byte("1"), 0644)
	afero.WriteFile(fs, "IMG_2.jpg", []byte("2"), 0644)
	plainPhotosBasename = "trip"

	require.NoError(t, runPlainPhotos(cmd, []string{"IMG_1.jpg", "IMG_2.jpg"}))
	assert.True(t, runner.Ran("mat2 --inplace IMG_1.jpg IMG_2.jpg"))

	first, err := afero.ReadFile(fs, "trip_0000.jpg")
	require.NoError(t, err)
	assert.Equal(t, "1", string(first))
	second, err := afero.ReadFile(fs, "trip_0001.jpg")
	require.NoError(t, err)
	assert.Equal(t, "2", string(second))
}
