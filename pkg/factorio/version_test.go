package factorio_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "0.17.79", want: "0.17.79"},
		{input: "1.1.110", want: "1.1.110"},
		{input: "0.017.079", want: "0.17.79"},
		{input: "0.17", wantErr: true},
		{input: "0.17.79.1", wantErr: true},
		{input: "v0.17.79", wantErr: true},
		{input: "latest", wantErr: true},
		{input: "", wantErr: true},
		{input: "99999999999999999999.0.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := factorio.ParseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				assert.False(t, factorio.IsVersionName(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, factorio.FormatVersion(v))
			assert.True(t, factorio.IsVersionName(tt.input))
		})
	}
}

func TestExtractVersion_FirstMatchWins(t *testing.T) {
	// The dependency list comes before the version field; the first
	// match is taken regardless.
	content := []byte(`{
  "name": "base",
  "dependencies": ["core >= 0.16.0"],
  "version": "0.17.79",
  "title": "Base Mod"
}`)

	v, ok := factorio.ExtractVersion(content)
	require.True(t, ok)
	assert.Equal(t, "0.16.0", factorio.FormatVersion(v))
}

func TestExtractVersion(t *testing.T) {
	v, ok := factorio.ExtractVersion([]byte(`{"name":"base","version":"1.1.110"}`))
	require.True(t, ok)
	assert.Equal(t, "1.1.110", factorio.FormatVersion(v))

	_, ok = factorio.ExtractVersion([]byte(`{"name":"base","version":"unknown"}`))
	assert.False(t, ok)
}

func TestMinorKey(t *testing.T) {
	v, err := factorio.ParseVersion("0.17.79")
	require.NoError(t, err)
	assert.Equal(t, "0.17", factorio.MinorKey(v))
}

func TestExecutablePath(t *testing.T) {
	dir := filepath.Join("games", "0.17.79")

	assert.Equal(t,
		filepath.Join(dir, "bin", "x64", factorio.ExecutableName),
		factorio.ExecutablePath(dir, true))
	assert.Equal(t,
		filepath.Join(dir, "bin", "Win32", factorio.ExecutableName),
		factorio.ExecutablePath(dir, false))
}
