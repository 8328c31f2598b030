package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/links"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/arthur-debert/fvm/pkg/ui"
	"github.com/arthur-debert/fvm/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleList() *display.InstallationList {
	return &display.InstallationList{
		Installations: []display.Installation{
			{
				Version:   "0.17.79",
				Name:      "Factorio 0.17.79",
				Kind:      "local",
				Arch:      "x64",
				Directory: "/games/factorio/0.17.79",
				Links: []links.Status{
					{Kind: types.LinkSaves, State: links.StateLinked},
					{Kind: types.LinkScenarios, State: links.StateLinked},
					{Kind: types.LinkMods, State: links.StateMissing},
				},
			},
			{
				Version:   "1.1.110",
				Name:      "Factorio 1.1.110",
				Kind:      "local",
				Arch:      "x64",
				Directory: "/games/factorio/1.1.110",
				Links: []links.Status{
					{Kind: types.LinkSaves, State: links.StateLinked},
				},
			},
		},
		Warnings: []string{"Steam installation not loaded"},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestTextRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleList()))

	out := buf.String()
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "0.17.79")
	assert.Contains(t, out, "/games/factorio/1.1.110")
	assert.Contains(t, out, "mods: missing")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "warning: Steam installation not loaded")
	assert.NotContains(t, out, "\x1b[", "text output carries no escape codes")
}

func TestTextRenderer_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&display.InstallationList{}))
	assert.Equal(t, "No installations found.\n", buf.String())
}

func TestTextRenderer_Record(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&display.Probe{Path: "/tmp/f.zip", Version: "1.1.110", Arch: "x64", Root: "Factorio_1.1.110/"}))

	assert.Equal(t,
		"Path          /tmp/f.zip\n"+
			"Version       1.1.110\n"+
			"Arch          x64\n"+
			"Archive root  Factorio_1.1.110/\n",
		buf.String())
}

func TestTerminalRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleList()))
	assert.Contains(t, buf.String(), "Factorio 0.17.79")
	assert.Contains(t, buf.String(), "Steam installation not loaded")
}

func TestTerminalRenderer_ErrorShowsCode(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrNotConfigured, "factorio.steam_path is not set")))
	assert.Contains(t, buf.String(), "factorio.steam_path is not set")
	assert.Contains(t, buf.String(), "NOT_CONFIGURED")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleList()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	installations := decoded["installations"].([]interface{})
	require.Len(t, installations, 2)
	first := installations[0].(map[string]interface{})
	assert.Equal(t, "0.17.79", first["version"])
	assert.Equal(t, "missing", first["links"].([]interface{})[2].(map[string]interface{})["state"])
}

func TestJSONRenderer_Error(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	cause := errors.New(errors.ErrPlatformMismatch, "wrong build").WithDetail("path", "/steam")
	require.NoError(t, r.RenderError(cause))

	var decoded display.Error
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "PLATFORM_MISMATCH", decoded.Code)
	assert.Equal(t, "/steam", decoded.Details["path"])
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&display.Resolution{
		Selector:     "latest",
		Installation: display.Installation{Version: "1.1.110", Name: "Factorio 1.1.110", Kind: "local"},
	}))

	var decoded display.Resolution
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "latest", decoded.Selector)
	assert.Equal(t, "1.1.110", decoded.Installation.Version)
}

func TestYAMLRenderer_Message(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("Relinked 2 installations"))
	assert.Equal(t, "message: Relinked 2 installations\n", buf.String())
}
