package templating_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/strfmt/templating"
)

func TestLoadValues_yaml_nested(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "values.yml",
		"service:\n  name: api\n  limits:\n    cpu: 2\nregion: eu\n",
	)

	values, err := templating.LoadValues([]string{pa})

	require.NoError(t, err)
	assert.Len(t, values, 3)
	assert.Equal(t, "api", values["service.name"])
	assert.Equal(t, "2", fmt.Sprint(values["service.limits.cpu"]))
	assert.Equal(t, "eu", values["region"])
}

func TestLoadValues_json_keeps_number_text(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "values.json",
		`{"big": 12345678901234567890, "ratio": 0.25}`,
	)

	values, err := templating.LoadValues([]string{pa})

	require.NoError(t, err)
	assert.Equal(t, "12345678901234567890", fmt.Sprint(values["big"]))
	assert.Equal(t, "0.25", fmt.Sprint(values["ratio"]))
}

func TestLoadValues_later_file_overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first := writeTemp(t, dir, "a.yaml", "env: dev\nteam: core\n")
	second := writeTemp(t, dir, "b.json", `{"env": "prod"}`)

	values, err := templating.LoadValues([]string{first, second})

	require.NoError(t, err)
	assert.Equal(t, "prod", values["env"])
	assert.Equal(t, "core", values["team"])
}

func TestLoadValues_nil_files(t *testing.T) {
	t.Parallel()

	values, err := templating.LoadValues(nil)

	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestLoadValues_errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name:    "unsupported extension",
			path:    writeTemp(t, dir, "values.toml", "a = 1"),
			wantErr: "unsupported values file extension",
		},
		{
			name:    "invalid json",
			path:    writeTemp(t, dir, "bad.json", "{"),
			wantErr: "decoding json",
		},
		{
			name:    "invalid yaml",
			path:    writeTemp(t, dir, "bad.yaml", "a: [1, 2"),
			wantErr: "decoding yaml",
		},
		{
			name:    "missing file",
			path:    "/nonexistent/values.yaml",
			wantErr: "loading values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := templating.LoadValues([]string{tt.path})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
