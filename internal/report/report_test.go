package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestWrite_Text(t *testing.T) {
	t.Run("bench size", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, Write(out, FormatText, Result{ObjectCount: "1024", CacheSize: "8M", BenchSize: "32M"}))
		assert.Equal(t, "1024 8M 32M\n", out.String())
	})

	t.Run("request count replaces bench size", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, Write(out, FormatText, Result{ObjectCount: "1024", CacheSize: "8M", BenchSize: "32M", Requests: "64K"}))
		assert.Equal(t, "1024 8M 64K\n", out.String())
	})
}

func TestWrite_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Write(out, FormatJSON, Result{ObjectCount: "1024", CacheSize: "8M", BenchSize: "32M"}))

	require.True(t, gjson.Valid(out.String()))
	assert.Equal(t, "1024", gjson.Get(out.String(), "object_count").String())
	assert.Equal(t, "8M", gjson.Get(out.String(), "cache_size").String())
	assert.Equal(t, "32M", gjson.Get(out.String(), "bench_size").String())
	assert.False(t, gjson.Get(out.String(), "requests").Exists())
}

func TestWrite_YAML(t *testing.T) {
	out := &bytes.Buffer{}
	in := Result{ObjectCount: "1024", CacheSize: "8M", BenchSize: "32M", Requests: "64K"}
	require.NoError(t, Write(out, FormatYAML, in))

	var decoded Result
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, in, decoded)
	assert.Contains(t, out.String(), "requests: 64K")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("xml"), Result{})
	assert.ErrorContains(t, err, "unsupported output format")
}
