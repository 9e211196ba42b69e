// internal/nodeid/parser_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		expectErr  bool
		expectedID ID
	}{
		{name: "object count", raw: "co", expectedID: ObjectCount},
		{name: "cache size", raw: "cs", expectedID: CacheSize},
		{name: "bench size", raw: "bs", expectedID: BenchSize},
		{name: "error - empty string", raw: "", expectErr: true},
		{name: "error - upper case", raw: "CS", expectErr: true},
		{name: "error - unknown name", raw: "xs", expectErr: true},
		{name: "error - trailing space", raw: "co ", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				assert.False(t, IsName(tc.raw))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
			assert.True(t, IsName(tc.raw))
		})
	}
}

func TestID_RoundTrip(t *testing.T) {
	for _, id := range All {
		t.Run(id.String(), func(t *testing.T) {
			parsed, err := Parse(id.String())
			require.NoError(t, err)
			assert.Equal(t, id, parsed)
			assert.True(t, parsed.Valid())
		})
	}
}

func TestID_IsSize(t *testing.T) {
	assert.False(t, ObjectCount.IsSize())
	assert.True(t, CacheSize.IsSize())
	assert.True(t, BenchSize.IsSize())
}

func TestID_Invalid(t *testing.T) {
	bogus := ID(42)
	assert.False(t, bogus.Valid())
	assert.Equal(t, "unknown", bogus.String())
}
