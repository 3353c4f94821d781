package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want StringList
	}{
		{"json array", `["robię","robisz"]`, StringList{"robię", "robisz"}},
		{"json array bytes", []byte(`["dom"]`), StringList{"dom"}},
		{"empty document", `[]`, StringList{}},
		{"sql null", nil, StringList{}},
		{"empty string", "", StringList{}},
		{"json null", "null", StringList{}},
		{"legacy bare string", "tak", StringList{"tak"}},
		{"legacy quoted string", `"tak"`, StringList{"tak"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, got.Scan(tt.src))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringListScanMalformedArray(t *testing.T) {
	var got StringList
	assert.Error(t, got.Scan(`["unterminated`))
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
