package outwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"under a thousand", 999, "999"},
		{"exactly a thousand", 1000, "1,000"},
		{"mid range", 149975, "149,975"},
		{"millions", 1234567, "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCount(tt.input))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"total": 42}))
	assert.Contains(t, buf.String(), `"total": 42`)
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "44.50", fmtFloat(44.5))
	assert.Equal(t, "%d", intFmt)

	fmtFloat0, _ := createFormatters(0)
	assert.Equal(t, "44", fmtFloat0(44.4))
}
