package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Keywords(t *testing.T) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	got, err := ParseDate("today")
	require.NoError(t, err)
	assert.True(t, got.Equal(midnight))

	got, err = ParseDate("Yesterday")
	require.NoError(t, err)
	assert.True(t, got.Equal(midnight.AddDate(0, 0, -1)))
}

func TestParseDate_Explicit(t *testing.T) {
	got, err := ParseDate("2026-08-15")
	require.NoError(t, err)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, time.Local, got.Location())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "15/08/2026", "not a date", "2026-13-01"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestExtractTags(t *testing.T) {
	tests := []struct {
		input    string
		wantDesc string
		wantTags []string
	}{
		{"Fix login flow #backend #api", "Fix login flow", []string{"backend", "api"}},
		{"Fix login flow #backend,api", "Fix login flow", []string{"backend", "api"}},
		{"No tags here", "No tags here", nil},
		{"#leading tag then text", "tag then text", []string{"leading"}},
		{"Mixed #a middle #b-c end", "Mixed middle end", []string{"a", "b-c"}},
	}

	for _, tt := range tests {
		desc, tags := ExtractTags(tt.input)
		assert.Equal(t, tt.wantDesc, desc, "input %q", tt.input)
		assert.Equal(t, tt.wantTags, tags, "input %q", tt.input)
	}
}
