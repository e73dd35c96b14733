package shared

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatRelativeTimeFrom(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"zero", time.Time{}, "never"},
		{"future", now.Add(time.Hour), "now"},
		{"seconds", now.Add(-30 * time.Second), "now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"weeks", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"months", now.Add(-90 * 24 * time.Hour), "3mo ago"},
		{"years", now.Add(-2 * 365 * 24 * time.Hour), "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatRelativeTimeFrom(tt.input, now))
		})
	}
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)
	require.Equal(t, start, c.Now())

	c.Advance(10 * time.Minute)
	require.Equal(t, "10m ago", FormatRelativeTime(start, c))
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator("blk")
	require.Equal(t, "blk-1", g.NewID())
	require.Equal(t, "blk-2", g.NewID())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	var g UUIDGenerator
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.NewID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestSystemClipboard_OSC52(t *testing.T) {
	t.Setenv("SSH_TTY", "/dev/pts/1")

	var out bytes.Buffer
	require.NoError(t, SystemClipboard{Out: &out}.Copy(`{"id":"a"}`))

	seq := out.String()
	require.True(t, strings.HasPrefix(seq, "\x1b]52;c;"))
	encoded := strings.TrimSuffix(strings.TrimPrefix(seq, "\x1b]52;c;"), "\x07")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Equal(t, `{"id":"a"}`, string(decoded))
}

func TestMockClipboard(t *testing.T) {
	m := &MockClipboard{}
	require.NoError(t, m.Copy("hello"))
	require.Equal(t, "hello", m.Text)
}
