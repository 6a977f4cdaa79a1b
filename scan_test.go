package parsebase

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkip(t *testing.T) {
	sep := NewSkipSet(", \t")

	tests := []struct {
		name   string
		buf    string
		offset int
	}{
		{"no members", "abc", 0},
		{"short run", ",, x", 3},
		{"to end", ", \t\t,,  ", 8},
		{"empty buffer", "", 0},
		{"run over window edge", strings.Repeat(",", 33) + "x", 33},
		{"run over two windows", strings.Repeat(" ,\t", 30) + "end", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New([]byte(tt.buf))
			c.Skip(sep)
			require.Equal(t, tt.offset, c.Offset())

			// Skipping again from the same position moves nothing.
			c.Skip(sep)
			require.Equal(t, tt.offset, c.Offset())

			if c.HasChar() {
				require.False(t, sep.Contains(c.CurChar()))
			}
		})
	}
}

func TestSkipFromMidBuffer(t *testing.T) {
	c := New([]byte("ab,,,,cd"))
	c.Next()
	c.Next()
	c.Skip(NewSkipSet(","))
	require.Equal(t, 6, c.Offset())
	require.Equal(t, byte('c'), c.CurChar())
}

func TestSkipOversizedSet(t *testing.T) {
	// 17 distinct members forces the scalar engine; the observable
	// behavior must be identical to a batch-eligible set.
	set := NewSkipSet("abcdefghijklmnopq")
	c := New([]byte(strings.Repeat("abcq", 10) + "!tail"))
	c.Skip(set)
	require.Equal(t, 40, c.Offset())
	require.Equal(t, byte('!'), c.CurChar())
}

func TestSkipSetContains(t *testing.T) {
	s := NewSkipSet(" \t,")
	require.True(t, s.Contains(' '))
	require.True(t, s.Contains('\t'))
	require.True(t, s.Contains(','))
	require.False(t, s.Contains('\n'))
	require.False(t, s.Contains(0))
}

func TestSkipSpaceAndControl(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		offset int
	}{
		{"none", []byte("abc"), 0},
		{"spaces and tabs", []byte("   \tfoo"), 4},
		{"control bytes", []byte{0x00, 0x01, 0x1f, 0x20, 'x'}, 4},
		{"to end", bytes.Repeat([]byte{' '}, 70), 70},
		{"empty", nil, 0},
		{"high bit stops", []byte{' ', ' ', 0x80, ' '}, 2},
		{"high bit stops late", append(bytes.Repeat([]byte{'\t'}, 50), 0xC3, 0xA9), 50},
		{"del is not control", []byte{' ', 0x7f}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.buf)
			c.SkipSpaceAndControl()
			require.Equal(t, tt.offset, c.Offset())

			c.SkipSpaceAndControl()
			require.Equal(t, tt.offset, c.Offset(), "second call must not move")
		})
	}
}

func TestParseExpected(t *testing.T) {
	tests := []struct {
		name     string
		buf      string
		expected string
		ok       bool
		offset   int
	}{
		{"full match", "ABCD", "AB", true, 2},
		{"exact length", "TRUE", "TRUE", true, 4},
		{"mismatch after prefix", "AXCD", "AB", false, 0},
		{"mismatch at first byte", "XBCD", "AB", false, 0},
		{"token longer than buffer", "AB", "ABC", false, 0},
		{"empty token", "AB", "", true, 0},
		{"empty buffer", "", "A", false, 0},
		{"long token", strings.Repeat("abc", 8) + "rest", strings.Repeat("abc", 8), true, 24},
		{"long token near miss", strings.Repeat("abc", 8), strings.Repeat("abc", 7) + "abX", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New([]byte(tt.buf))
			require.Equal(t, tt.ok, c.ParseExpected([]byte(tt.expected)))
			require.Equal(t, tt.offset, c.Offset())
		})
	}
}

func TestParseExpectedMismatchEveryPosition(t *testing.T) {
	token := []byte("structured")
	for p := 0; p < len(token); p++ {
		t.Run(fmt.Sprintf("flip_%d", p), func(t *testing.T) {
			buf := append([]byte(nil), token...)
			buf[p] ^= 0x01
			c := New(buf)
			require.False(t, c.ParseExpected(token))
			require.Equal(t, 0, c.Offset(), "failed match must not move the position")
		})
	}
}

// A SkipSet is shared read-only state: concurrent cursors over the same
// set must not interfere. Run with -race.
func TestConcurrentSkipSetUse(t *testing.T) {
	sep := NewSkipSet(", \t\n")
	data := []byte(strings.Repeat(" ,\t", 40) + "payload")
	const goroutines = 8

	done := make(chan int, goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			c := New(data)
			for i := 0; i < 200; i++ {
				c.Skip(sep)
				c.SkipSpaceAndControl()
				c.Prev(c.Offset())
			}
			c.Skip(sep)
			done <- c.Offset()
		}()
	}

	for g := 0; g < goroutines; g++ {
		require.Equal(t, 120, <-done)
	}
}

func TestParseExpectedMidBuffer(t *testing.T) {
	c := New([]byte("xxTRUEyy"))
	c.Next()
	c.Next()
	require.True(t, c.ParseExpected([]byte("TRUE")))
	require.Equal(t, 6, c.Offset())
	require.Equal(t, byte('y'), c.CurChar())

	require.False(t, c.ParseExpected([]byte("zz")))
	require.Equal(t, 6, c.Offset())
}
