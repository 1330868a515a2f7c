package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSymbolic is a function.
func TestSymbolic(t *testing.T) {
	type scenario struct {
		mode     uint32
		expected string
	}

	scenarios := []scenario{
		{
			0o644,
			"rw-r--r--",
		},
		{
			0o755,
			"rwxr-xr-x",
		},
		{
			0o000,
			"---------",
		},
		{
			0o777,
			"rwxrwxrwx",
		},
		{
			0o640,
			"rw-r-----",
		},
		{
			// type bits do not leak into the symbolic string
			0o100644,
			"rw-r--r--",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, NewUnixPermissions(s.mode).Symbolic())
	}
}

// TestOctal is a function.
func TestOctal(t *testing.T) {
	type scenario struct {
		mode     uint32
		expected string
	}

	scenarios := []scenario{
		{
			0o644,
			"644",
		},
		{
			0o755,
			"755",
		},
		{
			// full st_mode of a regular file: type bits are masked off
			0o100644,
			"644",
		},
		{
			// sticky bit survives
			0o41755,
			"1755",
		},
		{
			0o000,
			"0",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, NewUnixPermissions(s.mode).Octal())
	}
}

// TestOctalRoundTrip checks that parsing the octal display recovers the low
// permission bits of the original mode.
func TestOctalRoundTrip(t *testing.T) {
	for _, mode := range []uint32{0o644, 0o755, 0o4755, 0o1777, 0o100600, 0o40755} {
		permissions := NewUnixPermissions(mode)
		parsed, err := ParseOctal(permissions.Octal())
		assert.NoError(t, err)
		assert.EqualValues(t, mode&0o7777, parsed)
	}
}

// TestParseOctalRejectsGarbage is a function.
func TestParseOctalRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "rwx", "9"} {
		_, err := ParseOctal(text)
		assert.Error(t, err)
	}
}
