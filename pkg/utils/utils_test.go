package utils

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// TestSplitLines is a function.
func TestSplitLines(t *testing.T) {
	type scenario struct {
		multilineString string
		expected        []string
	}

	scenarios := []scenario{
		{
			"",
			[]string{},
		},
		{
			"\n",
			[]string{},
		},
		{
			"hello world !\nhello universe !\n",
			[]string{
				"hello world !",
				"hello universe !",
			},
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, SplitLines(s.multilineString))
	}
}

// TestWithPadding is a function.
func TestWithPadding(t *testing.T) {
	type scenario struct {
		str      string
		padding  int
		expected string
	}

	scenarios := []scenario{
		{
			"hello world !",
			1,
			"hello world !",
		},
		{
			"hello world !",
			14,
			"hello world ! ",
		},
		{
			"File",
			9,
			"File     ",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, WithPadding(s.str, s.padding))
	}
}

// TestWithPaddingIgnoresColorCodes ensures padding is computed on the
// visible characters only.
func TestWithPaddingIgnoresColorCodes(t *testing.T) {
	colored := "\x1b[34mDirectory\x1b[0m"
	padded := WithPadding(colored, 12)
	assert.EqualValues(t, colored+"   ", padded)
}

// TestRightAligned is a function.
func TestRightAligned(t *testing.T) {
	type scenario struct {
		str      string
		padding  int
		expected string
	}

	scenarios := []scenario{
		{
			"10 B",
			7,
			"   10 B",
		},
		{
			"1023.9 MiB",
			7,
			"1023.9 MiB",
		},
		{
			"",
			3,
			"   ",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, RightAligned(s.str, s.padding))
	}
}

// TestResolvePlaceholderString is a function.
func TestResolvePlaceholderString(t *testing.T) {
	type scenario struct {
		templateString string
		arguments      map[string]string
		expected       string
	}

	scenarios := []scenario{
		{
			"",
			map[string]string{},
			"",
		},
		{
			"hello",
			map[string]string{},
			"hello",
		},
		{
			"Revealing directory: {{path}}.",
			map[string]string{
				"path": "/tmp",
			},
			"Revealing directory: /tmp.",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, ResolvePlaceholderString(s.templateString, s.arguments))
	}
}

// TestDecolorise is a function.
func TestDecolorise(t *testing.T) {
	assert.EqualValues(t, "Directory", Decolorise("\x1b[34mDirectory\x1b[0m"))
	assert.EqualValues(t, "plain", Decolorise("plain"))
}

// TestGetColorAttribute is a function.
func TestGetColorAttribute(t *testing.T) {
	assert.EqualValues(t, color.FgBlue, GetColorAttribute("blue"))
	assert.EqualValues(t, color.Bold, GetColorAttribute("bold"))
	assert.EqualValues(t, color.FgWhite, GetColorAttribute("definitely-not-a-color"))
}

// TestMultiColoredStringWithoutAttributes is a function.
func TestMultiColoredStringWithoutAttributes(t *testing.T) {
	assert.EqualValues(t, "File", MultiColoredString("File"))
}
