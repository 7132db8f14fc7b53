package segment_test

import (
	"testing"

	"github.com/katalvlaran/typealign/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnits splits ASCII and multi-rune clusters.
func TestUnits(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"ASCII", "sunday", []string{"s", "u", "n", "d", "a", "y"}},
		{"CombiningMark", "e\u0301x", []string{"e\u0301", "x"}},
		{"Precomposed", "\u00e9x", []string{"\u00e9", "x"}},
		{"Flags", "🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
		{"ZWJSequence", "👨‍👩‍👧!", []string{"👨‍👩‍👧", "!"}},
		{"CRLF", "a\r\nb", []string{"a", "\r\n", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, segment.Units(tc.in))
			assert.Equal(t, len(tc.want), segment.Count(tc.in))
		})
	}
}

// TestIsUnit accepts exactly one cluster.
func TestIsUnit(t *testing.T) {
	assert.False(t, segment.IsUnit(""), "empty string is no unit")
	assert.True(t, segment.IsUnit("a"))
	assert.True(t, segment.IsUnit("e\u0301"))
	assert.True(t, segment.IsUnit("🇩🇪"))
	assert.False(t, segment.IsUnit("ab"))
	assert.False(t, segment.IsUnit("🇩🇪🇫🇷"))
}

// TestWidth checks narrow and wide units.
func TestWidth(t *testing.T) {
	assert.Equal(t, 1, segment.Width("a"))
	assert.Equal(t, 1, segment.Width("e\u0301"))
	assert.Equal(t, 2, segment.Width("世"))
}

// TestAssembler_Push releases a unit only once the next rune starts another.
func TestAssembler_Push(t *testing.T) {
	var a segment.Assembler

	assert.Nil(t, a.Push('a'))
	assert.Equal(t, "a", a.Pending())
	assert.Equal(t, []string{"a"}, a.Push('b'))
	assert.Equal(t, []string{"b"}, a.Push('e'))
	assert.Nil(t, a.Push('\u0301'), "combining mark extends the working unit")
	assert.Equal(t, "e\u0301", a.Pending())
	assert.Equal(t, []string{"e\u0301"}, a.Push('x'))

	unit, ok := a.Flush()
	require.True(t, ok)
	assert.Equal(t, "x", unit)

	_, ok = a.Flush()
	assert.False(t, ok, "second flush has nothing pending")
}

// TestAssembler_RegionalIndicators pairs indicators into flags.
func TestAssembler_RegionalIndicators(t *testing.T) {
	var a segment.Assembler

	assert.Nil(t, a.Push('\U0001F1E9'))
	assert.Nil(t, a.Push('\U0001F1EA'))
	assert.Equal(t, []string{"🇩🇪"}, a.Push('\U0001F1EB'))
	assert.Equal(t, "\U0001F1EB", a.Pending())
}

// TestAssembler_PopAndReset edits the working unit rune by rune.
func TestAssembler_PopAndReset(t *testing.T) {
	var a segment.Assembler

	assert.False(t, a.Pop(), "nothing to pop")
	a.Push('e')
	a.Push('\u0301')
	require.True(t, a.Pop())
	assert.Equal(t, "e", a.Pending())
	require.True(t, a.Pop())
	assert.Equal(t, "", a.Pending())

	a.Push('q')
	a.Reset()
	assert.Equal(t, "", a.Pending())
}
