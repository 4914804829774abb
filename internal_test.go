package asciitable

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestComputeWidthsUsesVisibleWidth(t *testing.T) {
	t.Parallel()
	widths := computeWidths(
		[]string{"Name", "N"},
		[][]string{{"\x1b[93mAlice\x1b[0m", "1"}, {"你好世界"}},
		[]string{"Total", "123", "ignored past header count"},
	)
	assert.Equal(t, []int{8, 3}, widths)
}

func TestComputeWidthsNoHeaders(t *testing.T) {
	t.Parallel()
	widths := computeWidths(nil, [][]string{{"abc"}}, []string{"x"})
	assert.Empty(t, widths)
	assert.Equal(t, 0, tableInnerWidth(widths))
}

func TestTableInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, tableInnerWidth([]int{5}))
	assert.Equal(t, 16, tableInnerWidth([]int{5, 6}))
	assert.Equal(t, 2, tableInnerWidth([]int{0}))
}

func TestCenterCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "   Test Table   ", centerCell("Test Table", 16))
	assert.Equal(t, " ab  ", centerCell("ab", 5))
	assert.Equal(t, "toolong", centerCell("toolong", 3))
	assert.Equal(t, " \x1b[1mab\x1b[0m  ", centerCell("\x1b[1mab\x1b[0m", 5))
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Bob  ", padCell("Bob", 5))
	assert.Equal(t, "\x1b[93mBob\x1b[0m  ", padCell("\x1b[93mBob\x1b[0m", 5))
	assert.Equal(t, "你好 ", padCell("你好", 5))
	assert.Equal(t, "wider", padCell("wider", 2))
}

func TestTruncateFloat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "95.67", truncateFloat(95.6789, 2))
	assert.Equal(t, "88.12", truncateFloat(88.1234, 2))
	assert.Equal(t, "8.900", truncateFloat(8.9, 3))
	assert.Equal(t, "0", truncateFloat(0.999, 0))
	assert.Equal(t, "-1.5", truncateFloat(-1.59, 1))
}

func TestVisibleWidthIgnoresLocaleCondition(t *testing.T) {
	prev := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = prev })

	assert.Equal(t, 3, VisibleWidth("°C…"))
	assert.Equal(t, []int{3}, computeWidths([]string{"°C…"}, nil, nil))
}
