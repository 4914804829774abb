package asciitable

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches CSI sequences (colors, cursor movement), OSC sequences
// (hyperlinks, window titles) terminated by BEL or ST, and two-byte charset
// designations such as the ESC ( B emitted by tput sgr0.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|\x1b[()][0-9A-Za-z]`)

// widthCond measures ambiguous-width characters as one column regardless of
// the process locale. runewidth.DefaultCondition reads LANG and friends.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StripANSI removes ANSI escape sequences from s, leaving only the text a
// terminal would draw.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// VisibleWidth returns the display width of s in terminal columns. Escape
// sequences contribute nothing, wide glyphs such as CJK characters and most
// emoji count as two columns, and East Asian ambiguous characters such as
// ° and … count as one.
func VisibleWidth(s string) int {
	return widthCond.StringWidth(StripANSI(s))
}
