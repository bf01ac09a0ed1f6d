package tupilang

import (
	"strings"
	"unicode/utf8"
)

const DefaultTabSize = 4

type cursor struct {
	offset  int
	line    int
	col     int
	tabSize int
}

func newCursor() cursor {
	return cursor{
		line:    1,
		col:     1,
		tabSize: DefaultTabSize,
	}
}

// advance moves the cursor past text. The offset always grows by the
// byte length. For whitespace the line count and the tab-aware column
// are recomputed from the lexeme itself; for everything else the column
// grows by the rune count and the line is left alone.
func (c *cursor) advance(kind TokenKind, text string) {
	c.offset += len(text)

	if kind != TokenWhitespace {
		c.col += utf8.RuneCountInString(text)
		return
	}

	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		c.line += strings.Count(text, "\n")
		c.col = 1 + c.indent(text[idx+1:])
	} else {
		c.col += c.indent(text)
	}
}

// indent is the column width of a newline-free whitespace run: each tab
// counts tabSize, each space counts one, '\r' counts nothing.
func (c *cursor) indent(text string) int {
	tabs := strings.Count(text, "\t")
	spaces := strings.Count(text, " ")
	return c.tabSize*tabs + spaces
}
