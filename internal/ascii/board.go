// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii implements a character board for drawing text diagrams at
// arbitrary row and column positions.
package ascii

import (
	"fmt"
	"strings"
)

// Board is a two-dimensional grid of runes. The board grows as needed when
// written to; unwritten cells are spaces.
type Board struct {
	rows [][]rune
}

// Make returns a Board with room for the given number of rows.
func Make(height int) Board {
	return Board{rows: make([][]rune, 0, height)}
}

// At returns a cursor at the given row and column.
func (b *Board) At(r, c int) Cursor {
	return Cursor{b: b, r: r, c: c, crCol: c}
}

// NewLine returns a cursor at the beginning of a new row after the last one.
func (b *Board) NewLine() Cursor {
	return b.At(len(b.rows), 0)
}

// Lines returns the number of rows of the board.
func (b *Board) Lines() int {
	return len(b.rows)
}

// Get returns the rune at the given position, or a space if nothing was written
// there.
func (b *Board) Get(r, c int) rune {
	if r < 0 || r >= len(b.rows) || c < 0 || c >= len(b.rows[r]) {
		return ' '
	}
	return b.rows[r][c]
}

// Reset clears the board.
func (b *Board) Reset() {
	b.rows = b.rows[:0]
}

// String returns the contents of the board, without trailing spaces.
func (b *Board) String() string {
	return b.Render("")
}

// Render returns the contents of the board with every row prefixed by indent.
func (b *Board) Render(indent string) string {
	var buf strings.Builder
	for r := range b.rows {
		if r > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(indent)
		buf.WriteString(strings.TrimRight(string(b.rows[r]), " "))
	}
	return buf.String()
}

func (b *Board) set(r, c int, ch rune) {
	for len(b.rows) <= r {
		b.rows = append(b.rows, nil)
	}
	row := b.rows[r]
	for len(row) <= c {
		row = append(row, ' ')
	}
	row[c] = ch
	b.rows[r] = row
}

// Cursor is a position on a Board.
type Cursor struct {
	b    *Board
	r, c int
	// crCol is the column to which newlines in written text return.
	crCol int
}

// Row returns the row of the cursor.
func (c Cursor) Row() int { return c.r }

// Column returns the column of the cursor.
func (c Cursor) Column() int { return c.c }

// Offset returns a cursor moved by the given number of rows and columns. The
// carriage return column moves along.
func (c Cursor) Offset(dr, dc int) Cursor {
	c.r += dr
	c.c += dc
	c.crCol += dc
	return c
}

// Printf writes the formatted text at the cursor and returns a cursor where the
// text ends.
func (c Cursor) Printf(format string, args ...interface{}) Cursor {
	return c.WriteString(fmt.Sprintf(format, args...))
}

// WriteString writes s at the cursor and returns a cursor where the text ends.
// A newline moves to the next row, at the column where the cursor was created.
func (c Cursor) WriteString(s string) Cursor {
	for _, ch := range s {
		if ch == '\n' {
			c.r++
			c.c = c.crCol
			continue
		}
		c.b.set(c.r, c.c, ch)
		c.c++
	}
	return c
}

// Repeat writes ch n times and returns a cursor where the run ends.
func (c Cursor) Repeat(n int, ch rune) Cursor {
	for range n {
		c.b.set(c.r, c.c, ch)
		c.c++
	}
	return c
}
