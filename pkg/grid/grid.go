// Package grid maps positions in a block of text onto a fixed-width
// character grid.
package grid

// GetGridCoords converts a linear cell index into column/row coordinates for a
// grid cols cells wide.
func GetGridCoords(index, cols int) (x, y int) {
	if cols <= 0 {
		return index, 0
	}
	return index % cols, index / cols
}

// Wrap splits text into display rows. Rows break at '\n' and after cols
// characters; an empty text yields a single empty row.
func Wrap(text []rune, cols int) []string {
	rows := []string{""}
	var cur []rune
	for _, r := range text {
		if r == '\n' {
			rows[len(rows)-1] = string(cur)
			rows = append(rows, "")
			cur = cur[:0]
			continue
		}
		if cols > 0 && len(cur) == cols {
			rows[len(rows)-1] = string(cur)
			rows = append(rows, "")
			cur = cur[:0]
		}
		cur = append(cur, r)
	}
	rows[len(rows)-1] = string(cur)
	return rows
}

// Caret returns the grid cell just after the last rune of text, using the same
// wrapping rules as Wrap.
func Caret(text []rune, cols int) (x, y int) {
	for _, r := range text {
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		if cols > 0 && x == cols {
			x, y = 0, y+1
		}
		x++
	}
	return x, y
}
