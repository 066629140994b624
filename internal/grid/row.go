package grid

// FormatRow places text in a row, one character per cell. Lines longer than
// the grid are rejected with ErrLineTooLong rather than spilling over.
func (g Grid) FormatRow(text string, align Align) (Row, error) {
	g = g.withDefaults()
	chars := []rune(text)
	if err := g.checkFits(text, len(chars)); err != nil {
		return nil, err
	}

	row := make(Row, g.Columns)
	start := g.Offset(len(chars), align)
	for i, r := range chars {
		row[start+i] = Cell(string(r))
	}
	return row, nil
}
