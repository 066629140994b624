package grid

// Paginate cuts a translation into consecutive chunks of Columns characters,
// each formatted as a left-aligned row. Newlines are dropped first; an empty
// translation gives no rows.
func (g Grid) Paginate(translation string) ([]Row, error) {
	g = g.withDefaults()
	chars := []rune(stripNewlines(translation))

	rows := make([]Row, 0, (len(chars)+g.Columns-1)/g.Columns)
	for start := 0; start < len(chars); start += g.Columns {
		end := min(start+g.Columns, len(chars))
		row, err := g.FormatRow(string(chars[start:end]), AlignLeft)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
