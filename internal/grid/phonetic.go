package grid

import "strings"

// FormatPhoneticRow splits a pinyin line on whitespace and places the
// syllables like FormatRow would place the same number of characters.
func (g Grid) FormatPhoneticRow(line string, align Align) (PhoneticRow, error) {
	return g.FormatPhoneticTokens(strings.Fields(line), align)
}

// FormatPhoneticTokens places tokens into Columns slots. Slot i holds
// tokens[i-offset] when that index exists, otherwise it is empty.
func (g Grid) FormatPhoneticTokens(tokens []string, align Align) (PhoneticRow, error) {
	g = g.withDefaults()
	if err := g.checkFits(strings.Join(tokens, " "), len(tokens)); err != nil {
		return PhoneticRow{}, err
	}

	slots := make([]string, g.Columns)
	copy(slots[g.Offset(len(tokens), align):], tokens)
	return PhoneticRow{Slots: slots, Visible: true}, nil
}
