package spider

// Deal pops the next reserve set and lays one card face up at the bottom of
// each column: card i lands on column i at the column's height. Empty columns
// receive a card at row 0; dealing is allowed even when some columns are
// empty. It returns false when no reserve set is left.
func (g *Game) Deal() bool {
	if len(g.available) == 0 {
		return false
	}
	set := g.available[0]
	g.available = g.available[1:]

	heights := g.Heights()
	for col, c := range set {
		pos := Position{Column: col, Row: heights[col]}
		if err := g.Place(c, pos, Shown); err != nil {
			panic("spider: dealing onto " + pos.String() + ": " + err.Error())
		}
	}
	return true
}
