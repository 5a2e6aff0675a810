package spider

// ApplyMove executes m if it is a member of the freshly computed legal moves;
// otherwise it does nothing and returns false.
//
// The card at m.From is relocated to m.To. Every other shown card in the
// source column below m.From follows it to the destination column, keeping its
// row offset from the moved card. The stack is moved whether or not it forms
// a same-suit descending run. Finally newly exposed hidden cards are revealed.
//
// A legal move whose cascade would land on a card that stays put is refused
// like an illegal one.
func (g *Game) ApplyMove(m Move) bool {
	if !g.IsLegal(m) {
		return false
	}
	moving, ok := g.relocations(m)
	if !ok {
		return false
	}

	// detach every moving card before re-inserting so that a stack never
	// collides with itself
	for _, mv := range moving {
		if got := g.remove(g.records[mv.id].Position); got != mv.id {
			panic("spider: tableau index and card records are out of sync")
		}
	}
	for _, mv := range moving {
		g.put(mv.id, mv.to)
	}

	g.Reveal()
	return true
}

type relocation struct {
	id int
	to Position
}

// relocations lists where every card carried by m lands. It reports false
// when a landing cell is held by a card that does not move: a gap left in a
// column by an earlier move can let a legal move cascade onto cards below it.
func (g *Game) relocations(m Move) ([]relocation, bool) {
	src, ok := g.grid[m.From]
	if !ok {
		return nil, false
	}
	moving := []relocation{{id: src, to: m.To}}
	carried := map[int]bool{src: true}
	for id, r := range g.records {
		if id == src || r.Visibility != Shown {
			continue
		}
		if r.Position.Column != m.From.Column || r.Position.Row <= m.From.Row {
			continue
		}
		offset := r.Position.Row - m.From.Row
		moving = append(moving, relocation{id: id, to: Position{Column: m.To.Column, Row: m.To.Row + offset}})
		carried[id] = true
	}
	for _, mv := range moving {
		if other, taken := g.grid[mv.to]; taken && !carried[other] {
			return nil, false
		}
	}
	return moving, true
}

// applicable reports whether ApplyMove would execute m.
func (g *Game) applicable(m Move) bool {
	if !g.IsLegal(m) {
		return false
	}
	_, ok := g.relocations(m)
	return ok
}

// Reveal turns face up every hidden card whose cell below is empty and
// returns the positions it flipped. It is idempotent.
func (g *Game) Reveal() []Position {
	var flipped []Position
	for id := range g.records {
		r := &g.records[id]
		if r.Visibility != Hidden || g.Occupied(r.Position.NextRow()) {
			continue
		}
		r.Visibility = Shown
		flipped = append(flipped, r.Position)
	}
	return flipped
}
