package treasure

// Sanitize returns a well-formed deep copy of t. A nil record becomes level
// gold pieces worth level*10. Otherwise Value and TotalValue are made equal
// and non-negative, taking TotalValue when set, else the content sum, else
// level*10, and a record with no content gains gold coins. Sanitize is
// idempotent.
func Sanitize(t *Treasure, level int) Treasure {
	level = max(level, 1)
	if t == nil {
		v := level * 10
		return Treasure{Category: CategoryCoins, Coins: Coins{GP: level}, Value: v, TotalValue: v}
	}

	s := t.Clone()
	s.Coins = s.Coins.repaired()
	for _, group := range [][]Piece{s.Gems, s.Items, s.Valuables, s.Magical} {
		repairPieces(group)
	}

	switch {
	case s.TotalValue > 0:
		s.Value = s.TotalValue
	case s.Value > 0:
	default:
		s.Value = s.contentValue()
		if s.Value <= 0 {
			s.Value = level * 10
		}
	}
	s.TotalValue = s.Value

	if !s.HasContent() {
		s.Coins.GP = max(1, s.Value/GoldValue)
	}
	return s
}

// repaired replaces negative coin counts with a single coin.
func (c Coins) repaired() Coins {
	for _, n := range []*int{&c.PP, &c.GP, &c.SP, &c.CP} {
		if *n < 0 {
			*n = 1
		}
	}
	return c
}

func repairPieces(pieces []Piece) {
	for i := range pieces {
		p := &pieces[i]
		if p.Quantity <= 0 {
			p.Quantity = 1
		}
		if p.ValueEach < 0 {
			p.ValueEach = 0
		}
		if p.Value <= 0 {
			p.Value = p.Quantity * p.ValueEach
		}
	}
}

func (t Treasure) contentValue() int {
	sum := t.Coins.Value()
	for _, group := range [][]Piece{t.Gems, t.Items, t.Valuables, t.Magical} {
		for _, p := range group {
			sum += p.Value
		}
	}
	return sum
}
