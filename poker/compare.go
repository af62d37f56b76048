package poker

// Winner names the player whose hand takes the showdown.
type Winner uint8

const (
	PlayerA Winner = iota
	PlayerB
)

// String returns "A" or "B".
func (w Winner) String() string {
	if w == PlayerB {
		return "B"
	}
	return "A"
}

// CompareHands compares two classified hands and returns 1 if a wins, -1 if
// b wins, 0 for a full tie. The stronger category wins outright; equal
// categories are compared card by card in selection order with Aces high.
func CompareHands(a, b Hand) int {
	if a.Category != b.Category {
		if a.Category.Beats(b.Category) {
			return 1
		}
		return -1
	}

	for i := range a.Cards {
		ra, rb := a.Cards[i].Rank().high(), b.Cards[i].Rank().high()
		switch {
		case ra > rb:
			return 1
		case ra < rb:
			return -1
		}
	}
	return 0
}

// Showdown is the outcome of evaluating a deal.
type Showdown struct {
	Deal   Deal
	A, B   Hand
	Winner Winner
	// Split is set when the hands tie on every card. Winner is still PlayerA
	// in that case.
	Split bool
}

// Play splits the deal, classifies both pools and compares the results.
func Play(d Deal) Showdown {
	poolA, poolB := d.Split()
	s := Showdown{
		Deal: d,
		A:    Classify(poolA),
		B:    Classify(poolB),
	}

	switch CompareHands(s.A, s.B) {
	case -1:
		s.Winner = PlayerB
	case 0:
		s.Split = true
	}
	return s
}

// WinningHand returns the hand of the winning player.
func (s Showdown) WinningHand() Hand {
	if s.Winner == PlayerB {
		return s.B
	}
	return s.A
}
