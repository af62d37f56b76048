package poker

import "fmt"

const (
	// DealSize is the number of cards in a heads-up deal.
	DealSize = 9
	// PoolSize is the number of cards available to one player.
	PoolSize = 7
	// HandSize is the number of cards in a best hand.
	HandSize = 5
)

// Deal holds the nine cards of a heads-up showdown. Positions 0 and 2 are
// player A's private cards, 1 and 3 are player B's, and 4 through 8 are the
// shared community cards.
type Deal [DealSize]Card

// Pool is the seven cards one player builds a hand from.
type Pool [PoolSize]Card

// NewDeal validates values and returns them as a Deal. The count is checked
// first, then each value's range, then duplicates.
func NewDeal(values []int) (Deal, error) {
	var d Deal
	if len(values) != DealSize {
		return d, fmt.Errorf("%w: expected %d cards, got %d", ErrMalformedDeal, DealSize, len(values))
	}

	for i, v := range values {
		card, err := NewCard(v)
		if err != nil {
			return Deal{}, fmt.Errorf("position %d: %w", i, err)
		}
		d[i] = card
	}

	var seen [NumCards + 1]bool
	for i, card := range d {
		if seen[card] {
			return Deal{}, fmt.Errorf("%w: %s (%d) at position %d", ErrDuplicateCard, card, card, i)
		}
		seen[card] = true
	}

	return d, nil
}

// Split returns the pools of player A and player B. Distinctness is not
// checked here; NewDeal already did.
func (d Deal) Split() (a, b Pool) {
	a = Pool{d[0], d[2], d[4], d[5], d[6], d[7], d[8]}
	b = Pool{d[1], d[3], d[4], d[5], d[6], d[7], d[8]}
	return a, b
}

// Board returns the five community cards.
func (d Deal) Board() [5]Card {
	return [5]Card{d[4], d[5], d[6], d[7], d[8]}
}

// Ints returns the deal as plain card numbers.
func (d Deal) Ints() []int {
	out := make([]int, len(d))
	for i, c := range d {
		out[i] = int(c)
	}
	return out
}
