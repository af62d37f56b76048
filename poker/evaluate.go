// Package poker evaluates a heads-up showdown from a nine-card deal.
//
// Cards are numbered 1 through 52. Each player combines two private cards
// with five shared cards, the best five-card hand of each pool is found, and
// the winning hand is returned as sorted labels such as "10C" or "1S".
package poker

import (
	"slices"
	"strings"
)

// Evaluate validates a nine-card deal and returns the winning five-card hand
// as labels sorted lexicographically. On a full tie player A's hand is
// returned.
func Evaluate(values []int) ([HandSize]string, error) {
	d, err := NewDeal(values)
	if err != nil {
		return [HandSize]string{}, err
	}
	return Play(d).WinningHand().SortedLabels(), nil
}

// Labels returns the hand's card labels in selection order.
func (h Hand) Labels() [HandSize]string {
	var out [HandSize]string
	for i, c := range h.Cards {
		out[i] = c.String()
	}
	return out
}

// SortedLabels returns the hand's labels in lexicographic string order, so
// "10C" sorts before "2D".
func (h Hand) SortedLabels() [HandSize]string {
	out := h.Labels()
	slices.Sort(out[:])
	return out
}

// String renders the category followed by the cards in selection order.
func (h Hand) String() string {
	labels := h.Labels()
	return h.Category.String() + " [" + strings.Join(labels[:], " ") + "]"
}
