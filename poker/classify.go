package poker

import (
	"cmp"
	"fmt"
	"slices"
)

// Hand is a classified pool: its category and the five cards realising it.
// Cards are in selection order, defining group first and kickers last, which
// is the order CompareHands walks.
type Hand struct {
	Category Category
	Cards    [HandSize]Card
}

// counts holds the rank and suit histograms of a pool. It is built once per
// classification and only read afterwards.
type counts struct {
	ranks    [King + 1]int
	suits    [Spades + 1]int
	distinct int
}

func countPool(p Pool) counts {
	var c counts
	for _, card := range p {
		if c.ranks[card.Rank()] == 0 {
			c.distinct++
		}
		c.ranks[card.Rank()]++
		c.suits[card.Suit()]++
	}
	return c
}

// ranksWith returns, in ascending rank order, every rank held exactly n times.
func (c counts) ranksWith(n int) []Rank {
	var out []Rank
	for r := Ace; r <= King; r++ {
		if c.ranks[r] == n {
			out = append(out, r)
		}
	}
	return out
}

// flushSuit returns the first suit holding at least five cards.
func (c counts) flushSuit() (Suit, bool) {
	for s := Clubs; s <= Spades; s++ {
		if c.suits[s] >= HandSize {
			return s, true
		}
	}
	return 0, false
}

// rule pairs a category's predicate with its best-hand extractor. Each
// predicate may assume every stronger rule has already failed.
type rule struct {
	category Category
	matches  func(Pool, counts) bool
	best     func(Pool, counts) [HandSize]Card
}

var rules = [...]rule{
	{StraightFlush, isStraightFlush, bestStraightFlush},
	{FourOfAKind, isFourOfAKind, bestFourOfAKind},
	{FullHouse, isFullHouse, bestFullHouse},
	{Flush, isFlush, bestFlush},
	{Straight, isStraight, bestStraight},
	{ThreeOfAKind, isThreeOfAKind, bestThreeOfAKind},
	{TwoPair, isTwoPair, bestTwoPair},
	{Pair, isPair, bestPair},
	{HighCard, isHighCard, bestHighCard},
}

// Classify finds the strongest category the pool satisfies and the five
// cards that make it. Rules run strongest first and stop at the first match.
// Every card in p must be valid; pools from Deal.Split always are.
func Classify(p Pool) Hand {
	for _, card := range p {
		if !card.Valid() {
			panic(fmt.Sprintf("poker: invalid card %d in pool", card))
		}
	}
	c := countPool(p)
	for _, r := range rules {
		if r.matches(p, c) {
			return Hand{Category: r.category, Cards: r.best(p, c)}
		}
	}
	panic("poker: no hand category matched")
}

// SortAceHigh orders items from highest to lowest rank with Aces first.
// Aces keep their input order; other equal ranks come out in reverse input
// order. The input slice is not modified.
func SortAceHigh[T any](items []T, rank func(T) Rank) []T {
	out := make([]T, 0, len(items))
	rest := make([]T, 0, len(items))
	for _, item := range items {
		if rank(item) == Ace {
			out = append(out, item)
		} else {
			rest = append(rest, item)
		}
	}
	slices.Reverse(rest)
	slices.SortStableFunc(rest, func(a, b T) int {
		return cmp.Compare(rank(b), rank(a))
	})
	return append(out, rest...)
}

func cardRank(c Card) Rank { return c.Rank() }
func rankSelf(r Rank) Rank { return r }

// take splits cards into those of the given rank (at most limit, in pool
// order) and everything else.
func take(cards []Card, rank Rank, limit int) (picked, rest []Card) {
	for _, card := range cards {
		if card.Rank() == rank && len(picked) < limit {
			picked = append(picked, card)
		} else {
			rest = append(rest, card)
		}
	}
	return picked, rest
}

func fill(groups ...[]Card) [HandSize]Card {
	var hand [HandSize]Card
	i := 0
	for _, g := range groups {
		for _, card := range g {
			if i == HandSize {
				return hand
			}
			hand[i] = card
			i++
		}
	}
	return hand
}

// straightTop scans the present ranks for five in a row and returns the top
// rank of the last run found. Ace only counts above the King: a present
// Ten-Jack-Queen-King-Ace returns Ace, while Ace-Two-Three-Four-Five is not a
// straight.
func straightTop(present [King + 1]bool) (Rank, bool) {
	var top Rank
	found := false
	run := 0
	for r := Two; r <= King; r++ {
		if !present[r] {
			run = 0
			continue
		}
		run++
		if run >= HandSize {
			top, found = r, true
		}
	}
	if present[Ace] && present[Ten] && present[Jack] && present[Queen] && present[King] {
		return Ace, true
	}
	return top, found
}

func straightRanks(top Rank) []Rank {
	if top == Ace {
		return []Rank{Ace, Ten, Jack, Queen, King}
	}
	ranks := make([]Rank, 0, HandSize)
	for r := top - 4; r <= top; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func presentRanks(p Pool, keep func(Card) bool) [King + 1]bool {
	var present [King + 1]bool
	for _, card := range p {
		if keep(card) {
			present[card.Rank()] = true
		}
	}
	return present
}

func anyCard(Card) bool { return true }

func suited(s Suit) func(Card) bool {
	return func(c Card) bool { return c.Suit() == s }
}

// pickRun selects, for each rank of the run, the first matching pool card.
func pickRun(p Pool, top Rank, keep func(Card) bool) [HandSize]Card {
	var hand [HandSize]Card
	for i, r := range straightRanks(top) {
		for _, card := range p {
			if card.Rank() == r && keep(card) {
				hand[i] = card
				break
			}
		}
	}
	return hand
}

func isStraightFlush(p Pool, c counts) bool {
	s, ok := c.flushSuit()
	if !ok {
		return false
	}
	_, ok = straightTop(presentRanks(p, suited(s)))
	return ok
}

func bestStraightFlush(p Pool, c counts) [HandSize]Card {
	s, _ := c.flushSuit()
	keep := suited(s)
	top, _ := straightTop(presentRanks(p, keep))
	return pickRun(p, top, keep)
}

func isFourOfAKind(_ Pool, c counts) bool {
	return len(c.ranksWith(4)) > 0
}

func bestFourOfAKind(p Pool, c counts) [HandSize]Card {
	quads, rest := take(p[:], c.ranksWith(4)[0], 4)
	return fill(quads, SortAceHigh(rest, cardRank))
}

// isFullHouse treats fewer than five distinct ranks alongside a triple as
// proof that a second triple or a pair is available.
func isFullHouse(_ Pool, c counts) bool {
	return len(c.ranksWith(3)) > 0 && c.distinct < HandSize
}

func bestFullHouse(p Pool, c counts) [HandSize]Card {
	trips := SortAceHigh(c.ranksWith(3), rankSelf)
	three, rest := take(p[:], trips[0], 3)
	if len(trips) > 1 {
		two, _ := take(rest, trips[1], 2)
		return fill(three, two)
	}
	pairs := SortAceHigh(c.ranksWith(2), rankSelf)
	two, _ := take(rest, pairs[0], 2)
	return fill(three, two)
}

func isFlush(_ Pool, c counts) bool {
	_, ok := c.flushSuit()
	return ok
}

func bestFlush(p Pool, c counts) [HandSize]Card {
	s, _ := c.flushSuit()
	var cards []Card
	for _, card := range p {
		if card.Suit() == s {
			cards = append(cards, card)
		}
	}
	return fill(SortAceHigh(cards, cardRank))
}

func isStraight(p Pool, _ counts) bool {
	_, ok := straightTop(presentRanks(p, anyCard))
	return ok
}

func bestStraight(p Pool, _ counts) [HandSize]Card {
	top, _ := straightTop(presentRanks(p, anyCard))
	return pickRun(p, top, anyCard)
}

func isThreeOfAKind(_ Pool, c counts) bool {
	return len(c.ranksWith(3)) == 1
}

func bestThreeOfAKind(p Pool, c counts) [HandSize]Card {
	three, rest := take(p[:], c.ranksWith(3)[0], 3)
	return fill(three, SortAceHigh(rest, cardRank))
}

func isTwoPair(_ Pool, c counts) bool {
	return len(c.ranksWith(2)) >= 2
}

func bestTwoPair(p Pool, c counts) [HandSize]Card {
	pairs := SortAceHigh(c.ranksWith(2), rankSelf)
	high, rest := take(p[:], pairs[0], 2)
	low, rest := take(rest, pairs[1], 2)
	return fill(high, low, SortAceHigh(rest, cardRank))
}

func isPair(_ Pool, c counts) bool {
	return len(c.ranksWith(2)) == 1
}

func bestPair(p Pool, c counts) [HandSize]Card {
	two, rest := take(p[:], c.ranksWith(2)[0], 2)
	return fill(two, SortAceHigh(rest, cardRank))
}

// isHighCard always matches so that every pool classifies.
func isHighCard(Pool, counts) bool {
	return true
}

func bestHighCard(p Pool, _ counts) [HandSize]Card {
	return fill(SortAceHigh(p[:], cardRank))
}
