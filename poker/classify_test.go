package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCards(t testing.TB, labels ...string) []Card {
	t.Helper()
	cards := make([]Card, len(labels))
	for i, l := range labels {
		c, err := ParseCard(l)
		require.NoError(t, err, "label %q", l)
		cards[i] = c
	}
	return cards
}

func mustPool(t testing.TB, labels ...string) Pool {
	t.Helper()
	require.Len(t, labels, PoolSize)
	var p Pool
	copy(p[:], mustCards(t, labels...))
	return p
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		pool     []string
		category Category
		best     []string
	}{
		{
			name:     "straight flush",
			pool:     []string{"5H", "6H", "7H", "8H", "9H", "2C", "3D"},
			category: StraightFlush,
			best:     []string{"5H", "6H", "7H", "8H", "9H"},
		},
		{
			name:     "straight flush keeps the highest run",
			pool:     []string{"4H", "5H", "6H", "7H", "8H", "9H", "2C"},
			category: StraightFlush,
			best:     []string{"5H", "6H", "7H", "8H", "9H"},
		},
		{
			name:     "ace high straight flush",
			pool:     []string{"1S", "10S", "11S", "12S", "13S", "2C", "3D"},
			category: StraightFlush,
			best:     []string{"1S", "10S", "11S", "12S", "13S"},
		},
		{
			name:     "four of a kind with ace kicker",
			pool:     []string{"7C", "7D", "7H", "7S", "13C", "1D", "2H"},
			category: FourOfAKind,
			best:     []string{"7C", "7D", "7H", "7S", "1D"},
		},
		{
			name:     "full house from two triples takes aces over kings",
			pool:     []string{"13C", "13D", "13H", "1C", "1D", "1H", "2S"},
			category: FullHouse,
			best:     []string{"1C", "1D", "1H", "13C", "13D"},
		},
		{
			name:     "full house takes the highest pair",
			pool:     []string{"5C", "5D", "5H", "9C", "9D", "12C", "12D"},
			category: FullHouse,
			best:     []string{"5C", "5D", "5H", "12C", "12D"},
		},
		{
			name:     "flush ranks ace first",
			pool:     []string{"2H", "5H", "9H", "11H", "1H", "13H", "3C"},
			category: Flush,
			best:     []string{"1H", "13H", "11H", "9H", "5H"},
		},
		{
			name:     "full house with four hearts is not a flush",
			pool:     []string{"4H", "4D", "4C", "7H", "7D", "9H", "2H"},
			category: FullHouse,
			best:     []string{"4H", "4D", "4C", "7H", "7D"},
		},
		{
			name:     "flush beats three of a kind",
			pool:     []string{"4H", "4D", "4C", "7H", "9H", "2H", "12H"},
			category: Flush,
			best:     []string{"12H", "9H", "7H", "4H", "2H"},
		},
		{
			name:     "ace high straight in mixed suits",
			pool:     []string{"1C", "10D", "11H", "12S", "13C", "3D", "5H"},
			category: Straight,
			best:     []string{"1C", "10D", "11H", "12S", "13C"},
		},
		{
			name:     "two to six straight",
			pool:     []string{"2C", "3D", "4H", "5S", "6C", "1D", "13H"},
			category: Straight,
			best:     []string{"2C", "3D", "4H", "5S", "6C"},
		},
		{
			name:     "straight picks the first card of a repeated rank",
			pool:     []string{"5C", "6D", "7H", "8S", "9C", "9D", "2H"},
			category: Straight,
			best:     []string{"5C", "6D", "7H", "8S", "9C"},
		},
		{
			name:     "wheel is not a straight",
			pool:     []string{"1C", "2D", "3H", "4S", "5C", "9D", "11H"},
			category: HighCard,
			best:     []string{"1C", "11H", "9D", "5C", "4S"},
		},
		{
			name:     "three of a kind",
			pool:     []string{"8C", "8D", "8H", "1S", "3C", "10D", "12H"},
			category: ThreeOfAKind,
			best:     []string{"8C", "8D", "8H", "1S", "12H"},
		},
		{
			name:     "two pair from three pairs",
			pool:     []string{"3C", "3D", "9H", "9S", "1C", "1D", "13H"},
			category: TwoPair,
			best:     []string{"1C", "1D", "9H", "9S", "13H"},
		},
		{
			name:     "two pair kicker from the third pair",
			pool:     []string{"9C", "9D", "7C", "7D", "5C", "5D", "3H"},
			category: TwoPair,
			best:     []string{"9C", "9D", "7C", "7D", "5D"},
		},
		{
			name:     "pair",
			pool:     []string{"6C", "6D", "1H", "13S", "10C", "2D", "4H"},
			category: Pair,
			best:     []string{"6C", "6D", "1H", "13S", "10C"},
		},
		{
			name:     "high card",
			pool:     []string{"2C", "5D", "7H", "9S", "11C", "13D", "4H"},
			category: HighCard,
			best:     []string{"13D", "11C", "9S", "7H", "5D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := Classify(mustPool(t, tt.pool...))
			assert.Equal(t, tt.category, hand.Category, "category %s", hand.Category)

			var want [HandSize]Card
			copy(want[:], mustCards(t, tt.best...))
			assert.Equal(t, want, hand.Cards, "got %s", hand)
		})
	}
}

func TestRulesFollowCategoryOrder(t *testing.T) {
	require.Len(t, rules, len(Categories))
	for i, r := range rules {
		assert.Equal(t, Categories[i], r.category)
	}
}

func TestFullHouseRuleOutranksFlush(t *testing.T) {
	// Counts that satisfy both predicates; the stronger rule must win.
	var c counts
	c.ranks[Four], c.ranks[Seven], c.ranks[Nine], c.ranks[Two] = 3, 2, 1, 1
	c.distinct = 4
	c.suits[Hearts], c.suits[Diamonds], c.suits[Clubs] = 5, 1, 1

	var empty Pool
	require.True(t, isFullHouse(empty, c))
	require.True(t, isFlush(empty, c))

	for _, r := range rules {
		if r.matches(empty, c) {
			assert.Equal(t, FullHouse, r.category)
			return
		}
	}
	t.Fatal("no rule matched")
}

func TestClassifyRejectsInvalidCards(t *testing.T) {
	assert.PanicsWithValue(t, "poker: invalid card 53 in pool", func() {
		Classify(Pool{1, 2, 3, 4, 5, 6, 53})
	})
	assert.PanicsWithValue(t, "poker: invalid card 0 in pool", func() {
		Classify(Pool{0, 2, 3, 4, 5, 6, 7})
	})
}

func TestSortAceHigh(t *testing.T) {
	t.Run("ranks", func(t *testing.T) {
		got := SortAceHigh([]Rank{Three, Ace, King, Ten}, rankSelf)
		assert.Equal(t, []Rank{Ace, King, Ten, Three}, got)
	})

	t.Run("aces keep input order", func(t *testing.T) {
		in := mustCards(t, "1S", "2C", "1D", "13H")
		got := SortAceHigh(in, cardRank)
		assert.Equal(t, mustCards(t, "1S", "1D", "13H", "2C"), got)
	})

	t.Run("equal ranks reverse input order", func(t *testing.T) {
		in := mustCards(t, "5C", "5D", "3H")
		got := SortAceHigh(in, cardRank)
		assert.Equal(t, mustCards(t, "5D", "5C", "3H"), got)
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := mustCards(t, "2C", "1D", "7H")
		_ = SortAceHigh(in, cardRank)
		assert.Equal(t, mustCards(t, "2C", "1D", "7H"), in)
	})
}

func TestStraightTop(t *testing.T) {
	present := func(ranks ...Rank) [King + 1]bool {
		var p [King + 1]bool
		for _, r := range ranks {
			p[r] = true
		}
		return p
	}

	top, ok := straightTop(present(Ace, Two, Three, Four, Five))
	assert.False(t, ok, "wheel must not be a straight, got top %d", top)

	top, ok = straightTop(present(Ace, Two, Three, Four, Five, Six))
	require.True(t, ok)
	assert.Equal(t, Six, top)

	top, ok = straightTop(present(Nine, Ten, Jack, Queen, King, Ace))
	require.True(t, ok)
	assert.Equal(t, Ace, top)

	_, ok = straightTop(present(Two, Three, Four, Six, Seven, Eight, Nine))
	assert.False(t, ok)
}

// Every pool classifies into exactly one category whose cards come from the pool.
func TestClassifyAlwaysResolves(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	deck := make([]Card, NumCards)
	for i := range deck {
		deck[i] = Card(i + 1)
	}

	seen := make(map[Category]int)
	for range 20000 {
		rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
		var p Pool
		copy(p[:], deck[:PoolSize])

		hand := Classify(p)
		require.GreaterOrEqual(t, hand.Category, StraightFlush)
		require.LessOrEqual(t, hand.Category, HighCard)
		seen[hand.Category]++

		used := make(map[Card]bool)
		for _, c := range hand.Cards {
			require.Contains(t, p[:], c, "pool %v hand %s", p, hand)
			require.False(t, used[c], "card %s picked twice in %s", c, hand)
			used[c] = true
		}
	}

	for _, cat := range []Category{Flush, Straight, ThreeOfAKind, TwoPair, Pair, HighCard} {
		assert.Positive(t, seen[cat], "expected some %s hands", cat)
	}
}

func BenchmarkClassify(b *testing.B) {
	p := mustPool(b, "2C", "5D", "7H", "9S", "11C", "13D", "4H")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Classify(p)
	}
}
