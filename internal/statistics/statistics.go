// Package statistics tallies showdown outcomes across many deals.
package statistics

import (
	"fmt"
	"math"

	"github.com/adeel-ahmed99/poker-hands/poker"
)

// Tally tracks outcomes of a batch of showdowns. Player A scores 1 for a
// win, 0 for a loss and 0.5 for a split.
type Tally struct {
	Deals     int // deals seen, including rejected ones
	Errors    int // deals rejected before evaluation
	Showdowns int

	WinsA  int
	WinsB  int
	Splits int

	SumScore  float64
	SumScore2 float64 // Sum of squares for variance calculation

	// Winning holds how often each category took the pot, indexed by category.
	Winning [poker.HighCard + 1]int
	// Dealt holds how often each category was made by either player.
	Dealt [poker.HighCard + 1]int
}

// AddError records a deal that could not be evaluated.
func (t *Tally) AddError() {
	t.Deals++
	t.Errors++
}

// Add incorporates a showdown into the tally
func (t *Tally) Add(s poker.Showdown) {
	t.Deals++
	t.Showdowns++

	var score float64
	switch {
	case s.Split:
		t.Splits++
		score = 0.5
	case s.Winner == poker.PlayerA:
		t.WinsA++
		score = 1
	default:
		t.WinsB++
	}
	t.SumScore += score
	t.SumScore2 += score * score

	t.Winning[s.WinningHand().Category]++
	t.Dealt[s.A.Category]++
	t.Dealt[s.B.Category]++
}

// Mean returns player A's average score per showdown
func (t *Tally) Mean() float64 {
	if t.Showdowns == 0 {
		return 0
	}
	return t.SumScore / float64(t.Showdowns)
}

// Variance returns the sample variance of player A's score
func (t *Tally) Variance() float64 {
	if t.Showdowns < 2 {
		return 0
	}
	mean := t.Mean()
	return (t.SumScore2 - float64(t.Showdowns)*mean*mean) / float64(t.Showdowns-1)
}

// StdDev returns the sample standard deviation of player A's score
func (t *Tally) StdDev() float64 {
	return math.Sqrt(t.Variance())
}

// StdError returns the standard error of the mean
func (t *Tally) StdError() float64 {
	if t.Showdowns == 0 {
		return 0
	}
	return t.StdDev() / math.Sqrt(float64(t.Showdowns))
}

// ConfidenceInterval95 returns the 95% confidence interval for player A's mean score
func (t *Tally) ConfidenceInterval95() (float64, float64) {
	mean := t.Mean()
	margin := 1.96 * t.StdError()
	return mean - margin, mean + margin
}

// WinningShare returns the fraction of showdowns won with category c.
func (t *Tally) WinningShare(c poker.Category) float64 {
	if t.Showdowns == 0 || c < poker.StraightFlush || c > poker.HighCard {
		return 0
	}
	return float64(t.Winning[c]) / float64(t.Showdowns)
}

// Validate checks the tally's counters agree with each other
func (t *Tally) Validate() error {
	if t.Showdowns+t.Errors != t.Deals {
		return fmt.Errorf("deal count (%d) does not match showdowns (%d) plus errors (%d)",
			t.Deals, t.Showdowns, t.Errors)
	}

	if t.WinsA+t.WinsB+t.Splits != t.Showdowns {
		return fmt.Errorf("outcomes (%d+%d+%d) do not match showdowns (%d)",
			t.WinsA, t.WinsB, t.Splits, t.Showdowns)
	}

	winning, dealt := 0, 0
	for _, c := range poker.Categories {
		winning += t.Winning[c]
		dealt += t.Dealt[c]
	}
	if winning != t.Showdowns {
		return fmt.Errorf("winning categories total (%d) does not match showdowns (%d)", winning, t.Showdowns)
	}
	if dealt != 2*t.Showdowns {
		return fmt.Errorf("dealt categories total (%d) does not match two hands per showdown (%d)", dealt, 2*t.Showdowns)
	}

	return nil
}
