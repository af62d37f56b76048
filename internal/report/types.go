package report

import (
	"time"

	"github.com/adeel-ahmed99/poker-hands/internal/statistics"
	"github.com/adeel-ahmed99/poker-hands/poker"
)

// Report is a batch run encoded as TOML.
type Report struct {
	RunID     string    `toml:"run_id"`
	Generated time.Time `toml:"generated"`
	Elapsed   string    `toml:"elapsed"`
	Summary   Summary   `toml:"summary"`
	Deals     []Deal    `toml:"deal"`
}

// Summary mirrors the batch tally.
type Summary struct {
	Deals     int            `toml:"deals"`
	Errors    int            `toml:"errors"`
	Showdowns int            `toml:"showdowns"`
	WinsA     int            `toml:"wins_a"`
	WinsB     int            `toml:"wins_b"`
	Splits    int            `toml:"splits"`
	ScoreA    float64        `toml:"score_a"`
	Winning   map[string]int `toml:"winning,omitempty"`
}

// Deal is one evaluated (or rejected) input line.
type Deal struct {
	Line     int      `toml:"line"`
	Cards    []int    `toml:"cards"`
	Winner   string   `toml:"winner,omitempty"`
	Category string   `toml:"category,omitempty"`
	Hand     []string `toml:"hand,omitempty"`
	Split    bool     `toml:"split,omitempty"`
	Error    string   `toml:"error,omitempty"`
}

// NewSummary converts a tally into its report form.
func NewSummary(t statistics.Tally) Summary {
	s := Summary{
		Deals:     t.Deals,
		Errors:    t.Errors,
		Showdowns: t.Showdowns,
		WinsA:     t.WinsA,
		WinsB:     t.WinsB,
		Splits:    t.Splits,
		ScoreA:    t.Mean(),
	}
	for _, c := range poker.Categories {
		if n := t.Winning[c]; n > 0 {
			if s.Winning == nil {
				s.Winning = make(map[string]int)
			}
			s.Winning[c.String()] = n
		}
	}
	return s
}

// NewDeal records a showdown. When splitTies is set a full tie is reported
// with winner "split" instead of "A".
func NewDeal(line int, s poker.Showdown, splitTies bool) Deal {
	hand := s.WinningHand()
	labels := hand.SortedLabels()

	winner := s.Winner.String()
	if s.Split && splitTies {
		winner = "split"
	}

	return Deal{
		Line:     line,
		Cards:    s.Deal.Ints(),
		Winner:   winner,
		Category: hand.Category.String(),
		Hand:     labels[:],
		Split:    s.Split,
	}
}

// NewErrorDeal records a line that could not be evaluated.
func NewErrorDeal(line int, cards []int, err error) Deal {
	return Deal{Line: line, Cards: cards, Error: err.Error()}
}
