package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/adeel-ahmed99/poker-hands/internal/statistics"
	"github.com/adeel-ahmed99/poker-hands/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderShowdown prints both players' hands and the result.
func renderShowdown(w io.Writer, s poker.Showdown, splitTies bool) error {
	board := s.Deal.Board()
	labels := make([]string, len(board))
	for i, c := range board {
		labels[i] = c.String()
	}
	fmt.Fprintf(w, "%s\n%s\n\n", headerStyle.Render("board"), strings.Join(labels, " "))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("category"),
		headerStyle.Render("hand"),
		headerStyle.Render("result"))

	for _, p := range []struct {
		name   string
		hand   poker.Hand
		winner poker.Winner
	}{
		{"A", s.A, poker.PlayerA},
		{"B", s.B, poker.PlayerB},
	} {
		hand := p.hand.Labels()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.name,
			categoryStyle.Render(p.hand.Category.String()),
			handStyle.Render(strings.Join(hand[:], " ")),
			outcome(s, p.winner, splitTies))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	winning := s.WinningHand().SortedLabels()
	_, err := fmt.Fprintf(w, "\n%s\n", strings.Join(winning[:], " "))
	return err
}

func outcome(s poker.Showdown, player poker.Winner, splitTies bool) string {
	switch {
	case s.Split && splitTies:
		return tieStyle.Render("split")
	case s.Winner == player:
		return winStyle.Render("win")
	default:
		return "lose"
	}
}

// renderTally prints a batch summary followed by the winning categories.
func renderTally(w io.Writer, t statistics.Tally, elapsed time.Duration) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	low, high := t.ConfidenceInterval95()
	fmt.Fprintf(tw, "%s\t%d\n", headerStyle.Render("deals"), t.Deals)
	fmt.Fprintf(tw, "%s\t%d\n", headerStyle.Render("errors"), t.Errors)
	fmt.Fprintf(tw, "%s\t%s\n", headerStyle.Render("A wins"), winStyle.Render(fmt.Sprintf("%d", t.WinsA)))
	fmt.Fprintf(tw, "%s\t%s\n", headerStyle.Render("B wins"), winStyle.Render(fmt.Sprintf("%d", t.WinsB)))
	fmt.Fprintf(tw, "%s\t%s\n", headerStyle.Render("splits"), tieStyle.Render(fmt.Sprintf("%d", t.Splits)))
	fmt.Fprintf(tw, "%s\t%.3f (95%% CI %.3f-%.3f)\n", headerStyle.Render("A score"), t.Mean(), low, high)

	if t.Showdowns > 0 {
		fmt.Fprintf(tw, "\n%s\t\n", categoryStyle.Render("winning category"))
		for _, c := range poker.Categories {
			share := t.WinningShare(c)
			if share == 0 {
				fmt.Fprintf(tw, "%s\t%s\n", categoryStyle.Render(c.String()), percentStyle.Render("."))
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\n", categoryStyle.Render(c.String()), percentStyle.Render(fmt.Sprintf("%.1f%%", share*100)))
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d deals in %v\n", t.Deals, elapsed.Truncate(time.Millisecond))
	return err
}
