package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/adeel-ahmed99/poker-hands/internal/report"
	"github.com/adeel-ahmed99/poker-hands/poker"
)

// EvalCmd evaluates a single deal.
type EvalCmd struct {
	Cards   []int  `arg:"" name:"card" help:"Nine card numbers (1-52): A's first card, B's first card, A's second, B's second, then five board cards"`
	Verbose bool   `short:"V" help:"Show both players' hands"`
	Format  string `short:"f" enum:"text,toml" default:"text" help:"Output format (text, toml)"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cfg, logger, err := g.Setup()
	if err != nil {
		return err
	}

	if c.Format == "text" && !c.Verbose {
		hand, err := poker.Evaluate(c.Cards)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(g.Out(), strings.Join(hand[:], " "))
		return err
	}

	d, err := poker.NewDeal(c.Cards)
	if err != nil {
		return err
	}
	s := poker.Play(d)
	logger.Debug("Showdown", "a", s.A, "b", s.B, "winner", s.Winner, "split", s.Split)

	if c.Format == "toml" {
		return toml.NewEncoder(g.Out()).Encode(report.NewDeal(0, s, cfg.Output.SplitTies))
	}
	return renderShowdown(g.Out(), s, cfg.Output.SplitTies)
}
