package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/adeel-ahmed99/poker-hands/poker"
)

// CardCmd converts between card numbers and labels.
type CardCmd struct {
	Args []string `arg:"" name:"card" help:"Card numbers (1-52) or labels such as 10C or 1S"`
}

func (c *CardCmd) Run(g *Globals) error {
	w := tabwriter.NewWriter(g.Out(), 0, 0, 2, ' ', 0)
	for _, arg := range c.Args {
		card, err := convertCard(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", int(card), card, card.Suit().Name())
	}
	return w.Flush()
}

// convertCard accepts either a card number or a label.
func convertCard(arg string) (poker.Card, error) {
	if v, err := strconv.Atoi(arg); err == nil {
		return poker.NewCard(v)
	}
	return poker.ParseCard(arg)
}
