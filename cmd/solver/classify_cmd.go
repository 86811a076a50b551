package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/livegto/solver/internal/abstraction"
	"github.com/livegto/solver/internal/deck"
	"github.com/livegto/solver/internal/table"
)

type ClassifyCmd struct {
	Hand  string `arg:"" help:"Hole cards, e.g. 'AhKs'"`
	Board string `arg:"" help:"Board cards, e.g. 'Kd7s2c'"`
	Table string `short:"t" help:"Optional strategy table to consult for advice"`
}

func (c *ClassifyCmd) Run(logger *log.Logger) error {
	hole, err := deck.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hand must contain exactly 2 cards, got %d", len(hole))
	}
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("parsing board: %w", err)
	}
	if len(board) < 3 || len(board) > 5 {
		return fmt.Errorf("board must contain 3-5 cards, got %d", len(board))
	}

	texture := abstraction.ClassifyTexture(board[:3])
	bucket := abstraction.ClassifyHand(hole, board)

	fmt.Printf("%s %s\n", headerStyle.Render("hand:"), formatCards(hole))
	fmt.Printf("%s %s\n", headerStyle.Render("board:"), formatCards(board))
	fmt.Printf("%s %s (%s)\n", headerStyle.Render("texture:"), texture, texture.Label())
	fmt.Printf("%s %s (%s)\n", headerStyle.Render("bucket:"), bucketStyle.Render(bucket.String()), bucket.Label())

	if c.Table == "" {
		return nil
	}

	tbl, err := table.Load(c.Table)
	if err != nil {
		return err
	}
	logger.Debug("table loaded", "path", c.Table, "iterations", tbl.Iterations)

	fmt.Println()
	for _, ctx := range table.Contexts() {
		strat := tbl.Lookup(ctx, texture, bucket)
		fmt.Printf("%s %s  %s\n",
			headerStyle.Render(fmt.Sprintf("%-11s", ctx.String())),
			actionStyle.Render(formatStrategy(strat)),
			correctStyle.Render(fmt.Sprintf("correct: %v", table.CorrectActions(strat))))
	}
	return nil
}

func formatCards(cards []deck.Card) string {
	out := ""
	for _, card := range cards {
		out += card.String() + " "
	}
	return out
}
