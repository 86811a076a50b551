package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/livegto/solver/internal/abstraction"
	"github.com/livegto/solver/internal/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	bucketStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

type InspectCmd struct {
	Table   string `short:"t" default:"data/strategies.json" help:"Path to an exported strategy table"`
	Context string `default:"OOP" enum:"OOP,IP,FACING_BET" help:"Lookup context"`
	Texture string `arg:"" optional:"" help:"Texture to show (all when omitted)"`
}

func (i *InspectCmd) Run(logger *log.Logger) error {
	tbl, err := table.Load(i.Table)
	if err != nil {
		return err
	}
	ctx, err := table.ParseContext(i.Context)
	if err != nil {
		return err
	}

	textures := abstraction.Textures()
	if i.Texture != "" {
		tex, err := abstraction.ParseTexture(i.Texture)
		if err != nil {
			return err
		}
		textures = []abstraction.Texture{tex}
	}

	logger.Debug("table loaded", "path", i.Table, "iterations", tbl.Iterations)

	for _, tex := range textures {
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s — %s", tex.Label(), ctx)))
		printTextureStrategies(tbl, ctx, tex)
		fmt.Println()
	}
	return nil
}

func printTextureStrategies(tbl *table.Table, ctx table.Context, tex abstraction.Texture) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\t%s\t%s\n",
		headerStyle.Render("BUCKET"),
		headerStyle.Render("STRATEGY"),
		headerStyle.Render("CORRECT"))

	for _, b := range abstraction.Buckets() {
		strat := tbl.Lookup(ctx, tex, b)
		fmt.Fprintf(w, "  %s\t%s\t%s\n",
			bucketStyle.Render(b.String()),
			actionStyle.Render(formatStrategy(strat)),
			correctStyle.Render(strings.Join(table.CorrectActions(strat), ", ")))
	}
	w.Flush()
}

// formatStrategy renders a strategy in canonical action order.
func formatStrategy(strat table.Strategy) string {
	order := []string{"check", "bet_s", "bet_m", "bet_l", "fold", "call", "raise"}
	var parts []string
	for _, a := range order {
		if p, ok := strat[a]; ok && p > 0 {
			parts = append(parts, fmt.Sprintf("%s=%.0f%%", a, p*100))
		}
	}
	return strings.Join(parts, " ")
}
