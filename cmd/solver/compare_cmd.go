package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/livegto/solver/internal/table"
)

type CompareCmd struct {
	Old       string  `arg:"" help:"Previously exported table"`
	New       string  `arg:"" help:"Newly exported table"`
	Threshold float64 `default:"0.15" help:"Minimum total-variation distance to report"`
	Limit     int     `default:"20" help:"Maximum entries to print"`
}

func (c *CompareCmd) Run(logger *log.Logger) error {
	oldTable, err := table.Load(c.Old)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c.Old, err)
	}
	newTable, err := table.Load(c.New)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c.New, err)
	}

	deltas := table.Compare(oldTable, newTable, c.Threshold)
	if len(deltas) == 0 {
		fmt.Printf("all strategies within %.0f%% of each other\n", c.Threshold*100)
		return nil
	}

	logger.Info("strategies changed", "count", len(deltas), "threshold", c.Threshold)
	shown := deltas
	if len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	for _, d := range shown {
		fmt.Printf("%s (diff=%.0f%%)\n",
			headerStyle.Render(fmt.Sprintf("%s/%s/%s", d.Context, d.Texture, d.Bucket)),
			d.Diff*100)
		fmt.Printf("  old: %s\n", actionStyle.Render(formatStrategy(d.Old)))
		fmt.Printf("  new: %s\n", actionStyle.Render(formatStrategy(d.New)))
	}
	return nil
}
