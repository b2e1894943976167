package nicetick

import (
	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// Ticker adapts Build to gonum/plot's axis tick interface. Counts and
// Step are forwarded to the builder; zero values select the defaults.
type Ticker struct {
	Counts []int
	Step   StepOptions
}

// Ticks returns labeled ticks covering the range. Non-finite bounds yield
// nil, as the plot.Ticker interface leaves no room for an error.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	vals, err := build(min, max, t.Counts, t.Step)
	if err != nil {
		return nil
	}

	ticks := make([]plot.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = plot.Tick{
			Value: v,
			Label: humanize.SI(v, ""),
		}
	}
	return ticks
}
