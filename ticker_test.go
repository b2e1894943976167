package nicetick

import (
	"math"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
)

func TestTicker(t *testing.T) {
	table := []struct {
		min, max float64
		counts   []int
		vals     []float64
	}{
		{0, 1000, nil, []float64{0, 200, 400, 600, 800, 1000}},
		{-500, 500, nil, []float64{-500, -250, 0, 250, 500}},
		{0, 1000, []int{5, 3}, []float64{0, 250, 500, 750, 1000}},
		{3, 3, nil, []float64{3}},
	}

	for _, row := range table {
		dut := Ticker{Counts: row.counts}
		got := dut.Ticks(row.min, row.max)

		want := make([]plot.Tick, len(row.vals))
		for i, v := range row.vals {
			want[i] = plot.Tick{Value: v, Label: humanize.SI(v, "")}
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Ticks(%v, %v) with counts %v mismatch (-want +got):\n%s",
				row.min, row.max, row.counts, diff)
		}
	}
}

func TestTickerStepForwarding(t *testing.T) {
	dut := Ticker{Step: StepOptions{Multipliers: []float64{1, 5}}}
	got := dut.Ticks(0, 1000)

	want := []float64{0, 500, 1000}
	if len(got) != len(want) {
		t.Fatalf("Ticks(0, 1000) = %v, want values %v", got, want)
	}
	for i, tk := range got {
		if tk.Value != want[i] {
			t.Errorf("tick %d: value %v, want %v", i, tk.Value, want[i])
		}
	}
}

func TestTickerNonFinite(t *testing.T) {
	if got := (Ticker{}).Ticks(math.NaN(), 1); got != nil {
		t.Errorf("Ticks(NaN, 1) = %v, want nil", got)
	}
	if got := (Ticker{}).Ticks(0, math.Inf(1)); got != nil {
		t.Errorf("Ticks(0, +Inf) = %v, want nil", got)
	}
}
