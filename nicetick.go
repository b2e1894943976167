// Package nicetick computes human-friendly axis tick values for numeric
// ranges, using the 1-2-2.5-5 step pattern common in charting libraries.
package nicetick

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidRange reports a range bound that is NaN or infinite.
var ErrInvalidRange = errors.New("nicetick: invalid range")

var (
	defaultMultipliers = []float64{1, 2, 2.5, 5}
	defaultCounts      = []int{9, 8, 7, 6, 5, 4, 3}
)

// DefaultCounts returns the default tick count preference order.
func DefaultCounts() []int {
	return append([]int(nil), defaultCounts...)
}

// StepOptions constrains step selection. A zero-valued field selects its
// default.
type StepOptions struct {
	// Multipliers is the step pattern within one decade, ascending, with
	// values in [1, 10). Default [1, 2, 2.5, 5].
	Multipliers []float64

	// MinRange and MaxRange bound the acceptable ratio of range width to
	// candidate step. Defaults 2 and 10.
	MinRange, MaxRange float64

	// MinStep and MaxStep are absolute bounds on the returned step.
	// Defaults 0.01 and 1e9.
	MinStep, MaxStep float64

	// MaxExponent and MinExponent bound the power-of-ten decade scan.
	// Defaults 9 and -5.
	MaxExponent, MinExponent int
}

func (o StepOptions) withDefaults() StepOptions {
	if o.Multipliers == nil {
		o.Multipliers = defaultMultipliers
	}
	if o.MinRange == 0 {
		o.MinRange = 2
	}
	if o.MaxRange == 0 {
		o.MaxRange = 10
	}
	if o.MinStep == 0 {
		o.MinStep = 0.01
	}
	if o.MaxStep == 0 {
		o.MaxStep = 1e9
	}
	if o.MaxExponent == 0 {
		o.MaxExponent = 9
	}
	if o.MinExponent == 0 {
		o.MinExponent = -5
	}
	return o
}

// OptimalStep returns the largest pattern step m×10^e, m drawn from
// o.Multipliers, whose ratio width/step falls within
// [o.MinRange, o.MaxRange]. Decades are scanned from MaxExponent down and
// multipliers from largest to smallest, so the coarsest qualifying step
// wins. A zero width yields MinStep. If no candidate qualifies,
// 10^MinExponent clamped into [MinStep, MaxStep] is returned; the result
// is always a usable nonzero step. The sign of width is ignored.
func OptimalStep(width float64, o StepOptions) float64 {
	o = o.withDefaults()
	width = math.Abs(width)
	if width == 0 {
		return o.MinStep
	}

	for e := o.MaxExponent; e >= o.MinExponent; e-- {
		dec := math.Pow10(e)
		for i := len(o.Multipliers) - 1; i >= 0; i-- {
			s := o.Multipliers[i] * dec
			if s < o.MinStep || s > o.MaxStep {
				continue
			}
			if r := width / s; r >= o.MinRange && r <= o.MaxRange {
				return s
			}
		}
	}

	return math.Min(math.Max(math.Pow10(o.MinExponent), o.MinStep), o.MaxStep)
}

// ChooseStep is OptimalStep with default options.
func ChooseStep(width float64) float64 {
	return OptimalStep(width, StepOptions{})
}

// Build computes tick positions covering [min, max]. Each count in counts
// is tried in order: the ideal gap width/(count-1) is rounded to the
// pattern and the first count whose rounded gap produces exactly that many
// grid points wins. If none matches, the grid from the last count tried is
// returned, so a valid range always yields a covering sequence.
//
// A nil or empty counts slice selects the default preference order.
// Reversed bounds are swapped. A zero-width range produces the single tick
// [min]. NaN or infinite bounds yield ErrInvalidRange.
func Build(min, max float64, counts []int) ([]float64, error) {
	return build(min, max, counts, StepOptions{})
}

// BuildUpTo is Build from 0 to max with the default counts.
func BuildUpTo(max float64) ([]float64, error) {
	return Build(0, max, nil)
}

func build(min, max float64, counts []int, o StepOptions) ([]float64, error) {
	if !isFinite(min) || !isFinite(max) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	if max < min {
		min, max = max, min
	}
	if min == max {
		return []float64{min}, nil
	}
	if len(counts) == 0 {
		counts = defaultCounts
	}
	o = o.withDefaults()

	width := max - min
	var last []float64
	for _, k := range counts {
		if k < 2 {
			continue
		}
		gap := width / float64(k-1)
		// Scaling the gap by the ratio floor makes the selector return
		// the largest pattern step that does not exceed the gap.
		step := OptimalStep(gap*o.MinRange, o)
		if g := grid(min, max, step); g != nil {
			last = g
			if len(g) == k {
				return g, nil
			}
		}
	}
	if last == nil {
		// Either every requested count was < 2, or the range is too
		// wide for any in-bounds step. Try a two-tick gap, then give up
		// and bracket the range with its own endpoints.
		last = grid(min, max, OptimalStep(width*o.MinRange, o))
		if last == nil {
			last = []float64{min, max}
		}
	}
	return last, nil
}

// maxTicks bounds a single grid. The step fallback on ranges far wider
// than MaxStep would otherwise ask for an absurd allocation.
const maxTicks = 1 << 16

// grid returns the multiples of step from the one at or below min through
// the first at or above max, or nil if that would exceed maxTicks. The
// epsilon terms absorb float error when a bound sits exactly on a grid
// point.
func grid(min, max, step float64) []float64 {
	start := math.Floor(min/step+1e-9) * step
	nf := math.Ceil((max-start)/step - 1e-9)
	if !(nf < maxTicks) {
		return nil
	}
	n := int(nf) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = start + float64(i)*step
	}
	return ticks
}

// ParseCounts parses a comma-separated list of desired tick counts.
// Tokens that are not positive integers are dropped, and if nothing valid
// remains the default counts are returned. It never fails; the input is
// expected to arrive straight from a form field mid-typing.
func ParseCounts(s string) []int {
	var counts []int
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err == nil && n > 0 {
			counts = append(counts, n)
		}
	}
	if len(counts) == 0 {
		return DefaultCounts()
	}
	return counts
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
