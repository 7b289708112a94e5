package chartcore

import (
	"fmt"
	"math"
)

// priceTicks generates left-axis ticks over the price domain.
func priceTicks(ys LinearScale) []Tick {
	values := niceTicks(ys.DomainMin, ys.DomainMax, 6)
	out := make([]Tick, 0, len(values))
	for _, v := range values {
		if v < ys.DomainMin || v > ys.DomainMax {
			continue
		}
		out = append(out, Tick{Pos: ys.Pos(v), Label: formatTick(v)})
	}
	return out
}

// niceTicks generates up to n desired tick values between [min, max] using
// nice increments (1, 2, 2.5, 5 scaled by powers of ten).
func niceTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var ticks []float64
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, v)
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	if math.Abs(v) >= 10 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
