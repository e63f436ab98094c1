package benchmark

import "fmt"

// Comparison is the change in per-call cost of one pair between two runs.
type Comparison struct {
	Key  string
	Diff float64 // Percentage change in ns/op
	Prev Measurement
	Curr Measurement
}

// Compare returns a comparison for every pair present in both runs, in the
// order of curr. Costs are normalized per call, so runs with different
// iteration counts are still comparable.
func Compare(prev, curr Run) []Comparison {
	prevMap := make(map[string]Measurement)
	for _, m := range prev.Results {
		prevMap[m.Key()] = m
	}

	var comparisons []Comparison
	for _, c := range curr.Results {
		p, ok := prevMap[c.Key()]
		if !ok {
			continue
		}
		comp := Comparison{Key: c.Key(), Prev: p, Curr: c}
		if p.NsPerOp() > 0 {
			comp.Diff = (c.NsPerOp() - p.NsPerOp()) / p.NsPerOp() * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

// Status classifies a diff against a percentage threshold.
type Status string

const (
	StatusPass        Status = "PASS"
	StatusRegression  Status = "FAIL"
	StatusImprovement Status = "IMPR"
)

func (c Comparison) Status(threshold float64) Status {
	switch {
	case c.Diff > threshold:
		return StatusRegression
	case c.Diff < -threshold:
		return StatusImprovement
	}
	return StatusPass
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% ns/op", c.Key, c.Diff)
}
