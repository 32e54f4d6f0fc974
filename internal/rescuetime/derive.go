package rescuetime

import (
	"math"
	"sort"
)

// pulseWeights maps each productivity level to its contribution to the pulse
// score. The pulse is the time-weighted average of these weights scaled to
// 0-100. These weights are an approximation of RescueTime's own undocumented
// scoring and are authoritative here.
var pulseWeights = map[ProductivityLevel]float64{
	VeryProductive:  1.0,
	Productive:      0.75,
	Neutral:         0.5,
	Distracting:     0.25,
	VeryDistracting: 0.0,
}

// Pulse rating thresholds.
const (
	pulseExcellent = 75
	pulseGood      = 60
	pulseFair      = 40
)

// RatingForPulse buckets a 0-100 pulse into a qualitative label.
func RatingForPulse(pulse int) string {
	switch {
	case pulse >= pulseExcellent:
		return "Excellent"
	case pulse >= pulseGood:
		return "Good"
	case pulse >= pulseFair:
		return "Fair"
	}
	return "Needs Improvement"
}

// Score aggregates analytic rows into per-level time totals and the weighted
// pulse value.
type Score struct {
	Pulse          int
	Rating         string
	TotalSeconds   int
	SecondsByLevel map[ProductivityLevel]int
}

// ComputeScore accumulates time at each productivity level and derives the
// pulse: sum(weight * seconds) / total seconds, scaled to 0-100 and rounded.
// With no recorded time the pulse is zero.
func ComputeScore(rows []ActivityRow) Score {
	score := Score{
		SecondsByLevel: map[ProductivityLevel]int{
			VeryDistracting: 0,
			Distracting:     0,
			Neutral:         0,
			Productive:      0,
			VeryProductive:  0,
		},
	}

	weighted := 0.0
	for _, row := range rows {
		score.SecondsByLevel[row.Productivity] += row.Seconds
		score.TotalSeconds += row.Seconds
		weighted += pulseWeights[row.Productivity] * float64(row.Seconds)
	}

	if score.TotalSeconds > 0 {
		score.Pulse = int(math.Round(weighted / float64(score.TotalSeconds) * 100))
	}
	score.Rating = RatingForPulse(score.Pulse)
	return score
}

// ProductiveSeconds is the total time at productive levels (1 and 2).
func (s Score) ProductiveSeconds() int {
	return s.SecondsByLevel[Productive] + s.SecondsByLevel[VeryProductive]
}

// DistractingSeconds is the total time at distracting levels (-1 and -2).
func (s Score) DistractingSeconds() int {
	return s.SecondsByLevel[Distracting] + s.SecondsByLevel[VeryDistracting]
}

// NeutralSeconds is the total time at the neutral level.
func (s Score) NeutralSeconds() int {
	return s.SecondsByLevel[Neutral]
}

// Percentage returns the share of total time spent at a level, rounded to
// one decimal place.
func (s Score) Percentage(level ProductivityLevel) float64 {
	if s.TotalSeconds == 0 {
		return 0
	}
	return round1(float64(s.SecondsByLevel[level]) / float64(s.TotalSeconds) * 100)
}

// TopDistractions filters rows to those with negative productivity, sorts
// them by time spent descending, and truncates to limit. The returned total
// covers all distracting rows, not just the truncated slice.
func TopDistractions(rows []ActivityRow, limit int) (top []ActivityRow, totalSeconds int) {
	distracting := make([]ActivityRow, 0, len(rows))
	for _, row := range rows {
		if row.Productivity < 0 {
			distracting = append(distracting, row)
			totalSeconds += row.Seconds
		}
	}
	sort.SliceStable(distracting, func(i, j int) bool {
		return distracting[i].Seconds > distracting[j].Seconds
	})
	if limit > 0 && len(distracting) > limit {
		distracting = distracting[:limit]
	}
	return distracting, totalSeconds
}

// Hours converts seconds to hours rounded to two decimal places.
func Hours(seconds int) float64 {
	return round2(float64(seconds) / 3600)
}

// Minutes converts seconds to minutes rounded to one decimal place.
func Minutes(seconds int) float64 {
	return round1(float64(seconds) / 60)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
