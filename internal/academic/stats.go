package academic

import "math"

// AttendancePercent computes a student's attendance percentage across an
// assignment, rounded to two decimal places. No sessions scores zero.
func AttendancePercent(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return roundTo(float64(present)/float64(total)*100, 2)
}

// SessionAttendancePercent computes the share of a single session's roster
// marked present, rounded to one decimal place.
func SessionAttendancePercent(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return roundTo(float64(present)/float64(total)*100, 1)
}

// CIE computes the continuous internal evaluation score from a student's
// exam scores. Only the first limit scores count; their sum is divided by
// divisor and rounded up. A student with no marks scores zero.
func CIE(scores []int, limit, divisor int) int {
	if len(scores) == 0 || divisor <= 0 {
		return 0
	}
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Ceil(float64(sum) / float64(divisor)))
}

// PassRate computes the share of the roster not flagged for support,
// rounded to the nearest whole percent. An empty roster passes in full.
func PassRate(total, needSupport int) float64 {
	if total <= 0 {
		return 100
	}
	return math.Round(float64(total-needSupport) / float64(total) * 100)
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
