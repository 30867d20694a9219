package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendancePercent(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{name: "full attendance", present: 10, total: 10, want: 100},
		{name: "two thirds", present: 2, total: 3, want: 66.67},
		{name: "no sessions", present: 0, total: 0, want: 0},
		{name: "absent throughout", present: 0, total: 8, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttendancePercent(tt.present, tt.total))
		})
	}
}

func TestSessionAttendancePercent(t *testing.T) {
	assert.Equal(t, 66.7, SessionAttendancePercent(2, 3))
	assert.Equal(t, float64(0), SessionAttendancePercent(5, 0))
}

func TestCIE(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{name: "no marks", scores: nil, want: 0},
		{name: "single mark rounds up", scores: []int{15}, want: 8},
		{name: "even sum", scores: []int{10, 10}, want: 10},
		{name: "only first five count", scores: []int{20, 20, 20, 20, 20, 100}, want: 50},
		{name: "odd sum rounds up", scores: []int{7, 8, 6}, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CIE(tt.scores, 5, 2))
		})
	}
}

func TestCIEInvalidDivisor(t *testing.T) {
	assert.Equal(t, 0, CIE([]int{10}, 5, 0))
}

func TestPassRate(t *testing.T) {
	assert.Equal(t, float64(100), PassRate(0, 0))
	assert.Equal(t, float64(100), PassRate(4, 0))
	assert.Equal(t, float64(75), PassRate(4, 1))
	assert.Equal(t, float64(67), PassRate(3, 1))
	assert.Equal(t, float64(0), PassRate(2, 2))
}
