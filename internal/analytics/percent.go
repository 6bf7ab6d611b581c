package analytics

import "math"

// winPercentage rounds half up to a whole percent; zero matches yields zero.
func winPercentage(wins, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(total) * 100))
}
