package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Rate devolve a fração parte/total como percentual; total zero é zero, nunca NaN
func Rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}
