package extract

import "math"

// Multiplier is the graded-to-raw value ratio: psa10 / raw rounded to two
// decimals. It is defined only when both prices are present and positive;
// anything else yields nil.
func Multiplier(psa10, raw *float64) *float64 {
	if psa10 == nil || raw == nil || *psa10 <= 0 || *raw <= 0 {
		return nil
	}
	v := math.Round(*psa10 / *raw * 100) / 100
	return &v
}
