package irt

// plateauWindow is the number of trailing responses inspected for a plateau.
const plateauWindow = 5

// Plateaued reports whether the trailing responses look like the examinee
// has settled at their ability level: at least 3 correctness alternations
// across the last 5 responses while the post-response theta estimates span
// less than 0.5. correct and thetaAfter are parallel histories in
// administration order.
func Plateaued(correct []bool, thetaAfter []float64) bool {
	if len(correct) < plateauWindow || len(thetaAfter) < plateauWindow {
		return false
	}
	c := correct[len(correct)-plateauWindow:]
	th := thetaAfter[len(thetaAfter)-plateauWindow:]

	alternations := 0
	for i := 0; i < len(c)-1; i++ {
		if c[i] != c[i+1] {
			alternations++
		}
	}
	if alternations < 3 {
		return false
	}

	lo, hi := th[0], th[0]
	for _, t := range th[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	return hi-lo < 0.5
}
