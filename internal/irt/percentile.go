package irt

import "math"

// ThetaToPercentile maps an ability estimate to a percentile rank,
// assuming population ability is distributed N(0, 1). Uses the
// Abramowitz-Stegun erf polynomial approximation of the normal CDF.
func ThetaToPercentile(theta float64) int {
	z := theta
	t := 1 / (1 + 0.5*math.Abs(z))

	tau := t * math.Exp(-z*z-1.26551223+
		t*(1.00002368+
			t*(0.37409196+
				t*(0.09678418+
					t*(-0.18628806+
						t*(0.27886807+
							t*(-1.13520398+
								t*(1.48851587+
									t*(-0.82215223+
										t*0.17087277)))))))))

	cdf := 0.5 * tau
	if z >= 0 {
		cdf = 1 - 0.5*tau
	}

	return int(math.Round(cdf * 100))
}
