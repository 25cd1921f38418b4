package irt

import "math"

const (
	// MaxAbility bounds theta. The unconstrained MLE diverges to +/-Inf on
	// an all-correct or all-incorrect history, so estimates are clamped here.
	MaxAbility = 4.0

	// MaxStandardError is reported when there is no usable evidence.
	MaxStandardError = 1.0

	// nonConvergenceInflation widens the standard error when the Newton
	// iteration runs out of steps without meeting tolerance.
	nonConvergenceInflation = 1.5

	// minInformation below which a Newton step is numerically meaningless.
	minInformation = 1e-10
)

// Options configures an ability estimation run. The zero value is usable:
// theta starts at 0 and the standard iteration limits apply.
type Options struct {
	// InitialTheta seeds the iteration, normally the session's running theta.
	InitialTheta float64

	// MaxIterations caps the Newton iteration. Zero means 20.
	MaxIterations int

	// Tolerance is the step size below which the iteration stops. Zero means 0.001.
	Tolerance float64
}

func (o Options) withDefaults() Options {
	if o.MaxIterations == 0 {
		o.MaxIterations = 20
	}
	if o.Tolerance == 0 {
		o.Tolerance = 0.001
	}
	return o
}

// Prior is a normal prior over ability, used for MAP estimation early in a
// session when the likelihood alone is too flat to anchor the estimate.
type Prior struct {
	Mean float64
	SD   float64
}

// Estimate is the result of an ability estimation run.
type Estimate struct {
	Theta         float64
	StandardError float64
	Converged     bool
	Iterations    int

	// Substituted counts responses whose item parameters were repaired
	// with defaults. Surfaced as a quality signal, never as an error.
	Substituted int
}

// EstimateAbility computes the maximum-likelihood ability estimate for the
// response pattern using Newton-Raphson iteration.
//
// An empty history returns the initial theta with MaxStandardError: the
// caller has no evidence yet and should treat the result as a prior.
// A degenerate history (all correct or all incorrect) yields a clamped
// theta with a correspondingly large standard error rather than +/-Inf.
func EstimateAbility(responses []Response, opts Options) Estimate {
	return estimate(responses, nil, opts)
}

// EstimateAbilityMAP computes a maximum-a-posteriori estimate with a normal
// prior added to the score and information sums. Used for the first few
// responses of a session, where MLE is unstable; the prior's influence
// fades as evidence accumulates.
func EstimateAbilityMAP(responses []Response, prior Prior, opts Options) Estimate {
	if prior.SD <= 0 {
		prior.SD = 1.0
	}
	return estimate(responses, &prior, opts)
}

func estimate(responses []Response, prior *Prior, opts Options) Estimate {
	opts = opts.withDefaults()

	clean := make([]Response, 0, len(responses))
	substituted := 0
	for _, r := range responses {
		s, fixed := Sanitize(r)
		if fixed {
			substituted++
		}
		clean = append(clean, s)
	}

	if len(clean) == 0 {
		theta := clamp(opts.InitialTheta, -MaxAbility, MaxAbility)
		if prior != nil {
			theta = clamp(prior.Mean, -MaxAbility, MaxAbility)
		}
		return Estimate{Theta: theta, StandardError: MaxStandardError}
	}

	theta := clamp(opts.InitialTheta, -MaxAbility, MaxAbility)
	converged := false
	iterations := 0

	for i := 0; i < opts.MaxIterations; i++ {
		iterations++

		score := 0.0
		info := 0.0
		for _, r := range clean {
			p := Probability(theta, r.Difficulty, r.Discrimination)
			x := 0.0
			if r.Correct {
				x = 1.0
			}
			score += r.Discrimination * (x - p)
			info += r.Discrimination * r.Discrimination * p * (1 - p)
		}
		if prior != nil {
			score -= (theta - prior.Mean) / (prior.SD * prior.SD)
			info += 1 / (prior.SD * prior.SD)
		}

		// All items at extreme probabilities carry no information; a Newton
		// step would divide by ~0, so stop at the current iterate.
		if info < minInformation {
			converged = true
			break
		}

		delta := score / info
		theta = clamp(theta+delta, -MaxAbility, MaxAbility)

		if math.Abs(delta) < opts.Tolerance {
			converged = true
			break
		}
	}

	info := Information(theta, clean)
	if prior != nil {
		info += 1 / (prior.SD * prior.SD)
	}

	se := MaxStandardError
	if info > 0 {
		se = 1 / math.Sqrt(info)
	}
	if !converged {
		se *= nonConvergenceInflation
	}
	if se > MaxStandardError {
		se = MaxStandardError
	}

	if math.IsNaN(theta) {
		theta = opts.InitialTheta
		se = MaxStandardError
	}

	return Estimate{
		Theta:         theta,
		StandardError: se,
		Converged:     converged,
		Iterations:    iterations,
		Substituted:   substituted,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
