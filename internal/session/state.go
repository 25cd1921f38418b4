package session

// State represents the session lifecycle.
type State string

const (
	StateInitializing    State = "initializing"
	StateActive          State = "active"
	StateCompleted       State = "completed"
	StateTerminatedEarly State = "terminated-early"
)

// Terminal reports whether the session accepts no further responses.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateTerminatedEarly
}

// Stop reasons reported in outcomes and persisted with the session record.
const (
	ReasonQuestionLimit = "question limit reached"
	ReasonPrecision     = "precision achieved"
	ReasonPlateau       = "plateau detected"
	ReasonCancelled     = "cancelled"
)

// Config holds the tunables for one adaptive session.
type Config struct {
	// StartingTheta is the prior ability estimate.
	StartingTheta float64

	// InitialStandardError is the uncertainty before any responses.
	InitialStandardError float64

	// MinQuestions gates the precision and plateau stops; the question
	// limit applies regardless.
	MinQuestions int

	// MaxQuestions ends the session unconditionally.
	MaxQuestions int

	// SEThreshold is the standard error at which the estimate is precise
	// enough to stop.
	SEThreshold float64

	// MAPQuestionLimit is how many early responses are estimated with the
	// normal prior before switching to pure maximum likelihood. Zero takes
	// the default; a negative value disables MAP estimation.
	MAPQuestionLimit int

	// PriorSD is the standard deviation of the MAP prior.
	PriorSD float64
}

// DefaultConfig returns the standard assessment configuration.
func DefaultConfig() Config {
	return Config{
		StartingTheta:        0.0,
		InitialStandardError: 1.0,
		MinQuestions:         5,
		MaxQuestions:         25,
		SEThreshold:          0.3,
		MAPQuestionLimit:     10,
		PriorSD:              1.25,
	}
}

func (c Config) withDefaults() Config {
	if c.InitialStandardError <= 0 {
		c.InitialStandardError = 1.0
	}
	if c.MinQuestions <= 0 {
		c.MinQuestions = 5
	}
	if c.MaxQuestions <= 0 {
		c.MaxQuestions = 25
	}
	if c.SEThreshold <= 0 {
		c.SEThreshold = 0.3
	}
	if c.MAPQuestionLimit == 0 {
		c.MAPQuestionLimit = 10
	}
	if c.PriorSD <= 0 {
		c.PriorSD = 1.25
	}
	return c
}
