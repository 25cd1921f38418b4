// Package session runs one adaptive assessment: it owns the response
// history, keeps the ability estimate current, and decides when the
// session has learned enough to stop.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathcat/internal/irt"
)

// ErrSessionOver is returned when a response arrives after the session
// reached a terminal state.
var ErrSessionOver = errors.New("session: already ended")

// Outcome actions.
const (
	ActionContinue = "continue"
	ActionStop     = "stop"
)

// Attempt is one administered item with the estimate before and after.
type Attempt struct {
	irt.Response
	QuestionNumber    int
	ThetaBefore       float64
	ThetaAfter        float64
	SEBefore          float64
	SEAfter           float64
	InformationGained float64
	At                time.Time
}

// Outcome is the engine's answer to "what happens next" after a response.
type Outcome struct {
	Action         string
	Reason         string
	Message        string
	Theta          float64
	StandardError  float64
	Confidence     float64
	QuestionNumber int
}

// Session is a single learner's adaptive assessment. All mutation goes
// through the session mutex: responses for one session are processed
// strictly one at a time.
type Session struct {
	mu sync.Mutex

	id           string
	userID       string
	cfg          Config
	state        State
	theta        float64
	se           float64
	attempts     []Attempt
	administered map[string]bool
	correct      int
	substituted  int
	stopReason   string

	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

// New starts a session for a user. The zero Config gets defaults.
func New(userID string, cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		id:           uuid.NewString(),
		userID:       userID,
		cfg:          cfg,
		state:        StateInitializing,
		theta:        cfg.StartingTheta,
		se:           cfg.InitialStandardError,
		administered: make(map[string]bool),
		now:          time.Now,
	}
	s.startedAt = s.now()
	s.state = StateActive
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// UserID returns the learner this session belongs to.
func (s *Session) UserID() string { return s.userID }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Theta returns the current ability estimate.
func (s *Session) Theta() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theta
}

// StandardError returns the current estimate uncertainty.
func (s *Session) StandardError() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.se
}

// QuestionCount returns the number of responses processed.
func (s *Session) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attempts)
}

// Administered returns the set of item IDs already served, for selector
// exclusion.
func (s *Session) Administered() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.administered))
	for id := range s.administered {
		out[id] = true
	}
	return out
}

// ProcessResponse folds one scored response into the session: re-estimate
// ability, then evaluate the stop conditions in priority order (question
// limit, then precision, then plateau). Returns ErrSessionOver once the
// session has ended.
func (s *Session) ProcessResponse(r irt.Response) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Terminal() {
		return Outcome{}, ErrSessionOver
	}

	clean, substituted := irt.Sanitize(r)
	if substituted {
		s.substituted++
	}

	thetaBefore, seBefore := s.theta, s.se
	responses := make([]irt.Response, 0, len(s.attempts)+1)
	for _, a := range s.attempts {
		responses = append(responses, a.Response)
	}
	responses = append(responses, clean)

	opts := irt.Options{InitialTheta: s.theta}
	var est irt.Estimate
	if len(responses) <= s.cfg.MAPQuestionLimit {
		prior := irt.Prior{Mean: s.cfg.StartingTheta, SD: s.cfg.PriorSD}
		est = irt.EstimateAbilityMAP(responses, prior, opts)
	} else {
		est = irt.EstimateAbility(responses, opts)
	}
	s.theta, s.se = est.Theta, est.StandardError

	attempt := Attempt{
		Response:          clean,
		QuestionNumber:    len(s.attempts) + 1,
		ThetaBefore:       thetaBefore,
		ThetaAfter:        s.theta,
		SEBefore:          seBefore,
		SEAfter:           s.se,
		InformationGained: irt.ItemInformation(s.theta, clean.Difficulty, clean.Discrimination),
		At:                s.now(),
	}
	s.attempts = append(s.attempts, attempt)
	s.administered[clean.ItemID] = true
	if clean.Correct {
		s.correct++
	}

	out := Outcome{
		Action:         ActionContinue,
		Theta:          s.theta,
		StandardError:  s.se,
		Confidence:     s.confidenceLocked(),
		QuestionNumber: len(s.attempts),
	}

	switch {
	case len(s.attempts) >= s.cfg.MaxQuestions:
		s.endLocked(StateCompleted, ReasonQuestionLimit)
		out.Action, out.Reason = ActionStop, ReasonQuestionLimit
		out.Message = "That's a wrap! You worked through every question."
	case s.se <= s.cfg.SEThreshold && len(s.attempts) >= s.cfg.MinQuestions:
		s.endLocked(StateCompleted, ReasonPrecision)
		out.Action, out.Reason = ActionStop, ReasonPrecision
		out.Message = "Great work! We've found your level."
	case len(s.attempts) >= s.cfg.MinQuestions && s.plateauedLocked():
		s.endLocked(StateCompleted, ReasonPlateau)
		out.Action, out.Reason = ActionStop, ReasonPlateau
		out.Message = "Nice and steady! Your level has settled."
	}

	return out, nil
}

// Cancel ends the session early. Safe to call at any point; an already
// terminal session is left as is. A report can still be produced.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Terminal() {
		return
	}
	s.endLocked(StateTerminatedEarly, ReasonCancelled)
}

func (s *Session) endLocked(state State, reason string) {
	s.state = state
	s.stopReason = reason
	s.endedAt = s.now()
}

func (s *Session) confidenceLocked() float64 {
	c := 1 - s.se/s.cfg.InitialStandardError
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func (s *Session) plateauedLocked() bool {
	correct := make([]bool, len(s.attempts))
	thetas := make([]float64, len(s.attempts))
	for i, a := range s.attempts {
		correct[i] = a.Correct
		thetas[i] = a.ThetaAfter
	}
	return irt.Plateaued(correct, thetas)
}
