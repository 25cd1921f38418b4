package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcat/internal/irt"
)

func response(itemID, skillID string, difficulty float64, correct bool) irt.Response {
	return irt.Response{
		ItemID:         itemID,
		SkillID:        skillID,
		Difficulty:     difficulty,
		Discrimination: 1.0,
		Correct:        correct,
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New("user-1", Config{})
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, 0.0, s.Theta())
	assert.Equal(t, 1.0, s.StandardError())
	assert.Equal(t, 0, s.QuestionCount())
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "user-1", s.UserID())
}

func TestProcessResponse_QuestionLimitWinsOverPrecision(t *testing.T) {
	// Both the question limit and the precision threshold are satisfied by
	// the first response; the limit must be the reported reason.
	s := New("u", Config{
		MaxQuestions: 1,
		MinQuestions: 1,
		SEThreshold:  10,
	})
	out, err := s.ProcessResponse(response("i1", "sk", 0, true))
	require.NoError(t, err)
	assert.Equal(t, ActionStop, out.Action)
	assert.Equal(t, ReasonQuestionLimit, out.Reason)
	assert.Equal(t, StateCompleted, s.State())
}

func TestProcessResponse_PrecisionStop(t *testing.T) {
	s := New("u", Config{SEThreshold: 0.45, MaxQuestions: 50, MinQuestions: 5})

	var out Outcome
	var err error
	for i := 0; i < 50 && s.State() == StateActive; i++ {
		// Items near the current estimate are maximally informative. A
		// period-4 correctness pattern holds 50% accuracy without the
		// alternation run that would trip the plateau stop.
		difficulty := s.Theta()
		correct := (i/2)%2 == 0
		out, err = s.ProcessResponse(response("", "sk", difficulty, correct))
		require.NoError(t, err)
	}
	require.Equal(t, ActionStop, out.Action)
	assert.Equal(t, ReasonPrecision, out.Reason)
	assert.LessOrEqual(t, out.StandardError, 0.45)
	assert.GreaterOrEqual(t, out.QuestionNumber, 5)
}

func TestProcessResponse_PlateauStop(t *testing.T) {
	s := New("u", Config{SEThreshold: 0.05, MaxQuestions: 20, MinQuestions: 5})

	var out Outcome
	var err error
	correct := true
	for i := 0; i < 20 && s.State() == StateActive; i++ {
		out, err = s.ProcessResponse(response("", "sk", 0, correct))
		require.NoError(t, err)
		correct = !correct
	}
	require.Equal(t, ActionStop, out.Action, "alternating answers should plateau")
	assert.Equal(t, ReasonPlateau, out.Reason)
}

func TestProcessResponse_RecoversAbility(t *testing.T) {
	// Noise-free examinee with true ability 1.0: answers correctly exactly
	// when the item is easier than 1.0. Self-adapting difficulty.
	s := New("u", Config{SEThreshold: 0.05, MaxQuestions: 20})

	for s.State() == StateActive {
		difficulty := s.Theta()
		if difficulty > 3 {
			difficulty = 3
		} else if difficulty < -3 {
			difficulty = -3
		}
		_, err := s.ProcessResponse(response("", "sk", difficulty, difficulty < 1.0))
		require.NoError(t, err)
	}

	assert.InDelta(t, 1.0, s.Theta(), 0.5, "final theta should bracket true ability")
}

func TestProcessResponse_AfterEnd(t *testing.T) {
	s := New("u", Config{MaxQuestions: 1})
	_, err := s.ProcessResponse(response("i1", "sk", 0, true))
	require.NoError(t, err)

	_, err = s.ProcessResponse(response("i2", "sk", 0, true))
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestProcessResponse_SanitizesParameters(t *testing.T) {
	s := New("u", Config{})
	bad := response("i1", "sk", 0, true)
	bad.Discrimination = -2
	out, err := s.ProcessResponse(bad)
	require.NoError(t, err)
	assert.False(t, out.Theta != out.Theta, "theta must never be NaN")

	rep := s.Report()
	assert.Equal(t, 1, rep.SubstitutedResponses)
}

func TestCancel(t *testing.T) {
	s := New("u", Config{})
	_, err := s.ProcessResponse(response("i1", "sk", 0, true))
	require.NoError(t, err)

	s.Cancel()
	assert.Equal(t, StateTerminatedEarly, s.State())

	_, err = s.ProcessResponse(response("i2", "sk", 0, true))
	assert.ErrorIs(t, err, ErrSessionOver)

	rep := s.Report()
	assert.Equal(t, StateTerminatedEarly, rep.State)
	assert.Equal(t, ReasonCancelled, rep.StopReason)
	assert.Equal(t, 1, rep.QuestionCount)

	// Cancel is idempotent.
	s.Cancel()
	assert.Equal(t, StateTerminatedEarly, s.State())
}

func TestAdministered_Excluded(t *testing.T) {
	s := New("u", Config{})
	s.ProcessResponse(response("i1", "sk", 0, true))
	s.ProcessResponse(response("i2", "sk", 0.3, false))

	seen := s.Administered()
	assert.True(t, seen["i1"])
	assert.True(t, seen["i2"])
	assert.Len(t, seen, 2)
}

func TestConfidence_Bounds(t *testing.T) {
	s := New("u", Config{})
	out, err := s.ProcessResponse(response("i1", "sk", 0, true))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, out.Confidence, 0.0)
	assert.LessOrEqual(t, out.Confidence, 1.0)

	// The zero Config must keep MAP estimation on: with the prior anchoring
	// the estimate, a single correct answer nudges theta rather than
	// slamming it to the ability clamp as a pure MLE would.
	assert.Less(t, out.Theta, 1.0)
	assert.Greater(t, out.Theta, 0.0)

	out, err = s.ProcessResponse(response("i2", "sk", 0.3, false))
	require.NoError(t, err)
	assert.Greater(t, out.Confidence, 0.0, "two responses should reduce uncertainty below the initial SE")
	assert.LessOrEqual(t, out.Confidence, 1.0)
}

func TestReport_SkillCategorization(t *testing.T) {
	s := New("u", Config{MaxQuestions: 50, MinQuestions: 10})

	// Four easy items all correct: mastered.
	for i := 0; i < 4; i++ {
		s.ProcessResponse(response("", "easy-skill", -1.0, true))
	}
	// Four near-level items at 50%: learning.
	for i := 0; i < 4; i++ {
		s.ProcessResponse(response("", "hard-skill", 0.8, i%2 == 0))
	}
	// A single far-off item: not enough evidence, frontier.
	s.ProcessResponse(response("", "new-skill", 3.0, true))

	rep := s.Report()
	require.Len(t, rep.Skills, 3)

	categories := map[string]string{}
	for _, sum := range rep.Skills {
		categories[sum.SkillID] = sum.Category
	}
	assert.Equal(t, SkillMastered, categories["easy-skill"])
	assert.Equal(t, SkillLearning, categories["hard-skill"])
	assert.Equal(t, SkillFrontier, categories["new-skill"])

	assert.Equal(t, 9, rep.QuestionCount)
	assert.Equal(t, 7, rep.CorrectCount)
	assert.InDelta(t, 7.0/9.0, rep.Accuracy, 1e-9)
	assert.Greater(t, rep.Percentile, 50, "mostly correct answers should land above the median")
}

func TestReport_EvidenceIndependentOfFinalTheta(t *testing.T) {
	s := New("u", Config{MaxQuestions: 50, MinQuestions: 10})

	// Plenty of evidence on an easy skill, then harder items that pull the
	// ability estimate well above it. The easy skill stays mastered: the
	// evidence its items carry does not evaporate when theta moves on.
	for i := 0; i < 4; i++ {
		s.ProcessResponse(response("", "basics", -2.0, true))
	}
	for i := 0; i < 5; i++ {
		s.ProcessResponse(response("", "advanced", 1.5, true))
	}

	rep := s.Report()
	categories := map[string]string{}
	for _, sum := range rep.Skills {
		categories[sum.SkillID] = sum.Category
	}
	assert.Equal(t, SkillMastered, categories["basics"])
	assert.NotEqual(t, SkillFrontier, categories["advanced"])
}

func TestReport_EmptySession(t *testing.T) {
	s := New("u", Config{})
	rep := s.Report()
	assert.Equal(t, 0, rep.QuestionCount)
	assert.Equal(t, 0.0, rep.Accuracy)
	assert.Empty(t, rep.Skills)
	assert.Equal(t, 50, rep.Percentile)
}
