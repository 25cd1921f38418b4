package calibrate

import (
	"math"
	"testing"

	"github.com/abhisek/mathcat/internal/catalog"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestGradeAnchor(t *testing.T) {
	tests := []struct {
		grade string
		want  float64
	}{
		{"K", -2.5},
		{"3", -1.0},
		{"5", 0.0},
		{"8", 1.5},
		{"12", 2.5},
		{"HS-Alg1", 2.0},
		{"unknown-grade", 2.5},
	}
	for _, tt := range tests {
		if got := GradeAnchor(tt.grade); !almostEqual(got, tt.want) {
			t.Errorf("GradeAnchor(%q) = %f, want %f", tt.grade, got, tt.want)
		}
	}
}

func TestCalibrate_FiftyPercentLandsOnAnchor(t *testing.T) {
	difficulty, discrimination := Calibrate([]float64{0.5}, "5")
	if !almostEqual(difficulty, 0.0) {
		t.Errorf("difficulty = %f, want anchor 0.0", difficulty)
	}
	if !almostEqual(discrimination, 1.0) {
		t.Errorf("single group discrimination = %f, want default 1.0", discrimination)
	}
}

func TestCalibrate_LowPassRateIsHarder(t *testing.T) {
	easy, _ := Calibrate([]float64{0.9}, "5")
	hard, _ := Calibrate([]float64{0.2}, "5")
	if easy >= 0 {
		t.Errorf("90%% pass rate difficulty = %f, want below anchor", easy)
	}
	if hard <= 0 {
		t.Errorf("20%% pass rate difficulty = %f, want above anchor", hard)
	}
	if hard <= easy {
		t.Errorf("harder item (%f) should exceed easier item (%f)", hard, easy)
	}
}

func TestCalibrate_Clamped(t *testing.T) {
	// Very hard item at a high grade would exceed the scale without the clamp.
	difficulty, _ := Calibrate([]float64{0.02}, "12")
	if difficulty != 3.0 {
		t.Errorf("difficulty = %f, want clamp at 3.0", difficulty)
	}
	difficulty, _ = Calibrate([]float64{0.98}, "K")
	if difficulty != -3.0 {
		t.Errorf("difficulty = %f, want clamp at -3.0", difficulty)
	}
}

func TestCalibrate_DegeneratePassRates(t *testing.T) {
	// 0% and 100% must not produce infinities.
	for _, p := range []float64{0.0, 1.0, math.NaN()} {
		difficulty, discrimination := Calibrate([]float64{p}, "5")
		if math.IsInf(difficulty, 0) || math.IsNaN(difficulty) {
			t.Errorf("p=%f: difficulty = %f", p, difficulty)
		}
		if discrimination < minDiscrimination || discrimination > maxDiscrimination {
			t.Errorf("p=%f: discrimination = %f out of band", p, discrimination)
		}
	}
}

func TestCalibrate_DiscriminationFromSpread(t *testing.T) {
	// No spread across groups: the item does not separate abilities.
	_, flat := Calibrate([]float64{0.6, 0.6, 0.6}, "5")
	if !almostEqual(flat, 1.0) {
		t.Errorf("flat spread discrimination = %f, want 1.0", flat)
	}

	// Wide spread: low group fails, high group passes.
	_, sharp := Calibrate([]float64{0.1, 0.5, 0.9}, "5")
	if sharp <= flat {
		t.Errorf("spread discrimination = %f, want above %f", sharp, flat)
	}
	if sharp > maxDiscrimination {
		t.Errorf("discrimination = %f exceeds band", sharp)
	}
}

func TestCalibrate_EmptyInput(t *testing.T) {
	difficulty, discrimination := Calibrate(nil, "7")
	if !almostEqual(difficulty, 1.0) {
		t.Errorf("empty input difficulty = %f, want grade 7 anchor 1.0", difficulty)
	}
	if !almostEqual(discrimination, 1.0) {
		t.Errorf("empty input discrimination = %f, want 1.0", discrimination)
	}
}

func TestApply_ConfidenceDowngrade(t *testing.T) {
	c, err := catalog.New([]catalog.Item{
		{ID: "fresh", SkillID: "s", Difficulty: 0, Discrimination: 1.0, Confidence: catalog.ConfidenceExpert},
		{ID: "used", SkillID: "s", Difficulty: 0, Discrimination: 1.0, Confidence: catalog.ConfidenceExpert},
	})
	if err != nil {
		t.Fatal(err)
	}
	c.RecordAttempt("used")

	if err := Apply(c, "fresh", 0.5, 1.1); err != nil {
		t.Fatal(err)
	}
	if err := Apply(c, "used", 0.5, 1.1); err != nil {
		t.Fatal(err)
	}

	fresh, _ := c.Get("fresh")
	if fresh.Confidence != catalog.ConfidenceSimulated {
		t.Errorf("no-attempt item confidence = %s, want simulated", fresh.Confidence)
	}
	used, _ := c.Get("used")
	if used.Confidence != catalog.ConfidenceLiveCalibrated {
		t.Errorf("attempted item confidence = %s, want live-calibrated", used.Confidence)
	}
	if !almostEqual(used.Difficulty, 0.5) || !almostEqual(used.Discrimination, 1.1) {
		t.Errorf("parameters not applied: %+v", used)
	}
}

func TestApply_UnknownItem(t *testing.T) {
	c, _ := catalog.New(nil)
	if err := Apply(c, "ghost", 0, 1.0); err == nil {
		t.Fatal("expected error for unknown item")
	}
}
