package skillgraph

import (
	"strings"
	"testing"
)

func TestValidate_SeedGraphPasses(t *testing.T) {
	err := Validate()
	if err != nil {
		t.Fatalf("seed graph validation failed: %v", err)
	}
}

func TestValidateSkills_DetectsCycle(t *testing.T) {
	skills := makeMinimalValidSkills()
	skills[0].Prerequisites = []string{skills[1].ID}
	skills[0].Enables = append(skills[0].Enables, skills[1].ID)
	skills[1].Prerequisites = []string{skills[0].ID}
	skills[1].Enables = append(skills[1].Enables, skills[0].ID)
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateSkills_DetectsDanglingPrereq(t *testing.T) {
	skills := makeMinimalValidSkills()
	skills[1].Prerequisites = []string{"nonexistent"}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateSkills_DetectsDanglingEnables(t *testing.T) {
	skills := makeMinimalValidSkills()
	skills[1].Enables = []string{"nonexistent"}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for dangling enables edge, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateSkills_DetectsPrereqWithoutEnables(t *testing.T) {
	skills := makeMinimalValidSkills()
	// s2 depends on s1, but s1 does not declare s2 in enables.
	skills[1].Prerequisites = []string{skills[0].ID}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for one-way prerequisite edge, got nil")
	}
	if !strings.Contains(err.Error(), "enables") {
		t.Errorf("error should mention enables, got: %v", err)
	}
}

func TestValidateSkills_DetectsEnablesWithoutPrereq(t *testing.T) {
	skills := makeMinimalValidSkills()
	// s1 claims to enable s2, but s2 does not list s1 as a prerequisite.
	skills[0].Enables = []string{skills[1].ID}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for one-way enables edge, got nil")
	}
	if !strings.Contains(err.Error(), "prerequisite") {
		t.Errorf("error should mention prerequisite, got: %v", err)
	}
}

func TestValidateSkills_DetectsDuplicateID(t *testing.T) {
	skills := makeMinimalValidSkills()
	skills[1].ID = skills[0].ID
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateSkills_AllCategoriesPopulated(t *testing.T) {
	// Only one category represented
	skills := []Skill{
		{ID: "a", Category: CategoryAlgebra, GradeLevel: 6, FluencyBaseTimeSeconds: 10, ToleranceFactor: 2.0},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for missing categories, got nil")
	}
	if !strings.Contains(err.Error(), "has no skills") {
		t.Errorf("error should mention missing category, got: %v", err)
	}
}

func TestValidateSkills_BaseDifficultyRange(t *testing.T) {
	skills := makeMinimalValidSkills()
	skills[0].BaseDifficulty = 3.5
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for out-of-range BaseDifficulty, got nil")
	}
	if !strings.Contains(err.Error(), "BaseDifficulty") {
		t.Errorf("error should mention BaseDifficulty, got: %v", err)
	}
}

func TestValidateSkills_FluencyTiming(t *testing.T) {
	skills := makeMinimalValidSkills()
	skills[0].FluencyBaseTimeSeconds = 0
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for zero FluencyBaseTimeSeconds, got nil")
	}
	if !strings.Contains(err.Error(), "FluencyBaseTimeSeconds") {
		t.Errorf("error should mention FluencyBaseTimeSeconds, got: %v", err)
	}

	skills = makeMinimalValidSkills()
	skills[0].ToleranceFactor = 0.5
	err = validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for ToleranceFactor < 1, got nil")
	}
	if !strings.Contains(err.Error(), "ToleranceFactor") {
		t.Errorf("error should mention ToleranceFactor, got: %v", err)
	}
}

// makeMinimalValidSkills returns a minimal valid set covering all categories.
func makeMinimalValidSkills() []Skill {
	return []Skill{
		{ID: "s1", Category: CategoryNumberOperations, GradeLevel: 3, FluencyBaseTimeSeconds: 10, ToleranceFactor: 2.0},
		{ID: "s2", Category: CategoryAlgebra, GradeLevel: 6, FluencyBaseTimeSeconds: 10, ToleranceFactor: 2.0},
		{ID: "s3", Category: CategoryGeometry, GradeLevel: 5, FluencyBaseTimeSeconds: 10, ToleranceFactor: 2.0},
		{ID: "s4", Category: CategoryAdvanced, GradeLevel: 8, FluencyBaseTimeSeconds: 10, ToleranceFactor: 2.0},
	}
}
