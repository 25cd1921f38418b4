package skillgraph

import (
	"testing"
)

func TestGetSkill_Exists(t *testing.T) {
	s, err := GetSkill("fractions-operations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Fraction Operations" {
		t.Errorf("got name %q, want %q", s.Name, "Fraction Operations")
	}
	if s.Category != CategoryNumberOperations {
		t.Errorf("got category %q, want %q", s.Category, CategoryNumberOperations)
	}
	if s.GradeLevel != 5 {
		t.Errorf("got grade %d, want 5", s.GradeLevel)
	}
}

func TestGetSkill_NotFound(t *testing.T) {
	_, err := GetSkill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestAllSkills_Count(t *testing.T) {
	all := AllSkills()
	if len(all) != 19 {
		t.Errorf("got %d skills, want 19", len(all))
	}
}

func TestByCategory(t *testing.T) {
	tests := []struct {
		category Category
		want     int
	}{
		{CategoryNumberOperations, 9},
		{CategoryAlgebra, 3},
		{CategoryGeometry, 4},
		{CategoryAdvanced, 3},
	}
	for _, tt := range tests {
		skills := ByCategory(tt.category)
		if len(skills) != tt.want {
			t.Errorf("ByCategory(%q): got %d skills, want %d", tt.category, len(skills), tt.want)
		}
	}
}

func TestByCategory_SortedByGrade(t *testing.T) {
	for _, category := range AllCategories() {
		skills := ByCategory(category)
		for i := 1; i < len(skills); i++ {
			if skills[i].GradeLevel < skills[i-1].GradeLevel {
				t.Errorf("ByCategory(%q): skill %q (grade %d) appears after %q (grade %d)",
					category, skills[i].ID, skills[i].GradeLevel, skills[i-1].ID, skills[i-1].GradeLevel)
			}
		}
	}
}

func TestByGrade(t *testing.T) {
	total := 0
	for grade := 3; grade <= 8; grade++ {
		total += len(ByGrade(grade))
	}
	if total != 19 {
		t.Errorf("grade 3-8 total: got %d, want 19", total)
	}
	if len(ByGrade(12)) != 0 {
		t.Errorf("ByGrade(12): got %d skills, want 0", len(ByGrade(12)))
	}

	// Verify all skills in each result are the correct grade
	for _, s := range ByGrade(6) {
		if s.GradeLevel != 6 {
			t.Errorf("grade 6 result contains skill %q with grade %d", s.ID, s.GradeLevel)
		}
	}
}

func TestRootSkills(t *testing.T) {
	roots := RootSkills()
	if len(roots) != 1 {
		t.Fatalf("got %d root skills, want 1", len(roots))
	}
	if roots[0].ID != "add-sub-whole" {
		t.Errorf("root skill: got %q, want add-sub-whole", roots[0].ID)
	}
}

func TestPrerequisites(t *testing.T) {
	// linear-equations requires expressions-variables
	prereqs := Prerequisites("linear-equations")
	if len(prereqs) != 1 {
		t.Fatalf("linear-equations: got %d prereqs, want 1", len(prereqs))
	}
	if prereqs[0].ID != "expressions-variables" {
		t.Errorf("linear-equations prereq: got %q, want expressions-variables", prereqs[0].ID)
	}

	// pythagorean-theorem requires two prerequisites
	prereqs = Prerequisites("pythagorean-theorem")
	if len(prereqs) != 2 {
		t.Fatalf("pythagorean-theorem: got %d prereqs, want 2", len(prereqs))
	}
	ids := map[string]bool{}
	for _, p := range prereqs {
		ids[p.ID] = true
	}
	if !ids["angles-triangles"] || !ids["exponents-roots"] {
		t.Errorf("pythagorean-theorem prereqs: got %v", ids)
	}

	// Root skill has no prerequisites
	prereqs = Prerequisites("add-sub-whole")
	if len(prereqs) != 0 {
		t.Errorf("add-sub-whole: got %d prereqs, want 0", len(prereqs))
	}
}

func TestEnables(t *testing.T) {
	enabled := Enables("mult-div-whole")
	if len(enabled) != 4 {
		t.Fatalf("mult-div-whole: got %d enabled skills, want 4", len(enabled))
	}
	ids := map[string]bool{}
	for _, e := range enabled {
		ids[e.ID] = true
	}
	for _, want := range []string{"fractions-equivalence", "area-perimeter", "decimals-operations", "integers-negative"} {
		if !ids[want] {
			t.Errorf("mult-div-whole missing enabled skill %q", want)
		}
	}

	if got := Enables("quadratic-functions"); len(got) != 0 {
		t.Errorf("Enables(quadratic-functions) = %d skills, want 0", len(got))
	}
	if got := Enables("nonexistent"); got != nil {
		t.Errorf("Enables(nonexistent) = %v, want nil", got)
	}
}

func TestEnablesMatchesDependents(t *testing.T) {
	// Enables edges must agree with the reverse prerequisite index.
	for _, s := range AllSkills() {
		enabledIDs := map[string]bool{}
		for _, e := range Enables(s.ID) {
			enabledIDs[e.ID] = true
		}
		for _, other := range AllSkills() {
			depends := false
			for _, p := range other.Prerequisites {
				if p == s.ID {
					depends = true
				}
			}
			if depends != enabledIDs[other.ID] {
				t.Errorf("edge mismatch between %q and %q: prereq=%v enables=%v", other.ID, s.ID, depends, enabledIDs[other.ID])
			}
		}
	}
}

func TestIsUnlocked(t *testing.T) {
	empty := map[string]bool{}

	// Root skill is always unlocked
	if !isUnlocked("add-sub-whole", empty) {
		t.Error("add-sub-whole should be unlocked with empty mastered set")
	}

	// linear-equations requires expressions-variables
	if isUnlocked("linear-equations", empty) {
		t.Error("linear-equations should be locked with empty mastered set")
	}
	if !isUnlocked("linear-equations", map[string]bool{"expressions-variables": true}) {
		t.Error("linear-equations should be unlocked when expressions-variables is mastered")
	}

	// pythagorean-theorem requires both angles-triangles AND exponents-roots
	partial := map[string]bool{"angles-triangles": true}
	if isUnlocked("pythagorean-theorem", partial) {
		t.Error("pythagorean-theorem should be locked with only one of two prereqs")
	}
	both := map[string]bool{"angles-triangles": true, "exponents-roots": true}
	if !isUnlocked("pythagorean-theorem", both) {
		t.Error("pythagorean-theorem should be unlocked with both prereqs mastered")
	}
}

func TestAvailableSkills_EmptyMastered(t *testing.T) {
	empty := map[string]bool{}
	available := availableSkills(empty)

	// With empty mastered, only root skills should be available
	roots := RootSkills()
	if len(available) != len(roots) {
		t.Errorf("got %d available skills with empty mastered, want %d (root count)", len(available), len(roots))
	}
	for _, s := range available {
		if len(s.Prerequisites) != 0 {
			t.Errorf("non-root skill %q is available with empty mastered set", s.ID)
		}
	}
}

func TestAvailableSkills_PartialMastered(t *testing.T) {
	mastered := map[string]bool{"add-sub-whole": true}
	available := availableSkills(mastered)

	// add-sub-whole is mastered, so it should NOT be in available
	for _, s := range available {
		if s.ID == "add-sub-whole" {
			t.Error("mastered skill add-sub-whole should not be in available set")
		}
	}

	// Skills that depend only on add-sub-whole should now be available
	availableIDs := map[string]bool{}
	for _, s := range available {
		availableIDs[s.ID] = true
	}
	for _, id := range []string{"mult-div-whole", "place-value-decimals"} {
		if !availableIDs[id] {
			t.Errorf("expected %q to be available, but it wasn't", id)
		}
	}
}

func TestFrontierSkills(t *testing.T) {
	empty := map[string]bool{}
	frontier := FrontierSkills(empty)

	// With empty mastered, frontier should return root skills
	if len(frontier) == 0 {
		t.Fatal("frontier should not be empty with empty mastered set")
	}

	// Frontier must be a subset of available
	available := availableSkills(empty)
	availableIDs := map[string]bool{}
	for _, s := range available {
		availableIDs[s.ID] = true
	}
	for _, s := range frontier {
		if !availableIDs[s.ID] {
			t.Errorf("frontier skill %q is not in available set", s.ID)
		}
	}

	// With some mastered, frontier should prefer non-root skills
	mastered := map[string]bool{"add-sub-whole": true}
	frontier = FrontierSkills(mastered)
	for _, s := range frontier {
		if len(s.Prerequisites) == 0 {
			t.Errorf("frontier should prefer non-root skills when available, got root %q", s.ID)
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	topo := TopologicalOrder()
	if len(topo) != 19 {
		t.Fatalf("got %d skills in topo order, want 19", len(topo))
	}

	// Verify topological property: every skill appears after all its prerequisites
	posMap := make(map[string]int, len(topo))
	for i, s := range topo {
		posMap[s.ID] = i
	}

	for _, s := range topo {
		for _, prereqID := range s.Prerequisites {
			prereqPos, ok := posMap[prereqID]
			if !ok {
				t.Errorf("prerequisite %q of %q not found in topo order", prereqID, s.ID)
				continue
			}
			skillPos := posMap[s.ID]
			if prereqPos >= skillPos {
				t.Errorf("skill %q (pos %d) appears before prerequisite %q (pos %d)",
					s.ID, skillPos, prereqID, prereqPos)
			}
		}
	}
}

func TestAllSkills_ReturnsCopy(t *testing.T) {
	a := AllSkills()
	b := AllSkills()
	if len(a) != len(b) {
		t.Fatal("AllSkills returned different lengths")
	}
	// Mutating one should not affect the other
	a[0].Name = "MUTATED"
	c := AllSkills()
	if c[0].Name == "MUTATED" {
		t.Error("AllSkills did not return a defensive copy")
	}
}
