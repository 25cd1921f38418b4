package skillgraph

import (
	"fmt"
	"slices"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	categorySet := make(map[Category]bool)

	// Check for duplicate IDs
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
		categorySet[s.Category] = true
	}

	// Check for dangling prerequisite and enables references
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
		}
		for _, enabledID := range s.Enables {
			if !idSet[enabledID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent enabled skill %q", s.ID, enabledID))
			}
		}
	}

	// Check edge consistency in both directions: every prerequisite edge
	// must have a matching enables edge, and vice versa.
	byID := make(map[string]Skill, len(skills))
	for _, s := range skills {
		byID[s.ID] = s
	}
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			p, ok := byID[prereqID]
			if ok && !slices.Contains(p.Enables, s.ID) {
				errs = append(errs, fmt.Sprintf("skill %q lists prerequisite %q, but %q does not list %q in enables", s.ID, prereqID, prereqID, s.ID))
			}
		}
		for _, enabledID := range s.Enables {
			e, ok := byID[enabledID]
			if ok && !slices.Contains(e.Prerequisites, s.ID) {
				errs = append(errs, fmt.Sprintf("skill %q lists enabled skill %q, but %q does not list %q as a prerequisite", s.ID, enabledID, enabledID, s.ID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	hasRoot := false
	for _, s := range skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	// Check all declared categories are populated
	for _, category := range AllCategories() {
		if !categorySet[category] {
			errs = append(errs, fmt.Sprintf("category %q has no skills", category))
		}
	}

	// Check per-skill parameters are in range
	for _, s := range skills {
		if s.BaseDifficulty < -3 || s.BaseDifficulty > 3 {
			errs = append(errs, fmt.Sprintf("skill %q: BaseDifficulty must be in [-3, 3], got %f", s.ID, s.BaseDifficulty))
		}
		if s.GradeLevel < 0 || s.GradeLevel > 12 {
			errs = append(errs, fmt.Sprintf("skill %q: GradeLevel must be in [0, 12], got %d", s.ID, s.GradeLevel))
		}
		if s.FluencyBaseTimeSeconds <= 0 {
			errs = append(errs, fmt.Sprintf("skill %q: FluencyBaseTimeSeconds must be > 0, got %f", s.ID, s.FluencyBaseTimeSeconds))
		}
		if s.ToleranceFactor < 1.0 {
			errs = append(errs, fmt.Sprintf("skill %q: ToleranceFactor must be >= 1.0, got %f", s.ID, s.ToleranceFactor))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
