package skillgraph

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the skill DAG with precomputed indices.
type graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[Category][]Skill
	byGrade    map[int][]Skill
	roots      []Skill
	topoOrder  []Skill
	topoIndex  map[string]int
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph and all of its indices from a skill set
// that has already passed validateSkills.
func buildGraph(skills []Skill) *graph {
	gr := &graph{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[Category][]Skill),
		byGrade:    make(map[int][]Skill),
		topoIndex:  make(map[string]int, len(skills)),
	}
	for i := range gr.skills {
		s := &gr.skills[i]
		gr.byID[s.ID] = s
		if len(s.Prerequisites) == 0 {
			gr.roots = append(gr.roots, *s)
		}
	}

	gr.topoOrder = topoSort(gr)
	for i, s := range gr.topoOrder {
		gr.topoIndex[s.ID] = i
	}

	categoryRank := make(map[Category]int)
	for i, c := range AllCategories() {
		categoryRank[c] = i
	}

	for _, s := range gr.skills {
		gr.byCategory[s.Category] = append(gr.byCategory[s.Category], s)
		gr.byGrade[s.GradeLevel] = append(gr.byGrade[s.GradeLevel], s)
	}
	// Within a category: grade ascending, topo position breaking ties.
	for _, group := range gr.byCategory {
		sort.Slice(group, func(i, j int) bool {
			if group[i].GradeLevel != group[j].GradeLevel {
				return group[i].GradeLevel < group[j].GradeLevel
			}
			return gr.topoIndex[group[i].ID] < gr.topoIndex[group[j].ID]
		})
	}
	// Within a grade: category order, topo position breaking ties.
	for _, group := range gr.byGrade {
		sort.Slice(group, func(i, j int) bool {
			if ri, rj := categoryRank[group[i].Category], categoryRank[group[j].Category]; ri != rj {
				return ri < rj
			}
			return gr.topoIndex[group[i].ID] < gr.topoIndex[group[j].ID]
		})
	}
	return gr
}

// topoSort runs Kahn's algorithm over the prerequisite edges. Ready skills
// are visited in sorted-ID order so the result is deterministic.
func topoSort(gr *graph) []Skill {
	dependents := make(map[string][]string)
	inDegree := make(map[string]int, len(gr.skills))
	for _, s := range gr.skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, p := range s.Prerequisites {
			dependents[p] = append(dependents[p], s.ID)
		}
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order := make([]Skill, 0, len(gr.skills))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, *gr.byID[id])

		next := slices.Clone(dependents[id])
		sort.Strings(next)
		for _, dep := range next {
			if inDegree[dep]--; inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}
	return order
}

// GetSkill returns a skill by ID, or error if not found.
func GetSkill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// AllSkills returns all skills in the graph.
func AllSkills() []Skill {
	return slices.Clone(g.skills)
}

// ByCategory returns all skills in a given category, ordered by grade then topological position.
func ByCategory(category Category) []Skill {
	return slices.Clone(g.byCategory[category])
}

// ByGrade returns all skills for a given grade level, ordered by category then topological position.
func ByGrade(grade int) []Skill {
	return slices.Clone(g.byGrade[grade])
}

// RootSkills returns all skills with no prerequisites.
func RootSkills() []Skill {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite skills for a given skill ID.
func Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Enables returns the skills directly unlocked by the given skill ID.
func Enables(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Enables))
	for _, enabledID := range s.Enables {
		if e, ok := g.byID[enabledID]; ok {
			result = append(result, *e)
		}
	}
	return result
}

// isUnlocked reports whether every prerequisite of the skill is mastered.
func isUnlocked(id string, mastered map[string]bool) bool {
	s, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range s.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// availableSkills returns all skills that are unlocked but not yet mastered,
// in topological order.
func availableSkills(mastered map[string]bool) []Skill {
	var result []Skill
	for _, s := range g.topoOrder {
		if !mastered[s.ID] && isUnlocked(s.ID, mastered) {
			result = append(result, s)
		}
	}
	return result
}

// FrontierSkills returns the unlocked, unmastered skills representing forward
// progress, skills whose prerequisites have been mastered. Falls back to
// root skills when nothing with prerequisites is reachable yet.
func FrontierSkills(mastered map[string]bool) []Skill {
	available := availableSkills(mastered)
	var frontier []Skill
	for _, s := range available {
		if len(s.Prerequisites) > 0 {
			frontier = append(frontier, s)
		}
	}
	if len(frontier) == 0 {
		return available
	}
	return frontier
}

// TopologicalOrder returns all skills in a valid topological order.
func TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}

// Validate checks the graph for structural issues.
// It delegates to validateSkills with the graph's skill set.
func Validate() error {
	return validateSkills(g.skills)
}
