package skillgraph

// Category represents a broad math content category.
type Category string

const (
	CategoryNumberOperations Category = "number-operations"
	CategoryAlgebra          Category = "algebra"
	CategoryGeometry         Category = "geometry"
	CategoryAdvanced         Category = "advanced"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryNumberOperations,
		CategoryAlgebra,
		CategoryGeometry,
		CategoryAdvanced,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryNumberOperations:
		return "Number & Operations"
	case CategoryAlgebra:
		return "Algebra"
	case CategoryGeometry:
		return "Geometry"
	case CategoryAdvanced:
		return "Advanced Topics"
	default:
		return string(c)
	}
}

// Skill represents a single math skill node in the graph.
//
// Prerequisites and Enables are inverse edge sets: skill A lists B in
// Enables exactly when B lists A in Prerequisites. Both directions are
// declared explicitly and checked by validation rather than derived,
// so a typo in either list fails loudly at startup.
type Skill struct {
	ID             string
	Name           string
	Description    string
	Category       Category
	GradeLevel     int
	BaseDifficulty float64 // typical item difficulty for the skill, theta scale
	Prerequisites  []string
	Enables        []string

	// Fluency timing: expected seconds per correct answer once mastered,
	// and the multiplier beyond which an answer counts as slow.
	FluencyBaseTimeSeconds float64
	ToleranceFactor        float64
}
