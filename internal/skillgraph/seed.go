package skillgraph

func init() {
	skills := seedSkills()
	g = buildGraph(skills)
	if err := validateSkills(skills); err != nil {
		panic(err)
	}
}

// seedSkills returns the built-in grade 3-8 skill set.
func seedSkills() []Skill {
	return []Skill{
		{
			ID:                     "add-sub-whole",
			Name:                   "Whole Number Addition & Subtraction",
			Description:            "Multi-digit addition and subtraction with regrouping.",
			Category:               CategoryNumberOperations,
			GradeLevel:             3,
			BaseDifficulty:         -2.0,
			Prerequisites:          nil,
			Enables:                []string{"mult-div-whole", "place-value-decimals"},
			FluencyBaseTimeSeconds: 8,
			ToleranceFactor:        2.0,
		},
		{
			ID:                     "mult-div-whole",
			Name:                   "Whole Number Multiplication & Division",
			Description:            "Multiplication facts, multi-digit multiplication, and long division.",
			Category:               CategoryNumberOperations,
			GradeLevel:             3,
			BaseDifficulty:         -1.5,
			Prerequisites:          []string{"add-sub-whole"},
			Enables:                []string{"fractions-equivalence", "area-perimeter", "decimals-operations", "integers-negative"},
			FluencyBaseTimeSeconds: 10,
			ToleranceFactor:        2.0,
		},
		{
			ID:                     "place-value-decimals",
			Name:                   "Place Value & Decimal Notation",
			Description:            "Reading, writing, and comparing decimals to the thousandths.",
			Category:               CategoryNumberOperations,
			GradeLevel:             4,
			BaseDifficulty:         -1.2,
			Prerequisites:          []string{"add-sub-whole"},
			Enables:                []string{"decimals-operations"},
			FluencyBaseTimeSeconds: 10,
			ToleranceFactor:        2.0,
		},
		{
			ID:                     "fractions-equivalence",
			Name:                   "Fraction Equivalence & Comparison",
			Description:            "Equivalent fractions, common denominators, and comparison.",
			Category:               CategoryNumberOperations,
			GradeLevel:             4,
			BaseDifficulty:         -1.0,
			Prerequisites:          []string{"mult-div-whole"},
			Enables:                []string{"fractions-operations"},
			FluencyBaseTimeSeconds: 15,
			ToleranceFactor:        2.2,
		},
		{
			ID:                     "area-perimeter",
			Name:                   "Area & Perimeter",
			Description:            "Area and perimeter of rectangles and composite figures.",
			Category:               CategoryGeometry,
			GradeLevel:             4,
			BaseDifficulty:         -0.8,
			Prerequisites:          []string{"mult-div-whole"},
			Enables:                []string{"volume-surface-area", "angles-triangles"},
			FluencyBaseTimeSeconds: 20,
			ToleranceFactor:        2.2,
		},
		{
			ID:                     "fractions-operations",
			Name:                   "Fraction Operations",
			Description:            "Adding, subtracting, multiplying, and dividing fractions.",
			Category:               CategoryNumberOperations,
			GradeLevel:             5,
			BaseDifficulty:         -0.5,
			Prerequisites:          []string{"fractions-equivalence"},
			Enables:                []string{"ratios-proportions"},
			FluencyBaseTimeSeconds: 20,
			ToleranceFactor:        2.2,
		},
		{
			ID:                     "decimals-operations",
			Name:                   "Decimal Operations",
			Description:            "All four operations with decimals, including powers of ten.",
			Category:               CategoryNumberOperations,
			GradeLevel:             5,
			BaseDifficulty:         -0.6,
			Prerequisites:          []string{"place-value-decimals", "mult-div-whole"},
			Enables:                []string{"volume-surface-area", "percentages"},
			FluencyBaseTimeSeconds: 15,
			ToleranceFactor:        2.0,
		},
		{
			ID:                     "integers-negative",
			Name:                   "Integers & Negative Numbers",
			Description:            "Ordering, adding, and multiplying signed numbers.",
			Category:               CategoryNumberOperations,
			GradeLevel:             6,
			BaseDifficulty:         -0.2,
			Prerequisites:          []string{"mult-div-whole"},
			Enables:                []string{"expressions-variables", "exponents-roots"},
			FluencyBaseTimeSeconds: 12,
			ToleranceFactor:        2.0,
		},
		{
			ID:                     "ratios-proportions",
			Name:                   "Ratios & Proportions",
			Description:            "Ratio reasoning, unit rates, and proportional relationships.",
			Category:               CategoryNumberOperations,
			GradeLevel:             6,
			BaseDifficulty:         0.0,
			Prerequisites:          []string{"fractions-operations"},
			Enables:                []string{"percentages", "functions-graphs"},
			FluencyBaseTimeSeconds: 25,
			ToleranceFactor:        2.5,
		},
		{
			ID:                     "volume-surface-area",
			Name:                   "Volume & Surface Area",
			Description:            "Volume and surface area of prisms and cylinders.",
			Category:               CategoryGeometry,
			GradeLevel:             6,
			BaseDifficulty:         0.0,
			Prerequisites:          []string{"area-perimeter", "decimals-operations"},
			Enables:                nil,
			FluencyBaseTimeSeconds: 30,
			ToleranceFactor:        2.5,
		},
		{
			ID:                     "percentages",
			Name:                   "Percentages",
			Description:            "Percent of a quantity, percent change, and conversions.",
			Category:               CategoryNumberOperations,
			GradeLevel:             6,
			BaseDifficulty:         0.2,
			Prerequisites:          []string{"decimals-operations", "ratios-proportions"},
			Enables:                nil,
			FluencyBaseTimeSeconds: 20,
			ToleranceFactor:        2.2,
		},
		{
			ID:                     "expressions-variables",
			Name:                   "Expressions & Variables",
			Description:            "Writing, evaluating, and simplifying algebraic expressions.",
			Category:               CategoryAlgebra,
			GradeLevel:             6,
			BaseDifficulty:         0.3,
			Prerequisites:          []string{"integers-negative"},
			Enables:                []string{"linear-equations"},
			FluencyBaseTimeSeconds: 20,
			ToleranceFactor:        2.2,
		},
		{
			ID:                     "angles-triangles",
			Name:                   "Angles & Triangles",
			Description:            "Angle relationships, triangle properties, and angle sums.",
			Category:               CategoryGeometry,
			GradeLevel:             7,
			BaseDifficulty:         0.4,
			Prerequisites:          []string{"area-perimeter"},
			Enables:                []string{"pythagorean-theorem"},
			FluencyBaseTimeSeconds: 25,
			ToleranceFactor:        2.5,
		},
		{
			ID:                     "linear-equations",
			Name:                   "Linear Equations",
			Description:            "Solving one- and two-step linear equations in one variable.",
			Category:               CategoryAlgebra,
			GradeLevel:             7,
			BaseDifficulty:         0.8,
			Prerequisites:          []string{"expressions-variables"},
			Enables:                []string{"functions-graphs", "systems-of-equations"},
			FluencyBaseTimeSeconds: 30,
			ToleranceFactor:        2.5,
		},
		{
			ID:                     "exponents-roots",
			Name:                   "Exponents & Roots",
			Description:            "Integer exponents, square roots, and scientific notation.",
			Category:               CategoryAdvanced,
			GradeLevel:             8,
			BaseDifficulty:         1.0,
			Prerequisites:          []string{"integers-negative"},
			Enables:                []string{"pythagorean-theorem", "quadratic-functions"},
			FluencyBaseTimeSeconds: 20,
			ToleranceFactor:        2.2,
		},
		{
			ID:                     "pythagorean-theorem",
			Name:                   "Pythagorean Theorem",
			Description:            "Finding side lengths and distances with the Pythagorean theorem.",
			Category:               CategoryGeometry,
			GradeLevel:             8,
			BaseDifficulty:         1.1,
			Prerequisites:          []string{"angles-triangles", "exponents-roots"},
			Enables:                nil,
			FluencyBaseTimeSeconds: 35,
			ToleranceFactor:        2.5,
		},
		{
			ID:                     "functions-graphs",
			Name:                   "Functions & Graphs",
			Description:            "Linear functions, slope, and graphing in the coordinate plane.",
			Category:               CategoryAlgebra,
			GradeLevel:             8,
			BaseDifficulty:         1.4,
			Prerequisites:          []string{"linear-equations", "ratios-proportions"},
			Enables:                []string{"quadratic-functions"},
			FluencyBaseTimeSeconds: 35,
			ToleranceFactor:        2.5,
		},
		{
			ID:                     "systems-of-equations",
			Name:                   "Systems of Equations",
			Description:            "Solving pairs of linear equations by substitution and elimination.",
			Category:               CategoryAdvanced,
			GradeLevel:             8,
			BaseDifficulty:         1.6,
			Prerequisites:          []string{"linear-equations"},
			Enables:                nil,
			FluencyBaseTimeSeconds: 45,
			ToleranceFactor:        2.5,
		},
		{
			ID:                     "quadratic-functions",
			Name:                   "Quadratic Functions",
			Description:            "Recognizing, evaluating, and graphing simple quadratics.",
			Category:               CategoryAdvanced,
			GradeLevel:             8,
			BaseDifficulty:         1.9,
			Prerequisites:          []string{"functions-graphs", "exponents-roots"},
			Enables:                nil,
			FluencyBaseTimeSeconds: 45,
			ToleranceFactor:        2.5,
		},
	}
}
