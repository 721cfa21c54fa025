package scoring

import "careerfit/internal/model"

// Static report content. The text is swappable; only the shapes and the
// offsets/levels feed the report formulas.

type careerTemplate struct {
	title       string
	salaryRange string
	description string
	skills      []string
	offset      int // Added to the overall score to get the match
}

var careerTemplates = []careerTemplate{
	{
		title:       "Data Analyst",
		salaryRange: "$60,000 - $95,000",
		description: "Turns raw business data into reports, dashboards and decisions.",
		skills:      []string{"SQL", "Statistics", "Visualization"},
		offset:      5,
	},
	{
		title:       "Software Engineer",
		salaryRange: "$80,000 - $140,000",
		description: "Designs, builds and maintains software systems.",
		skills:      []string{"Programming", "Problem Solving", "System Design"},
		offset:      0,
	},
	{
		title:       "Business Analyst",
		salaryRange: "$65,000 - $100,000",
		description: "Bridges stakeholders and delivery teams by modelling requirements.",
		skills:      []string{"Requirements", "Communication", "Process Modelling"},
		offset:      -4,
	},
	{
		title:       "Product Manager",
		salaryRange: "$90,000 - $150,000",
		description: "Owns product direction, prioritization and outcomes.",
		skills:      []string{"Prioritization", "Communication", "Market Analysis"},
		offset:      -8,
	},
	{
		title:       "UX Researcher",
		salaryRange: "$70,000 - $120,000",
		description: "Studies how people use products and feeds findings into design.",
		skills:      []string{"Interviewing", "Synthesis", "Empathy"},
		offset:      -12,
	},
}

type skillTarget struct {
	category      string
	label         string
	requiredLevel int
}

// Ordered as shown on the skill gap chart
var skillTargets = []skillTarget{
	{category: "logicalReasoning", label: "Logical Reasoning", requiredLevel: 8},
	{category: "numeracy", label: "Numeracy", requiredLevel: 7},
	{category: "domainKnowledge", label: "Domain Knowledge", requiredLevel: 8},
	{category: "problemSolving", label: "Problem Solving", requiredLevel: 8},
}

var categoryLabels = map[string]string{
	"interest":         "Interest",
	"motivation":       "Motivation",
	"personality":      "Personality Fit",
	"cognitive":        "Cognitive Style",
	"growth":           "Growth Mindset",
	"logicalReasoning": "Logical Reasoning",
	"numeracy":         "Numeracy",
	"domainKnowledge":  "Domain Knowledge",
	"problemSolving":   "Problem Solving",
	"will":             "Will",
	"skill":            "Skill",
	"ability":          "Ability to Learn",
	"realWorld":        "Real-World Fit",
}

var categoryTips = map[string][]string{
	"interest": {
		"Shadow a practitioner for a day to test your interest.",
		"Follow two or three industry newsletters for a month.",
	},
	"motivation": {
		"Set a small weekly learning goal and track it.",
		"Write down why this career matters to you and revisit it monthly.",
	},
	"personality": {
		"Ask a colleague for feedback on how you work in teams.",
		"Try a short project in a role outside your comfort zone.",
	},
	"cognitive": {
		"Practice breaking large problems into smaller steps.",
		"Work through logic puzzles for fifteen minutes a day.",
	},
	"growth": {
		"Keep a learning journal of mistakes and what they taught you.",
		"Pick one skill you avoid and schedule time for it.",
	},
	"logicalReasoning": {
		"Solve one reasoning exercise per day.",
		"Review formal logic basics such as conditionals and negation.",
	},
	"numeracy": {
		"Refresh percentages, ratios and basic statistics.",
		"Estimate numbers in everyday situations before calculating them.",
	},
	"domainKnowledge": {
		"Complete an introductory course in the field.",
		"Read case studies from companies in the domain.",
	},
	"problemSolving": {
		"Practice timed problem sets and review your approach afterwards.",
		"Explain your solutions out loud to expose gaps.",
	},
	"will": {
		"Commit to a fixed weekly schedule for practice.",
	},
	"skill": {
		"Build a small portfolio project that uses the core tools.",
	},
	"ability": {
		"Learn one new tool end to end and note how long it took.",
	},
	"realWorld": {
		"Talk to two people working in the role about their day.",
	},
}

var genericTips = []string{"Review the material for this area and retake the assessment."}

type learningPhase struct {
	title    string
	duration string
	focus    []string
}

var learningPhases = []learningPhase{
	{
		title:    "Foundations",
		duration: "4-6 weeks",
		focus:    []string{"Core concepts", "Terminology", "Basic tooling"},
	},
	{
		title:    "Applied Practice",
		duration: "8-12 weeks",
		focus:    []string{"Guided projects", "Problem sets", "Peer review"},
	},
	{
		title:    "Professional Readiness",
		duration: "12+ weeks",
		focus:    []string{"Portfolio", "Interview preparation", "Networking"},
	},
}

// startPhase is the 1-based learning phase a recommendation starts at
func startPhase(rec model.Recommendation) int {
	if rec == model.RecommendationYes {
		return 2
	}
	return 1
}

func categoryLabel(name string) string {
	if label, ok := categoryLabels[name]; ok {
		return label
	}
	return name
}

func tipsFor(category string) []string {
	tips, ok := categoryTips[category]
	if !ok {
		tips = genericTips
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
