package domain

// Recommendation is one career path suggested by the upstream model. The
// struct mirrors the JSON-array contract the recommendation prompt demands,
// and instances are transient: parsed from the reply, returned to the
// caller, never persisted.
type Recommendation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SkillsToLearn []string `json:"skills_to_learn"`
}
