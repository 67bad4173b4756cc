package careersdk

// SignupRequest creates a new account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse confirms account creation.
type SignupResponse struct {
	Message string `json:"message"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed session token. The token stays valid for
// 24 hours; there is no server-side revocation.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AcademicDetails is the user's education background. All fields are
// free-form strings ("90%", "Science stream", "B.Sc Computer Science").
type AcademicDetails struct {
	Grade10    string `json:"grade10"`
	Grade12    string `json:"grade12"`
	Graduation string `json:"graduation"`
}

// SaveDetailsResponse confirms the profile write.
type SaveDetailsResponse struct {
	Message string `json:"message"`
}

// RecommendRequest carries the free-text profile inputs for career
// recommendations. Fields may be empty; the upstream model just has less to
// work with.
type RecommendRequest struct {
	Skills      string `json:"skills"`
	Interests   string `json:"interests"`
	Personality string `json:"personality"`
}

// Recommendation is one suggested career path.
type Recommendation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SkillsToLearn []string `json:"skills_to_learn"`
}

// RecommendResponse carries the generated career paths verbatim.
type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// LiveSearchRequest asks a single free-text career question.
type LiveSearchRequest struct {
	Query string `json:"query"`
}

// LiveSearchResponse carries the prose answer.
type LiveSearchResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the JSON error body every failure is converted to.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
