package models

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdateRequest struct {
	Name       *string `json:"name"`
	Age        *int    `json:"age"`
	Experience *int    `json:"experience"`
	JobTitle   *string `json:"job_title"`
}

type JobProfileRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	TechnicalSkills    []string `json:"technical_skills"`
	SoftSkills         []string `json:"soft_skills"`
	ExperienceReq      string   `json:"experience_req"`
	EvaluationFocus    string   `json:"evaluation_focus"`
	CustomInstructions string   `json:"custom_instructions"`
	Active             *bool    `json:"active"`
}

type CreateInterviewRequest struct {
	JobProfileID    string `json:"job_profile_id"`
	ExperienceLevel string `json:"experience_level"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Question   *Question `json:"question,omitempty"`
	Message    string    `json:"message,omitempty"`
	Done       bool      `json:"done"`
	Evaluation any       `json:"evaluation,omitempty"`
}

type QueryRequest struct {
	Query   string `json:"query"`
	Context string `json:"context"`
	Format  string `json:"format"`
}

type QueryResponse struct {
	Response string `json:"response"`
	Format   string `json:"format"`
}
