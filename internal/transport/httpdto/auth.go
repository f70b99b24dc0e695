package httpdto

// SignupRequest is used for POST /auth/signup
type SignupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	GenderPreference string `json:"genderPreference"`
}

// LoginRequest is used for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
