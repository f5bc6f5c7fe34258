package dto

// RegisterRequest describes signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
}
