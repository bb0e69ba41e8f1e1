package dto

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type SessionResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
