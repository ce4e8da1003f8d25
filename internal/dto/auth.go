package dto

// RegisterRequest carries the fields needed to create the first credential
// of a staff member.
type RegisterRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Cargo      string `json:"cargo" binding:"required"`
	IDDistrito string `json:"id_distrito" binding:"required"`
	IDIgreja   string `json:"id_igreja" binding:"required"`
	Nascimento string `json:"nascimento" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Senha      string `json:"senha" binding:"required,min=6"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// GoogleExchangeCodeRequest carries the authorization code posted by the
// frontend after the Google consent screen.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
