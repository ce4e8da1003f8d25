package dto

import (
	"time"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
)

// CreateUserRequest defines the payload for creating a user.
type CreateUserRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Cargo      string `json:"cargo" binding:"required"`
	IDDistrito string `json:"id_distrito" binding:"required"`
	IDIgreja   string `json:"id_igreja" binding:"required"`
	Nascimento string `json:"nascimento" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Senha      string `json:"senha" binding:"required,min=6"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Nome       *string `json:"nome"`
	Cargo      *string `json:"cargo"`
	IDDistrito *string `json:"id_distrito"`
	IDIgreja   *string `json:"id_igreja"`
	Nascimento *string `json:"nascimento"`
	Email      *string `json:"email"`
	Senha      *string `json:"senha"`
}

// UserResponse is the outward projection of a user. The password hash is
// never serialized. JSON field names match the legacy API contract.
type UserResponse struct {
	ID           string    `json:"_id"`
	Nome         string    `json:"nome"`
	Cargo        string    `json:"cargo"`
	Igreja       string    `json:"igreja,omitempty"`
	Distrito     string    `json:"distrito,omitempty"`
	Nascimento   time.Time `json:"nascimento"`
	Email        string    `json:"email"`
	DataCadastro time.Time `json:"data_cadastro"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.UserID,
		Nome:         user.Nome,
		Cargo:        string(user.Cargo),
		Igreja:       user.IgrejaNome,
		Distrito:     user.DistritoNome,
		Nascimento:   user.Nascimento,
		Email:        user.Email,
		DataCadastro: user.DataCadastro,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
