package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um usuário da plataforma (dono, gerente ou profissional do salão)
type User struct {
	ID             int        `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Lastname       string     `json:"lastname"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"password"`
	Active         bool       `json:"active"`
	RoleID         int        `json:"role_id"`
	AvatarURL      *string    `json:"avatar_url"`
	Deleted        bool       `json:"deleted"`
	DeletedAt      *time.Time `json:"deleted_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UpdateUserRequest é a atualização parcial de um usuário: só os campos
// presentes são aplicados
type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"role_id"`
	AvatarURL *string `json:"avatar_url"`
	Deleted   *bool   `json:"deleted"`
}

// Claims são os dados do usuário carregados no token JWT
type Claims struct {
	UserID             int
	UserName           string
	UserEmail          string
	UserActive         bool
	UserRoleID         int
	UserOrganizationID string
	jwt.RegisteredClaims
}
