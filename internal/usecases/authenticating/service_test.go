package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-ops-api/internal/config"
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository, t *testing.T)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login válido emite token com os dados do usuário",
			email:    " Ana@Salao.com ",
			password: "Senha@Forte1",
			setup: func(userRepo *mocks.MockUserRepository, t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ana@salao.com").
					Return(&domain.User{
						ID:             10,
						OrganizationID: "ORG1",
						Name:           "Ana",
						Email:          "ana@salao.com",
						Active:         true,
						RoleID:         2,
						PasswordHash:   hashFor(t, "Senha@Forte1"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ana@salao.com",
			password: "errada",
			setup: func(userRepo *mocks.MockUserRepository, t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ana@salao.com").
					Return(&domain.User{
						ID:           10,
						Active:       true,
						PasswordHash: hashFor(t, "Senha@Forte1"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.True(t, errors.Is(err, ErrInvalidCredentials))
			},
		},
		{
			name:     "Conta desativada não loga",
			email:    "ana@salao.com",
			password: "Senha@Forte1",
			setup: func(userRepo *mocks.MockUserRepository, t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ana@salao.com").
					Return(&domain.User{
						ID:           10,
						Active:       false,
						PasswordHash: hashFor(t, "Senha@Forte1"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.True(t, errors.Is(err, ErrUserDisabled))
			},
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@salao.com",
			password: "qualquer",
			setup: func(userRepo *mocks.MockUserRepository, t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ninguem@salao.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.True(t, errors.Is(err, ErrUserNotFound))
			},
		},
		{
			name:     "Credenciais vazias nem consultam o banco",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository, t *testing.T) {},
			validate: func(t *testing.T, token string, err error) {
				assert.True(t, errors.Is(err, ErrMissingRequiredData))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo, t)

			token, err := NewService(userRepo, testConfig()).LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestLoginEValidateTokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByEmail("ana@salao.com").
		Return(&domain.User{
			ID:             10,
			OrganizationID: "ORG1",
			Name:           "Ana",
			Email:          "ana@salao.com",
			Active:         true,
			RoleID:         2,
			PasswordHash:   hashFor(t, "Senha@Forte1"),
		}, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("ana@salao.com", "Senha@Forte1")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 10, claims.UserID)
	assert.Equal(t, "ORG1", claims.UserOrganizationID)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha forte passa", password: "Senha@Forte1", valid: true},
		{name: "Curta demais", password: "S@f1", valid: false},
		{name: "Sem maiúscula", password: "senha@forte1", valid: false},
		{name: "Sem número", password: "Senha@Forte", valid: false},
		{name: "Sem caractere especial", password: "SenhaForte1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
