package authenticating

import (
	"testing"

	"github.com/metacore/ads-performance-api/infrastructure/repository/mocks"
	"github.com/metacore/ads-performance-api/internal/config"
	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testCfg() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testCfg())

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@metacore.com",
		PasswordHash: hashOf(t, "senha123"),
		RoleID:       domain.RoleAnalyst,
		Active:       true,
	}

	// E-mail com maiúsculas e espaços deve ser normalizado antes da consulta.
	mockRepo.EXPECT().
		GetUserByEmail("ana@metacore.com").
		Return(user, nil)

	token, err := service.LoginUser(" Ana@Metacore.com ", "senha123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.RoleAnalyst, claims.UserRoleID)
}

func TestLoginUser_Falhas(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(m *mocks.MockUserRepository)
		baseErr  error
	}{
		{
			name:     "Credenciais ausentes",
			email:    "",
			password: "",
			setup:    func(m *mocks.MockUserRepository) {},
			baseErr:  ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "x@metacore.com",
			password: "qualquer",
			setup: func(m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("x@metacore.com").Return(nil, nil)
			},
			baseErr: ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "ana@metacore.com",
			password: "senha123",
			setup: func(m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("ana@metacore.com").Return(&domain.User{
					Email:  "ana@metacore.com",
					Active: false,
				}, nil)
			},
			baseErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@metacore.com",
			password: "senha-errada",
			setup: func(m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("ana@metacore.com").Return(&domain.User{
					Email:        "ana@metacore.com",
					PasswordHash: hashOf(t, "senha123"),
					Active:       true,
				}, nil)
			},
			baseErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(mockRepo)

			service := NewService(mockRepo, testCfg())

			_, err := service.LoginUser(tt.email, tt.password)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.baseErr)
		})
	}
}

func TestValidateToken_TokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testCfg())

	_, err := service.ValidateToken("nao.e.um.jwt")

	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().GetUserByEmail("novo@metacore.com").Return(nil, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			user.ID = 42
			return user, nil
		})

	service := NewService(mockRepo, testCfg())

	created, err := service.CreateUser(&domain.User{
		Name:  "Novo",
		Email: "Novo@Metacore.com",
	}, "senha123")

	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, "novo@metacore.com", created.Email)
	assert.Equal(t, domain.RoleAnalyst, created.RoleID) // papel padrão
	assert.True(t, created.Active)

	// O hash nunca é a senha em claro.
	assert.NotEqual(t, "senha123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("senha123")))
}

func TestCreateUser_EmailJaCadastrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail("ana@metacore.com").
		Return(&domain.User{Email: "ana@metacore.com"}, nil)

	service := NewService(mockRepo, testCfg())

	_, err := service.CreateUser(&domain.User{
		Name:  "Ana",
		Email: "ana@metacore.com",
	}, "senha123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_DadosObrigatorios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testCfg())

	_, err := service.CreateUser(&domain.User{Name: "Sem Email"}, "senha123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestLoginUser_ErroDoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail("ana@metacore.com").
		Return(nil, errors.New("conexão recusada"))

	service := NewService(mockRepo, testCfg())

	_, err := service.LoginUser("ana@metacore.com", "senha123")

	require.Error(t, err)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}
