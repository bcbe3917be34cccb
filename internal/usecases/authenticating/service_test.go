package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/barberia/barber-manager-api/infrastructure/repository/mocks"
	"github.com/barberia/barber-manager-api/internal/config"
	"github.com/barberia/barber-manager-api/internal/domain"
	"github.com/barberia/barber-manager-api/pkg/apiErrors"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo-de-teste"
	return cfg
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Usuário novo é criado inativo com senha cifrada e papel padrão", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("juan@barberia.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "juan@barberia.com", user.Email)
			assert.False(t, user.Active)
			assert.Equal(t, domain.RoleBarber, user.RoleID)
			assert.NotEqual(t, "senha123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
			user.ID = 10
			return user, nil
		})

		service := NewService(userRepo, newTestConfig())
		user, err := service.CreateUser(&domain.User{
			Name:         "Juan",
			Email:        " Juan@Barberia.com ",
			PasswordHash: "senha123",
		})

		assert.NoError(t, err)
		assert.Equal(t, 10, user.ID)
	})

	t.Run("Campos obrigatórios ausentes são rejeitados", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)

		service := NewService(userRepo, newTestConfig())
		_, err := service.CreateUser(&domain.User{Name: "Juan"})

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, authErr.Code)
	})

	t.Run("Email já cadastrado é rejeitado", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("juan@barberia.com").Return(&domain.User{ID: 1}, nil)

		service := NewService(userRepo, newTestConfig())
		_, err := service.CreateUser(&domain.User{
			Name:         "Juan",
			Email:        "juan@barberia.com",
			PasswordHash: "senha123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           10,
			Name:         "Juan",
			Email:        "juan@barberia.com",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
			RoleID:       domain.RoleBarber,
		}
	}

	t.Run("Login válido produz um token verificável", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("juan@barberia.com").Return(activeUser(t), nil)

		cfg := newTestConfig()
		service := NewService(userRepo, cfg)
		token, err := service.LoginUser("Juan@Barberia.com", "senha123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 10, claims.UserID)
		assert.Equal(t, domain.RoleBarber, claims.UserRoleID)
	})

	t.Run("Usuário inexistente não recebe token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ghost@barberia.com").Return(nil, nil)

		service := NewService(userRepo, newTestConfig())
		_, err := service.LoginUser("ghost@barberia.com", "senha123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Conta desativada é recusada com o ID no erro", func(t *testing.T) {
		user := activeUser(t)
		user.Active = false

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("juan@barberia.com").Return(user, nil)

		service := NewService(userRepo, newTestConfig())
		_, err := service.LoginUser("juan@barberia.com", "senha123")

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, err, ErrUserDisabled)
		assert.Equal(t, 10, authErr.UserID)
	})

	t.Run("Senha incorreta vira credenciais inválidas", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("juan@barberia.com").Return(activeUser(t), nil)

		service := NewService(userRepo, newTestConfig())
		_, err := service.LoginUser("juan@barberia.com", "senha-errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Email e senha são obrigatórios", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)

		service := NewService(userRepo, newTestConfig())
		_, err := service.LoginUser("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("juan@barberia.com").Return(&domain.User{
			ID:           10,
			Email:        "juan@barberia.com",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
		}, nil)

		issuer := NewService(userRepo, newTestConfig())
		token, err := issuer.LoginUser("juan@barberia.com", "senha123")
		assert.NoError(t, err)

		otherCfg := &config.Config{}
		otherCfg.Auth.Secret = "outro-segredo"
		verifier := NewService(mocks.NewMockUserRepository(ctrl), otherCfg)

		_, err = verifier.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Token malformado é rejeitado", func(t *testing.T) {
		service := NewService(mocks.NewMockUserRepository(ctrl), newTestConfig())

		_, err := service.ValidateToken("nao-e-um-token")
		assert.Error(t, err)
	})
}

func TestGetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Perfil retorna sem o hash da senha", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(10).Return(&domain.User{
			ID:           10,
			Name:         "Juan",
			PasswordHash: "hash-qualquer",
		}, nil)

		service := NewService(userRepo, newTestConfig())
		user, err := service.GetUserProfile(10)

		assert.NoError(t, err)
		assert.Equal(t, "Juan", user.Name)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente vira não encontrado", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		service := NewService(userRepo, newTestConfig())
		_, err := service.GetUserProfile(99)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestHandleEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" Juan@Barberia.com ", "juan@barberia.com"},
		{"JUAN @ BARBERIA.COM", "juan@barberia.com"},
		{"juan@barberia.com", "juan@barberia.com"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, handleEmail(tc.in))
	}
}
