package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
	"github.com/jhoicas/farmacia-api/pkg/jwt"
)

const testSecret = "test-secret"

func newTestUseCase(t *testing.T) (*AuthUseCase, *memory.Store, *entity.Franchise) {
	t.Helper()
	store := memory.NewStore()
	franchise := &entity.Franchise{Name: "Centro", Address: "Calle 1", ContactNumber: "1", Email: "c@f.test", IsActive: true}
	require.NoError(t, store.Franchises().Create(context.Background(), franchise))
	uc := NewAuthUseCase(store.Users(), store.Franchises(), JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "farmacia-test"})
	uc.bcryptCost = bcrypt.MinCost
	return uc, store, franchise
}

func registerRequest(franchiseID *int64) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:   "Marta",
		LastName:    "Ruiz",
		Username:    "mruiz",
		Password:    "s3cret-pass",
		Email:       "MRuiz@Farmacia.test",
		FranchiseID: franchiseID,
	}
}

func TestRegisterUser(t *testing.T) {
	uc, store, franchise := newTestUseCase(t)
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, registerRequest(&franchise.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.Equal(t, "mruiz@farmacia.test", user.Email)
	assert.True(t, user.IsActive)

	stored, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)

	_, err = uc.RegisterUser(ctx, registerRequest(&franchise.ID))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterUser_Validaciones(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	missing := int64(404)
	_, err := uc.RegisterUser(ctx, registerRequest(&missing))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	short := registerRequest(nil)
	short.Password = "corta"
	_, err = uc.RegisterUser(ctx, short)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badRole := registerRequest(nil)
	badRole.Role = "root"
	_, err = uc.RegisterUser(ctx, badRole)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	uc, _, franchise := newTestUseCase(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, registerRequest(&franchise.ID))
	require.NoError(t, err)

	for _, login := range []string{"mruiz", "mruiz@farmacia.test"} {
		out, err := uc.Login(ctx, dto.LoginRequest{Username: login, Password: "s3cret-pass"})
		require.NoError(t, err, login)
		require.NotNil(t, out.User.LastLogin)

		claims, err := jwt.Parse(testSecret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, out.User.ID, claims.UserID)
		assert.Equal(t, franchise.ID, claims.FranchiseID)
		assert.Equal(t, domain.RoleStaff, claims.Role)
	}

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "mruiz", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(ctx, &entity.User{
		Username: "baja", Email: "baja@farmacia.test", PasswordHash: string(hash), Role: domain.RoleStaff, IsActive: false,
	}))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "baja", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()
	user, err := uc.RegisterUser(ctx, registerRequest(nil))
	require.NoError(t, err)

	me, err := uc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "mruiz", me.Username)
	assert.Nil(t, me.FranchiseID)

	_, err = uc.Me(ctx, 12345)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
