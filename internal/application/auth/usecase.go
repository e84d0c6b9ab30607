package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	franchiseRepo repository.FranchiseRepository
	jwtCfg        JWTConfig
	bcryptCost    int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, franchiseRepo repository.FranchiseRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, franchiseRepo: franchiseRepo, jwtCfg: jwtCfg, bcryptCost: bcrypt.DefaultCost}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste. ErrDuplicate si username o email ya existen.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.FranchiseID != nil {
		if _, err := uc.franchiseRepo.GetByID(ctx, *in.FranchiseID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("franchiseId", "la franquicia no existe")
			}
			return nil, err
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleStaff
	}
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Role:         role,
		FranchiseID:  in.FranchiseID,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// Login verifica usuario/password, genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByLogin(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.FranchiseIDOrZero(), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return &dto.LoginResponse{Token: token, User: dto.FromUser(user)}, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}
