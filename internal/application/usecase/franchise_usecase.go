package usecase

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// FranchiseUseCase aplica reglas de negocio para franquicias.
type FranchiseUseCase struct {
	repo repository.FranchiseRepository
}

// NewFranchiseUseCase construye el caso de uso con el puerto de persistencia.
func NewFranchiseUseCase(repo repository.FranchiseRepository) *FranchiseUseCase {
	return &FranchiseUseCase{repo: repo}
}

// Create crea una franquicia (activa por defecto).
func (uc *FranchiseUseCase) Create(ctx context.Context, in dto.CreateFranchiseRequest) (*dto.FranchiseResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	franchise := &entity.Franchise{
		Name:          in.Name,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
		IsActive:      true,
	}
	if in.IsActive != nil {
		franchise.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, franchise); err != nil {
		return nil, err
	}
	resp := dto.FromFranchise(franchise)
	return &resp, nil
}

// GetByID obtiene una franquicia. Un actor ligado a otra franquicia no la ve.
func (uc *FranchiseUseCase) GetByID(ctx context.Context, actor domain.Actor, id int64) (*dto.FranchiseResponse, error) {
	if !actor.CanAccess(id) {
		return nil, domain.ErrNotFound
	}
	franchise, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromFranchise(franchise)
	return &resp, nil
}

// List franquicias visibles para el actor.
func (uc *FranchiseUseCase) List(ctx context.Context, actor domain.Actor) ([]dto.FranchiseResponse, error) {
	if actor.FranchiseID != 0 {
		franchise, err := uc.repo.GetByID(ctx, actor.FranchiseID)
		if err != nil {
			return nil, err
		}
		return []dto.FranchiseResponse{dto.FromFranchise(franchise)}, nil
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FranchiseResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.FromFranchise(f))
	}
	return out, nil
}
