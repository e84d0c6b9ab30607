package usecase

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes, siempre acotados a la franquicia del actor.
type CustomerUseCase struct {
	repo          repository.CustomerRepository
	franchiseRepo repository.FranchiseRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, franchiseRepo repository.FranchiseRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, franchiseRepo: franchiseRepo}
}

// Create registra un cliente en la franquicia del actor (o la indicada, si el actor no tiene franquicia).
func (uc *CustomerUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	franchiseID, err := actor.ResolveFranchise(in.FranchiseID)
	if err != nil {
		return nil, err
	}
	if franchiseID == 0 {
		return nil, domain.NewValidationError("franchiseId", "es obligatorio")
	}
	if _, err := uc.franchiseRepo.GetByID(ctx, franchiseID); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		FranchiseID:   franchiseID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := dto.FromCustomer(customer)
	return &resp, nil
}

// GetByID obtiene un cliente. Un cliente de otra franquicia se reporta como inexistente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, actor domain.Actor, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromCustomer(customer)
	return &resp, nil
}

// List clientes visibles para el actor, por apellido y nombre.
func (uc *CustomerUseCase) List(ctx context.Context, actor domain.Actor, franchiseID int64) ([]dto.CustomerResponse, error) {
	fid, err := actor.ResolveFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, fid)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// ListRecent últimos clientes creados (limit por defecto 5).
func (uc *CustomerUseCase) ListRecent(ctx context.Context, actor domain.Actor, franchiseID int64, limit int) ([]dto.CustomerResponse, error) {
	fid, err := actor.ResolveFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListRecent(ctx, fid, dto.ClampLimit(limit, dto.DefaultRecentLimit))
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// Update actualización parcial de los datos de contacto.
func (uc *CustomerUseCase) Update(ctx context.Context, actor domain.Actor, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer, err := uc.get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.ContactNumber != nil {
		customer.ContactNumber = *in.ContactNumber
	}
	if in.Email != nil {
		customer.Email = in.Email
	}
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	resp := dto.FromCustomer(customer)
	return &resp, nil
}

// Delete elimina un cliente. ErrReferencedResource si tiene pedidos.
func (uc *CustomerUseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if _, err := uc.get(ctx, actor, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CustomerUseCase) get(ctx context.Context, actor domain.Actor, id int64) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(customer.FranchiseID) {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func toCustomerResponses(list []*entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.FromCustomer(c))
	}
	return out
}
