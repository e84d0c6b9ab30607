package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
)

func newCustomerRequest(first, last string) dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{FirstName: first, LastName: last, Address: "Calle 1", ContactNumber: "555-0100"}
}

func TestCustomerUseCase(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	centro := &entity.Franchise{Name: "Centro", IsActive: true}
	norte := &entity.Franchise{Name: "Norte", IsActive: true}
	require.NoError(t, store.Franchises().Create(ctx, centro))
	require.NoError(t, store.Franchises().Create(ctx, norte))
	uc := usecase.NewCustomerUseCase(store.Customers(), store.Franchises())

	staff := domain.Actor{UserID: 2, FranchiseID: centro.ID, Role: domain.RoleStaff}
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	for i := 0; i < 6; i++ {
		_, err := uc.Create(ctx, staff, newCustomerRequest(fmt.Sprintf("Cliente%d", i), "Zapata"))
		require.NoError(t, err)
	}
	ana, err := uc.Create(ctx, staff, newCustomerRequest("Ana", "Álvarez"))
	require.NoError(t, err)
	assert.Equal(t, centro.ID, ana.FranchiseID)

	adminReq := newCustomerRequest("Luis", "Norte")
	_, err = uc.Create(ctx, admin, adminReq)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "admin sin franquicia debe indicarla")
	adminReq.FranchiseID = norte.ID
	luis, err := uc.Create(ctx, admin, adminReq)
	require.NoError(t, err)

	list, err := uc.List(ctx, staff, 0)
	require.NoError(t, err)
	assert.Len(t, list, 7)

	all, err := uc.List(ctx, admin, 0)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	recent, err := uc.ListRecent(ctx, staff, 0, 0)
	require.NoError(t, err)
	require.Len(t, recent, dto.DefaultRecentLimit)
	assert.Equal(t, ana.ID, recent[0].ID)

	_, err = uc.GetByID(ctx, staff, luis.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente de otra franquicia")

	email := "ana@correo.test"
	updated, err := uc.Update(ctx, staff, ana.ID, dto.UpdateCustomerRequest{Email: &email})
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, email, *updated.Email)
	assert.Equal(t, "Ana", updated.FirstName)

	require.NoError(t, uc.Delete(ctx, staff, ana.ID))
	_, err = uc.GetByID(ctx, staff, ana.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
