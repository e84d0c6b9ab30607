package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// ProductUseCase casos de uso CRUD del catálogo. El stock se maneja vía inventario.
type ProductUseCase struct {
	repo                     repository.ProductRepository
	defaultLowStockThreshold int
}

// NewProductUseCase construye el caso de uso. defaultLowStockThreshold se aplica cuando el
// producto no define su propio umbral.
func NewProductUseCase(repo repository.ProductRepository, defaultLowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{repo: repo, defaultLowStockThreshold: defaultLowStockThreshold}
}

// Create crea un producto. ErrDuplicate si el código ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	expiry, _ := time.Parse(dto.DateLayout, in.ExpiryDate)
	threshold := uc.defaultLowStockThreshold
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}
	product := &entity.Product{
		PrCode:               in.PrCode,
		Category:             in.Category,
		Manufacturer:         in.Manufacturer,
		Name:                 in.Name,
		Packing:              in.Packing,
		MRP:                  in.MRP,
		CasePack:             in.CasePack,
		Composition:          in.Composition,
		GST:                  in.GST,
		Discount:             in.Discount,
		ExpiryDate:           expiry,
		PrescriptionRequired: in.PrescriptionRequired,
		Supplier:             in.Supplier,
		LowStockThreshold:    threshold,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// GetByID obtiene un producto por código.
func (uc *ProductUseCase) GetByID(ctx context.Context, prCode int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, prCode)
	if err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// Update aplica una actualización parcial. Solo se modifican los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, prCode int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	verr := &domain.ValidationError{}
	if in.MRP != nil && in.MRP.IsNegative() {
		verr.Add("mrp", "debe ser mayor o igual a 0")
	}
	if in.GST != nil && !percentage(*in.GST) {
		verr.Add("gst", "debe estar entre 0 y 100")
	}
	if in.Discount != nil && !percentage(*in.Discount) {
		verr.Add("discount", "debe estar entre 0 y 100")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	product, err := uc.repo.GetByID(ctx, prCode)
	if err != nil {
		return nil, err
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Manufacturer != nil {
		product.Manufacturer = *in.Manufacturer
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Packing != nil {
		product.Packing = *in.Packing
	}
	if in.MRP != nil {
		product.MRP = *in.MRP
	}
	if in.CasePack != nil {
		product.CasePack = *in.CasePack
	}
	if in.Composition != nil {
		product.Composition = in.Composition
	}
	if in.GST != nil {
		product.GST = *in.GST
	}
	if in.Discount != nil {
		product.Discount = *in.Discount
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate, _ = time.Parse(dto.DateLayout, *in.ExpiryDate)
	}
	if in.PrescriptionRequired != nil {
		product.PrescriptionRequired = *in.PrescriptionRequired
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// List lista el catálogo por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return items, nil
}

// Delete elimina un producto. ErrReferencedResource si aparece en pedidos.
func (uc *ProductUseCase) Delete(ctx context.Context, prCode int64) error {
	return uc.repo.Delete(ctx, prCode)
}

func percentage(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundred)
}
