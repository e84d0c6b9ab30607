package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// StockQuantity en las lecturas es la suma del inventario de todas las franquicias.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, prCode int64) (*entity.Product, error)
	// GetByIDs devuelve los productos encontrados indexados por código.
	GetByIDs(ctx context.Context, prCodes []int64) (map[int64]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// List ordena por nombre.
	List(ctx context.Context) ([]*entity.Product, error)
	// Delete ErrReferencedResource si el producto tiene pedidos.
	Delete(ctx context.Context, prCode int64) error
}
