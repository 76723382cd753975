// Package ports define los colaboradores externos de la capa de aplicación.
package ports

import (
	"context"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// StockAPI es el backend remoto dueño de todo el estado persistente. Este
// servicio solo lee las tres colecciones y le reenvía las mutaciones; tras
// cada mutación exitosa el snapshot en memoria se refresca completo.
type StockAPI interface {
	FetchProducts(ctx context.Context) ([]entity.Product, error)
	FetchCategories(ctx context.Context) ([]entity.Category, error)
	FetchMovements(ctx context.Context) ([]entity.Movement, error)

	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateMovement(ctx context.Context, in dto.CreateMovementRequest) (*entity.Movement, error)
}

// BalancePDFGenerator genera la representación PDF del reporte de balance.
type BalancePDFGenerator interface {
	GenerateBalancePDF(ctx context.Context, balance dto.BalanceDTO, rollups []dto.CategoryRollupDTO) ([]byte, error)
}
