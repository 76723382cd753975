// Package usecase orquesta los motores puros de report sobre el snapshot
// vigente y reenvía las mutaciones al backend dueño de los datos.
package usecase

import (
	"context"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/ports"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/report"
)

// ProductUseCase vista de productos: tabla filtrada+ordenada con estado de
// stock y totales, más el CRUD pass-through.
type ProductUseCase struct {
	store *SnapshotStore
	api   ports.StockAPI
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *SnapshotStore, api ports.StockAPI) *ProductUseCase {
	return &ProductUseCase{store: store, api: api}
}

// Overview computa la tabla de productos para los parámetros de vista
// actuales. Cómputo síncrono y puro sobre el snapshot: filtro → orden →
// clasificación → totales (los totales son de la colección filtrada, el
// pie "Mostrando X de Y" compara contra el snapshot completo).
func (uc *ProductUseCase) Overview(in dto.ProductListRequest) dto.ProductListDTO {
	snap := uc.store.Current()
	ix := report.NewCategoryIndex(snap.Categories)

	filtered := report.FilterProducts(snap.Products, ix, in.Search, in.CategoryID)

	if in.SortKey != "" {
		s := report.Sort{Key: report.SortKey(in.SortKey), Dir: report.Asc}
		if in.SortDir == string(report.Desc) {
			s.Dir = report.Desc
		}
		filtered = report.SortProducts(filtered, ix, s)
	}

	return dto.ProductListDTO{
		Items:        toProductRows(filtered, ix),
		ShowingCount: len(filtered),
		TotalCount:   len(snap.Products),
		TotalItems:   report.TotalItems(filtered),
		TotalValue:   report.TotalValue(filtered).Round(displayMoneyPlaces),
	}
}

// Create crea el producto en el backend y refresca el snapshot completo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (dto.ProductRowDTO, error) {
	created, err := uc.api.CreateProduct(ctx, in)
	if err != nil {
		return dto.ProductRowDTO{}, err
	}
	if err := uc.store.Refresh(ctx); err != nil {
		return dto.ProductRowDTO{}, err
	}
	ix := report.NewCategoryIndex(uc.store.Current().Categories)
	return toProductRow(*created, ix), nil
}

// Update actualiza el producto y refresca el snapshot.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (dto.ProductRowDTO, error) {
	updated, err := uc.api.UpdateProduct(ctx, id, in)
	if err != nil {
		return dto.ProductRowDTO{}, err
	}
	if err := uc.store.Refresh(ctx); err != nil {
		return dto.ProductRowDTO{}, err
	}
	ix := report.NewCategoryIndex(uc.store.Current().Categories)
	return toProductRow(*updated, ix), nil
}

// Delete elimina el producto (el backend arrastra sus movimientos) y
// refresca el snapshot.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return uc.store.Refresh(ctx)
}
