package usecase

import (
	"context"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/ports"
	"github.com/tu-usuario/controle-estoque-front/internal/domain"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/report"
)

// CategoryUseCase listado de categorías con contadores de productos, cálculo
// de impacto de borrado y CRUD pass-through.
type CategoryUseCase struct {
	store *SnapshotStore
	api   ports.StockAPI
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(store *SnapshotStore, api ports.StockAPI) *CategoryUseCase {
	return &CategoryUseCase{store: store, api: api}
}

// List computa el listado filtrado con el badge "N produto(s)" por fila.
func (uc *CategoryUseCase) List(in dto.CategoryListRequest) dto.CategoryListDTO {
	snap := uc.store.Current()

	filtered := report.FilterCategories(snap.Categories, in.Search)

	counts := make(map[int64]int, len(snap.Categories))
	for _, p := range snap.Products {
		counts[p.CategoryID]++
	}

	items := make([]dto.CategoryRowDTO, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, dto.CategoryRowDTO{
			ID:              c.ID,
			Name:            c.Name,
			Size:            c.Size,
			Packaging:       c.Packaging,
			DisplayName:     report.DisplayName(c),
			DisplayNameFull: report.DisplayNameFull(c),
			ProductCount:    counts[c.ID],
		})
	}

	return dto.CategoryListDTO{
		Items:        items,
		ShowingCount: len(filtered),
		TotalCount:   len(snap.Categories),
	}
}

// DeleteImpact cuenta cuántos productos y movimientos arrastraría el borrado
// en cascada de la categoría. La UI muestra estos números en el diálogo de
// confirmación antes de autorizar el Delete.
func (uc *CategoryUseCase) DeleteImpact(id int64) (dto.DeleteImpactDTO, error) {
	snap := uc.store.Current()

	ix := report.NewCategoryIndex(snap.Categories)
	c, ok := ix.Resolve(id)
	if !ok {
		return dto.DeleteImpactDTO{}, domain.ErrNotFound
	}

	related := make(map[int64]bool)
	for _, p := range snap.Products {
		if p.CategoryID == id {
			related[p.ID] = true
		}
	}
	movements := 0
	for _, m := range snap.Movements {
		if related[m.ProductID] {
			movements++
		}
	}

	return dto.DeleteImpactDTO{
		CategoryID:       id,
		CategoryName:     c.Name,
		RelatedProducts:  len(related),
		RelatedMovements: movements,
	}, nil
}

// Create crea la categoría en el backend y refresca el snapshot.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (dto.CategoryRowDTO, error) {
	created, err := uc.api.CreateCategory(ctx, in)
	if err != nil {
		return dto.CategoryRowDTO{}, err
	}
	if err := uc.store.Refresh(ctx); err != nil {
		return dto.CategoryRowDTO{}, err
	}
	return dto.CategoryRowDTO{
		ID:              created.ID,
		Name:            created.Name,
		Size:            created.Size,
		Packaging:       created.Packaging,
		DisplayName:     report.DisplayName(*created),
		DisplayNameFull: report.DisplayNameFull(*created),
	}, nil
}

// Update actualiza la categoría y refresca el snapshot.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (dto.CategoryRowDTO, error) {
	updated, err := uc.api.UpdateCategory(ctx, id, in)
	if err != nil {
		return dto.CategoryRowDTO{}, err
	}
	if err := uc.store.Refresh(ctx); err != nil {
		return dto.CategoryRowDTO{}, err
	}
	row := dto.CategoryRowDTO{
		ID:              updated.ID,
		Name:            updated.Name,
		Size:            updated.Size,
		Packaging:       updated.Packaging,
		DisplayName:     report.DisplayName(*updated),
		DisplayNameFull: report.DisplayNameFull(*updated),
	}
	for _, p := range uc.store.Current().Products {
		if p.CategoryID == id {
			row.ProductCount++
		}
	}
	return row, nil
}

// Delete pide el borrado al backend, que ejecuta la cascada (productos de
// la categoría y sus movimientos), y refresca el snapshot. El llamador debe
// haber confirmado con DeleteImpact antes.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.api.DeleteCategory(ctx, id); err != nil {
		return err
	}
	return uc.store.Refresh(ctx)
}
