package usecase

import (
	"context"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/ports"
	"github.com/tu-usuario/controle-estoque-front/internal/domain"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/report"
)

// MovementUseCase historial de movimientos y registro de entradas/salidas.
type MovementUseCase struct {
	store *SnapshotStore
	api   ports.StockAPI
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(store *SnapshotStore, api ports.StockAPI) *MovementUseCase {
	return &MovementUseCase{store: store, api: api}
}

// History computa el historial filtrado por nombre de producto y ordenado
// por fecha; sin parámetro de sentido ordena descendente (recientes primero).
func (uc *MovementUseCase) History(in dto.MovementListRequest) dto.MovementListDTO {
	snap := uc.store.Current()
	ix := report.NewProductIndex(snap.Products)

	filtered := report.FilterMovements(snap.Movements, ix, in.Search)

	dir := report.Desc
	if in.SortDir == string(report.Asc) {
		dir = report.Asc
	}
	sorted := report.SortMovementsByDate(filtered, dir)

	items := make([]dto.MovementRowDTO, 0, len(sorted))
	for _, m := range sorted {
		items = append(items, toMovementRow(m, ix))
	}

	return dto.MovementListDTO{
		Items:        items,
		ShowingCount: len(sorted),
		TotalCount:   len(snap.Movements),
	}
}

// Register valida la forma del movimiento (tipo cerrado, cantidad positiva),
// lo crea en el backend y refresca el snapshot. La fecha la asigna el
// backend al persistir.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.CreateMovementRequest) (dto.MovementRowDTO, error) {
	if in.MovementType != entity.MovementTypeEntry && in.MovementType != entity.MovementTypeExit {
		return dto.MovementRowDTO{}, domain.ErrInvalidInput
	}
	if in.QuantityMoved <= 0 || in.ProductID <= 0 {
		return dto.MovementRowDTO{}, domain.ErrInvalidInput
	}

	created, err := uc.api.CreateMovement(ctx, in)
	if err != nil {
		return dto.MovementRowDTO{}, err
	}
	if err := uc.store.Refresh(ctx); err != nil {
		return dto.MovementRowDTO{}, err
	}
	ix := report.NewProductIndex(uc.store.Current().Products)
	return toMovementRow(*created, ix), nil
}
