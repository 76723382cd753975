package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/controle-estoque-front/internal/application/ports"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
)

// Snapshot las tres colecciones crudas del backend, leídas de una vez.
// Es un valor inmutable: los motores de report derivan vistas sin mutarlo.
type Snapshot struct {
	Products   []entity.Product
	Categories []entity.Category
	Movements  []entity.Movement
	FetchedAt  time.Time
}

// SnapshotStore mantiene el snapshot vigente y lo refresca contra el
// backend. Las lecturas entregan el valor actual sin bloquear el refresco;
// si dos refrescos se solapan gana el que empezó más tarde (last write
// wins), el resultado del más viejo se descarta.
type SnapshotStore struct {
	api ports.StockAPI

	mu      sync.RWMutex
	current Snapshot
	started uint64 // generación del último refresco iniciado
	applied uint64 // generación del último refresco aplicado
}

// NewSnapshotStore construye el store vacío; llamar Refresh antes de servir.
func NewSnapshotStore(api ports.StockAPI) *SnapshotStore {
	return &SnapshotStore{api: api}
}

// Current devuelve el snapshot vigente.
func (s *SnapshotStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh lee las tres colecciones en paralelo (tres lecturas
// independientes, como hacía el front-end con Promise.all) y reemplaza el
// snapshot completo. Cualquier error descarta el lote entero: nunca se
// aplica un snapshot a medias.
func (s *SnapshotStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.started++
	gen := s.started
	s.mu.Unlock()

	type productsResult struct {
		items []entity.Product
		err   error
	}
	type categoriesResult struct {
		items []entity.Category
		err   error
	}
	type movementsResult struct {
		items []entity.Movement
		err   error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		items, err := s.api.FetchProducts(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := s.api.FetchCategories(ctx)
		categoriesCh <- categoriesResult{items, err}
	}()
	go func() {
		items, err := s.api.FetchMovements(ctx)
		movementsCh <- movementsResult{items, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	movements := <-movementsCh

	if products.err != nil {
		return fmt.Errorf("snapshot: productos: %w", products.err)
	}
	if categories.err != nil {
		return fmt.Errorf("snapshot: categorías: %w", categories.err)
	}
	if movements.err != nil {
		return fmt.Errorf("snapshot: movimientos: %w", movements.err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.applied {
		// un refresco más nuevo ya aplicó su resultado
		return nil
	}
	s.applied = gen
	s.current = Snapshot{
		Products:   products.items,
		Categories: categories.items,
		Movements:  movements.items,
		FetchedAt:  time.Now(),
	}
	return nil
}
