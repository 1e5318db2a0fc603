package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var (
	_ repository.InventoryMovementRepository = (*MovementRepo)(nil)
	_ repository.ShowcaseRepository          = (*ShowcaseRepo)(nil)
	_ inventory.TxRunner                     = (*TxRunner)(nil)
)

// MovementRepo libro de movimientos en memoria (solo inserción).
type MovementRepo struct{ s *Store }

// Create agrega un movimiento.
func (r *MovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, storedMovement{seq: r.s.nextSeq(), m: *m})
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.InventoryMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sm := range r.s.movements {
		if sm.m.ID == id {
			cp := sm.m
			return &cp, nil
		}
	}
	return nil, nil
}

// List filtra y ordena por fecha descendente; a igual fecha, el último insertado primero.
func (r *MovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	r.s.mu.RLock()
	matched := make([]storedMovement, 0, len(r.s.movements))
	for _, sm := range r.s.movements {
		if matchMovement(sm.m, f) {
			matched = append(matched, sm)
		}
	}
	r.s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.m.CreatedAt.Equal(b.m.CreatedAt) {
			return a.m.CreatedAt.After(b.m.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]*entity.InventoryMovement, 0, len(matched))
	for _, sm := range matched {
		cp := sm.m
		out = append(out, &cp)
	}
	return page(out, f.Limit, f.Offset), nil
}

// SumByProduct suma cantidades por producto.
func (r *MovementRepo) SumByProduct(_ context.Context, productIDs []string) (map[string]int, error) {
	want := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		want[id] = struct{}{}
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]int)
	for _, sm := range r.s.movements {
		if len(want) > 0 {
			if _, ok := want[sm.m.ProductID]; !ok {
				continue
			}
		}
		out[sm.m.ProductID] += sm.m.Quantity
	}
	return out, nil
}

func matchMovement(m entity.InventoryMovement, f repository.MovementFilter) bool {
	if f.ProductID != "" && m.ProductID != f.ProductID {
		return false
	}
	if f.ShowcaseID != "" && m.ShowcaseID != f.ShowcaseID {
		return false
	}
	if len(f.ShowcaseIDs) > 0 && !slices.Contains(f.ShowcaseIDs, m.ShowcaseID) {
		return false
	}
	if f.From != nil && m.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && m.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

// ShowcaseRepo vitrinas en memoria.
type ShowcaseRepo struct{ s *Store }

// Create inserta una vitrina.
func (r *ShowcaseRepo) Create(_ context.Context, sc *entity.Showcase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.showcases[sc.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *sc
	r.s.showcases[sc.ID] = &cp
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ShowcaseRepo) GetByID(_ context.Context, id string) (*entity.Showcase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sc, ok := r.s.showcases[id]
	if !ok {
		return nil, nil
	}
	cp := *sc
	return &cp, nil
}

// List vitrinas más recientes primero.
func (r *ShowcaseRepo) List(_ context.Context, f repository.ShowcaseFilter) ([]*entity.Showcase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Showcase, 0)
	for _, sc := range r.s.showcases {
		if f.DistributorID != "" && sc.DistributorID != f.DistributorID {
			continue
		}
		if f.From != nil && sc.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && sc.CreatedAt.After(*f.To) {
			continue
		}
		cp := *sc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// TxRunner acumula las escrituras de fn y las aplica solo si fn termina sin error.
type TxRunner struct{ s *Store }

// Run ejecuta fn con repositorios transaccionales.
func (t *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	showcaseRepo repository.ShowcaseRepository,
) error) error {
	tx := &memTx{s: t.s}
	if err := fn(&txMovementRepo{tx: tx}, &txShowcaseRepo{tx: tx}); err != nil {
		return err
	}
	return tx.commit(ctx)
}

type memTx struct {
	s         *Store
	movements []entity.InventoryMovement
	showcases []entity.Showcase
}

func (tx *memTx) commit(_ context.Context) error {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()
	for _, sc := range tx.showcases {
		if _, ok := tx.s.showcases[sc.ID]; ok {
			return domain.ErrDuplicate
		}
	}
	for i := range tx.showcases {
		sc := tx.showcases[i]
		tx.s.showcases[sc.ID] = &sc
	}
	for _, m := range tx.movements {
		tx.s.movements = append(tx.s.movements, storedMovement{seq: tx.s.nextSeq(), m: m})
	}
	return nil
}

type txMovementRepo struct{ tx *memTx }

func (r *txMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.tx.movements = append(r.tx.movements, *m)
	return nil
}

func (r *txMovementRepo) GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error) {
	for _, m := range r.tx.movements {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return r.tx.s.Movements().GetByID(ctx, id)
}

func (r *txMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	return r.tx.s.Movements().List(ctx, f)
}

func (r *txMovementRepo) SumByProduct(ctx context.Context, productIDs []string) (map[string]int, error) {
	return r.tx.s.Movements().SumByProduct(ctx, productIDs)
}

type txShowcaseRepo struct{ tx *memTx }

func (r *txShowcaseRepo) Create(_ context.Context, sc *entity.Showcase) error {
	r.tx.showcases = append(r.tx.showcases, *sc)
	return nil
}

func (r *txShowcaseRepo) GetByID(ctx context.Context, id string) (*entity.Showcase, error) {
	for _, sc := range r.tx.showcases {
		if sc.ID == id {
			cp := sc
			return &cp, nil
		}
	}
	return r.tx.s.Showcases().GetByID(ctx, id)
}

func (r *txShowcaseRepo) List(ctx context.Context, f repository.ShowcaseFilter) ([]*entity.Showcase, error) {
	return r.tx.s.Showcases().List(ctx, f)
}
