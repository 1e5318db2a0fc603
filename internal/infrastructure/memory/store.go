// Package memory implementa los puertos de persistencia en memoria.
// Sirve para levantar la API sin PostgreSQL (STORE_DRIVER=memory) y como doble en tests.
package memory

import (
	"sync"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// Store contiene todas las tablas. Seguro para uso concurrente.
type Store struct {
	mu         sync.RWMutex
	seq        int64
	products   map[string]*entity.Product
	productSeq map[string]int64
	categories map[string]*entity.Category
	users      map[string]*entity.User
	showcases  map[string]*entity.Showcase
	movements  []storedMovement
}

type storedMovement struct {
	seq int64
	m   entity.InventoryMovement
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		productSeq: make(map[string]int64),
		categories: make(map[string]*entity.Category),
		users:      make(map[string]*entity.User),
		showcases:  make(map[string]*entity.Showcase),
	}
}

// Products repositorio de productos sobre este almacén.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Categories repositorio de categorías sobre este almacén.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Users repositorio de perfiles sobre este almacén.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Showcases repositorio de vitrinas sobre este almacén.
func (s *Store) Showcases() *ShowcaseRepo { return &ShowcaseRepo{s: s} }

// Movements repositorio del libro de movimientos sobre este almacén.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// TxRunner runner transaccional sobre este almacén.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}
