// Package memory implementa los puertos de repositorio en memoria (STORAGE_DRIVER=memory y tests).
// Reproduce las garantías que en PostgreSQL dan las constraints: unicidad, FKs y borrado en cascada.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// Store guarda todas las tablas. Es seguro para uso concurrente.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	seq      map[string]int64
	users    map[int64]entity.User
	clients  map[int64]entity.Client
	products map[int64]entity.Product
	orders   map[int64]entity.Order
	links    map[int64]map[int64]time.Time // order_id -> product_id -> created_at
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		now:      time.Now,
		seq:      make(map[string]int64),
		users:    make(map[int64]entity.User),
		clients:  make(map[int64]entity.Client),
		products: make(map[int64]entity.Product),
		orders:   make(map[int64]entity.Order),
		links:    make(map[int64]map[int64]time.Time),
	}
}

// WithClock fija el reloj usado para timestamps (tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Repositories devuelve los repos sobre este store; cada operación toma mu.
func (s *Store) Repositories() repository.Repositories {
	return s.repositories(&s.mu)
}

func (s *Store) repositories(lk locker) repository.Repositories {
	return repository.Repositories{
		Users:    &UserRepo{s: s, lk: lk},
		Clients:  &ClientRepo{s: s, lk: lk},
		Products: &ProductRepo{s: s, lk: lk},
		Orders:   &OrderRepo{s: s, lk: lk},
	}
}

// locker lo cumple *sync.RWMutex. Dentro de una transacción los repos usan heldLock.
type locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// heldLock no bloquea: el TxRunner ya tiene mu tomado en escritura.
type heldLock struct{}

func (heldLock) Lock()    {}
func (heldLock) Unlock()  {}
func (heldLock) RLock()   {}
func (heldLock) RUnlock() {}

// nextID simula BIGSERIAL por tabla. Llamar con mu tomado.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

type snapshot struct {
	seq      map[string]int64
	users    map[int64]entity.User
	clients  map[int64]entity.Client
	products map[int64]entity.Product
	orders   map[int64]entity.Order
	links    map[int64]map[int64]time.Time
}

// snapshot copia las tablas. Llamar con mu tomado.
func (s *Store) snapshot() snapshot {
	links := make(map[int64]map[int64]time.Time, len(s.links))
	for id, set := range s.links {
		links[id] = maps.Clone(set)
	}
	return snapshot{
		seq:      maps.Clone(s.seq),
		users:    maps.Clone(s.users),
		clients:  maps.Clone(s.clients),
		products: maps.Clone(s.products),
		orders:   maps.Clone(s.orders),
		links:    links,
	}
}

// restore reemplaza las tablas por snap. Llamar con mu tomado.
func (s *Store) restore(snap snapshot) {
	s.seq = snap.seq
	s.users = snap.users
	s.clients = snap.clients
	s.products = snap.products
	s.orders = snap.orders
	s.links = snap.links
}

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn con mu tomado en escritura durante toda la transacción.
// El resto de lecturas y escrituras del store esperan al commit o rollback,
// así el rollback sólo deshace lo que hizo fn.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre s.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos de la transacción; si fn devuelve error se restaura el estado previo.
// fn no debe usar repos obtenidos con Store.Repositories: bloquearía.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	if err := fn(r.s.repositories(heldLock{})); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
