// Package store contiene las cachés en memoria de cada colección.
//
// Política deliberada: cada carga exitosa reemplaza la colección completa (sin merge ni
// parches incrementales). Una carga fallida no toca la colección anterior; solo registra
// el error para que la vista muestre el estado de error.
package store

import (
	"context"
	"sync"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// LoadFunc trae la colección completa desde la API.
type LoadFunc[T entity.Identifiable] func(ctx context.Context) ([]T, error)

// Store caché de una colección. Solo su propio Load la modifica.
type Store[T entity.Identifiable] struct {
	mu     sync.RWMutex
	items  []T
	err    error
	loaded bool
	load   LoadFunc[T]
}

// New construye la caché vacía.
func New[T entity.Identifiable](load LoadFunc[T]) *Store[T] {
	return &Store[T]{load: load}
}

// Load reemplaza la colección con la lista actual del servidor. En error deja la
// colección anterior y devuelve el error.
func (s *Store[T]) Load(ctx context.Context) error {
	items, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	s.items = items
	s.loaded = true
	return nil
}

// Items copia de la colección actual.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

// Snapshot colección + error de la última carga, leídos de forma consistente.
func (s *Store[T]) Snapshot() ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...), s.err
}

// Find busca por id en la caché local.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Len tamaño de la colección.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Err error de la última carga (nil si fue exitosa).
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loaded true tras al menos una carga exitosa.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
