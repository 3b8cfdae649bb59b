package repository

import (
	"context"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// Deleter lo mínimo que necesita el flujo de borrado: DELETE /{kind}/{id}.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// Deleters borrado por tipo de entidad.
type Deleters map[entity.Kind]Deleter
