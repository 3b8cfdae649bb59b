// Package preference lee y alterna las dos preferencias durables (tema y sidebar).
package preference

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// Service casos de uso sobre PreferenceRepository.
type Service struct {
	repo repository.PreferenceRepository
	log  *logger.Logger
}

// NewService construye el servicio.
func NewService(repo repository.PreferenceRepository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, log: log.Component("preference")}
}

// Load lee las preferencias del cliente. Un fallo de lectura no es fatal: se usan los
// valores por defecto.
func (s *Service) Load(ctx context.Context, clientID string) entity.Preferences {
	prefs := entity.DefaultPreferences()

	if v, ok, err := s.repo.Get(ctx, clientID, entity.PrefTheme); err != nil {
		s.log.Warn().Err(err).Str("client_id", clientID).Msg("no se pudo leer el tema")
	} else if ok && entity.Theme(v) == entity.ThemeDark {
		prefs.Theme = entity.ThemeDark
	}

	if v, ok, err := s.repo.Get(ctx, clientID, entity.PrefSidebarCollapsed); err != nil {
		s.log.Warn().Err(err).Str("client_id", clientID).Msg("no se pudo leer el sidebar")
	} else if ok {
		prefs.SidebarCollapsed, _ = strconv.ParseBool(v)
	}
	return prefs
}

// ToggleTheme alterna claro/oscuro y persiste el nuevo valor.
func (s *Service) ToggleTheme(ctx context.Context, clientID string) (entity.Theme, error) {
	next := s.Load(ctx, clientID).Theme.Toggle()
	if err := s.repo.Set(ctx, clientID, entity.PrefTheme, string(next)); err != nil {
		return "", fmt.Errorf("preference: guardar tema: %w", err)
	}
	return next, nil
}

// ToggleSidebar alterna el sidebar y persiste el nuevo valor.
func (s *Service) ToggleSidebar(ctx context.Context, clientID string) (bool, error) {
	next := !s.Load(ctx, clientID).SidebarCollapsed
	if err := s.repo.Set(ctx, clientID, entity.PrefSidebarCollapsed, strconv.FormatBool(next)); err != nil {
		return false, fmt.Errorf("preference: guardar sidebar: %w", err)
	}
	return next, nil
}
