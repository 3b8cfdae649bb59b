// Package localprefs guarda las preferencias en un archivo YAML local usando Viper.
//
// Formato:
//
//	<client-id>:
//	  theme: dark
//	  sidebarcollapsed: "true"
//
// Viper normaliza las claves a minúsculas; Get es insensible a mayúsculas.
package localprefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*Store)(nil)

// Store almacén de preferencias respaldado por un archivo. Viper no es seguro para uso
// concurrente, por eso todo acceso pasa por mu.
type Store struct {
	path string

	mu sync.Mutex
	v  *viper.Viper
}

// New abre (o prepara) el archivo path. Un archivo inexistente no es error.
func New(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("localprefs: leer %s: %w", path, err)
		}
	}
	return &Store{path: path, v: v}, nil
}

func key(clientID, name string) string { return clientID + "." + name }

// Get implementa PreferenceRepository.
func (s *Store) Get(_ context.Context, clientID, name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(clientID, name)
	if !s.v.IsSet(k) {
		return "", false, nil
	}
	return s.v.GetString(k), true, nil
}

// Set implementa PreferenceRepository y reescribe el archivo completo.
func (s *Store) Set(_ context.Context, clientID, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key(clientID, name), value)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("localprefs: crear directorio: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("localprefs: escribir %s: %w", s.path, err)
	}
	return nil
}
