package repository

import "context"

// PreferenceRepository almacén clave-valor durable para las preferencias de un cliente.
// Get devuelve ("", false, nil) si la clave no existe.
type PreferenceRepository interface {
	Get(ctx context.Context, clientID, key string) (string, bool, error)
	Set(ctx context.Context, clientID, key, value string) error
}
