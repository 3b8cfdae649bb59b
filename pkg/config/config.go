package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del dashboard (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	HTTP    HTTPConfig
	Notify  NotifyConfig
	Health  HealthConfig
	Prefs   PrefsConfig
	Session SessionConfig
	DB      DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig apunta a la API REST de inventario (colaborador externo).
type APIConfig struct {
	BaseURL string        // ej. https://crud-api.example.com/api (sin "/" final)
	Timeout time.Duration // 0 = sin timeout propio, se delega al transporte
}

// HTTPConfig configuración del servidor HTTP del dashboard.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NotifyConfig duración por defecto de las notificaciones.
type NotifyConfig struct {
	Duration time.Duration
}

// HealthConfig programación cron del chequeo de conectividad con la API.
type HealthConfig struct {
	Schedule string
}

// SessionConfig limpieza de sesiones inactivas.
type SessionConfig struct {
	IdleTimeout   time.Duration
	SweepSchedule string
}

// PrefsConfig dónde se guardan las preferencias (tema, sidebar).
type PrefsConfig struct {
	Driver string // file | postgres
	Path   string // archivo YAML cuando Driver = file
}

// DBConfig configuración de PostgreSQL (solo si PREFS_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad; .env se carga primero con godotenv.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignoramos error si no existe .env

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "StockSync Pro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:3000/api"), "/"),
			Timeout: getDuration(v, "API_TIMEOUT", 0),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Notify: NotifyConfig{
			Duration: getDuration(v, "NOTIFY_DURATION", 5*time.Second),
		},
		Health: HealthConfig{
			Schedule: getString(v, "HEALTH_SCHEDULE", "@every 30s"),
		},
		Prefs: PrefsConfig{
			Driver: strings.ToLower(getString(v, "PREFS_DRIVER", "file")),
			Path:   getString(v, "PREFS_PATH", "./data/preferences.yaml"),
		},
		Session: SessionConfig{
			IdleTimeout:   getDuration(v, "SESSION_IDLE_TIMEOUT", 2*time.Hour),
			SweepSchedule: getString(v, "SESSION_SWEEP_SCHEDULE", "@every 10m"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "stocksync"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	if _, err := url.ParseRequestURI(cfg.API.BaseURL); err != nil {
		return nil, fmt.Errorf("config: API_BASE_URL inválido: %w", err)
	}
	switch cfg.Prefs.Driver {
	case "file", "postgres":
	default:
		return nil, fmt.Errorf("config: PREFS_DRIVER desconocido %q", cfg.Prefs.Driver)
	}
	if cfg.Notify.Duration <= 0 {
		cfg.Notify.Duration = 5 * time.Second
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "5s", "250ms" o un entero en milisegundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
