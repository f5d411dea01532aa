package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Store     StoreConfig
	DB        DBConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Checkout  CheckoutConfig
	RateLimit RateLimitConfig
	Receipt   ReceiptConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host   string
	Port   int
	Prefix string // prefijo común de rutas, ej. /api
	// CORSOrigins orígenes permitidos separados por coma; vacío = *
	CORSOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selecciona el adaptador de persistencia.
type StoreConfig struct {
	Driver string // memory | postgres
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool // ejecutar migraciones goose al arrancar
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig cuenta de administrador inicial (bootstrap).
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// CheckoutConfig reglas de negocio del checkout.
type CheckoutConfig struct {
	MinLeadDays int    // días mínimos de anticipación para la entrega
	OrderPrefix string // prefijo del número de pedido
}

// RateLimitConfig límite por IP para rutas públicas sensibles (login, registro, checkout, tracking).
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// ReceiptConfig datos impresos en el comprobante PDF del pedido.
type ReceiptConfig struct {
	StoreName   string
	TrackingURL string // base pública del seguimiento para el QR; vacío = solo el token
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, ADMIN_EMAIL, etc.
func Load() (*Config, error) {
	// .env al entorno del proceso; si no existe no es un error
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "tortas-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			Prefix:      getString(v, "HTTP_PREFIX", "/api"),
			CORSOrigins: getString(v, "CORS_ALLOW_ORIGINS", ""),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StoreMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "tortas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "tortas-api"),
		},
		Admin: AdminConfig{
			Email:    getString(v, "ADMIN_EMAIL", ""),
			Password: getString(v, "ADMIN_PASSWORD", ""),
			Name:     getString(v, "ADMIN_NAME", "Administrador"),
		},
		Checkout: CheckoutConfig{
			MinLeadDays: getInt(v, "CHECKOUT_MIN_LEAD_DAYS", 2),
			OrderPrefix: getString(v, "ORDER_PREFIX", "TM"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getInt(v, "RATE_LIMIT_PER_MINUTE", 60),
			Burst:     getInt(v, "RATE_LIMIT_BURST", 20),
		},
		Receipt: ReceiptConfig{
			StoreName:   getString(v, "STORE_NAME", "Tortas Mágicas"),
			TrackingURL: getString(v, "TRACKING_URL", ""),
		},
	}
}

// Validate verifica los valores mínimos para arrancar el servidor.
func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET es requerido"))
	}
	if c.Store.Driver != StoreMemory && c.Store.Driver != StorePostgres {
		errs = append(errs, fmt.Errorf("STORE_DRIVER inválido: %q", c.Store.Driver))
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD es requerido cuando ADMIN_EMAIL está definido"))
	}
	if c.App.Env == "production" && len(c.Admin.Password) > 0 && len(c.Admin.Password) < 12 {
		errs = append(errs, errors.New("ADMIN_PASSWORD debe tener al menos 12 caracteres en producción"))
	}
	if c.Checkout.MinLeadDays < 0 {
		errs = append(errs, errors.New("CHECKOUT_MIN_LEAD_DAYS no puede ser negativo"))
	}
	return errors.Join(errs...)
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
