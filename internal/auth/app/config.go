package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	JWTSecret string `env:"JWT_SIGNATURE_SECRET,required,notEmpty"` // HS256 secret
	Salt      string `env:"PASSWORD_HASH_SALT,required,notEmpty"`   // appended to passwords before hashing

	AccessTTLMinutes  int `env:"ACCESS_TOKEN_TTL_IN_MINUTES" envDefault:"60"`
	RefreshTTLMinutes int `env:"REFRESH_TOKEN_TTL_IN_MINUTES" envDefault:"43200"` // 30 days

	Admin DefaultAdmin `envPrefix:"DEFAULT_ADMIN_"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"` // sqlite or postgres
	DBFile   string `env:"DB_FILE" envDefault:"auth.db"`
	DBURL    string `env:"DB_URL"` // postgres only

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// Housekeeping is off unless an interval is set.
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"0s"`
	TokenRetention       time.Duration `env:"TOKEN_RETENTION" envDefault:"720h"`
}

// DefaultAdmin seeds the first administrator of an empty database. An empty
// password is replaced by a generated one.
type DefaultAdmin struct {
	Email     string `env:"EMAIL" envDefault:"admin@example.com"`
	Password  string `env:"PASSWORD"`
	Firstname string `env:"FIRSTNAME" envDefault:"Default"`
	Surname   string `env:"SURNAME" envDefault:"Administrator"`
}

func (c Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

func (c Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLMinutes) * time.Minute
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(nil)
}

// LoadConfigFrom reads the configuration from vars, or from the process
// environment when vars is nil.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBFile == "" {
			errs = append(errs, errors.New("DB_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DBURL == "" {
			errs = append(errs, errors.New("DB_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported", c.DBDriver))
	}
	if c.AccessTTLMinutes <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL_IN_MINUTES must be positive"))
	}
	if c.RefreshTTLMinutes <= 0 {
		errs = append(errs, errors.New("REFRESH_TOKEN_TTL_IN_MINUTES must be positive"))
	}
	if c.HousekeepingInterval < 0 {
		errs = append(errs, errors.New("HOUSEKEEPING_INTERVAL must not be negative"))
	}
	return errors.Join(errs...)
}
