package rolekeeper

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/config"
	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads the TOML file at path over DefaultConfig and then applies
// ROLEKEEPER_* environment overrides. A missing file is fine when the
// environment carries everything.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	case os.IsNotExist(err):
		slog.Warn("Config file not found, using defaults and environment",
			slog.String("type", "sys"),
			slog.String("path", path))
	default:
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	if err = env.ParseWithOptions(&cfg, env.Options{Prefix: "ROLEKEEPER_"}); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log       LogConfig       `toml:"log" envPrefix:"LOG_"`
	Bot       BotConfig       `toml:"bot" envPrefix:""`
	DB        DBConfig        `toml:"db" envPrefix:"DB_"`
	Ledger    LedgerConfig    `toml:"ledger" envPrefix:"LEDGER_"`
	Economy   EconomyConfig   `toml:"economy" envPrefix:"ECONOMY_"`
	Deadlines DeadlinesConfig `toml:"deadlines" envPrefix:"DEADLINES_"`
	Metrics   MetricsConfig   `toml:"metrics" envPrefix:"METRICS_"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token" env:"TOKEN"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level" env:"LEVEL"`
	Format    string     `toml:"format" env:"FORMAT"`
	AddSource bool       `toml:"add_source" env:"ADD_SOURCE"`
}

type DBConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver       string `toml:"driver" env:"DRIVER"`
	Path         string `toml:"path" env:"PATH"`
	Host         string `toml:"host" env:"HOST"`
	Port         int    `toml:"port" env:"PORT"`
	User         string `toml:"user" env:"USER"`
	Password     string `toml:"password" env:"PASSWORD"`
	Database     string `toml:"database" env:"NAME"`
	PoolSize     int    `toml:"pool_size" env:"POOL_SIZE"`
	MaxIdleConns int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	MaxLifetime  int    `toml:"max_lifetime" env:"MAX_LIFETIME"`
}

type LedgerConfig struct {
	MaxOwnedRoles    int             `toml:"max_owned_roles" env:"MAX_OWNED_ROLES"`
	MaxBalance       int64           `toml:"max_balance" env:"MAX_BALANCE"`
	GrantCooldown    config.Duration `toml:"grant_cooldown" env:"GRANT_COOLDOWN"`
	NewRoleCooldown  config.Duration `toml:"new_role_cooldown" env:"NEW_ROLE_COOLDOWN"`
	TransferCooldown config.Duration `toml:"transfer_cooldown" env:"TRANSFER_COOLDOWN"`
	InitialLifetime  config.Duration `toml:"initial_lifetime" env:"INITIAL_LIFETIME"`
	MaxExtendSeconds int64           `toml:"max_extend_seconds" env:"MAX_EXTEND_SECONDS"`
	ReplyTTL         config.Duration `toml:"reply_ttl" env:"REPLY_TTL"`
}

type EconomyConfig struct {
	IncomeAmount   int64           `toml:"income_amount" env:"INCOME_AMOUNT"`
	IncomeInterval config.Duration `toml:"income_interval" env:"INCOME_INTERVAL"`
}

type DeadlinesConfig struct {
	SweepInterval config.Duration `toml:"sweep_interval" env:"SWEEP_INTERVAL"`
	DayHorizon    config.Duration `toml:"day_horizon" env:"DAY_HORIZON"`
	HourHorizon   config.Duration `toml:"hour_horizon" env:"HOUR_HORIZON"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled" env:"ENABLED"`
	Addr    string `toml:"addr" env:"ADDR"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: "text",
		},
		DB: DBConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			Database: "rolekeeper",
			PoolSize: 10,
		},
		Ledger: LedgerConfig{
			MaxOwnedRoles:    config.DefaultMaxOwnedRoles,
			MaxBalance:       config.DefaultMaxBalance,
			GrantCooldown:    config.Duration(config.DefaultGrantCooldown),
			NewRoleCooldown:  config.Duration(config.DefaultNewRoleCooldown),
			TransferCooldown: config.Duration(config.DefaultTransferCooldown),
			InitialLifetime:  config.Duration(config.DefaultInitialLifetime),
			MaxExtendSeconds: config.DefaultMaxExtendSeconds,
			ReplyTTL:         config.Duration(config.DefaultReplyTTL),
		},
		Economy: EconomyConfig{
			IncomeAmount:   config.DefaultIncomeAmount,
			IncomeInterval: config.Duration(config.DefaultIncomeInterval),
		},
		Deadlines: DeadlinesConfig{
			SweepInterval: config.Duration(config.DefaultSweepInterval),
			DayHorizon:    config.Duration(config.DefaultDayHorizon),
			HourHorizon:   config.Duration(config.DefaultHourHorizon),
		},
		Metrics: MetricsConfig{
			Addr: ":9464",
		},
	}
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.DB.Driver == "sqlite" && c.DB.Path == "" {
		return fmt.Errorf("db.path is required for the sqlite driver")
	}
	if c.Ledger.MaxOwnedRoles <= 0 {
		return fmt.Errorf("ledger.max_owned_roles must be positive")
	}
	if c.Ledger.MaxBalance <= 0 {
		return fmt.Errorf("ledger.max_balance must be positive")
	}
	if c.Deadlines.HourHorizon.Std() >= c.Deadlines.DayHorizon.Std() {
		return fmt.Errorf("deadlines.hour_horizon must be shorter than deadlines.day_horizon")
	}
	return nil
}
