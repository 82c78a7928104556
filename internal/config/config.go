package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/common/pkg/mysql"
	"github.com/Behyna/payout-services/internal/queue"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/spf13/viper"
)

type Config struct {
	API         API            `mapstructure:"api"`
	Database    Database       `mapstructure:"database"`
	RabbitMQ    queue.Config   `mapstructure:"rabbitmq"`
	Gateway     gateway.Config `mapstructure:"gateway"`
	Auth        Auth           `mapstructure:"auth"`
	Metrics     Metrics        `mapstructure:"metrics"`
	BalanceSync BalanceSync    `mapstructure:"balance_sync"`
}

type API struct {
	Port        string `mapstructure:"port"`
	AsyncAccept bool   `mapstructure:"async_accept"`
}

// Database adds pool and gorm log settings to the shared mysql connection config.
type Database struct {
	mysql.Config    `mapstructure:",squash"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"secret"`
}

type Metrics struct {
	Enable   bool          `mapstructure:"enable"`
	Path     string        `mapstructure:"path"`
	Interval time.Duration `mapstructure:"interval"`
}

type BalanceSync struct {
	Schedule string `mapstructure:"schedule"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("PAYOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("api.port", ":8080")
	viper.SetDefault("metrics.path", "/metrics")
	viper.SetDefault("metrics.interval", 15*time.Second)
	viper.SetDefault("balance_sync.schedule", "0 0 * * * *")
	viper.SetDefault("gateway.timeout", 30*time.Second)
	viper.SetDefault("rabbitmq.prefetch", 1)
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 50)
	viper.SetDefault("database.conn_max_lifetime", time.Hour)
	viper.SetDefault("database.log_level", "warn")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
