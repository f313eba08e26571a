package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SalesSourceAPI      = "api"
	SalesSourcePostgres = "postgres"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	SalesAPI        SalesAPI        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	Location        *time.Location  `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Timezone    string `mapstructure:"app_timezone"`
	SalesSource string `mapstructure:"sales_source"`
}

// SalesAPI é a fonte HTTP de vendas e filiais
type SalesAPI struct {
	URL     string        `mapstructure:"sales_api_url"`
	Path    string        `mapstructure:"sales_api_path"`
	Timeout time.Duration `mapstructure:"sales_api_timeout"`
}

// Auth.Secret vazio desliga a verificação local do JWT; o token segue opaco para a fonte de dados
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dashboard.MaxSessions limita as sessões em memória; SessionIdleTTL zero não expira sessões ociosas
type Dashboard struct {
	HistoryCapacity int           `mapstructure:"filter_history_capacity"`
	MaxSessions     int           `mapstructure:"dashboard_max_sessions"`
	SessionIdleTTL  time.Duration `mapstructure:"dashboard_session_idle_ttl"`
}

type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "UTC")
	viper.SetDefault("SALES_SOURCE", SalesSourceAPI)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALES_API_URL", "http://localhost:3000")
	viper.SetDefault("SALES_API_PATH", "/api/dashboard")
	viper.SetDefault("SALES_API_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("FILTER_HISTORY_CAPACITY", 50)
	viper.SetDefault("DASHBOARD_MAX_SESSIONS", 1000)
	viper.SetDefault("DASHBOARD_SESSION_IDLE_TTL", "12h")

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "5 0 * * *") // Todos os dias às 00:05, virada do dia
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize resolve os campos derivados e valida os valores lidos
func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.Location = location

	c.App.SalesSource = strings.ToLower(strings.TrimSpace(c.App.SalesSource))
	if c.App.SalesSource != SalesSourceAPI && c.App.SalesSource != SalesSourcePostgres {
		return fmt.Errorf("fonte de vendas inválida: %s", c.App.SalesSource)
	}

	if c.Dashboard.HistoryCapacity <= 0 {
		return fmt.Errorf("capacidade do histórico deve ser positiva: %d", c.Dashboard.HistoryCapacity)
	}

	if c.Dashboard.SessionIdleTTL < 0 {
		return fmt.Errorf("tempo de expiração de sessão inválido: %s", c.Dashboard.SessionIdleTTL)
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
