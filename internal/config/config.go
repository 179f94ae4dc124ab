package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	TourAPI  TourAPIConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// TourAPIConfig - параметры доступа к публичному туристическому API
type TourAPIConfig struct {
	BaseURL        string
	ServiceKey     string
	MobileOS       string
	MobileApp      string
	RequestTimeout time.Duration
	MaxRetries     int
	Retry5xx       bool
	CallLogSize    int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ListingsCacheTTL time.Duration
	RegionsCacheTTL  time.Duration
	StatsCacheTTL    time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled              bool
	StatsRefreshInterval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		TourAPI: TourAPIConfig{
			BaseURL:        viper.GetString("TOUR_API_BASE_URL"),
			ServiceKey:     viper.GetString("TOUR_API_SERVICE_KEY"),
			MobileOS:       viper.GetString("TOUR_API_MOBILE_OS"),
			MobileApp:      viper.GetString("TOUR_API_MOBILE_APP"),
			RequestTimeout: time.Duration(viper.GetInt("TOUR_API_REQUEST_TIMEOUT")) * time.Millisecond,
			MaxRetries:     viper.GetInt("TOUR_API_MAX_RETRIES"),
			Retry5xx:       viper.GetBool("TOUR_API_RETRY_5XX"),
			CallLogSize:    viper.GetInt("TOUR_API_CALL_LOG_SIZE"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ListingsCacheTTL: time.Duration(viper.GetInt("LISTINGS_CACHE_TTL")) * time.Second,
			RegionsCacheTTL:  time.Duration(viper.GetInt("REGIONS_CACHE_TTL")) * time.Second,
			StatsCacheTTL:    time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:              viper.GetBool("WORKER_ENABLED"),
			StatsRefreshInterval: time.Duration(viper.GetInt("WORKER_STATS_REFRESH_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.TourAPI.BaseURL == "" {
		cfg.TourAPI.BaseURL = "https://apis.data.go.kr/B551011/KorService2"
	}
	if cfg.TourAPI.MobileOS == "" {
		cfg.TourAPI.MobileOS = "ETC"
	}
	if cfg.TourAPI.MobileApp == "" {
		cfg.TourAPI.MobileApp = "TourMicroservice"
	}
	if cfg.TourAPI.RequestTimeout == 0 {
		cfg.TourAPI.RequestTimeout = 10 * time.Second
	}
	if cfg.TourAPI.MaxRetries == 0 {
		cfg.TourAPI.MaxRetries = 3
	}
	if cfg.TourAPI.CallLogSize == 0 {
		cfg.TourAPI.CallLogSize = 100
	}
	if cfg.Cache.ListingsCacheTTL == 0 {
		cfg.Cache.ListingsCacheTTL = 5 * time.Minute
	}
	if cfg.Cache.RegionsCacheTTL == 0 {
		cfg.Cache.RegionsCacheTTL = 24 * time.Hour
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = time.Hour
	}
	if cfg.Worker.StatsRefreshInterval == 0 {
		cfg.Worker.StatsRefreshInterval = 30 * time.Minute
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
