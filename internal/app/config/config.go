package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Identity    IdentityConfig
	Redis       RedisConfig
	Minio       MinioConfig
}

// IdentityConfig points at the external identity provider. JWTSecret, when
// set, lets the auth middleware verify access tokens locally instead of
// calling the provider on every request.
type IdentityConfig struct {
	URL        string
	AnonKey    string
	ServiceKey string
	JWTSecret  string
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
	IdentityTTL time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envIdentityURL        = "IDENTITY_URL"
	envIdentityAnonKey    = "IDENTITY_ANON_KEY"
	envIdentityServiceKey = "IDENTITY_SERVICE_KEY"
	envIdentityJWTSecret  = "IDENTITY_JWT_SECRET"

	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// identity provider settings are secrets, env only
	cfg.Identity.URL = os.Getenv(envIdentityURL)
	cfg.Identity.AnonKey = os.Getenv(envIdentityAnonKey)
	cfg.Identity.ServiceKey = os.Getenv(envIdentityServiceKey)
	cfg.Identity.JWTSecret = os.Getenv(envIdentityJWTSecret)
	if cfg.Identity.URL == "" {
		return nil, fmt.Errorf("%s must be set", envIdentityURL)
	}
	if cfg.Identity.ServiceKey == "" {
		return nil, fmt.Errorf("%s must be set", envIdentityServiceKey)
	}

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second
	cfg.Redis.IdentityTTL = 5 * time.Minute

	cfg.Minio.AccessKey = os.Getenv(envMinioAccessKey)
	cfg.Minio.SecretKey = os.Getenv(envMinioSecretKey)

	log.Info("config parsed")

	return cfg, nil
}
