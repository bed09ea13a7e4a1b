package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// Commerce points at the upstream REST API that owns products and orders.
// CustomerOrdersPath contains a {customerId} placeholder.
type Commerce struct {
	BaseURL            string        `yaml:"COMMERCE_BASE_URL" env:"COMMERCE_BASE_URL" env-required:"true"`
	ProductsPath       string        `yaml:"COMMERCE_PRODUCTS_PATH" env:"COMMERCE_PRODUCTS_PATH" env-default:"/products"`
	OrdersPath         string        `yaml:"COMMERCE_ORDERS_PATH" env:"COMMERCE_ORDERS_PATH" env-default:"/orders"`
	CustomerOrdersPath string        `yaml:"COMMERCE_CUSTOMER_ORDERS_PATH" env:"COMMERCE_CUSTOMER_ORDERS_PATH" env-default:"/customers/{customerId}/orders"`
	Timeout            time.Duration `yaml:"COMMERCE_TIMEOUT" env:"COMMERCE_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Host     string `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port     string `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User     string `yaml:"PG_USER" env:"PG_USER"`
	Password string `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name     string `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode  string `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Session struct {
	JWTKey string        `yaml:"SESSION_JWT_KEY" env:"SESSION_JWT_KEY" env-required:"true"`
	TTL    time.Duration `yaml:"SESSION_TTL" env:"SESSION_TTL" env-default:"24h"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"CACHE_DEFAULT_TTL" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

// Store selects the cart persistence backend.
type Store struct {
	Backend string `yaml:"CART_STORE_BACKEND" env:"CART_STORE_BACKEND" env-default:"memory"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Commerce     Commerce     `yaml:"commerce"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Session      Session      `yaml:"session"`
	Cache        CacheConfig  `yaml:"cache"`
	Store        Store        `yaml:"store"`
}

func MustLoad() *Config {

	// .env is optional; real env vars win
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg

}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d",
		r.Username, r.Password, r.Host, r.Port, r.DB)
}
