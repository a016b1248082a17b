package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port       string `env:"PORT" envDefault:"3000"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBHost     string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/path/sock)
	DBName     string `env:"DB_NAME" envDefault:"plantsDB"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	StripeSecretKey string `env:"STRIPE_SECRET_KEY,required"`
	// Base64-encoded Firebase service-account JSON.
	FirebaseServiceKey string `env:"FB_SERVICE_KEY,required"`
	ClientDomain       string `env:"CLIENT_DOMAIN,required"`
	StorageBucket      string `env:"STORAGE_BUCKET"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
