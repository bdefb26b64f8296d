package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Properties holds every runtime setting, parsed from the environment.
type Properties struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Port     string `env:"PORT" envDefault:"8080"`

	MongoURI       string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase  string        `env:"MONGODB_DATABASE" envDefault:"portfolio"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"5s"`

	// AcceptedOrigins is the CORS allow-list. Origins not on the list never
	// receive credentialed responses.
	AcceptedOrigins []string `env:"ACCEPTED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`

	// SeedOnEmpty inserts the initial category/technology catalog at startup
	// when both collections are empty.
	SeedOnEmpty bool `env:"SEED_ON_EMPTY" envDefault:"false"`
}

func New() (Properties, error) {
	var p Properties
	if err := env.Parse(&p); err != nil {
		return Properties{}, fmt.Errorf("parsing environment: %w", err)
	}
	return p, nil
}
