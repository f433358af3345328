package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

const (
	BackendBadger = "badger"
	BackendFile   = "file"
)

type Config struct {
	StoreBackend   string `env:"STORE_BACKEND,default=badger"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=.echosphere/badger"`
	DataDir        string `env:"DATA_DIR,default=.echosphere/data"`
	MediaDir       string `env:"MEDIA_DIR,default=.echosphere/media"`
	// BLUGE_FILEPATH left empty disables search
	BlugeFilepath string `env:"BLUGE_FILEPATH,default=.echosphere/index"`
	LogLevel      string `env:"LOG_LEVEL,default=WARN"`
	SearchLimit   int    `env:"SEARCH_LIMIT,default=10"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendBadger:
		if c.BadgerFilepath == "" {
			return fmt.Errorf("BADGER_FILEPATH is required with the %s backend", BackendBadger)
		}
	case BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required with the %s backend", BackendFile)
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendBadger, BackendFile, c.StoreBackend)
	}
	if c.MediaDir == "" {
		return fmt.Errorf("MEDIA_DIR must not be empty")
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("SEARCH_LIMIT must be positive, got %d", c.SearchLimit)
	}
	return nil
}

func (c Config) SearchEnabled() bool {
	return c.BlugeFilepath != ""
}
