package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read at startup
const EnvPrefix = "BOOKTRACKER"

// Env holds startup configuration that has to be known before the Fyne app exists
type Env struct {
	Env          string  `envconfig:"ENV" default:"production"`
	AppID        string  `envconfig:"APP_ID" default:"com.ytget.book-tracker"`
	WindowWidth  float32 `envconfig:"WINDOW_WIDTH" default:"420"`
	WindowHeight float32 `envconfig:"WINDOW_HEIGHT" default:"760"`
}

// IsDevelopment reports whether development logging should be used
func (e Env) IsDevelopment() bool {
	return e.Env == "development" || e.Env == "dev"
}

// LoadEnv loads the optional dotenv files, then reads BOOKTRACKER_* variables.
// Without arguments ".env" in the working directory is tried.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("process env: %w", err)
	}
	if env.WindowWidth <= 0 || env.WindowHeight <= 0 {
		return Env{}, fmt.Errorf("invalid window size %vx%v", env.WindowWidth, env.WindowHeight)
	}
	return env, nil
}
