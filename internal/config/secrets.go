package config

import (
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// EnvPrefix prefixes every secret environment variable.
const EnvPrefix = "signals"

// Secrets are credentials read from the environment, never from the config file.
type Secrets struct {
	PolygonAPIKey string `envconfig:"POLYGON_API_KEY"`
	BinanceAPIKey string `envconfig:"BINANCE_API_KEY"`
	BinanceSecret string `envconfig:"BINANCE_SECRET"`
}

// LoadSecrets loads envFile into the environment when it exists and then
// reads SIGNALS_* variables. Variables already set win over the file. An
// empty envFile tries ".env".
func LoadSecrets(envFile string) (Secrets, error) {
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Secrets{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read env file %s", envFile)
	}

	var secrets Secrets
	if err := envconfig.Process(EnvPrefix, &secrets); err != nil {
		return Secrets{}, errors.Wrap(errors.ErrCodeConfigDecodeFailed, "failed to read secrets from environment", err)
	}

	return secrets, nil
}
