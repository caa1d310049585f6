package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from TALENTFINDER_* environment variables.
type Config struct {
	Port     int    `default:"8080"`
	LogLevel string `split_words:"true" default:"info"`

	SpotifyID      string `split_words:"true" required:"true"`
	SpotifySecret  string `split_words:"true" required:"true"`
	SpotifyBaseURL string `split_words:"true" default:"https://api.spotify.com/v1/"`

	ScalerPath          string `split_words:"true" default:"artifacts/scaler.json"`
	PopularityModelPath string `split_words:"true" default:"artifacts/popularity_model.json"`
	RevenueModelPath    string `split_words:"true" default:"artifacts/monthly_listeners_model.json"`

	// HistoryDriver is one of "", "postgres", "sqlite3" or "firestore".
	HistoryDriver    string `split_words:"true"`
	DatabaseURL      string `split_words:"true"`
	FirestoreProject string `split_words:"true"`
}

// Load reads the config from the environment.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("talentfinder", &cfg)
	return cfg, err
}

func ProvideConfig() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
