// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with github.com/caarlos0/env tags; optional
// .env files are read with github.com/joho/godotenv. Load parses each config
// type once per process and caches it, so packages can call Load for their own
// section without coordinating:
//
//	type CatalogConfig struct {
//		File    string        `env:"CATALOG_FILE" envDefault:"books.xml"`
//		Timeout time.Duration `env:"CATALOG_PROCESSING_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg CatalogConfig
//	config.MustLoad(&cfg)
//
// Reload and ResetCache exist for tests and for reloading after LoadEnv.
package config
