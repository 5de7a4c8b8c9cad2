package books

import "time"

// Config describes where the catalog document lives and how it is read.
type Config struct {
	File              string        `env:"CATALOG_FILE" envDefault:"books.xml"`
	RecordElement     string        `env:"CATALOG_RECORD_ELEMENT" envDefault:"book"`
	ProcessingTimeout time.Duration `env:"CATALOG_PROCESSING_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns the values used when no environment is set.
func DefaultConfig() Config {
	return Config{
		File:              "books.xml",
		RecordElement:     "book",
		ProcessingTimeout: 30 * time.Second,
	}
}
