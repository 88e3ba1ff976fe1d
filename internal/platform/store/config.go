package store

import "time"

// Config selects and configures the backends Open dials
type Config struct {
	AppName string
	PG      PGConfig
	CH      CHConfig
}

// PGConfig is the postgres side
// URL is read once at startup and passed in, nothing else reads the environment
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32
	LogSQL   bool          // trace every statement
	Slow     time.Duration // traced statements at or above it log at warn
}

// CHConfig is the clickhouse journal side
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string // defaults to AppName
	ClientTag  string
}
