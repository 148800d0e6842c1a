package main

import (
	"strings"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	StoreRetries         int           `env:"STORE_RETRIES,default=5"`
	StoreGCInterval      time.Duration `env:"STORE_GC_INTERVAL,default=10m"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	HubBufferSize        int           `env:"HUB_BUFFER_SIZE,default=256"`
	HistoryLimit         int           `env:"HISTORY_LIMIT,default=0"`
	EchoToSender         bool          `env:"ECHO_TO_SENDER,default=false"`
	CharacterReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MaxCommentLength     int           `env:"MAX_COMMENT_LENGTH,default=2000"`
	MaxMessageLength     int           `env:"MAX_MESSAGE_LENGTH,default=1000"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL,default=1m"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	CORSOrigins          string        `env:"CORS_ORIGINS,default=*"`
	RateLimitPerMinute   int           `env:"RATE_LIMIT_PER_MINUTE,default=0"`
}

// censoredChar returns the first rune of CHARACTER_REPLACEMENT.
func (c Config) censoredChar() rune {
	for _, r := range c.CharacterReplacement {
		return r
	}
	return '*'
}

// allowedOrigins splits the comma separated CORS_ORIGINS.
func (c Config) allowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
