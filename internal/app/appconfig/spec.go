package appconfig

import (
	"time"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9040"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program logs at trace level and
	// keeps the fiber listener attached on shutdown for quicker iteration.
	DevMode bool `split_words:"true"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// RedisURL is the URL of the Redis server, used for the per-user sync mutex. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for more information
	// on how to construct a Redis URL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// ConnectAPIBaseURL is the base URL of the vendor Connect API.
	ConnectAPIBaseURL string `split_words:"true" default:"https://connectapi.garmin.com"`

	// ConnectCallTimeout bounds every single outbound call to the vendor platform.
	ConnectCallTimeout time.Duration `split_words:"true" default:"15s"`

	// ConnectCallRetries is the number of attempts for a transient vendor call failure.
	ConnectCallRetries uint `split_words:"true" default:"3"`

	// SyncRunTimeout is the wall-clock budget for one whole sync run. The lap-fetch
	// step performs one vendor call per activity, so a 100-activity page can take
	// over 100 sequential round-trips.
	SyncRunTimeout time.Duration `split_words:"true" default:"8m"`
}
