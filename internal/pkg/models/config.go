package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Match    MatchConfig
	Tracking TrackingConfig
	Fallback FallbackConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT validation configuration
type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutes
}

// MatchConfig contains matching coordinator configuration
type MatchConfig struct {
	SearchRadiusKm   float64 // candidate search radius around the pickup point
	TimeoutSec       int     // bounded window before NoDriverAvailable
	RetryIntervalSec int     // pause between candidate sweeps
	ReconnectGrace   int     // seconds a disconnected driver may return before re-match
}

// TrackingConfig contains location relay configuration
type TrackingConfig struct {
	PositionIntervalMs int // minimum spacing between accepted samples per trip
	CacheTTLMin        int // how long the last known position survives in Redis
}

// FallbackConfig contains simulated-motion configuration
type FallbackConfig struct {
	GraceSec  int     // wait for a live driver feed before simulating
	SpeedKmh  float64 // simulated travel speed
	TickSecs  int     // cadence of synthetic samples
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
