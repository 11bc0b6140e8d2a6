package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 60 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for startup checks
const DBPingTimeout = 5 * time.Second

// Timeout for outbound calls to the identity provider and show catalog
const ExternalRequestTimeout = 10 * time.Second

// Session lifetime; the token cookie carries the same max age
const SessionTTL = 7 * 24 * time.Hour

// Result caps on list queries
const (
	UpcomingEpisodesLimit = 100
	NotificationsLimit    = 100
)
