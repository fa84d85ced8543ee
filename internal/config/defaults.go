package config

import "time"

// Default values applied to fields that no source has set.
const (
	DefaultTokenExpireMinutes      = 60
	DefaultLogLevel                = "debug"
	DefaultHTTPAddress             = ":8080"
	DefaultRequestTimeout          = 30 * time.Second
	DefaultPlacesBaseURL           = "https://maps.googleapis.com"
	DefaultPlacesLatitude          = -8.28882
	DefaultPlacesLongitude         = -35.9754
	DefaultPlacesLanguage          = "pt-BR"
	DefaultPlacesRequestTimeout    = 10 * time.Second
	DefaultDenylistCleanupInterval = 10 * time.Minute

	// DefaultVersion marks an unknown application version.
	DefaultVersion = "N/A"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenExpireMinutes == 0 {
		cfg.App.TokenExpireMinutes = DefaultTokenExpireMinutes
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = DefaultPlacesBaseURL
	}
	if cfg.Places.Latitude == 0 && cfg.Places.Longitude == 0 {
		cfg.Places.Latitude = DefaultPlacesLatitude
		cfg.Places.Longitude = DefaultPlacesLongitude
	}
	if cfg.Places.Language == "" {
		cfg.Places.Language = DefaultPlacesLanguage
	}
	if cfg.Places.RequestTimeout == 0 {
		cfg.Places.RequestTimeout = DefaultPlacesRequestTimeout
	}

	if cfg.Workers.DenylistCleanupInterval == 0 {
		cfg.Workers.DenylistCleanupInterval = DefaultDenylistCleanupInterval
	}
}
