package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied when no source provides a value.
const (
	defaultServerURL      = "http://localhost:8080"
	defaultRequestTimeout = 15 * time.Second
)

// ClientApp holds client application settings.
type ClientApp struct {
	// LogLevel is the zerolog level name for the client logger.
	LogLevel string
	// GalleryDir is the directory the fotos screen browses.
	GalleryDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the backend base address.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local cache settings.
type ClientStorage struct {
	// CacheFile is the sqlite file for the offline note cache. Empty
	// disables caching.
	CacheFile string
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job reloads the note
	// list. Zero disables the job.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration, applying client defaults for the server
// address and request timeout.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:   cfg.App.LogLevel,
			GalleryDir: cfg.App.GalleryDir,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CacheFile: cfg.Storage.CacheFile,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
	}

	if clientCfg.Adapter.ServerURL == "" {
		clientCfg.Adapter.ServerURL = defaultServerURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
