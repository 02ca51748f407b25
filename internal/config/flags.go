package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server base URL (e.g. "http://localhost:8080")
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-cache-file local cache sqlite file path
//	-refresh-interval background refresh interval (e.g., "5m"; 0 disables)
//	-gallery-dir directory browsed by the fotos screen
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

// parseFlags uses its own FlagSet so tests can feed argument lists without
// touching the global flag state.
func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("go-notas", flag.ContinueOnError)

	var serverURL string
	var requestTimeout time.Duration
	var cacheFile string
	var refreshInterval time.Duration
	var galleryDir string
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&serverURL, "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&cacheFile, "cache-file", "", "Local cache sqlite file path")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (0 disables)")
	fs.StringVar(&galleryDir, "gallery-dir", "", "Directory browsed by the fotos screen")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// Unknown flags are left for the test binary and friends.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			LogLevel:   logLevel,
			GalleryDir: galleryDir,
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			CacheFile: cacheFile,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
