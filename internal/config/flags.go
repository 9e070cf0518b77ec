package config

import (
	"flag"
	"time"
)

// ParseFlags parses the configuration flags from args (without the program
// name).
//
// Flags:
//
//	-r/-remote remote items service base URL
//	-d local SQLite database file path
//	-a dev server listen address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-interval background sync interval (e.g., "5m")
//	-background enable the periodic background sync job
//	-retry-attempts total attempts per retryable remote call
//	-retry-base-delay backoff delay before the first retry (e.g., "2s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("shopsync", flag.ContinueOnError)

	var remoteBaseURL string
	var dbPath string
	var serverAddress string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var background bool
	var retryAttempts int
	var retryBaseDelay time.Duration

	fs.StringVar(&remoteBaseURL, "r", "", "Remote items service base URL")
	fs.StringVar(&remoteBaseURL, "remote", "", "Remote items service base URL (alias)")
	fs.StringVar(&dbPath, "d", "", "Local SQLite database file path")
	fs.StringVar(&serverAddress, "a", "", "Dev server listen address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.BoolVar(&background, "background", false, "Enable the periodic background sync job")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Total attempts per retryable remote call")
	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "Backoff delay before the first retry (e.g., 2s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Path: dbPath,
			},
		},
		Sync: Sync{
			Interval:       syncInterval,
			Background:     background,
			MaxAttempts:    retryAttempts,
			RetryBaseDelay: retryBaseDelay,
		},
		Server: Server{
			Address: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
