package config

import (
	"errors"
	"fmt"
	"time"
)

// ClientRemote holds network settings used by the client transport layer.
type ClientRemote struct {
	// BaseURL is the base URL of the remote items service.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// Path is the SQLite database file path.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains sync engine and background job settings.
type ClientSync struct {
	// Interval defines how often the background sync job runs.
	Interval time.Duration
	// Background enables the periodic background sync job.
	Background bool
	// MaxAttempts is the total number of attempts per retryable remote call.
	MaxAttempts int
	// RetryBaseDelay is the backoff delay before the first retry.
	RetryBaseDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Remote contains client transport settings.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync engine and background job settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
//
// Sources are merged in precedence order flags > env > JSON file > defaults.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Path: cfg.Storage.DB.Path,
			},
		},
		Sync: ClientSync{
			Interval:       cfg.Sync.Interval,
			Background:     cfg.Sync.Background,
			MaxAttempts:    cfg.Sync.MaxAttempts,
			RetryBaseDelay: cfg.Sync.RetryBaseDelay,
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds the dev server config view (listen address only).
func GetServerConfig(args []string) (*Server, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &Server{Address: cfg.Server.Address}, nil
}

func (c *ClientConfig) validate() error {
	if c.Remote.BaseURL == "" {
		return errors.New("remote base URL is required")
	}
	if c.Storage.DB.Path == "" {
		return errors.New("local database path is required")
	}
	if c.Sync.MaxAttempts < 1 {
		return errors.New("sync max attempts must be at least 1")
	}
	return nil
}
