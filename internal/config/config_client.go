package config

import (
	"fmt"
	"time"
)

// ClientAgent holds agent runtime settings derived from the shared
// structured config.
type ClientAgent struct {
	// ServerAddress is the backend base URL the agent syncs against.
	ServerAddress string
	// ClientID identifies the agent instance; may be empty and filled
	// with a generated id at startup.
	ClientID string
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// PushWorkers bounds concurrent push dispatch within one sync pass.
	PushWorkers int
}

// ClientDB contains local database connection settings for the agent.
type ClientDB struct {
	// DSN is the SQLite file path of the local screen store.
	DSN string
}

// ClientStorage groups agent storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientRetry contains the push retry policy knobs.
type ClientRetry struct {
	// BaseDelay is the first retry delay; doubled per attempt.
	BaseDelay time.Duration
	// MaxDelay caps the doubled delay.
	MaxDelay time.Duration
	// MaxAttempts is the retry budget before an item turns failed.
	MaxAttempts int
}

// ClientLog contains agent log sink settings.
type ClientLog struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// ClientConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Agent contains agent runtime settings.
	Agent ClientAgent
	// Storage contains agent storage settings.
	Storage ClientStorage
	// Retry contains the push retry policy.
	Retry ClientRetry
	// Log contains log sink settings.
	Log ClientLog
}

// Defaults applied by GetClientConfig when the merged sources leave the
// corresponding field zero.
const (
	DefaultRetryBaseDelay = 500 * time.Millisecond
	DefaultRetryMaxDelay  = 30 * time.Second
	DefaultRetryAttempts  = 3
	DefaultPushWorkers    = 4
	DefaultLogMaxSizeMB   = 10
	DefaultLogMaxBackups  = 3
	DefaultRequestTimeout = 30 * time.Second
)

// GetClientConfig builds and validates an agent-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, fills retry/worker defaults, and validates
// the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Agent: ClientAgent{
			ServerAddress:  cfg.Agent.ServerAddress,
			ClientID:       cfg.Agent.ClientID,
			SyncInterval:   cfg.Agent.SyncInterval,
			RequestTimeout: cfg.Agent.RequestTimeout,
			PushWorkers:    cfg.Agent.PushWorkers,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Retry: ClientRetry{
			BaseDelay:   cfg.Retry.BaseDelay,
			MaxDelay:    cfg.Retry.MaxDelay,
			MaxAttempts: cfg.Retry.MaxAttempts,
		},
		Log: ClientLog{
			Level:      cfg.Log.Level,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Retry.BaseDelay == 0 {
		cfg.Retry.BaseDelay = DefaultRetryBaseDelay
	}
	if cfg.Retry.MaxDelay == 0 {
		cfg.Retry.MaxDelay = DefaultRetryMaxDelay
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = DefaultRetryAttempts
	}
	if cfg.Agent.PushWorkers == 0 {
		cfg.Agent.PushWorkers = DefaultPushWorkers
	}
	if cfg.Agent.RequestTimeout == 0 {
		cfg.Agent.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = DefaultLogMaxBackups
	}
}
