package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-s remote server base URL used by the agent
//	-client-id agent identifier
//	-sync-interval background sync cadence (e.g., "30s", "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-push-workers concurrent push dispatch bound
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "12h")
//	-retry-base-delay first retry delay (e.g., "500ms")
//	-retry-max-delay retry delay cap (e.g., "30s")
//	-retry-max-attempts retry budget
//	-log-level minimum log level
//	-log-file rotated log file path
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var remoteAddress string
	var clientID string
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var pushWorkers int
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var retryBaseDelay time.Duration
	var retryMaxDelay time.Duration
	var retryMaxAttempts int
	var logLevel string
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&remoteAddress, "s", "", "Remote server base URL")
	flag.StringVar(&clientID, "client-id", "", "Agent identifier")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 30s, 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&pushWorkers, "push-workers", 0, "Concurrent push dispatch bound")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 12h)")
	flag.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "First retry delay (e.g., 500ms)")
	flag.DurationVar(&retryMaxDelay, "retry-max-delay", 0, "Retry delay cap (e.g., 30s)")
	flag.IntVar(&retryMaxAttempts, "retry-max-attempts", 0, "Retry budget")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.StringVar(&logFile, "log-file", "", "Rotated log file path")

	flag.Parse()

	return &StructuredConfig{
		Agent: Agent{
			ServerAddress:  remoteAddress,
			ClientID:       clientID,
			SyncInterval:   syncInterval,
			RequestTimeout: requestTimeout,
			PushWorkers:    pushWorkers,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Retry: Retry{
			BaseDelay:   retryBaseDelay,
			MaxDelay:    retryMaxDelay,
			MaxAttempts: retryMaxAttempts,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
