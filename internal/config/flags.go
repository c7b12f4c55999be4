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
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (PostgreSQL URI for the server, SQLite path for the client)
//	-r redis address for the redis cursor backend
//	-cursor-backend cursor store backend (sqlite, file, redis)
//	-cursor-path JSON cursor file path for the file backend
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key payload integrity hash key
//	-feed-address feed server base URL used by the sync client
//	-client-id sync client identifier
//	-client-secret sync client secret
//	-sync-interval periodic sync job interval (e.g., "5m")
//	-page-limit change-feed page limit
//	-collections comma-separated collection registry
//	-sync-clients comma-separated "id:secret" pairs
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var redisAddress string
	var cursorBackend string
	var cursorPath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var feedAddress string
	var clientID string
	var clientSecret string
	var syncInterval time.Duration
	var pageLimit int
	var collections string
	var syncClients string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&redisAddress, "r", "", "Redis address host:port")
	flag.StringVar(&cursorBackend, "cursor-backend", "", "Cursor store backend (sqlite, file, redis)")
	flag.StringVar(&cursorPath, "cursor-path", "", "Cursor JSON file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&hashKey, "hash-key", "", "Payload integrity hash key")
	flag.StringVar(&feedAddress, "feed-address", "", "Feed server base URL")
	flag.StringVar(&clientID, "client-id", "", "Sync client identifier")
	flag.StringVar(&clientSecret, "client-secret", "", "Sync client secret")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync job interval (e.g., 5m)")
	flag.IntVar(&pageLimit, "page-limit", 0, "Change feed page limit")
	flag.StringVar(&collections, "collections", "", "Comma-separated collection registry")
	flag.StringVar(&syncClients, "sync-clients", "", "Comma-separated id:secret client pairs")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			Collections:   splitCommaList(collections),
			SyncClients:   splitCommaList(syncClients),
			PageLimit:     pageLimit,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
			Files: Files{
				CursorPath: cursorPath,
			},
			CursorBackend: cursorBackend,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    feedAddress,
			RequestTimeout: requestTimeout,
			ClientID:       clientID,
			ClientSecret:   clientSecret,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// splitCommaList splits a comma-separated flag value into its trimmed parts,
// returning nil for an empty input so that mergo treats the field as unset.
func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
