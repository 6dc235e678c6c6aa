package config

// ServerConfig holds configuration for the fixture API server
type ServerConfig struct {
	Port string
	// LedgerEnabled reports whether the account ledger database is configured
	LedgerEnabled bool
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	return ServerConfig{
		Port:          port,
		LedgerEnabled: getenv("POSTGRES_HOSTNAME") != "",
	}
}
