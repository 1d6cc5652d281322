// Package config loads configuration for restfulcore applications.
//
// It uses Viper to read a YAML (or JSON/TOML) file found in standard
// locations, then overlays environment variables. A .env file, when present,
// is loaded with godotenv before the overlay.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("players-client", &cfg)
//
// Environment variables override file values using the service prefix with
// underscore-separated paths (e.g., PLAYERS_CLIENT_CONNECTION_BASE_URL sets
// connection.base_url).
package config
