// Package config provides centralized configuration management for the
// service. It handles loading configuration from multiple sources, validation,
// and a type-safe API for accessing configuration values.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SALESPULSE_* for namespacing:
//
//	SALESPULSE_SERVER_PORT=8080
//	SALESPULSE_LOGGING_LEVEL=info
//	SALESPULSE_SECURITY_RATELIMIT_ENABLED=true
package config
