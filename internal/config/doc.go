// Package config handles configuration loading for mcp-gateway.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from MCP_GATEWAY_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/mcp-gateway/gateway.yaml
//  3. ~/.config/mcp-gateway/gateway.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	server:
//	  http_addr: "${MCP_GATEWAY_ADDR}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8080"   # WebSocket channel and REST API
//
// Sessions:
//
//	sessions:
//	  history_limit: 256          # Messages retained per session
//	  broadcast_timeout: "250ms"  # Per-recipient delivery budget
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load("/etc/mcp-gateway/gateway.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
