// Package config loads client configuration from environment variables,
// an optional .env file, and an optional YAML file.
//
// Recognized environment variables:
//
//	OLLAMA_HOST        server address (default http://localhost:11434)
//	OLLAMA_TOKEN       bearer token, if the server sits behind an auth proxy
//	OLLAMAKIT_TIMEOUT  timeout for single-shot calls (e.g. "90s")
//	LOG_LEVEL          trace, debug, info, warn, error
//	LOG_FORMAT         console or json
//
// YAML files use the same keys nested under their sections:
//
//	host: http://localhost:11434
//	timeout: 120s
//	log:
//	  level: debug
package config
