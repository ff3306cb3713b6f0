// Package config provides configuration management for the prompt bot.
//
// Configuration is read once at process start from an optional YAML file,
// an optional .env file, and the process environment. It is immutable
// afterwards; components receive the values they need explicitly.
//
// # Configuration Loading
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file (which may be absent) with environment overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// # Environment Variable Overrides
//
// The bare variables PORT, BASE_URL and OPEN_AI_KEY (or OPENAI_API_KEY)
// are honoured so that a deployment configured through the environment
// alone keeps working. Every other field uses PROMPTBOT_SECTION_FIELD:
//
//   - PROMPTBOT_SERVER_PORT overrides server.port
//   - PROMPTBOT_OPENAI_MODEL overrides openai.model
//   - PROMPTBOT_KEEPALIVE_INTERVAL overrides keepalive.interval
//   - PROMPTBOT_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// A .env file in the working directory is loaded before overrides are
// applied. Variables already present in the environment are not replaced.
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. .env file
//  4. Environment variable overrides
//  5. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	server:
//	  port: 5000
//	  base_url: "https://promptbot.example.com"
//
//	openai:
//	  model: "gpt-4o-mini"
//
//	keepalive:
//	  interval: "10m"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
package config
