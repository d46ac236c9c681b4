// Package config provides configuration management for the catalog reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section, so every key is known to Viper even when no variable is set.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Match: similarity threshold, cache size, default output and sheet name
//   - Server: HTTP server settings (port, API key)
//   - Database: connection details for db:// catalog locations
//   - Storage: S3/MinIO credentials for s3:// catalog locations
//   - Log: logging level and format
//
// Environment variables map to nested keys by replacing dots with
// underscores, e.g. MATCH_THRESHOLD -> match.threshold.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Match.Threshold)
package config
