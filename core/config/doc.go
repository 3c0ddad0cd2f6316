// Package config provides configuration management for qb-sync.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for run history
//   - Storage: S3/MinIO credentials for the report archive
//   - QuickBooks: QBXML gateway endpoint and session settings
//   - Excel: workbook sheet and column mapping
//   - Report: report output path and archiving
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.QuickBooks.Endpoint)
package config
