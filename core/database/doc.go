// Package database handles the MySQL connection used for run history.
//
// It provides a thin wrapper around GORM that configures connection pooling,
// DSN timeouts, and an initial ping. The history table itself is owned and
// migrated by the report feature.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    // history persistence is disabled for this run
//	}
package database
