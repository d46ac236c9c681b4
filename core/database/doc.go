// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// from the application's configuration. Catalog locations of the form
// db://<table> read from and write to this connection.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
