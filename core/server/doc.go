// Package server holds the HTTP server configuration.
//
// The start command serves the catalog feature over HTTP; this package
// defines its listen port, API key and request size limit.
package server
