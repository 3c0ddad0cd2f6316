// Package server holds the HTTP server configuration.
//
// The serve command handles the actual server startup; this package only
// defines the configuration structure (port and API key) embedded by
// core/config.
package server
