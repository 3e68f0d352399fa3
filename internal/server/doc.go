// Package server runs the read-only HTTP view, including signal handling
// and graceful shutdown.
package server
