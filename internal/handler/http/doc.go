// Package http implements the read-only HTTP view of the merged
// configuration.
//
// It exposes the merged key/value map, single values, the report of the
// last merge run and the build version. Every request passes through
// request tracing and access logging before reaching a handler.
package http
