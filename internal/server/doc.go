// Package server runs the blob download server: startup, signal handling and
// graceful shutdown.
package server
