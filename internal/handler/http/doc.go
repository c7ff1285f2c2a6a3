// Package http is the download side of the filesystem blob store.
//
// Signed URLs issued by the store point here. Every request carries a token
// scoped to one object path; the token is checked before any bytes are read
// from disk.
package http
