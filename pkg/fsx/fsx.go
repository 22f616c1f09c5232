// Package fsx abstracts blob storage behind a small interface so services do
// not depend on a concrete backend.
package fsx

import "context"

// FileSystem stores and retrieves opaque files by key
type FileSystem interface {
	// Put stores data under key and returns the file's URL
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Get retrieves the file stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the file stored under key
	Delete(ctx context.Context, key string) error
}
