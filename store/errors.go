package store

import "errors"

// ErrDirectionMismatch indicates a query against a direction the store was
// not configured to index (e.g. asking an Out-only store for in-edges).
var ErrDirectionMismatch = errors.New("store: direction not indexed by this store")
