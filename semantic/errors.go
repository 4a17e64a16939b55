package semantic

import "errors"

// ErrEmptyEmbedding indicates the embeddings API returned zero vectors
// for a request that asked for exactly one.
var ErrEmptyEmbedding = errors.New("semantic: embeddings API returned no data")
