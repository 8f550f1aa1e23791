package retrieval

import "errors"

// Sentinel kinds for retrieval errors.
var (
	ErrEmptyQueryVector = errors.New("embedding model returned an empty vector")
)
