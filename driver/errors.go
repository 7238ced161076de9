package driver

import "errors"

// ErrEmptyCorpus indicates Build was called with no trees to index.
var ErrEmptyCorpus = errors.New("driver: corpus is empty")
