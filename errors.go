package flathash

import "errors"

// ErrKeyNotFound is returned by Map.At when the requested key is absent.
// It is the only lookup operation in this package that reports a miss as
// an error; Find, Get, and Contains report misses through their boolean
// or end-iterator return values instead.
var ErrKeyNotFound = errors.New("flathash: key not found")
