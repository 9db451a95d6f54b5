package collections

import "errors"

var (
	ErrAllocation      = errors.New("node allocation failed")
	ErrEmpty           = errors.New("list is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrBufferTooSmall  = errors.New("buffer too small")
)
