package textchunk

import "errors"

var (
	// ErrInvalidUTF8 signals invalid UTF-8 source text.
	ErrInvalidUTF8 = errors.New("textchunk: invalid UTF-8")
	// ErrChunkTooLarge signals that input exceeds MaxBase bytes.
	ErrChunkTooLarge = errors.New("textchunk: text exceeds chunk capacity")
)
