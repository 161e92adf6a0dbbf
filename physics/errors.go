package physics

import "errors"

var (
	ErrGroupNotSingleBit = errors.New("physics: collision group is not a single bit")
	ErrDuplicateGroup    = errors.New("physics: collision group used by two categories")
	ErrUnknownCategory   = errors.New("physics: unknown collision category")
	ErrInvalidTravel     = errors.New("physics: invalid slider travel")
	ErrNonPositiveSpring = errors.New("physics: spring constants must be positive")
)
