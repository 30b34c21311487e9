package apperror

import "errors"

var (
	ErrInvalidPlayer    = errors.New("player number must be 1 or 2")
	ErrInvalidMode      = errors.New("evaluation mode must be between 0 and 4")
	ErrMissingArgument  = errors.New("missing command-line argument")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrMalformedMessage = errors.New("malformed server message")
)
