package transfer

import "errors"

var (
	// ErrMissingTicketID is returned when no ticket identifier was supplied.
	ErrMissingTicketID = errors.New("missing ticket identifier")
	// ErrTicketNotFound is returned when the source ticket file cannot be opened.
	ErrTicketNotFound = errors.New("ticket file not found")
	// ErrDirectoryExists is returned when an output directory is already present.
	ErrDirectoryExists = errors.New("output directory already exists")
	// ErrDecoding is returned when the ticket file is not valid UTF-8.
	ErrDecoding = errors.New("decoding ticket file")
)
