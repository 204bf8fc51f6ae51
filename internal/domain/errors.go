package domain

import "errors"

var (
	// ErrSourceUnavailable marks a whole stream that could not be fetched.
	// The run logs it and moves on to the next source.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrRecordMalformed marks a single record that cannot be normalized.
	// The record is skipped, the stream continues.
	ErrRecordMalformed = errors.New("record malformed")

	// ErrJournalNameNotFound means the journal descriptor carried no
	// "Published in:" marker, so no canonical name could be extracted. The
	// enclosing publication is skipped.
	ErrJournalNameNotFound = errors.New("journal name not extractable")
)
