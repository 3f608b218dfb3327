package domain

import "errors"

var (
	ErrRunDraftIncomplete = errors.New("run draft needs both distance and time")
	ErrBodyDraftEmpty     = errors.New("body draft has no values to sync")
	ErrRunNotLogged       = errors.New("today's run is not logged yet")
)
