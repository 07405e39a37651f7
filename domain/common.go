package domain

import "errors"

const DateLayout = "2006-01-02"

var (
	MessageFailedBodyRequest = "failed to process request body"

	ErrParseUUID = errors.New("failed to parse UUID")
	ErrParseDate = errors.New("date must be formatted as YYYY-MM-DD")
)
