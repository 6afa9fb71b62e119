package domain

import "errors"

var (
	ErrInvalidID       = errors.New("invalid restaurant id")
	ErrInvalidVariant  = errors.New("unknown page variant")
	ErrRecordNotFound  = errors.New("restaurant record not found")
	ErrFetchFailed     = errors.New("failed to fetch restaurant data")
	ErrMalformedRecord = errors.New("malformed restaurant record")
	ErrViewNotFound    = errors.New("page view not found or expired")
)
