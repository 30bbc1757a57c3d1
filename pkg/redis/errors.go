package redis

import "errors"

var (
	ErrFailedToParseConnString = errors.New("redis: failed to parse connection string")
	ErrNotReady                = errors.New("redis: server did not become ready in time")
	ErrEmptyConnectionURL      = errors.New("redis: empty connection URL")
	ErrHealthcheckFailed       = errors.New("redis: healthcheck failed")
)
