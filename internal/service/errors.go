package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidScreen       = errors.New("invalid screen provided")
	ErrScreenDeleted       = errors.New("screen is deleted")

	ErrUnresolvedConflict = errors.New("conflict left unresolved")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
