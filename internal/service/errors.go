package service

import "errors"

var (
	ErrInvalidAPIKey         = errors.New("invalid api key")
	ErrEmptyAuthorization    = errors.New("empty authorization")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrAppNameIsNotSpecified = errors.New("app name is not specified")
)
