package auth

import "errors"

// Token validation failures. The middleware answers all of them with 401;
// they differ only in what gets logged.
var (
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token used before its nbf time")

	// ErrMissingClaims is a well-signed token that lacks the subject or
	// email an Identity needs.
	ErrMissingClaims = errors.New("authentication token is missing identity claims")
)
