package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrNotGroupAdmin    = goerr.New("account is neither an admin nor the owner of the group")
	ErrInvalidSelection = goerr.New("invalid group selection")
	ErrInvalidAction    = goerr.New("invalid operator action")
	ErrSweepNotFound    = goerr.New("sweep not found")
	ErrAccountMismatch  = goerr.New("logged in account does not match configured account")
	ErrNoAccount        = goerr.New("no logged in account")
)
