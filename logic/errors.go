package logic

import "errors"

// Ledger error taxonomy. Every validation failure surfaces as one of these
// sentinels (possibly wrapped with context), checked with errors.Is.
var (
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrNotRegistered       = errors.New("user not registered")
	ErrAlreadyRegistered   = errors.New("user already registered")
	ErrUnauthorized        = errors.New("caller not authorized")
	ErrSkillNotFound       = errors.New("skill does not exist")
	ErrSessionNotFound     = errors.New("session does not exist")
	ErrSkillUnavailable    = errors.New("skill not available")
	ErrInvalidState        = errors.New("session not in required state")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOverflow            = errors.New("cost overflows token range")
	ErrMintFailed          = errors.New("asset mint failed")
	ErrTransferFailed      = errors.New("asset transfer failed")
)
