package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ramcharan1706/SkillSwap/logic"
	"github.com/Ramcharan1706/SkillSwap/middleware"
)

// callerPubkey reads the authenticated caller identity that middleware.Auth
// placed in the context; false means the response was already written.
func callerPubkey(ctx *gin.Context) (string, bool) {
	pubkey := ctx.GetString(middleware.CallerKey)
	if pubkey == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated caller"})
		return "", false
	}
	return pubkey, true
}

// respondError maps a ledger error to its HTTP status so every failure is a
// distinguishable response.
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, logic.ErrNotRegistered),
		errors.Is(err, logic.ErrSkillNotFound),
		errors.Is(err, logic.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, logic.ErrAlreadyRegistered),
		errors.Is(err, logic.ErrInvalidState),
		errors.Is(err, logic.ErrSkillUnavailable):
		return http.StatusConflict
	case errors.Is(err, logic.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, logic.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, logic.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, logic.ErrOverflow):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrMintFailed),
		errors.Is(err, logic.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
