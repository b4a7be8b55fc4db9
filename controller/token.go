package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ramcharan1706/SkillSwap/logic"
)

// TokenController handles internal token transfer endpoints
type TokenController struct {
	tokenLogic *logic.TokenLogic
}

func NewTokenController(tokenLogic *logic.TokenLogic) *TokenController {
	return &TokenController{tokenLogic: tokenLogic}
}

// Transfer handles POST /tokens/transfer
func (c *TokenController) Transfer(ctx *gin.Context) {
	type Request struct {
		Recipient string `json:"recipient" binding:"required"`
		Amount    uint64 `json:"amount" binding:"required,gt=0"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sender, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	if err := c.tokenLogic.TransferTokens(sender, req.Recipient, req.Amount); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"recipient": req.Recipient, "amount": req.Amount})
}
