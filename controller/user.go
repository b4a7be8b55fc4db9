package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ramcharan1706/SkillSwap/logic"
)

// UserController handles user registration, login and profile queries
type UserController struct {
	userLogic *logic.UserLogic
}

func NewUserController(userLogic *logic.UserLogic) *UserController {
	return &UserController{userLogic: userLogic}
}

// Register handles POST /user/register
func (c *UserController) Register(ctx *gin.Context) {
	type Request struct {
		PublicKey string `json:"public_key" binding:"required"`
		Name      string `json:"name" binding:"required"`
		Message   string `json:"message" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, expireAt, err := c.userLogic.Register(req.PublicKey, req.Name, req.Message, req.Signature)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":      user,
		"token":     token,
		"expire_at": expireAt,
	})
}

// Login handles POST /user/login
func (c *UserController) Login(ctx *gin.Context) {
	type Request struct {
		PublicKey string `json:"public_key" binding:"required"`
		Message   string `json:"message" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, expireAt, err := c.userLogic.Login(req.PublicKey, req.Message, req.Signature)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":      user,
		"token":     token,
		"expire_at": expireAt,
	})
}

// GetUser handles GET /user — the authenticated caller's own record
func (c *UserController) GetUser(ctx *gin.Context) {
	userPubkey, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	user, err := c.userLogic.GetUser(userPubkey)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetReputation handles GET /users/:pubkey/reputation
func (c *UserController) GetReputation(ctx *gin.Context) {
	reputation, err := c.userLogic.GetReputation(ctx.Param("pubkey"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"reputation": reputation})
}

// GetBalance handles GET /users/:pubkey/balance
func (c *UserController) GetBalance(ctx *gin.Context) {
	balance, err := c.userLogic.GetBalance(ctx.Param("pubkey"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"balance": balance})
}
