package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ramcharan1706/SkillSwap/logic"
)

// SessionController handles the session lifecycle endpoints
type SessionController struct {
	sessionLogic *logic.SessionLogic
}

func NewSessionController(sessionLogic *logic.SessionLogic) *SessionController {
	return &SessionController{sessionLogic: sessionLogic}
}

// BookSession handles POST /sessions
func (c *SessionController) BookSession(ctx *gin.Context) {
	type Request struct {
		SkillID uint64 `json:"skill_id" binding:"required"`
		Hours   uint64 `json:"hours" binding:"required,gt=0"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	session, err := c.sessionLogic.BookSession(student, req.SkillID, req.Hours)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// CompleteSession handles POST /sessions/:id/complete
func (c *SessionController) CompleteSession(ctx *gin.Context) {
	c.transition(ctx, c.sessionLogic.CompleteSession)
}

// CancelSession handles POST /sessions/:id/cancel
func (c *SessionController) CancelSession(ctx *gin.Context) {
	c.transition(ctx, c.sessionLogic.CancelSession)
}

func (c *SessionController) transition(ctx *gin.Context, apply func(string, uint64) error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	caller, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	if err := apply(caller, id); err != nil {
		respondError(ctx, err)
		return
	}

	session, err := c.sessionLogic.GetSession(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// GetSessions handles GET /sessions — the caller's sessions as student or teacher
func (c *SessionController) GetSessions(ctx *gin.Context) {
	caller, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	sessions, err := c.sessionLogic.GetSessionsForUser(caller)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}
