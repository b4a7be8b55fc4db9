package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ramcharan1706/SkillSwap/logic"
)

// SkillController handles the skill catalog endpoints
type SkillController struct {
	skillLogic *logic.SkillLogic
}

func NewSkillController(skillLogic *logic.SkillLogic) *SkillController {
	return &SkillController{skillLogic: skillLogic}
}

// ListSkill handles POST /skills
func (c *SkillController) ListSkill(ctx *gin.Context) {
	type Request struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		HourlyRate  uint64 `json:"hourly_rate" binding:"required,gt=0"`
		Receiver    string `json:"receiver"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacher, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	skillID, err := c.skillLogic.ListSkill(teacher, req.Receiver, req.Name, req.Description, req.HourlyRate)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"skill_id": skillID})
}

// GetSkills handles GET /skills
func (c *SkillController) GetSkills(ctx *gin.Context) {
	skills, err := c.skillLogic.GetSkills()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, skills)
}

// GetSkill handles GET /skills/:id
func (c *SkillController) GetSkill(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	skill, err := c.skillLogic.GetSkill(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, skill)
}

// SetAvailability handles PATCH /skills/:id/availability
func (c *SkillController) SetAvailability(ctx *gin.Context) {
	type Request struct {
		Available *bool `json:"available" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	caller, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	if err := c.skillLogic.SetAvailability(caller, id, *req.Available); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"skill_id": id, "available": *req.Available})
}

// SetSkillToken handles POST /admin/skill-token
func (c *SkillController) SetSkillToken(ctx *gin.Context) {
	type Request struct {
		TokenID uint64 `json:"token_id" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	if err := c.skillLogic.SetSkillToken(caller, req.TokenID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token_id": req.TokenID})
}
