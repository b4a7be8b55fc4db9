package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ramcharan1706/SkillSwap/logic"
	"github.com/Ramcharan1706/SkillSwap/models"
)

// RewardController handles proof-of-learning NFT endpoints
type RewardController struct {
	rewardLogic *logic.RewardLogic
}

func NewRewardController(rewardLogic *logic.RewardLogic) *RewardController {
	return &RewardController{rewardLogic: rewardLogic}
}

// AwardToStudent handles POST /sessions/:id/award
func (c *RewardController) AwardToStudent(ctx *gin.Context) {
	c.award(ctx, c.rewardLogic.AwardToStudent)
}

// AwardForBooking handles POST /sessions/:id/booking-award
func (c *RewardController) AwardForBooking(ctx *gin.Context) {
	c.award(ctx, c.rewardLogic.AwardForBooking)
}

func (c *RewardController) award(ctx *gin.Context, issue func(string, uint64) (*models.RewardAsset, error)) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	caller, ok := callerPubkey(ctx)
	if !ok {
		return
	}

	reward, err := issue(caller, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reward)
}

// Claim handles POST /nfts/claim
func (c *RewardController) Claim(ctx *gin.Context) {
	type Request struct {
		User    string `json:"user" binding:"required"`
		AssetID uint64 `json:"asset_id" binding:"required"`
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

	claimed, err := c.rewardLogic.ClaimNFT(caller, req.User, req.AssetID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"asset_id": req.AssetID, "claimed": claimed})
}

// GetLearnerNFTs handles GET /users/:pubkey/nfts
func (c *RewardController) GetLearnerNFTs(ctx *gin.Context) {
	rewards, err := c.rewardLogic.LearnerNFTs(ctx.Param("pubkey"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rewards)
}

// GetUserNFTAssetIDs handles GET /users/:pubkey/nfts/assets
func (c *RewardController) GetUserNFTAssetIDs(ctx *gin.Context) {
	ids, err := c.rewardLogic.UserNFTAssetIDs(ctx.Param("pubkey"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"asset_ids": ids})
}

// GetAvailableNFTs handles GET /users/:pubkey/nfts/available
func (c *RewardController) GetAvailableNFTs(ctx *gin.Context) {
	ids, err := c.rewardLogic.AvailableNFTs(ctx.Param("pubkey"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"asset_ids": ids})
}
