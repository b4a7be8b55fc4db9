package controller

import (
	"context"
	"log"
	"time"

	"github.com/Ramcharan1706/SkillSwap/logic"
)

// DepositController runs the ledger deposit-event pipeline
type DepositController struct {
	depositLogic *logic.DepositLogic
}

func NewDepositController(depositLogic *logic.DepositLogic) *DepositController {
	return &DepositController{depositLogic: depositLogic}
}

// StartDepositServices replays stored history, then listens for new deposits
func (c *DepositController) StartDepositServices() {
	syncCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.depositLogic.SyncDepositEvents(syncCtx); err != nil {
		log.Printf("Failed to sync deposit events: %v", err)
	}

	if err := c.depositLogic.StartDepositListener(context.Background()); err != nil {
		log.Fatalf("Failed to start deposit listener: %v", err)
	}
}
