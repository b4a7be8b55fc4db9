package logic

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/nbd-wtf/go-nostr"

	"github.com/Ramcharan1706/SkillSwap/models"
	"github.com/Ramcharan1706/SkillSwap/pkg"
)

// DepositLogic credits internal token balances from skill-token deposit
// events published on the ledger relay. Events are deduplicated by ID, so a
// deposit is credited exactly once.
type DepositLogic struct {
	userDAO     UserStore
	depositDAO  DepositStore
	nostrClient *pkg.NostrClient
}

func NewDepositLogic(
	userDAO UserStore,
	depositDAO DepositStore,
	nostrClient *pkg.NostrClient,
) *DepositLogic {
	return &DepositLogic{
		userDAO:     userDAO,
		depositDAO:  depositDAO,
		nostrClient: nostrClient,
	}
}

// SyncDepositEvents replays historical deposit events at startup
func (l *DepositLogic) SyncDepositEvents(ctx context.Context) error {
	storedEvents, err := l.depositDAO.GetAllDepositEvents()
	if err != nil {
		return err
	}
	storedEventMap := make(map[string]bool)
	for _, evt := range storedEvents {
		storedEventMap[evt.ID] = true
	}

	sub, err := l.nostrClient.Relay().Subscribe(ctx, l.nostrClient.DepositFilters(nostr.Timestamp(0)))
	if err != nil {
		return err
	}
	defer sub.Unsub()

	for ev := range sub.Events {
		var msg pkg.SkillSwapMessage
		if err := json.Unmarshal([]byte(ev.Content), &msg); err != nil {
			log.Printf("Failed to parse event content: %v", err)
			continue
		}

		if msg.Deposit != nil && !storedEventMap[ev.ID] {
			l.credit(ev.ID, msg.Deposit, time.Unix(int64(ev.CreatedAt), 0))
		}
	}

	return nil
}

// StartDepositListener subscribes to live deposit events
func (l *DepositLogic) StartDepositListener(ctx context.Context) error {
	return l.nostrClient.SubscribeDeposits(ctx, func(event nostr.Event) {
		var msg pkg.SkillSwapMessage
		if err := json.Unmarshal([]byte(event.Content), &msg); err != nil {
			log.Printf("Failed to parse event content: %v", err)
			return
		}

		if msg.Deposit != nil {
			l.credit(event.ID, msg.Deposit, time.Unix(int64(event.CreatedAt), 0))
		}
	})
}

func (l *DepositLogic) credit(eventID string, deposit *pkg.DepositPayload, createdAt time.Time) {
	event := &models.DepositEvent{
		ID:        eventID,
		User:      deposit.User,
		Amount:    deposit.Amount,
		CreatedAt: createdAt,
	}
	if err := l.depositDAO.SaveDepositEvent(event); err != nil {
		log.Printf("Failed to save deposit event: %v", err)
		return
	}

	if err := l.userDAO.AddTokens(deposit.User, int64(deposit.Amount)); err != nil {
		log.Printf("Failed to credit user tokens: %v", err)
	} else {
		log.Printf("Credited %d tokens to user %s", deposit.Amount, deposit.User)
	}
}
