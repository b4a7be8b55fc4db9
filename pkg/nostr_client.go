package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nbd-wtf/go-nostr"
)

// SkillSwapMessage is the content of a ledger relay event
type SkillSwapMessage struct {
	Deposit *DepositPayload `json:"Deposit,omitempty"`
}

// DepositPayload reports a confirmed skill-token deposit into the app account
type DepositPayload struct {
	User   string `json:"user"`
	Amount uint64 `json:"amount"`
}

const depositEventKind = 1573

type NostrClient struct {
	relay        *nostr.Relay
	ledgerPubkey string
	appPubkey    string
}

func NewNostrClient(relayURL, ledgerPubkey, appPubkey string) (*NostrClient, error) {
	ctx := context.Background()
	relay, err := nostr.RelayConnect(ctx, relayURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to relay: %v", err)
	}

	return &NostrClient{
		relay:        relay,
		ledgerPubkey: ledgerPubkey,
		appPubkey:    appPubkey,
	}, nil
}

func (c *NostrClient) Relay() *nostr.Relay {
	return c.relay
}

// DepositFilters returns the relay filters matching skill-token deposit
// events addressed to this app, starting at the given timestamp.
func (c *NostrClient) DepositFilters(since nostr.Timestamp) nostr.Filters {
	return nostr.Filters{{
		Kinds: []int{depositEventKind},
		Since: &since,
		Tags: nostr.TagMap{
			"s": []string{"skillswap-ledger"},
			"p": []string{c.appPubkey},
		},
	}}
}

// SubscribeDeposits listens for new deposit events and hands them to handler
func (c *NostrClient) SubscribeDeposits(ctx context.Context, handler func(event nostr.Event)) error {
	sub, err := c.relay.Subscribe(ctx, c.DepositFilters(nostr.Now()))
	if err != nil {
		return fmt.Errorf("failed to subscribe: %v", err)
	}

	go func() {
		defer sub.Unsub()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub.Events:
				if !ok {
					log.Println("Event channel closed")
					return
				}
				var msg SkillSwapMessage
				if err := json.Unmarshal([]byte(ev.Content), &msg); err != nil {
					log.Printf("Failed to parse event content: %v", err)
					continue
				}

				if msg.Deposit != nil {
					handler(*ev)
				}
			case <-sub.EndOfStoredEvents:
				log.Println("Received EOSE")
			}
		}
	}()

	return nil
}

func (c *NostrClient) Close() {
	c.relay.Close()
}
