package logic

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

const (
	rewardAssetName   = "SkillSwap Proof of Learning"
	rewardAssetSymbol = "SKILL"
)

// RewardLogic handles proof-of-learning NFT issuance and claiming. Direct
// awards go straight into the student's owned set; booking awards sit in the
// available set with the asset parked at the escrow account until claimed.
type RewardLogic struct {
	mu            sync.Mutex
	userDAO       UserStore
	sessionDAO    SessionStore
	rewardDAO     RewardStore
	assets        AssetService
	escrowAddress string
}

func NewRewardLogic(
	userDAO UserStore,
	sessionDAO SessionStore,
	rewardDAO RewardStore,
	assets AssetService,
	escrowAddress string,
) *RewardLogic {
	return &RewardLogic{
		userDAO:       userDAO,
		sessionDAO:    sessionDAO,
		rewardDAO:     rewardDAO,
		assets:        assets,
		escrowAddress: escrowAddress,
	}
}

// AwardToStudent mints a fresh NFT for a completed session and delivers it
// to the student. Only the session's teacher may award, and only once the
// session is completed.
func (l *RewardLogic) AwardToStudent(caller string, sessionID uint64) (*models.RewardAsset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, err := l.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	if caller != session.Teacher {
		return nil, ErrUnauthorized
	}
	if session.Status != models.SessionCompleted {
		return nil, ErrInvalidState
	}
	if _, err := getUser(l.userDAO, session.Student); err != nil {
		return nil, err
	}

	return l.issue(session, models.RewardOwned, session.Student)
}

// AwardForBooking mints a claimable NFT for a booked session. The asset
// stays with the escrow account; the student picks it up via ClaimNFT.
func (l *RewardLogic) AwardForBooking(caller string, sessionID uint64) (*models.RewardAsset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, err := l.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	if caller != session.Teacher {
		return nil, ErrUnauthorized
	}
	if session.Status != models.SessionBooked {
		return nil, ErrInvalidState
	}
	if _, err := getUser(l.userDAO, session.Student); err != nil {
		return nil, err
	}

	return l.issue(session, models.RewardAvailable, "")
}

// issue mints the NFT, optionally transfers it to deliverTo, and records it.
// deliverTo empty means the asset stays at the escrow account.
func (l *RewardLogic) issue(session *models.Session, state, deliverTo string) (*models.RewardAsset, error) {
	metadataURL := fmt.Sprintf("ipfs://skillswap/%s", uuid.NewString())

	assetID, err := l.assets.MintUniqueAsset(rewardAssetName, rewardAssetSymbol, metadataURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMintFailed, err)
	}

	if deliverTo != "" {
		if err := l.assets.TransferAsset(assetID, l.escrowAddress, deliverTo, 1); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
		}
	}

	reward := &models.RewardAsset{
		AssetID:     assetID,
		Owner:       session.Student,
		State:       state,
		SessionID:   session.ID,
		MetadataURL: metadataURL,
	}
	if err := l.rewardDAO.CreateRewardAsset(reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// ClaimNFT moves a reward from the user's available set to the owned set,
// transferring the asset to the user. A reward that is not in the available
// set yields false, not an error. Only the user may claim their own rewards.
func (l *RewardLogic) ClaimNFT(caller, user string, assetID uint64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != user {
		return false, ErrUnauthorized
	}
	if _, err := getUser(l.userDAO, user); err != nil {
		return false, err
	}

	reward, err := l.rewardDAO.GetRewardAsset(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if reward.Owner != user || reward.State != models.RewardAvailable {
		return false, nil
	}

	if err := l.assets.TransferAsset(assetID, l.escrowAddress, user, 1); err != nil {
		return false, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	return l.rewardDAO.MarkRewardClaimed(assetID, user)
}

// LearnerNFTs retrieves the user's owned reward records with provenance
func (l *RewardLogic) LearnerNFTs(user string) ([]models.RewardAsset, error) {
	if _, err := getUser(l.userDAO, user); err != nil {
		return nil, err
	}
	return l.rewardDAO.GetRewardsByOwner(user, models.RewardOwned)
}

// UserNFTAssetIDs retrieves the asset IDs in the user's owned set
func (l *RewardLogic) UserNFTAssetIDs(user string) ([]uint64, error) {
	rewards, err := l.LearnerNFTs(user)
	if err != nil {
		return nil, err
	}
	return assetIDs(rewards), nil
}

// AvailableNFTs retrieves the asset IDs the user can still claim
func (l *RewardLogic) AvailableNFTs(user string) ([]uint64, error) {
	if _, err := getUser(l.userDAO, user); err != nil {
		return nil, err
	}
	rewards, err := l.rewardDAO.GetRewardsByOwner(user, models.RewardAvailable)
	if err != nil {
		return nil, err
	}
	return assetIDs(rewards), nil
}

func assetIDs(rewards []models.RewardAsset) []uint64 {
	ids := make([]uint64, 0, len(rewards))
	for _, r := range rewards {
		ids = append(ids, r.AssetID)
	}
	return ids
}

func (l *RewardLogic) getSession(sessionID uint64) (*models.Session, error) {
	session, err := l.sessionDAO.GetSessionByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}
