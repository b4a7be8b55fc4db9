package logic

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

// In-memory store fakes backing the logic tests.

type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*models.User)}
}

func (s *memUserStore) CreateUser(publicKey, name string) (*models.User, error) {
	user := &models.User{PublicKey: publicKey, Name: name}
	s.users[publicKey] = user
	return user, nil
}

func (s *memUserStore) GetUserByPublicKey(publicKey string) (*models.User, error) {
	user, ok := s.users[publicKey]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *memUserStore) AddTokens(publicKey string, delta int64) error {
	if user, ok := s.users[publicKey]; ok {
		user.Tokens = uint64(int64(user.Tokens) + delta)
	}
	return nil
}

func (s *memUserStore) TransferTokens(sender, recipient string, amount uint64) (bool, error) {
	from, ok := s.users[sender]
	if !ok || from.Tokens < amount {
		return false, nil
	}
	to, ok := s.users[recipient]
	if !ok {
		return false, nil
	}
	from.Tokens -= amount
	to.Tokens += amount
	return true, nil
}

type memSkillStore struct {
	skills map[uint64]*models.Skill
}

func newMemSkillStore() *memSkillStore {
	return &memSkillStore{skills: make(map[uint64]*models.Skill)}
}

func (s *memSkillStore) CreateSkill(skill *models.Skill) error {
	s.skills[skill.ID] = skill
	return nil
}

func (s *memSkillStore) GetSkillByID(id uint64) (*models.Skill, error) {
	skill, ok := s.skills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return skill, nil
}

func (s *memSkillStore) GetAllSkills() ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(s.skills))
	for _, skill := range s.skills {
		out = append(out, *skill)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memSkillStore) SetAvailability(id uint64, available bool) error {
	if skill, ok := s.skills[id]; ok {
		skill.Available = available
	}
	return nil
}

type memSessionStore struct {
	sessions map[uint64]*models.Session
	users    *memUserStore

	// reputationErr simulates the reputation write failing inside the
	// completion transaction.
	reputationErr error
}

func newMemSessionStore(users *memUserStore) *memSessionStore {
	return &memSessionStore{sessions: make(map[uint64]*models.Session), users: users}
}

func (s *memSessionStore) CreateSession(session *models.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *memSessionStore) GetSessionByID(id uint64) (*models.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (s *memSessionStore) GetSessionsByUser(publicKey string) ([]models.Session, error) {
	var out []models.Session
	for _, session := range s.sessions {
		if session.Student == publicKey || session.Teacher == publicKey {
			out = append(out, *session)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memSessionStore) UpdateSessionStatus(id uint64, from, to string) (bool, error) {
	session, ok := s.sessions[id]
	if !ok || session.Status != from {
		return false, nil
	}
	session.Status = to
	return true, nil
}

// CompleteSession mirrors the transactional semantics of the real store: the
// status flip and the reputation credit apply together or not at all.
func (s *memSessionStore) CompleteSession(id uint64, teacher string, hours uint64) (bool, error) {
	session, ok := s.sessions[id]
	if !ok || session.Status != models.SessionBooked {
		return false, nil
	}
	if s.reputationErr != nil {
		return false, s.reputationErr
	}
	session.Status = models.SessionCompleted
	if user, ok := s.users.users[teacher]; ok {
		user.Reputation += hours
	}
	return true, nil
}

type memRewardStore struct {
	rewards map[uint64]*models.RewardAsset
}

func newMemRewardStore() *memRewardStore {
	return &memRewardStore{rewards: make(map[uint64]*models.RewardAsset)}
}

func (s *memRewardStore) CreateRewardAsset(reward *models.RewardAsset) error {
	if _, ok := s.rewards[reward.AssetID]; ok {
		return gorm.ErrDuplicatedKey
	}
	s.rewards[reward.AssetID] = reward
	return nil
}

func (s *memRewardStore) GetRewardAsset(assetID uint64) (*models.RewardAsset, error) {
	reward, ok := s.rewards[assetID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reward, nil
}

func (s *memRewardStore) GetRewardsByOwner(owner, state string) ([]models.RewardAsset, error) {
	var out []models.RewardAsset
	for _, reward := range s.rewards {
		if reward.Owner == owner && reward.State == state {
			out = append(out, *reward)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out, nil
}

func (s *memRewardStore) MarkRewardClaimed(assetID uint64, owner string) (bool, error) {
	reward, ok := s.rewards[assetID]
	if !ok || reward.Owner != owner || reward.State != models.RewardAvailable {
		return false, nil
	}
	reward.State = models.RewardOwned
	return true, nil
}

type memStateStore struct {
	skillTokenID  uint64
	nextSkillID   uint64
	nextSessionID uint64
}

func newMemStateStore() *memStateStore {
	return &memStateStore{nextSkillID: 1, nextSessionID: 1}
}

func (s *memStateStore) NextSkillID() (uint64, error) {
	id := s.nextSkillID
	s.nextSkillID++
	return id, nil
}

func (s *memStateStore) NextSessionID() (uint64, error) {
	id := s.nextSessionID
	s.nextSessionID++
	return id, nil
}

func (s *memStateStore) SetSkillTokenID(tokenID uint64) error {
	s.skillTokenID = tokenID
	return nil
}

func (s *memStateStore) GetSkillTokenID() (uint64, error) {
	return s.skillTokenID, nil
}

// transferCall records one asset movement requested from the stub service
type transferCall struct {
	AssetID uint64
	From    string
	To      string
	Amount  uint64
}

// stubAssetService hands out sequential asset IDs and records transfers;
// errors can be scripted per call.
type stubAssetService struct {
	nextAssetID uint64
	mintErr     error
	transferErr error
	transfers   []transferCall
}

func newStubAssetService() *stubAssetService {
	return &stubAssetService{nextAssetID: 100}
}

func (s *stubAssetService) MintUniqueAsset(name, symbol, metadataURL string) (uint64, error) {
	if s.mintErr != nil {
		return 0, s.mintErr
	}
	id := s.nextAssetID
	s.nextAssetID++
	return id, nil
}

func (s *stubAssetService) TransferAsset(assetID uint64, from, to string, amount uint64) error {
	if s.transferErr != nil {
		return s.transferErr
	}
	s.transfers = append(s.transfers, transferCall{AssetID: assetID, From: from, To: to, Amount: amount})
	return nil
}

func (s *stubAssetService) lastTransfer() transferCall {
	return s.transfers[len(s.transfers)-1]
}

const testEscrowAddress = "escrow-account"

// testEnv wires the logic layer against fakes
type testEnv struct {
	users    *memUserStore
	skills   *memSkillStore
	sessions *memSessionStore
	rewards  *memRewardStore
	state    *memStateStore
	assets   *stubAssetService

	userLogic    *UserLogic
	skillLogic   *SkillLogic
	tokenLogic   *TokenLogic
	sessionLogic *SessionLogic
	rewardLogic  *RewardLogic
}

func newTestEnv() *testEnv {
	users := newMemUserStore()
	env := &testEnv{
		users:    users,
		skills:   newMemSkillStore(),
		sessions: newMemSessionStore(users),
		rewards:  newMemRewardStore(),
		state:    newMemStateStore(),
		assets:   newStubAssetService(),
	}
	env.userLogic = NewUserLogic(env.users)
	env.skillLogic = NewSkillLogic(env.users, env.skills, env.state)
	env.tokenLogic = NewTokenLogic(env.users)
	env.sessionLogic = NewSessionLogic(env.users, env.skills, env.sessions, env.state, env.assets, testEscrowAddress)
	env.rewardLogic = NewRewardLogic(env.users, env.sessions, env.rewards, env.assets, testEscrowAddress)
	return env
}

// register creates a user directly in the store, bypassing signature checks
func (env *testEnv) register(publicKey, name string) *models.User {
	user, _ := env.users.CreateUser(publicKey, name)
	return user
}

var (
	errAssetServiceDown = errors.New("asset service unavailable")
	errStoreDown        = errors.New("store unavailable")
)
