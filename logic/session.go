package logic

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

// SessionLogic is the escrow state machine: booking, completion and
// cancellation. State-changing calls serialize behind the mutex, and status
// flips are conditional in the store, so a session transitions out of booked
// exactly once.
type SessionLogic struct {
	mu            sync.Mutex
	userDAO       UserStore
	skillDAO      SkillStore
	sessionDAO    SessionStore
	stateDAO      StateStore
	assets        AssetService
	escrowAddress string
}

func NewSessionLogic(
	userDAO UserStore,
	skillDAO SkillStore,
	sessionDAO SessionStore,
	stateDAO StateStore,
	assets AssetService,
	escrowAddress string,
) *SessionLogic {
	return &SessionLogic{
		userDAO:       userDAO,
		skillDAO:      skillDAO,
		sessionDAO:    sessionDAO,
		stateDAO:      stateDAO,
		assets:        assets,
		escrowAddress: escrowAddress,
	}
}

// BookSession books hours against a skill and escrows the cost. The
// student→escrow token transfer happens through the asset service before the
// session record is committed, so a recorded booking always has its escrow.
func (l *SessionLogic) BookSession(student string, skillID, hours uint64) (*models.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := getUser(l.userDAO, student); err != nil {
		return nil, err
	}

	skill, err := l.skillDAO.GetSkillByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	if !skill.Available {
		return nil, ErrSkillUnavailable
	}

	cost := skill.HourlyRate * hours
	if hours > 0 && cost/hours != skill.HourlyRate {
		return nil, ErrOverflow
	}

	tokenID, err := l.stateDAO.GetSkillTokenID()
	if err != nil {
		return nil, err
	}
	if tokenID == 0 {
		return nil, fmt.Errorf("%w: skill token not configured", ErrTransferFailed)
	}

	sessionID, err := l.stateDAO.NextSessionID()
	if err != nil {
		return nil, err
	}

	// Escrow first; a failed transfer burns the session ID but records nothing.
	if err := l.assets.TransferAsset(tokenID, student, l.escrowAddress, cost); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	session := &models.Session{
		ID:           sessionID,
		Student:      student,
		Teacher:      skill.Teacher,
		SkillID:      skillID,
		Hours:        hours,
		Status:       models.SessionBooked,
		EscrowAmount: cost,
	}
	if err := l.sessionDAO.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession releases escrow to the teacher (or the skill's designated
// receiver) and credits the teacher's reputation with the session hours.
// Only the session's teacher may complete, and only from booked.
func (l *SessionLogic) CompleteSession(caller string, sessionID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, err := l.getSession(sessionID)
	if err != nil {
		return err
	}
	if caller != session.Teacher {
		return ErrUnauthorized
	}
	if session.Status != models.SessionBooked {
		return ErrInvalidState
	}

	payee := session.Teacher
	if skill, err := l.skillDAO.GetSkillByID(session.SkillID); err == nil && skill.Receiver != "" {
		payee = skill.Receiver
	}

	tokenID, err := l.stateDAO.GetSkillTokenID()
	if err != nil {
		return err
	}

	// Release escrow before committing; on failure the session stays booked.
	if err := l.assets.TransferAsset(tokenID, l.escrowAddress, payee, session.EscrowAmount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	// Status flip and reputation credit commit together or not at all.
	completed, err := l.sessionDAO.CompleteSession(sessionID, session.Teacher, session.Hours)
	if err != nil {
		return err
	}
	if !completed {
		return ErrInvalidState
	}
	return nil
}

// CancelSession refunds escrow to the student. Only the session's student
// may cancel, and only from booked.
func (l *SessionLogic) CancelSession(caller string, sessionID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, err := l.getSession(sessionID)
	if err != nil {
		return err
	}
	if caller != session.Student {
		return ErrUnauthorized
	}
	if session.Status != models.SessionBooked {
		return ErrInvalidState
	}

	tokenID, err := l.stateDAO.GetSkillTokenID()
	if err != nil {
		return err
	}

	if err := l.assets.TransferAsset(tokenID, l.escrowAddress, session.Student, session.EscrowAmount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	flipped, err := l.sessionDAO.UpdateSessionStatus(sessionID, models.SessionBooked, models.SessionCancelled)
	if err != nil {
		return err
	}
	if !flipped {
		return ErrInvalidState
	}
	return nil
}

// GetSession retrieves a session record
func (l *SessionLogic) GetSession(sessionID uint64) (*models.Session, error) {
	return l.getSession(sessionID)
}

// GetSessionsForUser retrieves sessions where the user is student or teacher
func (l *SessionLogic) GetSessionsForUser(publicKey string) ([]models.Session, error) {
	return l.sessionDAO.GetSessionsByUser(publicKey)
}

func (l *SessionLogic) getSession(sessionID uint64) (*models.Session, error) {
	session, err := l.sessionDAO.GetSessionByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}
