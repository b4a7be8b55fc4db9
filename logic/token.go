package logic

// TokenLogic handles internal fungible-token bookkeeping
type TokenLogic struct {
	userDAO UserStore
}

func NewTokenLogic(userDAO UserStore) *TokenLogic {
	return &TokenLogic{userDAO: userDAO}
}

// TransferTokens moves tokens from sender to recipient. Both parties must be
// registered; the debit and credit land together or not at all, so transfers
// conserve total supply and no balance ever goes negative.
func (l *TokenLogic) TransferTokens(sender, recipient string, amount uint64) error {
	if _, err := getUser(l.userDAO, sender); err != nil {
		return err
	}
	if _, err := getUser(l.userDAO, recipient); err != nil {
		return err
	}

	applied, err := l.userDAO.TransferTokens(sender, recipient, amount)
	if err != nil {
		return err
	}
	if !applied {
		return ErrInsufficientBalance
	}
	return nil
}
