package ledger

import "errors"

// Business rejections surfaced by a backend. The dispatcher maps these
// to the backend_rejected error kind; anything else coming out of a
// client is treated as a connectivity failure.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrTokenNotFound     = errors.New("token not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInsufficientSupply = errors.New("insufficient token supply")
	ErrNotAssociated     = errors.New("account not associated with token")
	ErrAlreadyAssociated = errors.New("account already associated with token")
	ErrAccountFrozen     = errors.New("account frozen for token")
	ErrTokenPaused       = errors.New("token paused")
	ErrKYCRequired       = errors.New("kyc not granted for account")
	ErrDuplicateEntity   = errors.New("entity already exists")
	ErrSerialNotFound    = errors.New("nft serial not found")
	ErrNotTokenType      = errors.New("operation not valid for token type")
	ErrBalanceNotZero    = errors.New("token balance must be zero")
	ErrAccountDeleted    = errors.New("account deleted")
	ErrSelfTransfer      = errors.New("transfer target must differ from source")
)

var rejections = []error{
	ErrAccountNotFound,
	ErrTokenNotFound,
	ErrTopicNotFound,
	ErrScheduleNotFound,
	ErrInsufficientFunds,
	ErrInsufficientSupply,
	ErrNotAssociated,
	ErrAlreadyAssociated,
	ErrAccountFrozen,
	ErrTokenPaused,
	ErrKYCRequired,
	ErrDuplicateEntity,
	ErrSerialNotFound,
	ErrNotTokenType,
	ErrBalanceNotZero,
	ErrAccountDeleted,
	ErrSelfTransfer,
}

// IsRejection reports whether err is a business rejection rather than a
// connectivity failure.
func IsRejection(err error) bool {
	for _, sentinel := range rejections {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
