package ledger

import "time"

// TokenType distinguishes fungible tokens from NFT collections.
type TokenType string

const (
	TokenTypeFungible TokenType = "fungible"
	TokenTypeNFT      TokenType = "nft"
)

type TransactionReceipt struct {
	TransactionID string
}

type CreateAccountRequest struct {
	InitialBalance Hbar
	// PublicKey is optional; an empty value asks the backend to generate
	// a fresh key pair and return both halves.
	PublicKey string
}

type CreateAccountReceipt struct {
	AccountID     EntityID
	TransactionID string
	PublicKey     string
	// PrivateKey is set only when the backend generated the key pair.
	PrivateKey string
}

type UpdateAccountRequest struct {
	AccountID    EntityID
	NewPublicKey string
}

type DeleteAccountRequest struct {
	AccountID         EntityID
	TransferAccountID EntityID
}

type TransferHbarRequest struct {
	// From is optional; the zero value means the operator account.
	From   EntityID
	To     EntityID
	Amount Hbar
	Memo   string
}

type AccountInfo struct {
	AccountID EntityID
	Balance   Hbar
	PublicKey string
	Deleted   bool
}

type ApproveHbarAllowanceRequest struct {
	Spender EntityID
	Amount  Hbar
}

type ApproveTokenAllowanceRequest struct {
	TokenID EntityID
	Spender EntityID
	Amount  int64
}

type CreateTokenRequest struct {
	Type          TokenType
	Name          string
	Symbol        string
	Decimals      int32
	InitialSupply int64
	// Treasury is optional; the zero value means the operator account.
	Treasury EntityID
}

type CreateTokenReceipt struct {
	TokenID       EntityID
	TransactionID string
}

type UpdateTokenRequest struct {
	TokenID EntityID
	// Empty fields are left unchanged.
	Name   string
	Symbol string
}

type MintTokenRequest struct {
	TokenID EntityID
	Amount  int64
}

type BurnTokenRequest struct {
	TokenID EntityID
	Amount  int64
}

type SupplyReceipt struct {
	TransactionID string
	TotalSupply   int64
}

type MintNFTRequest struct {
	TokenID  EntityID
	Metadata [][]byte
}

type MintNFTReceipt struct {
	TransactionID string
	Serials       []int64
}

type BurnNFTRequest struct {
	TokenID EntityID
	Serials []int64
}

type TransferTokenRequest struct {
	TokenID EntityID
	// From is optional; the zero value means the treasury account.
	From   EntityID
	To     EntityID
	Amount int64
}

type TransferNFTRequest struct {
	TokenID EntityID
	To      EntityID
	Serial  int64
}

type WipeTokenRequest struct {
	TokenID   EntityID
	AccountID EntityID
	Amount    int64
}

type WipeNFTRequest struct {
	TokenID   EntityID
	AccountID EntityID
	Serials   []int64
}

type AirdropRecipient struct {
	AccountID EntityID
	Amount    int64
}

type AirdropRequest struct {
	TokenID    EntityID
	Recipients []AirdropRecipient
}

type TokenInfo struct {
	TokenID     EntityID
	Type        TokenType
	Name        string
	Symbol      string
	Decimals    int32
	TotalSupply int64
	Treasury    EntityID
	Paused      bool
}

type CreateTopicRequest struct {
	Memo string
}

type CreateTopicReceipt struct {
	TopicID       EntityID
	TransactionID string
}

type UpdateTopicRequest struct {
	TopicID EntityID
	Memo    string
}

type SubmitMessageRequest struct {
	TopicID EntityID
	Message []byte
}

type SubmitMessageReceipt struct {
	TransactionID  string
	SequenceNumber int64
}

type TopicInfo struct {
	TopicID        EntityID
	Memo           string
	SequenceNumber int64
}

type TopicMessage struct {
	SequenceNumber int64
	Contents       []byte
	ConsensusTime  time.Time
}

type TopicMessagesRequest struct {
	TopicID EntityID
	// Limit caps the number of returned messages; zero means backend default.
	Limit int
}
