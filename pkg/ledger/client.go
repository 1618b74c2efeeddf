package ledger

import "context"

// Client is the single capability surface handlers are written against.
// The live gateway client and the in-process mock both implement it, so
// the live/mock distinction exists only where the backend is resolved.
//
// Business refusals are returned as the sentinel errors in errors.go;
// any other error is treated as the backend being unreachable.
type Client interface {
	// Operator returns the account that signs outgoing transactions.
	Operator() EntityID

	CreateAccount(ctx context.Context, req CreateAccountRequest) (CreateAccountReceipt, error)
	UpdateAccount(ctx context.Context, req UpdateAccountRequest) (TransactionReceipt, error)
	DeleteAccount(ctx context.Context, req DeleteAccountRequest) (TransactionReceipt, error)
	TransferHbar(ctx context.Context, req TransferHbarRequest) (TransactionReceipt, error)
	AccountBalance(ctx context.Context, id EntityID) (Hbar, error)
	AccountInfo(ctx context.Context, id EntityID) (AccountInfo, error)
	ApproveHbarAllowance(ctx context.Context, req ApproveHbarAllowanceRequest) (TransactionReceipt, error)
	ApproveTokenAllowance(ctx context.Context, req ApproveTokenAllowanceRequest) (TransactionReceipt, error)
	SignSchedule(ctx context.Context, scheduleID EntityID) (TransactionReceipt, error)

	CreateToken(ctx context.Context, req CreateTokenRequest) (CreateTokenReceipt, error)
	UpdateToken(ctx context.Context, req UpdateTokenRequest) (TransactionReceipt, error)
	DeleteToken(ctx context.Context, tokenID EntityID) (TransactionReceipt, error)
	MintToken(ctx context.Context, req MintTokenRequest) (SupplyReceipt, error)
	MintNFT(ctx context.Context, req MintNFTRequest) (MintNFTReceipt, error)
	BurnToken(ctx context.Context, req BurnTokenRequest) (SupplyReceipt, error)
	BurnNFT(ctx context.Context, req BurnNFTRequest) (SupplyReceipt, error)
	TransferToken(ctx context.Context, req TransferTokenRequest) (TransactionReceipt, error)
	TransferNFT(ctx context.Context, req TransferNFTRequest) (TransactionReceipt, error)
	AssociateToken(ctx context.Context, accountID, tokenID EntityID) (TransactionReceipt, error)
	DissociateToken(ctx context.Context, accountID, tokenID EntityID) (TransactionReceipt, error)
	FreezeToken(ctx context.Context, tokenID, accountID EntityID) (TransactionReceipt, error)
	UnfreezeToken(ctx context.Context, tokenID, accountID EntityID) (TransactionReceipt, error)
	GrantKYC(ctx context.Context, tokenID, accountID EntityID) (TransactionReceipt, error)
	RevokeKYC(ctx context.Context, tokenID, accountID EntityID) (TransactionReceipt, error)
	PauseToken(ctx context.Context, tokenID EntityID) (TransactionReceipt, error)
	UnpauseToken(ctx context.Context, tokenID EntityID) (TransactionReceipt, error)
	WipeToken(ctx context.Context, req WipeTokenRequest) (TransactionReceipt, error)
	WipeNFT(ctx context.Context, req WipeNFTRequest) (TransactionReceipt, error)
	AirdropToken(ctx context.Context, req AirdropRequest) (TransactionReceipt, error)
	TokenInfo(ctx context.Context, tokenID EntityID) (TokenInfo, error)

	CreateTopic(ctx context.Context, req CreateTopicRequest) (CreateTopicReceipt, error)
	UpdateTopic(ctx context.Context, req UpdateTopicRequest) (TransactionReceipt, error)
	DeleteTopic(ctx context.Context, topicID EntityID) (TransactionReceipt, error)
	SubmitMessage(ctx context.Context, req SubmitMessageRequest) (SubmitMessageReceipt, error)
	TopicInfo(ctx context.Context, topicID EntityID) (TopicInfo, error)
	TopicMessages(ctx context.Context, req TopicMessagesRequest) ([]TopicMessage, error)
}

// TopicStream delivers consensus messages for one topic in order.
// The channel closes when the stream ends; callers must Close.
type TopicStream interface {
	Messages() <-chan TopicMessage
	Close() error
}

// TopicStreamer is an optional backend capability for following a
// topic as messages arrive. Surfaces detect it with a type
// assertion on the resolved client.
type TopicStreamer interface {
	SubscribeTopic(ctx context.Context, topicID EntityID) (TopicStream, error)
}
