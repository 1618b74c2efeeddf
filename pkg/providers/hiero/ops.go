package hiero

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
)

type txReceipt struct {
	TransactionID  string `json:"transaction_id"`
	EntityID       string `json:"entity_id,omitempty"`
	PublicKey      string `json:"public_key,omitempty"`
	PrivateKey     string `json:"private_key,omitempty"`
	TotalSupply    int64  `json:"total_supply,omitempty"`
	Serials        []int64 `json:"serials,omitempty"`
	SequenceNumber int64  `json:"sequence_number,omitempty"`
}

func (r txReceipt) entity() (ledger.EntityID, error) {
	id, err := ledger.ParseEntityID(r.EntityID)
	if err != nil {
		return ledger.EntityID{}, fmt.Errorf("gateway returned malformed entity id %q", r.EntityID)
	}
	return id, nil
}

func (c *Client) CreateAccount(ctx context.Context, req ledger.CreateAccountRequest) (ledger.CreateAccountReceipt, error) {
	body := map[string]any{
		"initial_balance_tinybar": req.InitialBalance.Tinybar(),
	}
	if req.PublicKey != "" {
		body["public_key"] = req.PublicKey
	}
	var rcpt txReceipt
	if err := c.post(ctx, "/accounts", body, &rcpt); err != nil {
		return ledger.CreateAccountReceipt{}, err
	}
	id, err := rcpt.entity()
	if err != nil {
		return ledger.CreateAccountReceipt{}, err
	}
	return ledger.CreateAccountReceipt{
		AccountID:     id,
		TransactionID: rcpt.TransactionID,
		PublicKey:     rcpt.PublicKey,
		PrivateKey:    rcpt.PrivateKey,
	}, nil
}

func (c *Client) UpdateAccount(ctx context.Context, req ledger.UpdateAccountRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{"public_key": req.NewPublicKey}
	return c.postReceipt(ctx, "/accounts/"+req.AccountID.String()+"/update", body)
}

func (c *Client) DeleteAccount(ctx context.Context, req ledger.DeleteAccountRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{"transfer_account_id": req.TransferAccountID.String()}
	return c.postReceipt(ctx, "/accounts/"+req.AccountID.String()+"/delete", body)
}

func (c *Client) TransferHbar(ctx context.Context, req ledger.TransferHbarRequest) (ledger.TransactionReceipt, error) {
	from := req.From
	if from.IsZero() {
		from = c.cfg.Operator
	}
	body := map[string]any{
		"from":            from.String(),
		"to":              req.To.String(),
		"amount_tinybar":  req.Amount.Tinybar(),
	}
	if req.Memo != "" {
		body["memo"] = req.Memo
	}
	return c.postReceipt(ctx, "/transfers/hbar", body)
}

func (c *Client) AccountBalance(ctx context.Context, id ledger.EntityID) (ledger.Hbar, error) {
	info, err := c.AccountInfo(ctx, id)
	if err != nil {
		return 0, err
	}
	return info.Balance, nil
}

func (c *Client) AccountInfo(ctx context.Context, id ledger.EntityID) (ledger.AccountInfo, error) {
	var resp struct {
		AccountID      string `json:"account_id"`
		BalanceTinybar int64  `json:"balance_tinybar"`
		PublicKey      string `json:"public_key"`
		Deleted        bool   `json:"deleted"`
	}
	if err := c.get(ctx, "/accounts/"+id.String(), &resp); err != nil {
		return ledger.AccountInfo{}, err
	}
	return ledger.AccountInfo{
		AccountID: id,
		Balance:   ledger.Hbar(resp.BalanceTinybar),
		PublicKey: resp.PublicKey,
		Deleted:   resp.Deleted,
	}, nil
}

func (c *Client) ApproveHbarAllowance(ctx context.Context, req ledger.ApproveHbarAllowanceRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{
		"spender":        req.Spender.String(),
		"amount_tinybar": req.Amount.Tinybar(),
	}
	return c.postReceipt(ctx, "/allowances/hbar", body)
}

func (c *Client) ApproveTokenAllowance(ctx context.Context, req ledger.ApproveTokenAllowanceRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{
		"token_id": req.TokenID.String(),
		"spender":  req.Spender.String(),
		"amount":   req.Amount,
	}
	return c.postReceipt(ctx, "/allowances/token", body)
}

func (c *Client) SignSchedule(ctx context.Context, scheduleID ledger.EntityID) (ledger.TransactionReceipt, error) {
	return c.postReceipt(ctx, "/schedules/"+scheduleID.String()+"/sign", nil)
}

func (c *Client) CreateToken(ctx context.Context, req ledger.CreateTokenRequest) (ledger.CreateTokenReceipt, error) {
	treasury := req.Treasury
	if treasury.IsZero() {
		treasury = c.cfg.Operator
	}
	body := map[string]any{
		"type":           string(req.Type),
		"name":           req.Name,
		"symbol":         req.Symbol,
		"decimals":       req.Decimals,
		"initial_supply": req.InitialSupply,
		"treasury":       treasury.String(),
	}
	var rcpt txReceipt
	if err := c.post(ctx, "/tokens", body, &rcpt); err != nil {
		return ledger.CreateTokenReceipt{}, err
	}
	id, err := rcpt.entity()
	if err != nil {
		return ledger.CreateTokenReceipt{}, err
	}
	return ledger.CreateTokenReceipt{TokenID: id, TransactionID: rcpt.TransactionID}, nil
}

func (c *Client) UpdateToken(ctx context.Context, req ledger.UpdateTokenRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{}
	if req.Name != "" {
		body["name"] = req.Name
	}
	if req.Symbol != "" {
		body["symbol"] = req.Symbol
	}
	return c.postReceipt(ctx, "/tokens/"+req.TokenID.String()+"/update", body)
}

func (c *Client) DeleteToken(ctx context.Context, tokenID ledger.EntityID) (ledger.TransactionReceipt, error) {
	return c.postReceipt(ctx, "/tokens/"+tokenID.String()+"/delete", nil)
}

func (c *Client) MintToken(ctx context.Context, req ledger.MintTokenRequest) (ledger.SupplyReceipt, error) {
	return c.postSupply(ctx, "/tokens/"+req.TokenID.String()+"/mint", map[string]any{"amount": req.Amount})
}

func (c *Client) BurnToken(ctx context.Context, req ledger.BurnTokenRequest) (ledger.SupplyReceipt, error) {
	return c.postSupply(ctx, "/tokens/"+req.TokenID.String()+"/burn", map[string]any{"amount": req.Amount})
}

func (c *Client) MintNFT(ctx context.Context, req ledger.MintNFTRequest) (ledger.MintNFTReceipt, error) {
	metadata := make([]string, len(req.Metadata))
	for i, m := range req.Metadata {
		metadata[i] = base64.StdEncoding.EncodeToString(m)
	}
	var rcpt txReceipt
	if err := c.post(ctx, "/tokens/"+req.TokenID.String()+"/mint-nfts", map[string]any{"metadata": metadata}, &rcpt); err != nil {
		return ledger.MintNFTReceipt{}, err
	}
	return ledger.MintNFTReceipt{TransactionID: rcpt.TransactionID, Serials: rcpt.Serials}, nil
}

func (c *Client) BurnNFT(ctx context.Context, req ledger.BurnNFTRequest) (ledger.SupplyReceipt, error) {
	return c.postSupply(ctx, "/tokens/"+req.TokenID.String()+"/burn-nfts", map[string]any{"serials": req.Serials})
}

func (c *Client) TransferToken(ctx context.Context, req ledger.TransferTokenRequest) (ledger.TransactionReceipt, error) {
	from := req.From
	if from.IsZero() {
		from = c.cfg.Operator
	}
	body := map[string]any{
		"from":   from.String(),
		"to":     req.To.String(),
		"amount": req.Amount,
	}
	return c.postReceipt(ctx, "/tokens/"+req.TokenID.String()+"/transfer", body)
}

func (c *Client) TransferNFT(ctx context.Context, req ledger.TransferNFTRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{
		"to":     req.To.String(),
		"serial": req.Serial,
	}
	return c.postReceipt(ctx, "/tokens/"+req.TokenID.String()+"/transfer-nft", body)
}

func (c *Client) AssociateToken(ctx context.Context, accountID, tokenID ledger.EntityID) (ledger.TransactionReceipt, error) {
	body := map[string]any{"token_id": tokenID.String()}
	return c.postReceipt(ctx, "/accounts/"+accountID.String()+"/associate", body)
}

func (c *Client) DissociateToken(ctx context.Context, accountID, tokenID ledger.EntityID) (ledger.TransactionReceipt, error) {
	body := map[string]any{"token_id": tokenID.String()}
	return c.postReceipt(ctx, "/accounts/"+accountID.String()+"/dissociate", body)
}

func (c *Client) FreezeToken(ctx context.Context, tokenID, accountID ledger.EntityID) (ledger.TransactionReceipt, error) {
	body := map[string]any{"account_id": accountID.String()}
	return c.postReceipt(ctx, "/tokens/"+tokenID.String()+"/freeze", body)
}

func (c *Client) UnfreezeToken(ctx context.Context, tokenID, accountID ledger.EntityID) (ledger.TransactionReceipt, error) {
	body := map[string]any{"account_id": accountID.String()}
	return c.postReceipt(ctx, "/tokens/"+tokenID.String()+"/unfreeze", body)
}

func (c *Client) GrantKYC(ctx context.Context, tokenID, accountID ledger.EntityID) (ledger.TransactionReceipt, error) {
	body := map[string]any{"account_id": accountID.String()}
	return c.postReceipt(ctx, "/tokens/"+tokenID.String()+"/grant-kyc", body)
}

func (c *Client) RevokeKYC(ctx context.Context, tokenID, accountID ledger.EntityID) (ledger.TransactionReceipt, error) {
	body := map[string]any{"account_id": accountID.String()}
	return c.postReceipt(ctx, "/tokens/"+tokenID.String()+"/revoke-kyc", body)
}

func (c *Client) PauseToken(ctx context.Context, tokenID ledger.EntityID) (ledger.TransactionReceipt, error) {
	return c.postReceipt(ctx, "/tokens/"+tokenID.String()+"/pause", nil)
}

func (c *Client) UnpauseToken(ctx context.Context, tokenID ledger.EntityID) (ledger.TransactionReceipt, error) {
	return c.postReceipt(ctx, "/tokens/"+tokenID.String()+"/unpause", nil)
}

func (c *Client) WipeToken(ctx context.Context, req ledger.WipeTokenRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{
		"account_id": req.AccountID.String(),
		"amount":     req.Amount,
	}
	return c.postReceipt(ctx, "/tokens/"+req.TokenID.String()+"/wipe", body)
}

func (c *Client) WipeNFT(ctx context.Context, req ledger.WipeNFTRequest) (ledger.TransactionReceipt, error) {
	body := map[string]any{
		"account_id": req.AccountID.String(),
		"serials":    req.Serials,
	}
	return c.postReceipt(ctx, "/tokens/"+req.TokenID.String()+"/wipe-nft", body)
}

func (c *Client) AirdropToken(ctx context.Context, req ledger.AirdropRequest) (ledger.TransactionReceipt, error) {
	recipients := make([]map[string]any, len(req.Recipients))
	for i, r := range req.Recipients {
		recipients[i] = map[string]any{
			"account_id": r.AccountID.String(),
			"amount":     r.Amount,
		}
	}
	return c.postReceipt(ctx, "/tokens/"+req.TokenID.String()+"/airdrop", map[string]any{"recipients": recipients})
}

func (c *Client) TokenInfo(ctx context.Context, tokenID ledger.EntityID) (ledger.TokenInfo, error) {
	var resp struct {
		Type        string `json:"type"`
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		Decimals    int32  `json:"decimals"`
		TotalSupply int64  `json:"total_supply"`
		Treasury    string `json:"treasury"`
		Paused      bool   `json:"paused"`
	}
	if err := c.get(ctx, "/tokens/"+tokenID.String(), &resp); err != nil {
		return ledger.TokenInfo{}, err
	}
	treasury, err := ledger.ParseEntityID(resp.Treasury)
	if err != nil {
		return ledger.TokenInfo{}, fmt.Errorf("gateway returned malformed treasury id %q", resp.Treasury)
	}
	return ledger.TokenInfo{
		TokenID:     tokenID,
		Type:        ledger.TokenType(resp.Type),
		Name:        resp.Name,
		Symbol:      resp.Symbol,
		Decimals:    resp.Decimals,
		TotalSupply: resp.TotalSupply,
		Treasury:    treasury,
		Paused:      resp.Paused,
	}, nil
}

func (c *Client) CreateTopic(ctx context.Context, req ledger.CreateTopicRequest) (ledger.CreateTopicReceipt, error) {
	var rcpt txReceipt
	if err := c.post(ctx, "/topics", map[string]any{"memo": req.Memo}, &rcpt); err != nil {
		return ledger.CreateTopicReceipt{}, err
	}
	id, err := rcpt.entity()
	if err != nil {
		return ledger.CreateTopicReceipt{}, err
	}
	return ledger.CreateTopicReceipt{TopicID: id, TransactionID: rcpt.TransactionID}, nil
}

func (c *Client) UpdateTopic(ctx context.Context, req ledger.UpdateTopicRequest) (ledger.TransactionReceipt, error) {
	return c.postReceipt(ctx, "/topics/"+req.TopicID.String()+"/update", map[string]any{"memo": req.Memo})
}

func (c *Client) DeleteTopic(ctx context.Context, topicID ledger.EntityID) (ledger.TransactionReceipt, error) {
	return c.postReceipt(ctx, "/topics/"+topicID.String()+"/delete", nil)
}

func (c *Client) SubmitMessage(ctx context.Context, req ledger.SubmitMessageRequest) (ledger.SubmitMessageReceipt, error) {
	body := map[string]any{"message": base64.StdEncoding.EncodeToString(req.Message)}
	var rcpt txReceipt
	if err := c.post(ctx, "/topics/"+req.TopicID.String()+"/messages", body, &rcpt); err != nil {
		return ledger.SubmitMessageReceipt{}, err
	}
	return ledger.SubmitMessageReceipt{
		TransactionID:  rcpt.TransactionID,
		SequenceNumber: rcpt.SequenceNumber,
	}, nil
}

func (c *Client) TopicInfo(ctx context.Context, topicID ledger.EntityID) (ledger.TopicInfo, error) {
	var resp struct {
		Memo           string `json:"memo"`
		SequenceNumber int64  `json:"sequence_number"`
	}
	if err := c.get(ctx, "/topics/"+topicID.String(), &resp); err != nil {
		return ledger.TopicInfo{}, err
	}
	return ledger.TopicInfo{TopicID: topicID, Memo: resp.Memo, SequenceNumber: resp.SequenceNumber}, nil
}

func (c *Client) TopicMessages(ctx context.Context, req ledger.TopicMessagesRequest) ([]ledger.TopicMessage, error) {
	path := "/topics/" + req.TopicID.String() + "/messages"
	if req.Limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, req.Limit)
	}
	var resp struct {
		Messages []wireMessage `json:"messages"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	out := make([]ledger.TopicMessage, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		msg, err := m.decode()
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}

type wireMessage struct {
	SequenceNumber int64  `json:"sequence_number"`
	Message        string `json:"message"`
	ConsensusTime  string `json:"consensus_time"`
}

func (m wireMessage) decode() (ledger.TopicMessage, error) {
	contents, err := base64.StdEncoding.DecodeString(m.Message)
	if err != nil {
		return ledger.TopicMessage{}, fmt.Errorf("malformed topic message payload: %w", err)
	}
	var ts time.Time
	if m.ConsensusTime != "" {
		ts, err = time.Parse(time.RFC3339Nano, m.ConsensusTime)
		if err != nil {
			return ledger.TopicMessage{}, fmt.Errorf("malformed consensus timestamp %q", m.ConsensusTime)
		}
	}
	return ledger.TopicMessage{
		SequenceNumber: m.SequenceNumber,
		Contents:       contents,
		ConsensusTime:  ts,
	}, nil
}

func (c *Client) postReceipt(ctx context.Context, path string, body any) (ledger.TransactionReceipt, error) {
	var rcpt txReceipt
	if err := c.post(ctx, path, body, &rcpt); err != nil {
		return ledger.TransactionReceipt{}, err
	}
	return ledger.TransactionReceipt{TransactionID: rcpt.TransactionID}, nil
}

func (c *Client) postSupply(ctx context.Context, path string, body any) (ledger.SupplyReceipt, error) {
	var rcpt txReceipt
	if err := c.post(ctx, path, body, &rcpt); err != nil {
		return ledger.SupplyReceipt{}, err
	}
	return ledger.SupplyReceipt{TransactionID: rcpt.TransactionID, TotalSupply: rcpt.TotalSupply}, nil
}

var _ ledger.Client = (*Client)(nil)
