package mock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
)

func newTestClient() *Client {
	return NewClient(Config{})
}

func TestCreateAccountRoundTrip(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	rcpt, err := c.CreateAccount(ctx, ledger.CreateAccountRequest{
		InitialBalance: 5 * ledger.TinybarPerHbar,
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if rcpt.AccountID.Num < DefaultFirstEntityNum {
		t.Fatalf("account id %s below first entity num", rcpt.AccountID)
	}
	if rcpt.PublicKey == "" || rcpt.PrivateKey == "" {
		t.Fatal("expected generated key pair")
	}

	bal, err := c.AccountBalance(ctx, rcpt.AccountID)
	if err != nil {
		t.Fatalf("AccountBalance: %v", err)
	}
	if bal != 5*ledger.TinybarPerHbar {
		t.Fatalf("balance = %s, want 5 HBAR", bal)
	}
}

func TestTransferHbarConservation(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()
	before := c.TotalHbar()

	a, err := c.CreateAccount(ctx, ledger.CreateAccountRequest{InitialBalance: ledger.Hbar(8.5 * ledger.TinybarPerHbar)})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	b, err := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	if _, err := c.TransferHbar(ctx, ledger.TransferHbarRequest{
		From:   a.AccountID,
		To:     b.AccountID,
		Amount: 2 * ledger.TinybarPerHbar,
	}); err != nil {
		t.Fatalf("TransferHbar: %v", err)
	}

	balA, _ := c.AccountBalance(ctx, a.AccountID)
	balB, _ := c.AccountBalance(ctx, b.AccountID)
	if balA != ledger.Hbar(6.5*ledger.TinybarPerHbar) {
		t.Fatalf("sender balance = %s, want 6.5 HBAR", balA)
	}
	if balB != 2*ledger.TinybarPerHbar {
		t.Fatalf("recipient balance = %s, want 2 HBAR", balB)
	}
	if got := c.TotalHbar(); got != before {
		t.Fatalf("total hbar changed: %s -> %s", before, got)
	}
}

func TestTransferHbarInsufficientFundsLeavesStateUntouched(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	a, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{InitialBalance: 1 * ledger.TinybarPerHbar})
	b, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})

	_, err := c.TransferHbar(ctx, ledger.TransferHbarRequest{
		From:   a.AccountID,
		To:     b.AccountID,
		Amount: 2 * ledger.TinybarPerHbar,
	})
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	balA, _ := c.AccountBalance(ctx, a.AccountID)
	balB, _ := c.AccountBalance(ctx, b.AccountID)
	if balA != 1*ledger.TinybarPerHbar || balB != 0 {
		t.Fatalf("balances changed after rejected transfer: %s, %s", balA, balB)
	}
}

func TestEntityIDsMonotonicAndUnique(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	seen := make(map[ledger.EntityID]bool)
	var last int64
	for i := 0; i < 5; i++ {
		rcpt, err := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
		if err != nil {
			t.Fatalf("CreateAccount: %v", err)
		}
		if seen[rcpt.AccountID] {
			t.Fatalf("duplicate id %s", rcpt.AccountID)
		}
		seen[rcpt.AccountID] = true
		if rcpt.AccountID.Num <= last {
			t.Fatalf("ids not monotonic: %d after %d", rcpt.AccountID.Num, last)
		}
		last = rcpt.AccountID.Num
	}

	// Tokens and topics draw from the same counter.
	tok, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{Type: ledger.TokenTypeFungible, Name: "t", Symbol: "T"})
	top, _ := c.CreateTopic(ctx, ledger.CreateTopicRequest{})
	if tok.TokenID.Num <= last || top.TopicID.Num <= tok.TokenID.Num {
		t.Fatalf("cross-kind ids not monotonic: %d, %d, %d", last, tok.TokenID.Num, top.TopicID.Num)
	}
}

func TestCancelledContextMutatesNothing(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	a, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{InitialBalance: 3 * ledger.TinybarPerHbar})
	b, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	before := c.TotalHbar()
	accounts := c.AccountCount()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.TransferHbar(cancelled, ledger.TransferHbarRequest{
		From: a.AccountID, To: b.AccountID, Amount: 1 * ledger.TinybarPerHbar,
	}); err == nil {
		t.Fatal("expected cancellation error")
	}
	if _, err := c.CreateAccount(cancelled, ledger.CreateAccountRequest{}); err == nil {
		t.Fatal("expected cancellation error")
	}

	balA, _ := c.AccountBalance(ctx, a.AccountID)
	if balA != 3*ledger.TinybarPerHbar {
		t.Fatalf("balance changed under cancelled context: %s", balA)
	}
	if c.TotalHbar() != before || c.AccountCount() != accounts {
		t.Fatal("state changed under cancelled context")
	}
}

func TestConcurrentTransfersNeverGoNegative(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	a, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{InitialBalance: 10 * ledger.TinybarPerHbar})
	b, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	before := c.TotalHbar()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.TransferHbar(ctx, ledger.TransferHbarRequest{
				From: a.AccountID, To: b.AccountID, Amount: 1 * ledger.TinybarPerHbar,
			})
		}()
	}
	wg.Wait()

	balA, _ := c.AccountBalance(ctx, a.AccountID)
	balB, _ := c.AccountBalance(ctx, b.AccountID)
	if balA < 0 {
		t.Fatalf("sender went negative: %s", balA)
	}
	if balA+balB != 10*ledger.TinybarPerHbar {
		t.Fatalf("pair total drifted: %s + %s", balA, balB)
	}
	if c.TotalHbar() != before {
		t.Fatal("total hbar drifted under concurrency")
	}
}

func TestDeleteAccountSweepsBalance(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	a, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{InitialBalance: 4 * ledger.TinybarPerHbar})
	b, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})

	if _, err := c.DeleteAccount(ctx, ledger.DeleteAccountRequest{
		AccountID: a.AccountID, TransferAccountID: b.AccountID,
	}); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	if _, err := c.AccountBalance(ctx, a.AccountID); !errors.Is(err, ledger.ErrAccountDeleted) {
		t.Fatalf("err = %v, want ErrAccountDeleted", err)
	}
	balB, _ := c.AccountBalance(ctx, b.AccountID)
	if balB != 4*ledger.TinybarPerHbar {
		t.Fatalf("sweep target balance = %s, want 4 HBAR", balB)
	}

	info, err := c.AccountInfo(ctx, a.AccountID)
	if err != nil {
		t.Fatalf("AccountInfo on deleted account: %v", err)
	}
	if !info.Deleted {
		t.Fatal("AccountInfo should report deleted")
	}
}

func TestTokenLifecycle(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	tok, err := c.CreateToken(ctx, ledger.CreateTokenRequest{
		Type: ledger.TokenTypeFungible, Name: "Demo", Symbol: "DMO", Decimals: 2, InitialSupply: 1000,
	})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	mint, err := c.MintToken(ctx, ledger.MintTokenRequest{TokenID: tok.TokenID, Amount: 500})
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	if mint.TotalSupply != 1500 {
		t.Fatalf("supply after mint = %d, want 1500", mint.TotalSupply)
	}

	burn, err := c.BurnToken(ctx, ledger.BurnTokenRequest{TokenID: tok.TokenID, Amount: 200})
	if err != nil {
		t.Fatalf("BurnToken: %v", err)
	}
	if burn.TotalSupply != 1300 {
		t.Fatalf("supply after burn = %d, want 1300", burn.TotalSupply)
	}

	info, _ := c.TokenInfo(ctx, tok.TokenID)
	if info.TotalSupply != 1300 || info.Treasury != c.Operator() {
		t.Fatalf("TokenInfo = %+v", info)
	}

	if _, err := c.BurnToken(ctx, ledger.BurnTokenRequest{TokenID: tok.TokenID, Amount: 10000}); !errors.Is(err, ledger.ErrInsufficientSupply) {
		t.Fatalf("over-burn err = %v, want ErrInsufficientSupply", err)
	}
}

func TestAssociationRules(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	acct, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	tok, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{
		Type: ledger.TokenTypeFungible, Name: "Demo", Symbol: "DMO", InitialSupply: 100,
	})

	// Transfer to an unassociated account is refused.
	_, err := c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: acct.AccountID, Amount: 10})
	if !errors.Is(err, ledger.ErrNotAssociated) {
		t.Fatalf("err = %v, want ErrNotAssociated", err)
	}

	if _, err := c.AssociateToken(ctx, acct.AccountID, tok.TokenID); err != nil {
		t.Fatalf("AssociateToken: %v", err)
	}
	if _, err := c.AssociateToken(ctx, acct.AccountID, tok.TokenID); !errors.Is(err, ledger.ErrAlreadyAssociated) {
		t.Fatalf("double associate err = %v, want ErrAlreadyAssociated", err)
	}

	if _, err := c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: acct.AccountID, Amount: 10}); err != nil {
		t.Fatalf("TransferToken after associate: %v", err)
	}

	// Holding a balance blocks dissociation.
	if _, err := c.DissociateToken(ctx, acct.AccountID, tok.TokenID); !errors.Is(err, ledger.ErrBalanceNotZero) {
		t.Fatalf("dissociate with balance err = %v, want ErrBalanceNotZero", err)
	}
	if _, err := c.TransferToken(ctx, ledger.TransferTokenRequest{
		TokenID: tok.TokenID, From: acct.AccountID, To: c.Operator(), Amount: 10,
	}); err != nil {
		t.Fatalf("return transfer: %v", err)
	}
	if _, err := c.DissociateToken(ctx, acct.AccountID, tok.TokenID); err != nil {
		t.Fatalf("DissociateToken: %v", err)
	}
}

func TestFreezeAndPauseBlockTransfers(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	acct, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	tok, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{
		Type: ledger.TokenTypeFungible, Name: "Demo", Symbol: "DMO", InitialSupply: 100,
	})
	c.AssociateToken(ctx, acct.AccountID, tok.TokenID)

	c.FreezeToken(ctx, tok.TokenID, acct.AccountID)
	_, err := c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: acct.AccountID, Amount: 5})
	if !errors.Is(err, ledger.ErrAccountFrozen) {
		t.Fatalf("frozen err = %v, want ErrAccountFrozen", err)
	}
	c.UnfreezeToken(ctx, tok.TokenID, acct.AccountID)

	c.PauseToken(ctx, tok.TokenID)
	_, err = c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: acct.AccountID, Amount: 5})
	if !errors.Is(err, ledger.ErrTokenPaused) {
		t.Fatalf("paused err = %v, want ErrTokenPaused", err)
	}
	c.UnpauseToken(ctx, tok.TokenID)

	if _, err := c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: acct.AccountID, Amount: 5}); err != nil {
		t.Fatalf("transfer after unfreeze/unpause: %v", err)
	}
}

func TestNFTLifecycle(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	acct, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	tok, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{Type: ledger.TokenTypeNFT, Name: "Art", Symbol: "ART"})
	c.AssociateToken(ctx, acct.AccountID, tok.TokenID)

	mint, err := c.MintNFT(ctx, ledger.MintNFTRequest{
		TokenID:  tok.TokenID,
		Metadata: [][]byte{[]byte("one"), []byte("two")},
	})
	if err != nil {
		t.Fatalf("MintNFT: %v", err)
	}
	if len(mint.Serials) != 2 || mint.Serials[0] != 1 || mint.Serials[1] != 2 {
		t.Fatalf("serials = %v, want [1 2]", mint.Serials)
	}

	if _, err := c.TransferNFT(ctx, ledger.TransferNFTRequest{
		TokenID: tok.TokenID, To: acct.AccountID, Serial: 1,
	}); err != nil {
		t.Fatalf("TransferNFT: %v", err)
	}

	// Serial 1 left the treasury, so the treasury cannot burn it.
	if _, err := c.BurnNFT(ctx, ledger.BurnNFTRequest{TokenID: tok.TokenID, Serials: []int64{1}}); !errors.Is(err, ledger.ErrSerialNotFound) {
		t.Fatalf("burn transferred serial err = %v, want ErrSerialNotFound", err)
	}

	burn, err := c.BurnNFT(ctx, ledger.BurnNFTRequest{TokenID: tok.TokenID, Serials: []int64{2}})
	if err != nil {
		t.Fatalf("BurnNFT: %v", err)
	}
	if burn.TotalSupply != 1 {
		t.Fatalf("supply after burn = %d, want 1", burn.TotalSupply)
	}

	if _, err := c.WipeNFT(ctx, ledger.WipeNFTRequest{
		TokenID: tok.TokenID, AccountID: acct.AccountID, Serials: []int64{1},
	}); err != nil {
		t.Fatalf("WipeNFT: %v", err)
	}
	info, _ := c.TokenInfo(ctx, tok.TokenID)
	if info.TotalSupply != 0 {
		t.Fatalf("supply after wipe = %d, want 0", info.TotalSupply)
	}
}

func TestMintOnWrongTokenType(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	nft, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{Type: ledger.TokenTypeNFT, Name: "Art", Symbol: "ART"})
	if _, err := c.MintToken(ctx, ledger.MintTokenRequest{TokenID: nft.TokenID, Amount: 1}); !errors.Is(err, ledger.ErrNotTokenType) {
		t.Fatalf("err = %v, want ErrNotTokenType", err)
	}

	ft, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{Type: ledger.TokenTypeFungible, Name: "Demo", Symbol: "DMO"})
	if _, err := c.MintNFT(ctx, ledger.MintNFTRequest{TokenID: ft.TokenID, Metadata: [][]byte{[]byte("m")}}); !errors.Is(err, ledger.ErrNotTokenType) {
		t.Fatalf("err = %v, want ErrNotTokenType", err)
	}
}

func TestAirdropAssociatesAndDistributes(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	a, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	b, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	tok, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{
		Type: ledger.TokenTypeFungible, Name: "Drop", Symbol: "DRP", InitialSupply: 100,
	})

	if _, err := c.AirdropToken(ctx, ledger.AirdropRequest{
		TokenID: tok.TokenID,
		Recipients: []ledger.AirdropRecipient{
			{AccountID: a.AccountID, Amount: 30},
			{AccountID: b.AccountID, Amount: 20},
		},
	}); err != nil {
		t.Fatalf("AirdropToken: %v", err)
	}

	// Recipients were associated implicitly and can transfer back.
	if _, err := c.TransferToken(ctx, ledger.TransferTokenRequest{
		TokenID: tok.TokenID, From: a.AccountID, To: c.Operator(), Amount: 30,
	}); err != nil {
		t.Fatalf("transfer back after airdrop: %v", err)
	}

	_, err := c.AirdropToken(ctx, ledger.AirdropRequest{
		TokenID:    tok.TokenID,
		Recipients: []ledger.AirdropRecipient{{AccountID: b.AccountID, Amount: 10_000}},
	})
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("oversized airdrop err = %v, want ErrInsufficientFunds", err)
	}
}

func TestTopicLifecycle(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	top, err := c.CreateTopic(ctx, ledger.CreateTopicRequest{Memo: "audit trail"})
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	for i, msg := range []string{"first", "second", "third"} {
		rcpt, err := c.SubmitMessage(ctx, ledger.SubmitMessageRequest{TopicID: top.TopicID, Message: []byte(msg)})
		if err != nil {
			t.Fatalf("SubmitMessage: %v", err)
		}
		if rcpt.SequenceNumber != int64(i+1) {
			t.Fatalf("sequence = %d, want %d", rcpt.SequenceNumber, i+1)
		}
	}

	info, _ := c.TopicInfo(ctx, top.TopicID)
	if info.SequenceNumber != 3 || info.Memo != "audit trail" {
		t.Fatalf("TopicInfo = %+v", info)
	}

	msgs, err := c.TopicMessages(ctx, ledger.TopicMessagesRequest{TopicID: top.TopicID, Limit: 2})
	if err != nil {
		t.Fatalf("TopicMessages: %v", err)
	}
	if len(msgs) != 2 || string(msgs[0].Contents) != "first" {
		t.Fatalf("messages = %v", msgs)
	}

	if _, err := c.DeleteTopic(ctx, top.TopicID); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}
	if _, err := c.TopicInfo(ctx, top.TopicID); !errors.Is(err, ledger.ErrTopicNotFound) {
		t.Fatalf("err = %v, want ErrTopicNotFound", err)
	}
}

func TestUnknownEntitiesAreRejections(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()
	ghost := ledger.EntityID{Num: 999999}

	_, err := c.AccountBalance(ctx, ghost)
	if !errors.Is(err, ledger.ErrAccountNotFound) || !ledger.IsRejection(err) {
		t.Fatalf("err = %v, want account-not-found rejection", err)
	}
	_, err = c.TokenInfo(ctx, ghost)
	if !errors.Is(err, ledger.ErrTokenNotFound) || !ledger.IsRejection(err) {
		t.Fatalf("err = %v, want token-not-found rejection", err)
	}
}

func TestOperatorIDNeverReissued(t *testing.T) {
	// Operator seated inside the counter range must be skipped, never
	// overwritten by a newly created entity.
	c := NewClient(Config{
		Operator:       ledger.EntityID{Num: 1001},
		FirstEntityNum: 1000,
	})
	ctx := context.Background()
	before := c.TotalHbar()

	for i := 0; i < 4; i++ {
		rcpt, err := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
		if err != nil {
			t.Fatalf("CreateAccount: %v", err)
		}
		if rcpt.AccountID == c.Operator() {
			t.Fatalf("operator id %s reissued to a new account", rcpt.AccountID)
		}
	}

	bal, err := c.AccountBalance(ctx, c.Operator())
	if err != nil {
		t.Fatalf("operator balance: %v", err)
	}
	if bal != DefaultOperatorBalance {
		t.Fatalf("operator balance = %s, want %s", bal, DefaultOperatorBalance)
	}
	if got := c.TotalHbar(); got != before {
		t.Fatalf("total hbar changed: %s -> %s", before, got)
	}
}

func TestDefaultOperatorOutsideCounterRange(t *testing.T) {
	if DefaultOperator.Num >= DefaultFirstEntityNum {
		t.Fatalf("default operator %s collides with the entity counter starting at %d",
			DefaultOperator, DefaultFirstEntityNum)
	}
}

func TestDeleteAccountSelfSweepRejected(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	a, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{InitialBalance: 4 * ledger.TinybarPerHbar})
	before := c.TotalHbar()

	_, err := c.DeleteAccount(ctx, ledger.DeleteAccountRequest{
		AccountID: a.AccountID, TransferAccountID: a.AccountID,
	})
	if !errors.Is(err, ledger.ErrSelfTransfer) {
		t.Fatalf("err = %v, want ErrSelfTransfer", err)
	}

	bal, err := c.AccountBalance(ctx, a.AccountID)
	if err != nil {
		t.Fatalf("account should survive rejected delete: %v", err)
	}
	if bal != 4*ledger.TinybarPerHbar {
		t.Fatalf("balance = %s, want 4 HBAR", bal)
	}
	if got := c.TotalHbar(); got != before {
		t.Fatalf("total hbar changed on rejected delete: %s -> %s", before, got)
	}
}

func TestKYCEnforcedAfterFirstGrant(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	a, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	b, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	tok, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{
		Type: ledger.TokenTypeFungible, Name: "Gated", Symbol: "GTD", InitialSupply: 100,
	})
	c.AssociateToken(ctx, a.AccountID, tok.TokenID)
	c.AssociateToken(ctx, b.AccountID, tok.TokenID)

	// Before any grant the token is not kyc-gated.
	if _, err := c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: a.AccountID, Amount: 10}); err != nil {
		t.Fatalf("pre-grant transfer: %v", err)
	}

	if _, err := c.GrantKYC(ctx, tok.TokenID, a.AccountID); err != nil {
		t.Fatalf("GrantKYC: %v", err)
	}

	// Treasury is granted implicitly, so treasury -> a still works.
	if _, err := c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: a.AccountID, Amount: 10}); err != nil {
		t.Fatalf("treasury transfer to granted account: %v", err)
	}

	// b was never granted.
	_, err := c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: b.AccountID, Amount: 10})
	if !errors.Is(err, ledger.ErrKYCRequired) {
		t.Fatalf("err = %v, want ErrKYCRequired", err)
	}
	_, err = c.TransferToken(ctx, ledger.TransferTokenRequest{
		TokenID: tok.TokenID, From: a.AccountID, To: b.AccountID, Amount: 5,
	})
	if !errors.Is(err, ledger.ErrKYCRequired) {
		t.Fatalf("err = %v, want ErrKYCRequired", err)
	}

	c.GrantKYC(ctx, tok.TokenID, b.AccountID)
	if _, err := c.TransferToken(ctx, ledger.TransferTokenRequest{
		TokenID: tok.TokenID, From: a.AccountID, To: b.AccountID, Amount: 5,
	}); err != nil {
		t.Fatalf("transfer after grant: %v", err)
	}

	c.RevokeKYC(ctx, tok.TokenID, a.AccountID)
	_, err = c.TransferToken(ctx, ledger.TransferTokenRequest{TokenID: tok.TokenID, To: a.AccountID, Amount: 1})
	if !errors.Is(err, ledger.ErrKYCRequired) {
		t.Fatalf("post-revoke err = %v, want ErrKYCRequired", err)
	}
}

func TestAirdropRespectsFreezeAndKYC(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	frozen, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	tok, _ := c.CreateToken(ctx, ledger.CreateTokenRequest{
		Type: ledger.TokenTypeFungible, Name: "Drop", Symbol: "DRP", InitialSupply: 100,
	})
	c.AssociateToken(ctx, frozen.AccountID, tok.TokenID)
	c.FreezeToken(ctx, tok.TokenID, frozen.AccountID)

	_, err := c.AirdropToken(ctx, ledger.AirdropRequest{
		TokenID:    tok.TokenID,
		Recipients: []ledger.AirdropRecipient{{AccountID: frozen.AccountID, Amount: 10}},
	})
	if !errors.Is(err, ledger.ErrAccountFrozen) {
		t.Fatalf("airdrop to frozen account err = %v, want ErrAccountFrozen", err)
	}

	granted, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	ungranted, _ := c.CreateAccount(ctx, ledger.CreateAccountRequest{})
	c.AssociateToken(ctx, granted.AccountID, tok.TokenID)
	c.GrantKYC(ctx, tok.TokenID, granted.AccountID)

	_, err = c.AirdropToken(ctx, ledger.AirdropRequest{
		TokenID:    tok.TokenID,
		Recipients: []ledger.AirdropRecipient{{AccountID: ungranted.AccountID, Amount: 10}},
	})
	if !errors.Is(err, ledger.ErrKYCRequired) {
		t.Fatalf("airdrop to ungranted account err = %v, want ErrKYCRequired", err)
	}

	if _, err := c.AirdropToken(ctx, ledger.AirdropRequest{
		TokenID:    tok.TokenID,
		Recipients: []ledger.AirdropRecipient{{AccountID: granted.AccountID, Amount: 10}},
	}); err != nil {
		t.Fatalf("airdrop to granted account: %v", err)
	}
}

func TestSubscribeTopicReplaysAndFollows(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	top, _ := c.CreateTopic(ctx, ledger.CreateTopicRequest{Memo: "feed"})
	c.SubmitMessage(ctx, ledger.SubmitMessageRequest{TopicID: top.TopicID, Message: []byte("first")})

	stream, err := c.SubscribeTopic(ctx, top.TopicID)
	if err != nil {
		t.Fatalf("SubscribeTopic: %v", err)
	}
	defer stream.Close()

	got := <-stream.Messages()
	if got.SequenceNumber != 1 || string(got.Contents) != "first" {
		t.Fatalf("replayed message = %+v", got)
	}

	c.SubmitMessage(ctx, ledger.SubmitMessageRequest{TopicID: top.TopicID, Message: []byte("second")})
	got = <-stream.Messages()
	if got.SequenceNumber != 2 || string(got.Contents) != "second" {
		t.Fatalf("live message = %+v", got)
	}
}

func TestSubscribeTopicClosesOnTopicDelete(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	top, _ := c.CreateTopic(ctx, ledger.CreateTopicRequest{})
	stream, err := c.SubscribeTopic(ctx, top.TopicID)
	if err != nil {
		t.Fatalf("SubscribeTopic: %v", err)
	}
	if _, err := c.DeleteTopic(ctx, top.TopicID); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}
	if _, open := <-stream.Messages(); open {
		t.Fatal("stream should close when the topic is deleted")
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("Close after topic delete: %v", err)
	}

	if _, err := c.SubscribeTopic(ctx, top.TopicID); !errors.Is(err, ledger.ErrTopicNotFound) {
		t.Fatalf("err = %v, want ErrTopicNotFound", err)
	}
}
