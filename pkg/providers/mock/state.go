package mock

import (
	"time"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
)

type accountState struct {
	balance   ledger.Hbar
	publicKey string
	deleted   bool

	hbarAllowances map[ledger.EntityID]ledger.Hbar
}

type tokenState struct {
	typ         ledger.TokenType
	name        string
	symbol      string
	decimals    int32
	totalSupply int64
	treasury    ledger.EntityID
	paused      bool

	// Association is modeled as presence in balances.
	balances map[ledger.EntityID]int64
	frozen   map[ledger.EntityID]bool

	// kycRequired flips on the first grant; from then on both sides of
	// a transfer need a grant. The treasury is granted implicitly.
	kycRequired bool
	kyc         map[ledger.EntityID]bool

	serials    map[int64]nftState
	nextSerial int64

	allowances map[ledger.EntityID]int64
}

type nftState struct {
	owner    ledger.EntityID
	metadata []byte
}

type topicState struct {
	memo     string
	sequence int64
	messages []ledger.TopicMessage
	subs     []*topicSubscription
}

func newTokenState(req ledger.CreateTokenRequest, treasury ledger.EntityID) *tokenState {
	ts := &tokenState{
		typ:        req.Type,
		name:       req.Name,
		symbol:     req.Symbol,
		decimals:   req.Decimals,
		treasury:   treasury,
		balances:   make(map[ledger.EntityID]int64),
		frozen:     make(map[ledger.EntityID]bool),
		kyc:        make(map[ledger.EntityID]bool),
		serials:    make(map[int64]nftState),
		nextSerial: 1,
		allowances: make(map[ledger.EntityID]int64),
	}
	if req.Type == ledger.TokenTypeFungible {
		ts.totalSupply = req.InitialSupply
		ts.balances[treasury] = req.InitialSupply
	} else {
		ts.balances[treasury] = 0
	}
	return ts
}

// TotalHbar sums every live account balance. Test hook for the
// conservation invariant.
func (c *Client) TotalHbar() ledger.Hbar {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total ledger.Hbar
	for _, acc := range c.accounts {
		total += acc.balance
	}
	return total
}

// AccountCount returns the number of accounts ever created, including
// deleted ones. Test hook.
func (c *Client) AccountCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.accounts)
}

func (c *Client) now() time.Time {
	if c.clock != nil {
		return c.clock()
	}
	return time.Now()
}
