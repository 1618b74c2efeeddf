package hiero

import (
	"fmt"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
)

// statusErrors maps network response codes to business rejections. A
// code missing from this table is treated as a gateway fault so the
// dispatcher reports it as unavailability rather than a refusal.
var statusErrors = map[string]error{
	"INVALID_ACCOUNT_ID":                   ledger.ErrAccountNotFound,
	"ACCOUNT_ID_DOES_NOT_EXIST":            ledger.ErrAccountNotFound,
	"ACCOUNT_DELETED":                      ledger.ErrAccountDeleted,
	"INVALID_TOKEN_ID":                     ledger.ErrTokenNotFound,
	"INVALID_TOPIC_ID":                     ledger.ErrTopicNotFound,
	"INVALID_SCHEDULE_ID":                  ledger.ErrScheduleNotFound,
	"INSUFFICIENT_PAYER_BALANCE":           ledger.ErrInsufficientFunds,
	"INSUFFICIENT_ACCOUNT_BALANCE":         ledger.ErrInsufficientFunds,
	"INSUFFICIENT_TOKEN_BALANCE":           ledger.ErrInsufficientFunds,
	"INVALID_TOKEN_BURN_AMOUNT":            ledger.ErrInsufficientSupply,
	"TOKEN_NOT_ASSOCIATED_TO_ACCOUNT":      ledger.ErrNotAssociated,
	"TOKEN_ALREADY_ASSOCIATED_TO_ACCOUNT":  ledger.ErrAlreadyAssociated,
	"ACCOUNT_FROZEN_FOR_TOKEN":             ledger.ErrAccountFrozen,
	"TOKEN_IS_PAUSED":                      ledger.ErrTokenPaused,
	"ACCOUNT_KYC_NOT_GRANTED_FOR_TOKEN":    ledger.ErrKYCRequired,
	"INVALID_NFT_ID":                       ledger.ErrSerialNotFound,
	"ACCOUNT_DOES_NOT_OWN_WIPED_NFT":       ledger.ErrSerialNotFound,
	"ACCOUNT_AMOUNT_TRANSFERS_ONLY_ALLOWED_FOR_FUNGIBLE_COMMON": ledger.ErrNotTokenType,
	"INVALID_TOKEN_NFT_SERIAL_NUMBER":      ledger.ErrSerialNotFound,
	"TRANSACTION_REQUIRES_ZERO_TOKEN_BALANCES": ledger.ErrBalanceNotZero,
	"TRANSFER_ACCOUNT_SAME_AS_DELETE_ACCOUNT":  ledger.ErrSelfTransfer,
	"IDENTICAL_SCHEDULE_ALREADY_CREATED":   ledger.ErrDuplicateEntity,
}

func mapStatus(eb errorBody) error {
	if sentinel, ok := statusErrors[eb.Status]; ok {
		if eb.Message != "" {
			return fmt.Errorf("%w: %s", sentinel, eb.Message)
		}
		return fmt.Errorf("%w: %s", sentinel, eb.Status)
	}
	return fmt.Errorf("%w: %s: %s", errGatewayUnavailable, eb.Status, eb.Message)
}
