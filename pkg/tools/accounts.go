package tools

import (
	"context"
	"fmt"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/registry"
	"github.com/hashgraph-labs/ledgerkit/pkg/schema"
)

func accountEntries() []registry.Entry {
	return []registry.Entry{
		{
			Name:        "create_account",
			Description: "Create a new account, optionally funded with an initial hbar balance.",
			Schema: schema.MustDefine("create_account",
				schema.FieldSpec{Name: "initial_balance", Type: schema.TypeNumber, Description: "Initial balance in hbar.", Default: 0, MinNumber: schema.Float64(0)},
				schema.FieldSpec{Name: "public_key", Type: schema.TypeString, Description: "Account key. Omit to have a key pair generated."},
			),
			Handler: createAccount,
		},
		{
			Name:        "update_account",
			Description: "Replace the key on an existing account.",
			Schema: schema.MustDefine("update_account",
				entityField("account_id", "Account to update.", true),
				schema.FieldSpec{Name: "public_key", Type: schema.TypeString, Description: "New account key.", Required: true, NonEmpty: true},
			),
			Handler: updateAccount,
		},
		{
			Name:        "delete_account",
			Description: "Delete an account and sweep its remaining balance to another account.",
			Schema: schema.MustDefine("delete_account",
				entityField("account_id", "Account to delete.", true),
				entityField("transfer_account_id", "Account receiving the remaining balance.", true),
			),
			Handler: deleteAccount,
		},
		{
			Name:        "transfer_hbar",
			Description: "Transfer hbar between two accounts.",
			Schema: schema.MustDefine("transfer_hbar",
				entityField("to_account_id", "Recipient account.", true),
				schema.FieldSpec{Name: "amount", Type: schema.TypeNumber, Description: "Amount in hbar.", Required: true, MinNumber: schema.Float64(0)},
				entityField("from_account_id", "Sender account. Defaults to the operator.", false),
				schema.FieldSpec{Name: "memo", Type: schema.TypeString, Description: "Transaction memo."},
			),
			Handler: transferHbar,
		},
		{
			Name:        "get_balance",
			Description: "Get the hbar balance of an account.",
			Schema: schema.MustDefine("get_balance",
				entityField("account_id", "Account to query.", true),
			),
			Handler: getBalance,
		},
		{
			Name:        "get_account_info",
			Description: "Get key, balance and status details for an account.",
			Schema: schema.MustDefine("get_account_info",
				entityField("account_id", "Account to query.", true),
			),
			Handler: getAccountInfo,
		},
		{
			Name:        "approve_hbar_allowance",
			Description: "Approve a spender to draw hbar from the operator account.",
			Schema: schema.MustDefine("approve_hbar_allowance",
				entityField("spender_account_id", "Spender being approved.", true),
				schema.FieldSpec{Name: "amount", Type: schema.TypeNumber, Description: "Allowance in hbar.", Required: true, MinNumber: schema.Float64(0)},
			),
			Handler: approveHbarAllowance,
		},
		{
			Name:        "approve_token_allowance",
			Description: "Approve a spender to draw fungible tokens from the operator account.",
			Schema: schema.MustDefine("approve_token_allowance",
				entityField("token_id", "Token being approved.", true),
				entityField("spender_account_id", "Spender being approved.", true),
				schema.FieldSpec{Name: "amount", Type: schema.TypeInt, Description: "Allowance in the token's smallest unit.", Required: true, MinInt: schema.Int64(0)},
			),
			Handler: approveTokenAllowance,
		},
		{
			Name:        "sign_schedule",
			Description: "Add the operator's signature to a scheduled transaction.",
			Schema: schema.MustDefine("sign_schedule",
				entityField("schedule_id", "Schedule to sign.", true),
			),
			Handler: signSchedule,
		},
	}
}

func createAccount(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	balance, err := hbarArg(in, "initial_balance")
	if err != nil {
		return registry.Result{}, err
	}
	rcpt, err := client.CreateAccount(ctx, ledger.CreateAccountRequest{
		InitialBalance: balance,
		PublicKey:      in.String("public_key"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	fields := map[string]any{
		"account_id":     rcpt.AccountID.String(),
		"transaction_id": rcpt.TransactionID,
		"public_key":     rcpt.PublicKey,
	}
	if rcpt.PrivateKey != "" {
		fields["private_key"] = rcpt.PrivateKey
	}
	return registry.Result{
		Summary: fmt.Sprintf("Created account %s with initial balance %s.", rcpt.AccountID, balance),
		Fields:  fields,
	}, nil
}

func updateAccount(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	accountID := entityArg(in, "account_id")
	rcpt, err := client.UpdateAccount(ctx, ledger.UpdateAccountRequest{
		AccountID:    accountID,
		NewPublicKey: in.String("public_key"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Updated key on account %s.", accountID),
		Fields:  map[string]any{"account_id": accountID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func deleteAccount(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	accountID := entityArg(in, "account_id")
	transferID := entityArg(in, "transfer_account_id")
	rcpt, err := client.DeleteAccount(ctx, ledger.DeleteAccountRequest{
		AccountID:         accountID,
		TransferAccountID: transferID,
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Deleted account %s; remaining balance sent to %s.", accountID, transferID),
		Fields:  map[string]any{"account_id": accountID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func transferHbar(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	amount, err := hbarArg(in, "amount")
	if err != nil {
		return registry.Result{}, err
	}
	to := entityArg(in, "to_account_id")
	from := optionalEntity(in, "from_account_id")
	rcpt, err := client.TransferHbar(ctx, ledger.TransferHbarRequest{
		From:   from,
		To:     to,
		Amount: amount,
		Memo:   in.String("memo"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	sender := from
	if sender.IsZero() {
		sender = client.Operator()
	}
	return registry.Result{
		Summary: fmt.Sprintf("Transferred %s from %s to %s.", amount, sender, to),
		Fields: map[string]any{
			"from_account_id": sender.String(),
			"to_account_id":   to.String(),
			"amount":          amount.Float(),
			"transaction_id":  rcpt.TransactionID,
		},
	}, nil
}

func getBalance(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	accountID := entityArg(in, "account_id")
	balance, err := client.AccountBalance(ctx, accountID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Account %s has a balance of %s.", accountID, balance),
		Fields: map[string]any{
			"account_id":      accountID.String(),
			"balance":         balance.Float(),
			"balance_tinybar": balance.Tinybar(),
		},
	}, nil
}

func getAccountInfo(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	accountID := entityArg(in, "account_id")
	info, err := client.AccountInfo(ctx, accountID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Account %s: balance %s, deleted=%t.", accountID, info.Balance, info.Deleted),
		Fields: map[string]any{
			"account_id": accountID.String(),
			"balance":    info.Balance.Float(),
			"public_key": info.PublicKey,
			"deleted":    info.Deleted,
		},
	}, nil
}

func approveHbarAllowance(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	amount, err := hbarArg(in, "amount")
	if err != nil {
		return registry.Result{}, err
	}
	spender := entityArg(in, "spender_account_id")
	rcpt, err := client.ApproveHbarAllowance(ctx, ledger.ApproveHbarAllowanceRequest{
		Spender: spender,
		Amount:  amount,
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Approved %s allowance for %s.", amount, spender),
		Fields: map[string]any{
			"spender_account_id": spender.String(),
			"amount":             amount.Float(),
			"transaction_id":     rcpt.TransactionID,
		},
	}, nil
}

func approveTokenAllowance(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	spender := entityArg(in, "spender_account_id")
	rcpt, err := client.ApproveTokenAllowance(ctx, ledger.ApproveTokenAllowanceRequest{
		TokenID: tokenID,
		Spender: spender,
		Amount:  in.Int("amount"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Approved allowance of %d units of %s for %s.", in.Int("amount"), tokenID, spender),
		Fields: map[string]any{
			"token_id":           tokenID.String(),
			"spender_account_id": spender.String(),
			"amount":             in.Int("amount"),
			"transaction_id":     rcpt.TransactionID,
		},
	}, nil
}

func signSchedule(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	scheduleID := entityArg(in, "schedule_id")
	rcpt, err := client.SignSchedule(ctx, scheduleID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Signed schedule %s.", scheduleID),
		Fields:  map[string]any{"schedule_id": scheduleID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}
