package tools

import (
	"context"
	"fmt"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/registry"
	"github.com/hashgraph-labs/ledgerkit/pkg/schema"
)

func tokenEntries() []registry.Entry {
	return []registry.Entry{
		{
			Name:        "create_fungible_token",
			Description: "Create a fungible token with the operator (or a named account) as treasury.",
			Schema: schema.MustDefine("create_fungible_token",
				schema.FieldSpec{Name: "name", Type: schema.TypeString, Description: "Token name.", Required: true, NonEmpty: true},
				schema.FieldSpec{Name: "symbol", Type: schema.TypeString, Description: "Token symbol.", Required: true, NonEmpty: true},
				schema.FieldSpec{Name: "decimals", Type: schema.TypeInt, Description: "Decimal places.", Default: 0, MinInt: schema.Int64(0)},
				schema.FieldSpec{Name: "initial_supply", Type: schema.TypeInt, Description: "Initial supply in the smallest unit.", Default: 0, MinInt: schema.Int64(0)},
				entityField("treasury_account_id", "Treasury account. Defaults to the operator.", false),
			),
			Handler: createFungibleToken,
		},
		{
			Name:        "create_non_fungible_token",
			Description: "Create an NFT collection with the operator (or a named account) as treasury.",
			Schema: schema.MustDefine("create_non_fungible_token",
				schema.FieldSpec{Name: "name", Type: schema.TypeString, Description: "Collection name.", Required: true, NonEmpty: true},
				schema.FieldSpec{Name: "symbol", Type: schema.TypeString, Description: "Collection symbol.", Required: true, NonEmpty: true},
				entityField("treasury_account_id", "Treasury account. Defaults to the operator.", false),
			),
			Handler: createNonFungibleToken,
		},
		{
			Name:        "update_token",
			Description: "Update the name or symbol of a token.",
			Schema: schema.MustDefine("update_token",
				entityField("token_id", "Token to update.", true),
				schema.FieldSpec{Name: "name", Type: schema.TypeString, Description: "New name. Omit to keep."},
				schema.FieldSpec{Name: "symbol", Type: schema.TypeString, Description: "New symbol. Omit to keep."},
			),
			Handler: updateToken,
		},
		{
			Name:        "delete_token",
			Description: "Delete a token.",
			Schema: schema.MustDefine("delete_token",
				entityField("token_id", "Token to delete.", true),
			),
			Handler: deleteToken,
		},
		{
			Name:        "mint_token",
			Description: "Mint additional supply of a fungible token to its treasury.",
			Schema: schema.MustDefine("mint_token",
				entityField("token_id", "Fungible token to mint.", true),
				schema.FieldSpec{Name: "amount", Type: schema.TypeInt, Description: "Amount in the smallest unit.", Required: true, MinInt: schema.Int64(1)},
			),
			Handler: mintToken,
		},
		{
			Name:        "mint_nft",
			Description: "Mint NFTs into a collection, one per metadata entry.",
			Schema: schema.MustDefine("mint_nft",
				entityField("token_id", "NFT collection to mint into.", true),
				schema.FieldSpec{
					Name: "metadata", Type: schema.TypeStringList, Required: true,
					Description: "Metadata for each serial, for example an IPFS URI.",
					Check: func(v any) error {
						items, _ := v.([]string)
						if len(items) == 0 {
							return fmt.Errorf("needs at least one entry")
						}
						return nil
					},
				},
			),
			Handler: mintNFT,
		},
		{
			Name:        "burn_token",
			Description: "Burn fungible supply held by the treasury.",
			Schema: schema.MustDefine("burn_token",
				entityField("token_id", "Fungible token to burn.", true),
				schema.FieldSpec{Name: "amount", Type: schema.TypeInt, Description: "Amount in the smallest unit.", Required: true, MinInt: schema.Int64(1)},
			),
			Handler: burnToken,
		},
		{
			Name:        "burn_nft",
			Description: "Burn NFT serials held by the treasury.",
			Schema: schema.MustDefine("burn_nft",
				entityField("token_id", "NFT collection.", true),
				schema.FieldSpec{Name: "serials", Type: schema.TypeIntList, Description: "Serial numbers to burn.", Required: true, NonEmpty: true},
			),
			Handler: burnNFT,
		},
		{
			Name:        "transfer_token",
			Description: "Transfer fungible tokens between associated accounts.",
			Schema: schema.MustDefine("transfer_token",
				entityField("token_id", "Token to transfer.", true),
				entityField("to_account_id", "Recipient account.", true),
				schema.FieldSpec{Name: "amount", Type: schema.TypeInt, Description: "Amount in the smallest unit.", Required: true, MinInt: schema.Int64(1)},
				entityField("from_account_id", "Sender account. Defaults to the treasury.", false),
			),
			Handler: transferToken,
		},
		{
			Name:        "transfer_nft",
			Description: "Transfer one NFT serial to another associated account.",
			Schema: schema.MustDefine("transfer_nft",
				entityField("token_id", "NFT collection.", true),
				entityField("to_account_id", "Recipient account.", true),
				schema.FieldSpec{Name: "serial", Type: schema.TypeInt, Description: "Serial number to transfer.", Required: true, MinInt: schema.Int64(1)},
			),
			Handler: transferNFT,
		},
		{
			Name:        "associate_token",
			Description: "Associate an account with a token so it can hold a balance.",
			Schema: schema.MustDefine("associate_token",
				entityField("account_id", "Account to associate.", true),
				entityField("token_id", "Token to associate with.", true),
			),
			Handler: associateToken,
		},
		{
			Name:        "dissociate_token",
			Description: "Dissociate an account from a token. The account's balance must be zero.",
			Schema: schema.MustDefine("dissociate_token",
				entityField("account_id", "Account to dissociate.", true),
				entityField("token_id", "Token to dissociate from.", true),
			),
			Handler: dissociateToken,
		},
		{
			Name:        "freeze_token_account",
			Description: "Freeze an account's ability to send or receive a token.",
			Schema: schema.MustDefine("freeze_token_account",
				entityField("token_id", "Token.", true),
				entityField("account_id", "Account to freeze.", true),
			),
			Handler: freezeTokenAccount,
		},
		{
			Name:        "unfreeze_token_account",
			Description: "Unfreeze an account for a token.",
			Schema: schema.MustDefine("unfreeze_token_account",
				entityField("token_id", "Token.", true),
				entityField("account_id", "Account to unfreeze.", true),
			),
			Handler: unfreezeTokenAccount,
		},
		{
			Name:        "grant_kyc",
			Description: "Grant KYC to an account for a token.",
			Schema: schema.MustDefine("grant_kyc",
				entityField("token_id", "Token.", true),
				entityField("account_id", "Account receiving KYC.", true),
			),
			Handler: grantKYC,
		},
		{
			Name:        "revoke_kyc",
			Description: "Revoke KYC from an account for a token.",
			Schema: schema.MustDefine("revoke_kyc",
				entityField("token_id", "Token.", true),
				entityField("account_id", "Account losing KYC.", true),
			),
			Handler: revokeKYC,
		},
		{
			Name:        "pause_token",
			Description: "Pause all transfers of a token.",
			Schema: schema.MustDefine("pause_token",
				entityField("token_id", "Token to pause.", true),
			),
			Handler: pauseToken,
		},
		{
			Name:        "unpause_token",
			Description: "Resume transfers of a paused token.",
			Schema: schema.MustDefine("unpause_token",
				entityField("token_id", "Token to unpause.", true),
			),
			Handler: unpauseToken,
		},
		{
			Name:        "wipe_token_account",
			Description: "Wipe fungible tokens from an account, reducing total supply.",
			Schema: schema.MustDefine("wipe_token_account",
				entityField("token_id", "Token.", true),
				entityField("account_id", "Account to wipe from.", true),
				schema.FieldSpec{Name: "amount", Type: schema.TypeInt, Description: "Amount in the smallest unit.", Required: true, MinInt: schema.Int64(1)},
			),
			Handler: wipeTokenAccount,
		},
		{
			Name:        "wipe_token_account_nft",
			Description: "Wipe NFT serials from an account, reducing total supply.",
			Schema: schema.MustDefine("wipe_token_account_nft",
				entityField("token_id", "NFT collection.", true),
				entityField("account_id", "Account to wipe from.", true),
				schema.FieldSpec{Name: "serials", Type: schema.TypeIntList, Description: "Serial numbers to wipe.", Required: true, NonEmpty: true},
			),
			Handler: wipeTokenAccountNFT,
		},
		{
			Name:        "token_airdrop",
			Description: "Airdrop fungible tokens from the treasury to multiple accounts.",
			Schema: schema.MustDefine("token_airdrop",
				entityField("token_id", "Token to airdrop.", true),
				schema.FieldSpec{
					Name: "recipients", Type: schema.TypeObjectList, Required: true,
					Description: "Recipients, each with account_id and amount.",
					Check:       checkAirdropRecipients,
				},
			),
			Handler: tokenAirdrop,
		},
		{
			Name:        "get_token_info",
			Description: "Get name, symbol, supply and treasury details for a token.",
			Schema: schema.MustDefine("get_token_info",
				entityField("token_id", "Token to query.", true),
			),
			Handler: getTokenInfo,
		},
	}
}

func checkAirdropRecipients(v any) error {
	items, _ := v.([]map[string]any)
	if len(items) == 0 {
		return fmt.Errorf("needs at least one recipient")
	}
	for i, item := range items {
		id, _ := item["account_id"].(string)
		if !ledger.IsValidEntityID(id) {
			return fmt.Errorf("recipient %d: malformed account_id", i)
		}
		amount, err := recipientAmount(item["amount"])
		if err != nil {
			return fmt.Errorf("recipient %d: %v", i, err)
		}
		if amount <= 0 {
			return fmt.Errorf("recipient %d: amount must be positive", i)
		}
	}
	return nil
}

func recipientAmount(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("amount must be a whole number")
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("amount must be a number")
	}
}

func createFungibleToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	rcpt, err := client.CreateToken(ctx, ledger.CreateTokenRequest{
		Type:          ledger.TokenTypeFungible,
		Name:          in.String("name"),
		Symbol:        in.String("symbol"),
		Decimals:      int32(in.Int("decimals")),
		InitialSupply: in.Int("initial_supply"),
		Treasury:      optionalEntity(in, "treasury_account_id"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Created fungible token %s (%s) with id %s.", in.String("name"), in.String("symbol"), rcpt.TokenID),
		Fields:  map[string]any{"token_id": rcpt.TokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func createNonFungibleToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	rcpt, err := client.CreateToken(ctx, ledger.CreateTokenRequest{
		Type:     ledger.TokenTypeNFT,
		Name:     in.String("name"),
		Symbol:   in.String("symbol"),
		Treasury: optionalEntity(in, "treasury_account_id"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Created NFT collection %s (%s) with id %s.", in.String("name"), in.String("symbol"), rcpt.TokenID),
		Fields:  map[string]any{"token_id": rcpt.TokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func updateToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.UpdateToken(ctx, ledger.UpdateTokenRequest{
		TokenID: tokenID,
		Name:    in.String("name"),
		Symbol:  in.String("symbol"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Updated token %s.", tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func deleteToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.DeleteToken(ctx, tokenID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Deleted token %s.", tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func mintToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.MintToken(ctx, ledger.MintTokenRequest{
		TokenID: tokenID,
		Amount:  in.Int("amount"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Minted %d units of %s; total supply is now %d.", in.Int("amount"), tokenID, rcpt.TotalSupply),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"amount":         in.Int("amount"),
			"total_supply":   rcpt.TotalSupply,
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func mintNFT(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	entries := in.Strings("metadata")
	metadata := make([][]byte, len(entries))
	for i, m := range entries {
		metadata[i] = []byte(m)
	}
	rcpt, err := client.MintNFT(ctx, ledger.MintNFTRequest{
		TokenID:  tokenID,
		Metadata: metadata,
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Minted %d NFTs into %s with serials %v.", len(rcpt.Serials), tokenID, rcpt.Serials),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"serials":        rcpt.Serials,
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func burnToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.BurnToken(ctx, ledger.BurnTokenRequest{
		TokenID: tokenID,
		Amount:  in.Int("amount"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Burned %d units of %s; total supply is now %d.", in.Int("amount"), tokenID, rcpt.TotalSupply),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"amount":         in.Int("amount"),
			"total_supply":   rcpt.TotalSupply,
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func burnNFT(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	serials := in.Ints("serials")
	rcpt, err := client.BurnNFT(ctx, ledger.BurnNFTRequest{
		TokenID: tokenID,
		Serials: serials,
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Burned serials %v of %s; total supply is now %d.", serials, tokenID, rcpt.TotalSupply),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"serials":        serials,
			"total_supply":   rcpt.TotalSupply,
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func transferToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	to := entityArg(in, "to_account_id")
	rcpt, err := client.TransferToken(ctx, ledger.TransferTokenRequest{
		TokenID: tokenID,
		From:    optionalEntity(in, "from_account_id"),
		To:      to,
		Amount:  in.Int("amount"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Transferred %d units of %s to %s.", in.Int("amount"), tokenID, to),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"to_account_id":  to.String(),
			"amount":         in.Int("amount"),
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func transferNFT(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	to := entityArg(in, "to_account_id")
	rcpt, err := client.TransferNFT(ctx, ledger.TransferNFTRequest{
		TokenID: tokenID,
		To:      to,
		Serial:  in.Int("serial"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Transferred serial %d of %s to %s.", in.Int("serial"), tokenID, to),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"to_account_id":  to.String(),
			"serial":         in.Int("serial"),
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func associateToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	accountID := entityArg(in, "account_id")
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.AssociateToken(ctx, accountID, tokenID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Associated account %s with token %s.", accountID, tokenID),
		Fields:  map[string]any{"account_id": accountID.String(), "token_id": tokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func dissociateToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	accountID := entityArg(in, "account_id")
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.DissociateToken(ctx, accountID, tokenID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Dissociated account %s from token %s.", accountID, tokenID),
		Fields:  map[string]any{"account_id": accountID.String(), "token_id": tokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func freezeTokenAccount(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	accountID := entityArg(in, "account_id")
	rcpt, err := client.FreezeToken(ctx, tokenID, accountID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Froze account %s for token %s.", accountID, tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "account_id": accountID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func unfreezeTokenAccount(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	accountID := entityArg(in, "account_id")
	rcpt, err := client.UnfreezeToken(ctx, tokenID, accountID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Unfroze account %s for token %s.", accountID, tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "account_id": accountID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func grantKYC(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	accountID := entityArg(in, "account_id")
	rcpt, err := client.GrantKYC(ctx, tokenID, accountID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Granted KYC to account %s for token %s.", accountID, tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "account_id": accountID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func revokeKYC(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	accountID := entityArg(in, "account_id")
	rcpt, err := client.RevokeKYC(ctx, tokenID, accountID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Revoked KYC from account %s for token %s.", accountID, tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "account_id": accountID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func pauseToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.PauseToken(ctx, tokenID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Paused token %s.", tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func unpauseToken(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	rcpt, err := client.UnpauseToken(ctx, tokenID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Unpaused token %s.", tokenID),
		Fields:  map[string]any{"token_id": tokenID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func wipeTokenAccount(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	accountID := entityArg(in, "account_id")
	rcpt, err := client.WipeToken(ctx, ledger.WipeTokenRequest{
		TokenID:   tokenID,
		AccountID: accountID,
		Amount:    in.Int("amount"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Wiped %d units of %s from account %s.", in.Int("amount"), tokenID, accountID),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"account_id":     accountID.String(),
			"amount":         in.Int("amount"),
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func wipeTokenAccountNFT(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	accountID := entityArg(in, "account_id")
	serials := in.Ints("serials")
	rcpt, err := client.WipeNFT(ctx, ledger.WipeNFTRequest{
		TokenID:   tokenID,
		AccountID: accountID,
		Serials:   serials,
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Wiped serials %v of %s from account %s.", serials, tokenID, accountID),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"account_id":     accountID.String(),
			"serials":        serials,
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func tokenAirdrop(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	raw := in.Objects("recipients")
	recipients := make([]ledger.AirdropRecipient, len(raw))
	for i, item := range raw {
		id, _ := item["account_id"].(string)
		amount, err := recipientAmount(item["amount"])
		if err != nil {
			return registry.Result{}, err
		}
		recipients[i] = ledger.AirdropRecipient{
			AccountID: ledger.MustEntityID(id),
			Amount:    amount,
		}
	}
	rcpt, err := client.AirdropToken(ctx, ledger.AirdropRequest{
		TokenID:    tokenID,
		Recipients: recipients,
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Airdropped %s to %d accounts.", tokenID, len(recipients)),
		Fields: map[string]any{
			"token_id":       tokenID.String(),
			"recipients":     len(recipients),
			"transaction_id": rcpt.TransactionID,
		},
	}, nil
}

func getTokenInfo(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	tokenID := entityArg(in, "token_id")
	info, err := client.TokenInfo(ctx, tokenID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Token %s: %s (%s), type %s, total supply %d.", tokenID, info.Name, info.Symbol, info.Type, info.TotalSupply),
		Fields: map[string]any{
			"token_id":     tokenID.String(),
			"type":         string(info.Type),
			"name":         info.Name,
			"symbol":       info.Symbol,
			"decimals":     info.Decimals,
			"total_supply": info.TotalSupply,
			"treasury":     info.Treasury.String(),
			"paused":       info.Paused,
		},
	}, nil
}
