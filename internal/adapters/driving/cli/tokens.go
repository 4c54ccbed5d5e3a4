package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

var (
	tokensPage  int
	tokensLimit int
	tokensOrder string
	tokensAll   bool
	tokensJSON  bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Browse tokens anchored on the ledger",
	Long: `Queries the ledger for previously anchored entries, one page at a
time. Every run is a fresh snapshot of ledger state. Each page fetch
over-requests one entry so the command can tell you whether more
pages exist without a second round trip.`,
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().IntVarP(&tokensPage, "page", "p", 1, "1-based page to fetch")
	tokensCmd.Flags().IntVarP(&tokensLimit, "limit", "n", 0, "page size (default from config, else 20)")
	tokensCmd.Flags().StringVar(&tokensOrder, "order", "desc", "sort order: asc or desc")
	tokensCmd.Flags().BoolVar(&tokensAll, "all", false, "walk every page and print the full set")
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "output tokens as JSON")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if err := initServices(ctx); err != nil {
		return err
	}

	order := domain.SortOrder(tokensOrder)
	if !order.Valid() {
		return fmt.Errorf("invalid order %q: use asc or desc", tokensOrder)
	}
	tokenBrowser.SetOrder(order)

	if tokensAll {
		return runTokensAll(ctx, cmd)
	}

	tokens, hasMore, err := tokenBrowser.Page(ctx, tokensPage, false)
	if err != nil {
		printWalletHint(cmd, err)
		return err
	}

	if err := outputTokens(cmd, tokens); err != nil {
		return err
	}
	if hasMore {
		cmd.Printf("More entries available; fetch page %d with --page.\n", tokensPage+1)
	}
	return nil
}

func runTokensAll(ctx context.Context, cmd *cobra.Command) error {
	page := 1
	for {
		_, hasMore, err := tokenBrowser.Page(ctx, page, false)
		if err != nil {
			printWalletHint(cmd, err)
			return err
		}
		if !hasMore {
			break
		}
		page++
	}
	return outputTokens(cmd, tokenBrowser.Tokens())
}

func outputTokens(cmd *cobra.Command, tokens []domain.LedgerToken) error {
	if tokensJSON {
		return outputTokensJSON(cmd, tokens)
	}
	return outputTokensTable(cmd, tokens)
}

func outputTokensJSON(cmd *cobra.Command, tokens []domain.LedgerToken) error {
	type jsonToken struct {
		Message     string `json:"message"`
		TxID        string `json:"txid"`
		OutputIndex int    `json:"outputIndex"`
		Satoshis    int64  `json:"satoshis"`
	}

	out := make([]jsonToken, len(tokens))
	for i, tok := range tokens {
		out[i] = jsonToken{
			Message:     tok.Message,
			TxID:        tok.TxID,
			OutputIndex: tok.OutputIndex,
			Satoshis:    tok.Satoshis,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTokensTable(cmd *cobra.Command, tokens []domain.LedgerToken) error {
	if len(tokens) == 0 {
		cmd.Println("No tokens found on the ledger.")
		return nil
	}

	cmd.Printf("%d tokens:\n\n", len(tokens))
	for i, tok := range tokens {
		cmd.Printf("  [%d] %d sats\n", i+1, tok.Satoshis)
		cmd.Printf("      Message: %s\n", tok.Message)
		cmd.Printf("      TX:      %s (output %d)\n", tok.TxID, tok.OutputIndex)
		cmd.Println()
	}
	return nil
}
