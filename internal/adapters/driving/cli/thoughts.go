package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

var thoughtsJSON bool

var thoughtsCmd = &cobra.Command{
	Use:   "thoughts",
	Short: "List your local thought records",
	Long: `Lists the thoughts stored on this machine, newest first, with their
commitments and on-ledger status. Records stay local even when ledger
submission failed; only the on-chain anchor is pending for those.`,
	RunE: runThoughts,
}

func init() {
	thoughtsCmd.Flags().BoolVar(&thoughtsJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(thoughtsCmd)
}

func runThoughts(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if err := initServices(ctx); err != nil {
		return err
	}

	thoughts := thoughtService.List()

	if thoughtsJSON {
		return outputThoughtsJSON(cmd, thoughts)
	}
	return outputThoughtsTable(cmd, thoughts)
}

func outputThoughtsJSON(cmd *cobra.Command, thoughts []domain.Thought) error {
	type jsonThought struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Content    string `json:"content,omitempty"`
		MediaName  string `json:"mediaName,omitempty"`
		Private    bool   `json:"isPrivate"`
		Commitment string `json:"commitment"`
		CreatedAt  string `json:"createdAt"`
		OnLedger   bool   `json:"onLedger"`
		TxID       string `json:"txid,omitempty"`
	}

	out := make([]jsonThought, len(thoughts))
	for i, t := range thoughts {
		out[i] = jsonThought{
			ID:         t.ID,
			Title:      t.Title,
			Content:    t.Content,
			Private:    t.Private,
			Commitment: t.Commitment,
			CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339),
			OnLedger:   t.OnLedger,
			TxID:       t.TxID,
		}
		if t.Media != nil {
			out[i].MediaName = t.Media.Name
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal thoughts: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputThoughtsTable(cmd *cobra.Command, thoughts []domain.Thought) error {
	if len(thoughts) == 0 {
		cmd.Println("No thoughts yet. Create one with: immutify create")
		return nil
	}

	cmd.Printf("%d thoughts:\n\n", len(thoughts))
	for i, t := range thoughts {
		visibility := "public"
		if t.Private {
			visibility = "private"
		}

		cmd.Printf("  [%d] %s (%s)\n", i+1, t.Title, visibility)
		cmd.Printf("      Created: %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
		cmd.Printf("      Proof:   %s\n", t.Commitment)
		if t.Media != nil {
			cmd.Printf("      Media:   %s (%d bytes)\n", t.Media.Name, t.Media.Size)
		}
		if t.OnLedger {
			cmd.Printf("      Ledger:  anchored, TX %s\n", t.TxID)
		} else {
			cmd.Printf("      Ledger:  pending\n")
		}
		cmd.Println()
	}
	return nil
}
