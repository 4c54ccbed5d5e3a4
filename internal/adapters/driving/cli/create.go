package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driving"
)

var (
	createContent string
	createFile    string
	createPublic  bool
	createLocal   bool
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a proof of a thought",
	Long: `Computes a keyed-hash commitment over the thought (the title is the
hash key), stores the record locally, and anchors it on the ledger.
Private thoughts disclose only the digest; public thoughts disclose
the text while media bytes always stay off the ledger.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "text body of the thought")
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "path to a media attachment")
	createCmd.Flags().BoolVar(&createPublic, "public", false, "disclose the content on the ledger")
	createCmd.Flags().BoolVar(&createLocal, "local", false, "skip ledger submission, keep the proof local")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := initServices(ctx); err != nil {
		return err
	}

	var media *domain.MediaAttachment
	if createFile != "" {
		var err error
		media, err = readAttachment(createFile)
		if err != nil {
			return err
		}
	}

	thought, err := thoughtService.Create(ctx, driving.NewThought{
		Title:   args[0],
		Content: createContent,
		Media:   media,
		Private: defaultPrivate && !createPublic,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Created thought %s\n", thought.ID)
	cmd.Printf("  Title:      %s\n", thought.Title)
	if thought.HasContent() {
		cmd.Printf("  Words:      %d\n", len(strings.Fields(thought.Content)))
	}
	if thought.HasMedia() {
		cmd.Printf("  Attachment: %s (%d bytes)\n", thought.Media.Name, thought.Media.Size)
	}
	cmd.Printf("  Commitment: %s\n", thought.Commitment)

	if createLocal {
		cmd.Println("Proof kept local; run again without --local to anchor it.")
		return nil
	}

	txid, err := thoughtService.Publish(ctx, thought.ID)
	if err != nil {
		printWalletHint(cmd, err)
		cmd.Println("Proof saved locally; the on-chain anchor is still pending.")
		return err
	}

	cmd.Printf("Anchored on ledger. TX: %s\n", txid)
	return nil
}

// readAttachment buffers the whole file; attachments are hashed in
// one pass, no streaming needed at this scale.
func readAttachment(path string) (*domain.MediaAttachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.FileReadError{Path: path, Err: err}
	}
	return &domain.MediaAttachment{
		Name: filepath.Base(path),
		Size: int64(len(data)),
		Data: data,
	}, nil
}

// printWalletHint tells the user how to proceed when no wallet
// substrate is reachable.
func printWalletHint(cmd *cobra.Command, err error) {
	if domain.IsNoWallet(err) {
		cmd.PrintErrln("No wallet client is reachable. Install and start a MetaNet wallet, then retry.")
	}
}
