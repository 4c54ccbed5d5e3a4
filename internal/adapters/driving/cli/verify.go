package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	verifyContent string
	verifyFile    string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [title] [digest]",
	Short: "Verify content against a published commitment",
	Long: `Recomputes the commitment for the given title and content (and
optional media file) and compares it to the expected digest. The
comparison is exact: surrounding whitespace is trimmed, but case and
every hex character must match.`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyContent, "content", "c", "", "text body to verify")
	verifyCmd.Flags().StringVarP(&verifyFile, "file", "f", "", "path to the media attachment to verify")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	title := args[0]
	expected := strings.TrimSpace(args[1])

	var media []byte
	if verifyFile != "" {
		attachment, err := readAttachment(verifyFile)
		if err != nil {
			return err
		}
		media = attachment.Data
	}

	result, err := commitmentService.Verify(title, verifyContent, media, expected)
	if err != nil {
		return err
	}

	if result.Matched {
		cmd.Println("Verified: the digest matches your input.")
	} else {
		cmd.Println("Mismatch: the digest does not match your input.")
	}
	cmd.Printf("  Computed: %s\n", result.Computed)
	cmd.Printf("  Expected: %s\n", expected)
	return nil
}
