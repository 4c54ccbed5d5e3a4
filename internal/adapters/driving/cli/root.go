// Package cli implements the Immutify command line interface.
//
// Commands consume the driving ports only; adapters are wired
// lazily on first use so metadata-only invocations (help, version)
// never touch the wallet or the database.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/Fletch-Industries/immutify/internal/adapters/driven/config/file"
	"github.com/Fletch-Industries/immutify/internal/adapters/driven/ledger/metanet"
	"github.com/Fletch-Industries/immutify/internal/adapters/driven/storage/sqlite"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driving"
	"github.com/Fletch-Industries/immutify/internal/core/services"
	"github.com/Fletch-Industries/immutify/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// Services consumed by the commands. Wired by initServices, replaced
// with fakes in tests.
var (
	commitmentService driving.CommitmentService = services.NewCommitmentService()
	thoughtService    driving.ThoughtService
	tokenBrowser      driving.TokenBrowser
)

var (
	verboseFlag bool
	configDir   string
	dataDir     string

	// defaultPrivate is the visibility applied when --public is not
	// given; overridable via the thoughts.default_private config key.
	defaultPrivate = true
)

var rootCmd = &cobra.Command{
	Use:   "immutify",
	Short: "Cryptographic proof of existence for your thoughts",
	Long: `Immutify creates timestamp-provable records of your ideas.
Each thought is committed with a keyed hash (the title is the key) and
anchored on the ledger through your local wallet client, so you can
later prove the content existed without having revealed it.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.immutify)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.immutify/data)")
}

// initServices wires the default adapters behind the driving ports.
// It is a no-op when services are already present (tests inject
// fakes before executing commands).
func initServices(ctx context.Context) error {
	if thoughtService != nil && tokenBrowser != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening thought store: %w", err)
	}

	ledger := metanet.NewClient(metanet.Config{
		BaseURL: cfg.GetString(configfile.KeyWalletURL),
	})

	if _, ok := cfg.Get(configfile.KeyDefaultPrivate); ok {
		defaultPrivate = cfg.GetBool(configfile.KeyDefaultPrivate)
	}

	if thoughtService == nil {
		svc := services.NewThoughtService(store, ledger, commitmentService)
		if err := svc.Load(ctx); err != nil {
			return err
		}
		thoughtService = svc
	}

	if tokenBrowser == nil {
		limit := tokensLimit
		if limit <= 0 {
			limit = cfg.GetInt(configfile.KeyPageSize)
		}
		tokenBrowser = services.NewTokenBrowser(ledger, limit)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
