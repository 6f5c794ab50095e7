package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/platform/storage"
	"github.com/spf13/cobra"
)

const skipStore = "skip-store"

// app is the state shared by every subcommand once the store is open.
type app struct {
	dbPath   string
	tenant   string
	user     string
	exponent int
	verbose  bool

	ctx     context.Context
	roster  services.RosterAuthorizer
	svc     *portssvc.ServiceContainer
	closeFn func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Operate an ERP general ledger stored in SQLite",
		Long:          "Seed charts of accounts, post business events, reverse entries and print ledgers and trial balances.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipStore] != "" {
				return nil
			}
			return a.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closeFn != nil {
				a.closeFn()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.dbPath, "db", "ledger.db", "SQLite database path")
	root.PersistentFlags().StringVar(&a.tenant, "tenant", "default", "Tenant ID")
	root.PersistentFlags().StringVar(&a.user, "user", "ledgerctl", "Acting user, granted ADMIN on --tenant; subject of issued tokens")
	root.PersistentFlags().IntVar(&a.exponent, "exponent", 2, "Currency exponent used to read and print amounts")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newSeedCmd(a),
		newAccountsCmd(a),
		newPostEventCmd(a),
		newEntryCmd(a),
		newLedgerCmd(a),
		newTrialCmd(a),
		newTokenCmd(a),
	)
	return root
}

func (a *app) open() error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	a.ctx = middleware.WithLogger(context.Background(), logger)

	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: a.dbPath}
	repos, closeFn, err := storage.Open(a.ctx, cfg, logger)
	if err != nil {
		return err
	}
	a.closeFn = closeFn

	a.roster = services.NewRosterAuthorizer(domain.TenantMember{TenantID: a.tenant, UserID: a.user, Role: domain.RoleAdmin})
	a.svc = services.NewServiceContainer(repos, a.roster)
	return nil
}
