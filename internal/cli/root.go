package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"recon-gateway/internal/service"
	"recon-gateway/internal/upstream"
	"recon-gateway/pkg/logger"
)

// options are the connection settings shared by every subcommand. Flags win
// over environment variables.
type options struct {
	baseURL   string
	companyID string
	token     string
}

func (o *options) scope() (upstream.Scope, error) {
	if o.companyID == "" {
		return upstream.Scope{}, fmt.Errorf("company id is required (--company or COMPANY_ID)")
	}
	if o.token == "" {
		return upstream.Scope{}, fmt.Errorf("API token is required (--token or API_TOKEN)")
	}
	return upstream.Scope{CompanyID: o.companyID, Token: o.token}, nil
}

func (o *options) services() (service.ReconciliationService, service.AccountService, error) {
	if o.baseURL == "" {
		return nil, nil, fmt.Errorf("backend base URL is required (--base-url or UPSTREAM_BASE_URL)")
	}
	backend := upstream.NewClient(o.baseURL, 0*time.Second)
	return service.NewReconciliationService(backend, 0), service.NewAccountService(backend), nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "reconcli",
		Short: "Headless bank-statement reconciliation for the accounting backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(os.Getenv("LOG_LEVEL"))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", os.Getenv("UPSTREAM_BASE_URL"), "accounting backend base URL")
	flags.StringVar(&opts.companyID, "company", os.Getenv("COMPANY_ID"), "company id")
	flags.StringVar(&opts.token, "token", os.Getenv("API_TOKEN"), "bearer token")

	rootCmd.AddCommand(newAccountsCommand(opts))
	rootCmd.AddCommand(newEntriesCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newAutoMatchCommand(opts))
	rootCmd.AddCommand(newCategorizeCommand(opts))
	rootCmd.AddCommand(newChargesCommand(opts))
	rootCmd.AddCommand(newUnmatchCommand(opts))

	return rootCmd
}
