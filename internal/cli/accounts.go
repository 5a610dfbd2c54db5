package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the company's bank accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			_, accountSvc, err := opts.services()
			if err != nil {
				return err
			}

			accounts, err := accountSvc.BankAccounts(cmd.Context(), scope)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBANK\tACCOUNT\tNAME")
			for _, account := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", account.ID, account.BankName, account.AccountNumber, account.Name)
			}
			return w.Flush()
		},
	}
}

func newEntriesCommand(opts *options) *cobra.Command {
	var bankAccountID, status string

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List statement entries for a bank account",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			reconSvc, _, err := opts.services()
			if err != nil {
				return err
			}

			entries, err := reconSvc.Entries(cmd.Context(), scope, bankAccountID, entryStatus(status))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tSTATUS\tDESCRIPTION")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					entry.ID, entry.ValueDate.Format("2006-01-02"), entry.Amount.StringFixed(2), entry.Status, entry.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&bankAccountID, "bank-account", "", "bank account id")
	cmd.Flags().StringVar(&status, "status", "", "filter: pending, matched, unmatched or disputed")
	cmd.MarkFlagRequired("bank-account")
	return cmd
}

func newSummaryCommand(opts *options) *cobra.Command {
	var bankAccountID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the reconciliation summary for a bank account",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			reconSvc, _, err := opts.services()
			if err != nil {
				return err
			}

			summary, err := reconSvc.Summary(cmd.Context(), scope, bankAccountID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bank entries:        %d total, %d pending, %d matched\n",
				summary.TotalBankEntries, summary.BankEntries.Pending, summary.BankEntries.Matched)
			fmt.Fprintf(out, "Unreconciled books:  %d\n", summary.UnreconciledBookEntries)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankAccountID, "bank-account", "", "bank account id")
	cmd.MarkFlagRequired("bank-account")
	return cmd
}
