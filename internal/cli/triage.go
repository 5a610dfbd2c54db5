package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recon-gateway/internal/domain"
)

func newCategorizeCommand(opts *options) *cobra.Command {
	var bankAccountID, accountID string
	var entryIDs []string

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Book statement entries against a ledger account",
		Long: `Book one or more pending statement entries against a ledger account.

With several --entry flags the batch runs sequentially and best-effort:
entries that fail are reported and skipped, entries already booked stay
booked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			reconSvc, _, err := opts.services()
			if err != nil {
				return err
			}

			if len(entryIDs) == 1 {
				if _, err := reconSvc.Categorize(cmd.Context(), scope, bankAccountID, entryIDs[0], accountID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Categorized entry %s\n", entryIDs[0])
				return nil
			}

			result, err := reconSvc.BulkCategorize(cmd.Context(), scope, bankAccountID, entryIDs, accountID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Categorized %d of %d entries\n", result.Succeeded, result.Requested)
			for _, id := range result.FailedIDs {
				fmt.Fprintf(cmd.OutOrStdout(), "  failed: %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bankAccountID, "bank-account", "", "bank account id")
	cmd.Flags().StringArrayVar(&entryIDs, "entry", nil, "statement entry id (repeatable)")
	cmd.Flags().StringVar(&accountID, "account", "", "category ledger account id")
	cmd.MarkFlagRequired("bank-account")
	cmd.MarkFlagRequired("entry")
	cmd.MarkFlagRequired("account")
	return cmd
}

func newChargesCommand(opts *options) *cobra.Command {
	var bankAccountID, entryID, chargeType string

	cmd := &cobra.Command{
		Use:   "charges",
		Short: "Book a statement entry as bank charges or interest",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			reconSvc, _, err := opts.services()
			if err != nil {
				return err
			}

			ct := domain.ChargeType(chargeType)
			switch ct {
			case "", domain.ChargeBankCharges, domain.ChargeInterestReceived:
			default:
				return fmt.Errorf("invalid charge type %q: use bank_charges or interest_received", chargeType)
			}

			if _, err := reconSvc.MarkAsCharges(cmd.Context(), scope, bankAccountID, entryID, ct); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Entry %s booked as charges\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankAccountID, "bank-account", "", "bank account id")
	cmd.Flags().StringVar(&entryID, "entry", "", "statement entry id")
	cmd.Flags().StringVar(&chargeType, "type", "", "bank_charges or interest_received (inferred from the amount sign when omitted)")
	cmd.MarkFlagRequired("bank-account")
	cmd.MarkFlagRequired("entry")
	return cmd
}

func newUnmatchCommand(opts *options) *cobra.Command {
	var bankAccountID, entryID string

	cmd := &cobra.Command{
		Use:   "unmatch",
		Short: "Return a matched statement entry to pending",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			reconSvc, _, err := opts.services()
			if err != nil {
				return err
			}

			if _, err := reconSvc.Unmatch(cmd.Context(), scope, bankAccountID, entryID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Entry %s unmatched\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankAccountID, "bank-account", "", "bank account id")
	cmd.Flags().StringVar(&entryID, "entry", "", "statement entry id")
	cmd.MarkFlagRequired("bank-account")
	cmd.MarkFlagRequired("entry")
	return cmd
}

func entryStatus(s string) domain.EntryStatus {
	return domain.EntryStatus(s)
}
