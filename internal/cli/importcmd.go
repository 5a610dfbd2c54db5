package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"recon-gateway/internal/domain"
)

func newImportCommand(opts *options) *cobra.Command {
	var bankAccountID, bankName string

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import a bank statement CSV",
		Long: `Import a bank statement CSV into a bank account.

The file is previewed locally first: when the bank format is recognized (or
--bank is given) the backend parses it by name, otherwise the column mapper
runs against the CSV headers and the derived mapping is sent instead. Import
fails before any upload when neither route yields a usable mapping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			reconSvc, _, err := opts.services()
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading statement file: %w", err)
			}

			req := domain.ImportRequest{
				Content:   string(content),
				FileName:  filepath.Base(args[0]),
				BankName:  bankName,
				AutoMatch: true,
			}

			if req.BankName == "" {
				preview, err := reconSvc.Preview(cmd.Context(), scope, bytes.NewReader(content))
				if err != nil {
					return err
				}
				if preview.DetectedBank != nil {
					req.BankName = *preview.DetectedBank
				} else if preview.SuggestedMapping != nil {
					req.ColumnMapping = preview.SuggestedMapping
				}
			}

			outcome, err := reconSvc.Import(cmd.Context(), scope, bankAccountID, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%d auto-matched, %d pending)\n",
				outcome.Result.Imported, outcome.Result.AutoMatched, outcome.Result.Pending)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankAccountID, "bank-account", "", "bank account id")
	cmd.Flags().StringVar(&bankName, "bank", "", "bank format name, skips auto-detection")
	cmd.MarkFlagRequired("bank-account")
	return cmd
}

func newAutoMatchCommand(opts *options) *cobra.Command {
	var bankAccountID string

	cmd := &cobra.Command{
		Use:   "auto-match",
		Short: "Run a backend auto-match pass over pending entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := opts.scope()
			if err != nil {
				return err
			}
			reconSvc, _, err := opts.services()
			if err != nil {
				return err
			}

			outcome, err := reconSvc.AutoMatch(cmd.Context(), scope, bankAccountID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Matched %d entries\n", outcome.Result.Matched)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankAccountID, "bank-account", "", "bank account id")
	cmd.MarkFlagRequired("bank-account")
	return cmd
}
