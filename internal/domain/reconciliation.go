package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the reconciliation state of a bank statement entry.
// Transitions happen only in the accounting backend; the gateway re-fetches
// authoritative state after every mutation instead of patching it locally.
type EntryStatus string

const (
	StatusPending   EntryStatus = "pending"
	StatusMatched   EntryStatus = "matched"
	StatusUnmatched EntryStatus = "unmatched"
	StatusDisputed  EntryStatus = "disputed"
)

// EntryAction is a triage action the UI may offer for an entry.
type EntryAction string

const (
	ActionCreateTransaction EntryAction = "create_transaction"
	ActionMarkAsCharges     EntryAction = "mark_as_charges"
	ActionUnmatch           EntryAction = "unmatch"
)

// ActionsFor returns the triage actions available for an entry status.
// Matched entries can only be unmatched; disputed entries have no
// transitions in this flow.
func ActionsFor(status EntryStatus) []EntryAction {
	switch status {
	case StatusPending, StatusUnmatched:
		return []EntryAction{ActionCreateTransaction, ActionMarkAsCharges}
	case StatusMatched:
		return []EntryAction{ActionUnmatch}
	default:
		return nil
	}
}

// ChargeType classifies a statement entry booked as a bank charge.
type ChargeType string

const (
	ChargeBankCharges      ChargeType = "bank_charges"
	ChargeInterestReceived ChargeType = "interest_received"
)

// InferChargeType picks the charge type from the sign of the entry amount:
// money out is a bank charge, money in is interest received.
func InferChargeType(amount decimal.Decimal) ChargeType {
	if amount.IsNegative() {
		return ChargeBankCharges
	}
	return ChargeInterestReceived
}

// BankAccount is a company bank account that scopes the reconciliation flow.
type BankAccount struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	AccountNumber string           `json:"account_number"`
	BankName      string           `json:"bank_name"`
	Currency      string           `json:"currency"`
	Balance       *decimal.Decimal `json:"balance,omitempty"`
}

// BankStatementEntry is one imported line of a bank statement.
type BankStatementEntry struct {
	ID                  string          `json:"id"`
	ValueDate           time.Time       `json:"value_date"`
	TransactionDate     *time.Time      `json:"transaction_date,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	IsCredit            bool            `json:"is_credit"`
	BankReference       *string         `json:"bank_reference,omitempty"`
	Description         string          `json:"description"`
	Balance             *decimal.Decimal `json:"balance,omitempty"`
	Status              EntryStatus     `json:"status"`
	MatchedEntryID      *string         `json:"matched_entry_id,omitempty"`
	BookedTransactionID *string         `json:"booked_transaction_id,omitempty"`

	// AvailableActions is derived from Status by the gateway for the UI;
	// the backend never sends it.
	AvailableActions []EntryAction `json:"available_actions,omitempty"`
}

// ColumnMapping maps CSV columns to statement entry fields. It is staged
// client-side from the preview headers, sent once with the import request
// and then discarded.
type ColumnMapping struct {
	DateColumn        string `json:"date_column,omitempty"`
	DescriptionColumn string `json:"description_column"`
	DebitColumn       string `json:"debit_column,omitempty"`
	CreditColumn      string `json:"credit_column,omitempty"`
	ReferenceColumn   string `json:"reference_column,omitempty"`
	BalanceColumn     string `json:"balance_column,omitempty"`
}

// IsZero reports whether no column has been assigned.
func (m ColumnMapping) IsZero() bool {
	return m == ColumnMapping{}
}

// StatementPreview is the parsed head of an uploaded CSV, with bank format
// detection and a suggested column mapping.
type StatementPreview struct {
	Headers          []string       `json:"headers"`
	SampleRows       [][]string     `json:"sample_rows"`
	RowCount         int            `json:"row_count"`
	DetectedBank     *string        `json:"detected_bank,omitempty"`
	SuggestedMapping *ColumnMapping `json:"suggested_mapping,omitempty"`
}

// ImportRequest is the payload sent to the backend import endpoint. Exactly
// one of BankName or ColumnMapping describes how to read the CSV content.
type ImportRequest struct {
	Content       string         `json:"content"`
	FileName      string         `json:"file_name"`
	BankName      string         `json:"bank_name,omitempty"`
	ColumnMapping *ColumnMapping `json:"column_mapping,omitempty"`
	AutoMatch     bool           `json:"auto_match"`
}

// ImportResult reports the outcome of a statement import.
type ImportResult struct {
	Imported    int `json:"imported"`
	AutoMatched int `json:"auto_matched"`
	Pending     int `json:"pending"`
}

// AutoMatchResult reports how many entries an auto-match pass matched.
type AutoMatchResult struct {
	Matched int `json:"matched"`
}

// EntryCounts splits bank statement entries by reconciliation state.
type EntryCounts struct {
	Pending int `json:"pending"`
	Matched int `json:"matched"`
}

// ReconciliationSummary is the backend's aggregate view of a bank account,
// fetched fresh after every mutating action.
type ReconciliationSummary struct {
	BankEntries             EntryCounts `json:"bank_entries"`
	UnreconciledBookEntries int         `json:"unreconciled_book_entries"`
	TotalBankEntries        int         `json:"total_bank_entries"`
}

// Account is a ledger account usable as a categorization target.
type Account struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
}

// AccountGroup is a set of accounts of one type, for select rendering.
type AccountGroup struct {
	AccountType string    `json:"account_type"`
	Accounts    []Account `json:"accounts"`
}

// TransactionRecord is the booked transaction the backend returns when a
// statement entry is categorized.
type TransactionRecord struct {
	ID                string          `json:"id"`
	EntryID           string          `json:"entry_id"`
	CategoryAccountID string          `json:"category_account_id"`
	Amount            decimal.Decimal `json:"amount"`
	PostedAt          *time.Time      `json:"posted_at,omitempty"`
}

// TriageState is the refreshed entries list and summary returned after a
// successful mutation.
type TriageState struct {
	Entries []BankStatementEntry   `json:"entries"`
	Summary *ReconciliationSummary `json:"summary,omitempty"`
}

// ImportOutcome is an import result plus the refreshed triage state.
type ImportOutcome struct {
	Result ImportResult `json:"result"`
	State  TriageState  `json:"state"`
}

// AutoMatchOutcome is an auto-match result plus the refreshed triage state.
type AutoMatchOutcome struct {
	Result AutoMatchResult `json:"result"`
	State  TriageState     `json:"state"`
}

// BulkCategorizeResult reports a best-effort bulk categorize. Failed entries
// are skipped, not rolled back.
type BulkCategorizeResult struct {
	Requested int         `json:"requested"`
	Succeeded int         `json:"succeeded"`
	FailedIDs []string    `json:"failed_ids,omitempty"`
	State     TriageState `json:"state"`
}
