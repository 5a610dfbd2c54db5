package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recon-gateway/internal/domain"
	"recon-gateway/internal/upstream"
)

// fakeBackend is a programmable upstream.Client that counts calls.
type fakeBackend struct {
	entries []domain.BankStatementEntry
	summary domain.ReconciliationSummary

	importCalls      int
	autoMatchCalls   int
	listEntriesCalls int
	summaryCalls     int
	createCalls      []string
	createErr        func(entryID string) error
}

func (f *fakeBackend) ListBankAccounts(ctx context.Context, scope upstream.Scope) ([]domain.BankAccount, error) {
	return nil, nil
}

func (f *fakeBackend) ListAccounts(ctx context.Context, scope upstream.Scope) ([]domain.Account, error) {
	return nil, nil
}

func (f *fakeBackend) ImportStatement(ctx context.Context, scope upstream.Scope, bankAccountID string, req domain.ImportRequest) (*domain.ImportResult, error) {
	f.importCalls++
	return &domain.ImportResult{Imported: 10, AutoMatched: 4, Pending: 6}, nil
}

func (f *fakeBackend) AutoMatch(ctx context.Context, scope upstream.Scope, bankAccountID string) (*domain.AutoMatchResult, error) {
	f.autoMatchCalls++
	return &domain.AutoMatchResult{Matched: 3}, nil
}

func (f *fakeBackend) ListEntries(ctx context.Context, scope upstream.Scope, bankAccountID string, status domain.EntryStatus) ([]domain.BankStatementEntry, error) {
	f.listEntriesCalls++
	return f.entries, nil
}

func (f *fakeBackend) Summary(ctx context.Context, scope upstream.Scope, bankAccountID string) (*domain.ReconciliationSummary, error) {
	f.summaryCalls++
	summary := f.summary
	return &summary, nil
}

func (f *fakeBackend) CreateTransaction(ctx context.Context, scope upstream.Scope, bankAccountID, entryID, categoryAccountID string) (*domain.TransactionRecord, error) {
	if f.createErr != nil {
		if err := f.createErr(entryID); err != nil {
			return nil, err
		}
	}
	f.createCalls = append(f.createCalls, entryID)
	return &domain.TransactionRecord{ID: "tx-" + entryID, EntryID: entryID}, nil
}

func (f *fakeBackend) MarkAsCharges(ctx context.Context, scope upstream.Scope, bankAccountID, entryID string, chargeType domain.ChargeType) (*domain.BankStatementEntry, error) {
	return &domain.BankStatementEntry{ID: entryID, Status: domain.StatusMatched}, nil
}

func (f *fakeBackend) Unmatch(ctx context.Context, scope upstream.Scope, bankAccountID, entryID string) (*domain.BankStatementEntry, error) {
	return &domain.BankStatementEntry{ID: entryID, Status: domain.StatusPending}, nil
}

var testScope = upstream.Scope{CompanyID: "co-1", Token: "t"}

func TestImport_BlockedWithoutMapping(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewReconciliationService(backend, 5)

	// No bank name and no mapping at all.
	_, err := svc.Import(context.Background(), testScope, "ba-1", domain.ImportRequest{
		Content:  "a,b\n1,2",
		FileName: "stmt.csv",
	})
	assert.Error(t, err)

	// Mapping present but the mandatory description column is empty.
	_, err = svc.Import(context.Background(), testScope, "ba-1", domain.ImportRequest{
		Content:  "a,b\n1,2",
		FileName: "stmt.csv",
		ColumnMapping: &domain.ColumnMapping{
			DateColumn:  "Date",
			DebitColumn: "Debit",
		},
	})
	assert.Error(t, err)

	assert.Equal(t, 0, backend.importCalls, "no backend call may fire before validation passes")
}

func TestImport_RefreshesStateAfterSuccess(t *testing.T) {
	backend := &fakeBackend{
		entries: []domain.BankStatementEntry{{ID: "e-1", Status: domain.StatusPending}},
		summary: domain.ReconciliationSummary{TotalBankEntries: 10},
	}
	svc := NewReconciliationService(backend, 5)

	outcome, err := svc.Import(context.Background(), testScope, "ba-1", domain.ImportRequest{
		Content:   "a,b\n1,2",
		FileName:  "stmt.csv",
		BankName:  "hdfc",
		AutoMatch: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, backend.importCalls)
	assert.Equal(t, 1, backend.listEntriesCalls, "entries must be re-fetched, not patched")
	assert.Equal(t, 1, backend.summaryCalls, "summary must be re-fetched, not patched")
	assert.Equal(t, 10, outcome.State.Summary.TotalBankEntries)
	assert.Equal(t, domain.ImportResult{Imported: 10, AutoMatched: 4, Pending: 6}, outcome.Result)
}

func TestCategorize_RefreshesState(t *testing.T) {
	backend := &fakeBackend{summary: domain.ReconciliationSummary{TotalBankEntries: 3}}
	svc := NewReconciliationService(backend, 5)

	state, err := svc.Categorize(context.Background(), testScope, "ba-1", "e-1", "acc-42")

	require.NoError(t, err)
	assert.Equal(t, []string{"e-1"}, backend.createCalls)
	assert.Equal(t, 1, backend.listEntriesCalls)
	assert.Equal(t, 1, backend.summaryCalls)
	require.NotNil(t, state.Summary)
}

func TestCategorize_RequiresAccount(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewReconciliationService(backend, 5)

	_, err := svc.Categorize(context.Background(), testScope, "ba-1", "e-1", "")

	assert.Error(t, err)
	assert.Empty(t, backend.createCalls)
}

func TestBulkCategorize_BestEffort(t *testing.T) {
	backend := &fakeBackend{
		createErr: func(entryID string) error {
			if entryID == "e-2" {
				return fmt.Errorf("entry already matched")
			}
			return nil
		},
	}
	svc := NewReconciliationService(backend, 5)

	result, err := svc.BulkCategorize(context.Background(), testScope, "ba-1", []string{"e-1", "e-2", "e-3"}, "acc-42")

	require.NoError(t, err, "a failed entry must not fail the batch")
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, []string{"e-2"}, result.FailedIDs)
	assert.Equal(t, []string{"e-1", "e-3"}, backend.createCalls, "entries after the failure are still processed")
}

func TestMarkAsCharges_InfersTypeFromAmountSign(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   domain.ChargeType
	}{
		{decimal.NewFromFloat(-50.00), domain.ChargeBankCharges},
		{decimal.NewFromFloat(125.75), domain.ChargeInterestReceived},
		{decimal.Zero, domain.ChargeInterestReceived},
	}

	for _, tt := range tests {
		backend := &fakeBackend{
			entries: []domain.BankStatementEntry{{ID: "e-1", Amount: tt.amount, Status: domain.StatusPending}},
		}
		svc := NewReconciliationService(backend, 5).(*reconciliationService)

		chargeType, err := svc.inferChargeType(context.Background(), testScope, "ba-1", "e-1")
		require.NoError(t, err)
		assert.Equal(t, tt.want, chargeType, "amount %s", tt.amount)
	}
}

func TestMarkAsCharges_UnknownEntry(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewReconciliationService(backend, 5)

	_, err := svc.MarkAsCharges(context.Background(), testScope, "ba-1", "missing", "")
	assert.Error(t, err)
}

func TestEntries_AnnotatesActions(t *testing.T) {
	backend := &fakeBackend{
		entries: []domain.BankStatementEntry{
			{ID: "e-1", Status: domain.StatusPending},
			{ID: "e-2", Status: domain.StatusMatched},
			{ID: "e-3", Status: domain.StatusDisputed},
		},
	}
	svc := NewReconciliationService(backend, 5)

	entries, err := svc.Entries(context.Background(), testScope, "ba-1", "")
	require.NoError(t, err)

	assert.Equal(t, []domain.EntryAction{domain.ActionCreateTransaction, domain.ActionMarkAsCharges}, entries[0].AvailableActions)
	assert.Equal(t, []domain.EntryAction{domain.ActionUnmatch}, entries[1].AvailableActions)
	assert.Nil(t, entries[2].AvailableActions)
}

func TestUnmatch_RefreshesState(t *testing.T) {
	backend := &fakeBackend{summary: domain.ReconciliationSummary{TotalBankEntries: 1}}
	svc := NewReconciliationService(backend, 5)

	state, err := svc.Unmatch(context.Background(), testScope, "ba-1", "e-1")

	require.NoError(t, err)
	assert.Equal(t, 1, backend.listEntriesCalls)
	assert.Equal(t, 1, backend.summaryCalls)
	require.NotNil(t, state.Summary)
}
