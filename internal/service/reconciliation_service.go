package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"recon-gateway/internal/domain"
	"recon-gateway/internal/statement"
	"recon-gateway/internal/upstream"
	"recon-gateway/pkg/logger"
)

// ReconciliationService drives the bank-statement reconciliation workflow:
// preview, import, auto-match, and per-entry triage. The accounting backend
// is the authority on entry state; after every successful mutation the
// service re-fetches entries and summary instead of patching locally.
type ReconciliationService interface {
	Preview(ctx context.Context, scope upstream.Scope, r io.Reader) (*domain.StatementPreview, error)
	Import(ctx context.Context, scope upstream.Scope, bankAccountID string, req domain.ImportRequest) (*domain.ImportOutcome, error)
	AutoMatch(ctx context.Context, scope upstream.Scope, bankAccountID string) (*domain.AutoMatchOutcome, error)
	Entries(ctx context.Context, scope upstream.Scope, bankAccountID string, status domain.EntryStatus) ([]domain.BankStatementEntry, error)
	Summary(ctx context.Context, scope upstream.Scope, bankAccountID string) (*domain.ReconciliationSummary, error)
	Categorize(ctx context.Context, scope upstream.Scope, bankAccountID, entryID, categoryAccountID string) (*domain.TriageState, error)
	BulkCategorize(ctx context.Context, scope upstream.Scope, bankAccountID string, entryIDs []string, categoryAccountID string) (*domain.BulkCategorizeResult, error)
	MarkAsCharges(ctx context.Context, scope upstream.Scope, bankAccountID, entryID string, chargeType domain.ChargeType) (*domain.TriageState, error)
	Unmatch(ctx context.Context, scope upstream.Scope, bankAccountID, entryID string) (*domain.TriageState, error)
}

type reconciliationService struct {
	backend    upstream.Client
	sampleRows int
}

// NewReconciliationService creates the workflow service. sampleRows bounds
// how many data rows a preview returns.
func NewReconciliationService(backend upstream.Client, sampleRows int) ReconciliationService {
	return &reconciliationService{backend: backend, sampleRows: sampleRows}
}

func (s *reconciliationService) Preview(ctx context.Context, scope upstream.Scope, r io.Reader) (*domain.StatementPreview, error) {
	preview, err := statement.Preview(r, s.sampleRows)
	if err != nil {
		return nil, fmt.Errorf("previewing statement: %w", err)
	}

	fields := map[string]interface{}{
		"company_id": scope.CompanyID,
		"columns":    len(preview.Headers),
		"rows":       preview.RowCount,
	}
	if preview.DetectedBank != nil {
		fields["detected_bank"] = *preview.DetectedBank
	}
	logger.GetLogger().WithFields(fields).Info("Statement previewed")

	return preview, nil
}

func (s *reconciliationService) Import(ctx context.Context, scope upstream.Scope, bankAccountID string, req domain.ImportRequest) (*domain.ImportOutcome, error) {
	// Validation gate: without a detected bank, a usable column mapping must
	// exist before any backend call fires.
	if req.BankName == "" {
		if req.ColumnMapping == nil {
			return nil, fmt.Errorf("either bank_name or column_mapping is required")
		}
		if err := statement.ValidateMapping(*req.ColumnMapping); err != nil {
			return nil, err
		}
	}

	result, err := s.backend.ImportStatement(ctx, scope, bankAccountID, req)
	if err != nil {
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"bank_account_id": bankAccountID,
		"file_name":       req.FileName,
		"imported":        result.Imported,
		"auto_matched":    result.AutoMatched,
		"pending":         result.Pending,
	}).Info("Statement imported")

	return &domain.ImportOutcome{
		Result: *result,
		State:  s.refresh(ctx, scope, bankAccountID, ""),
	}, nil
}

func (s *reconciliationService) AutoMatch(ctx context.Context, scope upstream.Scope, bankAccountID string) (*domain.AutoMatchOutcome, error) {
	result, err := s.backend.AutoMatch(ctx, scope, bankAccountID)
	if err != nil {
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"bank_account_id": bankAccountID,
		"matched":         result.Matched,
	}).Info("Auto-match completed")

	return &domain.AutoMatchOutcome{
		Result: *result,
		State:  s.refresh(ctx, scope, bankAccountID, ""),
	}, nil
}

func (s *reconciliationService) Entries(ctx context.Context, scope upstream.Scope, bankAccountID string, status domain.EntryStatus) ([]domain.BankStatementEntry, error) {
	entries, err := s.backend.ListEntries(ctx, scope, bankAccountID, status)
	if err != nil {
		return nil, err
	}
	annotateActions(entries)
	return entries, nil
}

func (s *reconciliationService) Summary(ctx context.Context, scope upstream.Scope, bankAccountID string) (*domain.ReconciliationSummary, error) {
	return s.backend.Summary(ctx, scope, bankAccountID)
}

func (s *reconciliationService) Categorize(ctx context.Context, scope upstream.Scope, bankAccountID, entryID, categoryAccountID string) (*domain.TriageState, error) {
	if categoryAccountID == "" {
		return nil, fmt.Errorf("category account is required")
	}

	if _, err := s.backend.CreateTransaction(ctx, scope, bankAccountID, entryID, categoryAccountID); err != nil {
		return nil, err
	}

	state := s.refresh(ctx, scope, bankAccountID, "")
	return &state, nil
}

// BulkCategorize posts one create-transaction per entry, sequentially. A
// failed entry is logged and skipped; earlier successes are never rolled
// back. The result reports how far the batch got.
func (s *reconciliationService) BulkCategorize(ctx context.Context, scope upstream.Scope, bankAccountID string, entryIDs []string, categoryAccountID string) (*domain.BulkCategorizeResult, error) {
	if categoryAccountID == "" {
		return nil, fmt.Errorf("category account is required")
	}
	if len(entryIDs) == 0 {
		return nil, fmt.Errorf("no entries selected")
	}

	batchID := uuid.New().String()
	result := &domain.BulkCategorizeResult{Requested: len(entryIDs)}

	for _, entryID := range entryIDs {
		if _, err := s.backend.CreateTransaction(ctx, scope, bankAccountID, entryID, categoryAccountID); err != nil {
			logger.GetLogger().WithError(err).WithFields(map[string]interface{}{
				"batch_id": batchID,
				"entry_id": entryID,
			}).Warn("Bulk categorize: entry failed, continuing")
			result.FailedIDs = append(result.FailedIDs, entryID)
			continue
		}
		result.Succeeded++
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"batch_id":  batchID,
		"requested": result.Requested,
		"succeeded": result.Succeeded,
	}).Info("Bulk categorize completed")

	result.State = s.refresh(ctx, scope, bankAccountID, "")
	return result, nil
}

func (s *reconciliationService) MarkAsCharges(ctx context.Context, scope upstream.Scope, bankAccountID, entryID string, chargeType domain.ChargeType) (*domain.TriageState, error) {
	if chargeType == "" {
		inferred, err := s.inferChargeType(ctx, scope, bankAccountID, entryID)
		if err != nil {
			return nil, err
		}
		chargeType = inferred
	}

	if _, err := s.backend.MarkAsCharges(ctx, scope, bankAccountID, entryID, chargeType); err != nil {
		return nil, err
	}

	state := s.refresh(ctx, scope, bankAccountID, "")
	return &state, nil
}

func (s *reconciliationService) Unmatch(ctx context.Context, scope upstream.Scope, bankAccountID, entryID string) (*domain.TriageState, error) {
	if _, err := s.backend.Unmatch(ctx, scope, bankAccountID, entryID); err != nil {
		return nil, err
	}

	state := s.refresh(ctx, scope, bankAccountID, "")
	return &state, nil
}

// inferChargeType looks the entry up to apply the amount-sign rule: money
// out is bank charges, money in is interest received.
func (s *reconciliationService) inferChargeType(ctx context.Context, scope upstream.Scope, bankAccountID, entryID string) (domain.ChargeType, error) {
	entries, err := s.backend.ListEntries(ctx, scope, bankAccountID, "")
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.ID == entryID {
			return domain.InferChargeType(entry.Amount), nil
		}
	}
	return "", fmt.Errorf("statement entry %s not found", entryID)
}

// refresh re-fetches the authoritative entries and summary after a mutation.
// Fetch failures are logged and leave the corresponding field empty; the
// mutation itself has already succeeded.
func (s *reconciliationService) refresh(ctx context.Context, scope upstream.Scope, bankAccountID string, status domain.EntryStatus) domain.TriageState {
	var state domain.TriageState

	entries, err := s.backend.ListEntries(ctx, scope, bankAccountID, status)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("bank_account_id", bankAccountID).Warn("Failed to refresh entries")
	} else {
		annotateActions(entries)
		state.Entries = entries
	}

	summary, err := s.backend.Summary(ctx, scope, bankAccountID)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("bank_account_id", bankAccountID).Warn("Failed to refresh summary")
	} else {
		state.Summary = summary
	}

	return state
}

func annotateActions(entries []domain.BankStatementEntry) {
	for i := range entries {
		entries[i].AvailableActions = domain.ActionsFor(entries[i].Status)
	}
}
