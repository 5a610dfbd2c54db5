package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"recon-gateway/internal/domain"
	"recon-gateway/pkg/logger"
)

// Scope carries the per-request tenancy and credential for backend calls.
// It is passed explicitly instead of living in ambient state so services
// and tests can construct it freely.
type Scope struct {
	CompanyID string
	Token     string
}

// Client is the accounting backend consumed by the gateway. The backend owns
// the ledger, the matching engine and all persistence; every method here is a
// plain HTTP+JSON call with no retries and no local state.
type Client interface {
	ListBankAccounts(ctx context.Context, scope Scope) ([]domain.BankAccount, error)
	ListAccounts(ctx context.Context, scope Scope) ([]domain.Account, error)
	ImportStatement(ctx context.Context, scope Scope, bankAccountID string, req domain.ImportRequest) (*domain.ImportResult, error)
	AutoMatch(ctx context.Context, scope Scope, bankAccountID string) (*domain.AutoMatchResult, error)
	ListEntries(ctx context.Context, scope Scope, bankAccountID string, status domain.EntryStatus) ([]domain.BankStatementEntry, error)
	Summary(ctx context.Context, scope Scope, bankAccountID string) (*domain.ReconciliationSummary, error)
	CreateTransaction(ctx context.Context, scope Scope, bankAccountID, entryID, categoryAccountID string) (*domain.TransactionRecord, error)
	MarkAsCharges(ctx context.Context, scope Scope, bankAccountID, entryID string, chargeType domain.ChargeType) (*domain.BankStatementEntry, error)
	Unmatch(ctx context.Context, scope Scope, bankAccountID, entryID string) (*domain.BankStatementEntry, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a backend client. timeout of zero means no client-side
// timeout; a failed or slow request surfaces once and the user retries.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) ListBankAccounts(ctx context.Context, scope Scope) ([]domain.BankAccount, error) {
	var accounts []domain.BankAccount
	path := fmt.Sprintf("/companies/%s/bank-accounts", url.PathEscape(scope.CompanyID))
	if err := c.do(ctx, scope, http.MethodGet, path, nil, &accounts, "Failed to load bank accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *httpClient) ListAccounts(ctx context.Context, scope Scope) ([]domain.Account, error) {
	var accounts []domain.Account
	path := fmt.Sprintf("/companies/%s/accounts", url.PathEscape(scope.CompanyID))
	if err := c.do(ctx, scope, http.MethodGet, path, nil, &accounts, "Failed to load accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *httpClient) ImportStatement(ctx context.Context, scope Scope, bankAccountID string, req domain.ImportRequest) (*domain.ImportResult, error) {
	var result domain.ImportResult
	path := c.bankAccountPath(scope, bankAccountID, "import-statement")
	if err := c.do(ctx, scope, http.MethodPost, path, req, &result, "Failed to import statement"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) AutoMatch(ctx context.Context, scope Scope, bankAccountID string) (*domain.AutoMatchResult, error) {
	var result domain.AutoMatchResult
	path := c.bankAccountPath(scope, bankAccountID, "auto-match-statement")
	if err := c.do(ctx, scope, http.MethodPost, path, nil, &result, "Failed to auto-match statement"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) ListEntries(ctx context.Context, scope Scope, bankAccountID string, status domain.EntryStatus) ([]domain.BankStatementEntry, error) {
	var entries []domain.BankStatementEntry
	path := c.bankAccountPath(scope, bankAccountID, "statement-entries")
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	if err := c.do(ctx, scope, http.MethodGet, path, nil, &entries, "Failed to load statement entries"); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *httpClient) Summary(ctx context.Context, scope Scope, bankAccountID string) (*domain.ReconciliationSummary, error) {
	var summary domain.ReconciliationSummary
	path := c.bankAccountPath(scope, bankAccountID, "reconciliation-summary")
	if err := c.do(ctx, scope, http.MethodGet, path, nil, &summary, "Failed to load reconciliation summary"); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *httpClient) CreateTransaction(ctx context.Context, scope Scope, bankAccountID, entryID, categoryAccountID string) (*domain.TransactionRecord, error) {
	var record domain.TransactionRecord
	path := c.entryPath(scope, bankAccountID, entryID, "create-transaction")
	body := map[string]string{"category_account_id": categoryAccountID}
	if err := c.do(ctx, scope, http.MethodPost, path, body, &record, "Failed to categorize entry"); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *httpClient) MarkAsCharges(ctx context.Context, scope Scope, bankAccountID, entryID string, chargeType domain.ChargeType) (*domain.BankStatementEntry, error) {
	var entry domain.BankStatementEntry
	path := c.entryPath(scope, bankAccountID, entryID, "mark-as-charges")
	path += "?charge_type=" + url.QueryEscape(string(chargeType))
	if err := c.do(ctx, scope, http.MethodPost, path, nil, &entry, "Failed to mark entry as charges"); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *httpClient) Unmatch(ctx context.Context, scope Scope, bankAccountID, entryID string) (*domain.BankStatementEntry, error) {
	var entry domain.BankStatementEntry
	path := c.entryPath(scope, bankAccountID, entryID, "unmatch")
	if err := c.do(ctx, scope, http.MethodPost, path, nil, &entry, "Failed to unmatch entry"); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *httpClient) bankAccountPath(scope Scope, bankAccountID, suffix string) string {
	return fmt.Sprintf("/companies/%s/bank-accounts/%s/%s",
		url.PathEscape(scope.CompanyID), url.PathEscape(bankAccountID), suffix)
}

func (c *httpClient) entryPath(scope Scope, bankAccountID, entryID, suffix string) string {
	return fmt.Sprintf("/companies/%s/bank-accounts/%s/statement-entries/%s/%s",
		url.PathEscape(scope.CompanyID), url.PathEscape(bankAccountID), url.PathEscape(entryID), suffix)
}

// do performs one request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses become *Error with the backend's detail string,
// or fallback when the body carries none.
func (c *httpClient) do(ctx context.Context, scope Scope, method, path string, body, out interface{}, fallback string) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if scope.Token != "" {
		req.Header.Set("Authorization", "Bearer "+scope.Token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.client.Do(req)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("path", path).Error("Backend request failed")
		return fmt.Errorf("calling accounting backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, data, fallback)
		logger.GetLogger().WithFields(map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
			"detail": apiErr.Detail,
		}).Warn("Backend returned error")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding backend response: %w", err)
	}
	return nil
}
