package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"recon-gateway/internal/domain"
	"recon-gateway/internal/service"
	"recon-gateway/pkg/logger"
	"recon-gateway/pkg/response"
)

type ReconciliationHandler struct {
	service service.ReconciliationService
}

func NewReconciliationHandler(service service.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{service: service}
}

type ImportStatementRequest struct {
	Content       string                `json:"content" binding:"required"`
	FileName      string                `json:"file_name" binding:"required"`
	BankName      string                `json:"bank_name"`
	ColumnMapping *domain.ColumnMapping `json:"column_mapping"`
	AutoMatch     *bool                 `json:"auto_match"`
}

type CategorizeRequest struct {
	CategoryAccountID string `json:"category_account_id" binding:"required"`
}

type BulkCategorizeRequest struct {
	EntryIDs          []string `json:"entry_ids" binding:"required,min=1"`
	CategoryAccountID string   `json:"category_account_id" binding:"required"`
}

// PreviewStatement godoc
// @Summary Preview an uploaded statement CSV
// @Description Parse headers and sample rows, detect the bank format and suggest a column mapping
// @Tags reconciliation
// @Accept multipart/form-data
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param file formData file true "Statement CSV"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/statement-preview [post]
func (h *ReconciliationHandler) PreviewStatement(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing statement file", "Upload the CSV in the 'file' form field")
		return
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		response.BadRequest(c, "Unsupported file type", "Only .csv statement exports can be imported")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Failed to read uploaded file", err.Error())
		return
	}
	defer file.Close()

	preview, err := h.service.Preview(c.Request.Context(), scope, file)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("file_name", fileHeader.Filename).Error("Statement preview failed")
		response.BadRequest(c, "Failed to preview statement", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Statement previewed successfully", preview)
}

// ImportStatement godoc
// @Summary Import a bank statement
// @Description Send raw CSV content with a bank name or column mapping to the accounting backend
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param request body ImportStatementRequest true "Import request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/import-statement [post]
func (h *ReconciliationHandler) ImportStatement(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	var req ImportStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	// The workflow always asks the backend to auto-match unless the caller
	// explicitly opts out.
	autoMatch := true
	if req.AutoMatch != nil {
		autoMatch = *req.AutoMatch
	}

	outcome, err := h.service.Import(c.Request.Context(), scope, c.Param("bank_account_id"), domain.ImportRequest{
		Content:       req.Content,
		FileName:      req.FileName,
		BankName:      req.BankName,
		ColumnMapping: req.ColumnMapping,
		AutoMatch:     autoMatch,
	})
	if err != nil {
		respondError(c, err, "Failed to import statement")
		return
	}

	response.Success(c, http.StatusOK, "Statement imported successfully", outcome)
}

// AutoMatch godoc
// @Summary Auto-match pending statement entries
// @Tags reconciliation
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Success 200 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/auto-match-statement [post]
func (h *ReconciliationHandler) AutoMatch(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	outcome, err := h.service.AutoMatch(c.Request.Context(), scope, c.Param("bank_account_id"))
	if err != nil {
		respondError(c, err, "Failed to auto-match statement")
		return
	}

	response.Success(c, http.StatusOK, "Auto-match completed", outcome)
}

// ListEntries godoc
// @Summary List statement entries
// @Description List statement entries with their available triage actions, optionally filtered by status
// @Tags reconciliation
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param status query string false "Entry status filter" Enums(pending, matched, unmatched, disputed)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/statement-entries [get]
func (h *ReconciliationHandler) ListEntries(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	status, ok := entryStatusParam(c)
	if !ok {
		return
	}

	entries, err := h.service.Entries(c.Request.Context(), scope, c.Param("bank_account_id"), status)
	if err != nil {
		respondError(c, err, "Failed to load statement entries")
		return
	}

	response.Success(c, http.StatusOK, "Statement entries retrieved successfully", entries)
}

// Summary godoc
// @Summary Get the reconciliation summary
// @Tags reconciliation
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Success 200 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/reconciliation-summary [get]
func (h *ReconciliationHandler) Summary(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), scope, c.Param("bank_account_id"))
	if err != nil {
		respondError(c, err, "Failed to load reconciliation summary")
		return
	}

	response.Success(c, http.StatusOK, "Reconciliation summary retrieved successfully", summary)
}

// Categorize godoc
// @Summary Categorize a statement entry
// @Description Book the entry against a ledger account and return the refreshed triage state
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param entry_id path string true "Statement entry ID"
// @Param request body CategorizeRequest true "Categorization target"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/statement-entries/{entry_id}/create-transaction [post]
func (h *ReconciliationHandler) Categorize(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	state, err := h.service.Categorize(c.Request.Context(), scope, c.Param("bank_account_id"), c.Param("entry_id"), req.CategoryAccountID)
	if err != nil {
		respondError(c, err, "Failed to categorize entry")
		return
	}

	response.Success(c, http.StatusOK, "Entry categorized successfully", state)
}

// BulkCategorize godoc
// @Summary Categorize several statement entries
// @Description Sequential best-effort batch; failed entries are reported, successes are kept
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param request body BulkCategorizeRequest true "Entries and categorization target"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/statement-entries/bulk-create-transactions [post]
func (h *ReconciliationHandler) BulkCategorize(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	var req BulkCategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	result, err := h.service.BulkCategorize(c.Request.Context(), scope, c.Param("bank_account_id"), req.EntryIDs, req.CategoryAccountID)
	if err != nil {
		respondError(c, err, "Failed to categorize entries")
		return
	}

	response.Success(c, http.StatusOK, "Bulk categorize completed", result)
}

// MarkAsCharges godoc
// @Summary Book a statement entry as bank charges or interest
// @Description When charge_type is omitted it is inferred from the sign of the entry amount
// @Tags reconciliation
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param entry_id path string true "Statement entry ID"
// @Param charge_type query string false "Charge type" Enums(bank_charges, interest_received)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/statement-entries/{entry_id}/mark-as-charges [post]
func (h *ReconciliationHandler) MarkAsCharges(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	chargeType := domain.ChargeType(c.Query("charge_type"))
	switch chargeType {
	case "", domain.ChargeBankCharges, domain.ChargeInterestReceived:
	default:
		response.BadRequest(c, "Invalid charge_type", "Use bank_charges or interest_received")
		return
	}

	state, err := h.service.MarkAsCharges(c.Request.Context(), scope, c.Param("bank_account_id"), c.Param("entry_id"), chargeType)
	if err != nil {
		respondError(c, err, "Failed to mark entry as charges")
		return
	}

	response.Success(c, http.StatusOK, "Entry marked as charges", state)
}

// Unmatch godoc
// @Summary Unmatch a statement entry
// @Description Return a matched entry to the pending state and refresh the triage state
// @Tags reconciliation
// @Produce json
// @Param company_id path string true "Company ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param entry_id path string true "Statement entry ID"
// @Success 200 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts/{bank_account_id}/statement-entries/{entry_id}/unmatch [post]
func (h *ReconciliationHandler) Unmatch(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	state, err := h.service.Unmatch(c.Request.Context(), scope, c.Param("bank_account_id"), c.Param("entry_id"))
	if err != nil {
		respondError(c, err, "Failed to unmatch entry")
		return
	}

	response.Success(c, http.StatusOK, "Entry unmatched successfully", state)
}

func entryStatusParam(c *gin.Context) (domain.EntryStatus, bool) {
	status := domain.EntryStatus(c.Query("status"))
	switch status {
	case "", domain.StatusPending, domain.StatusMatched, domain.StatusUnmatched, domain.StatusDisputed:
		return status, true
	default:
		response.BadRequest(c, "Invalid status filter", "Use pending, matched, unmatched or disputed")
		return "", false
	}
}
