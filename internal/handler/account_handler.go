package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recon-gateway/internal/service"
	"recon-gateway/pkg/response"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// ListBankAccounts godoc
// @Summary List company bank accounts
// @Tags accounts
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} response.Response
// @Router /api/v1/companies/{company_id}/bank-accounts [get]
func (h *AccountHandler) ListBankAccounts(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	accounts, err := h.service.BankAccounts(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err, "Failed to load bank accounts")
		return
	}

	response.Success(c, http.StatusOK, "Bank accounts retrieved successfully", accounts)
}

// ListAccounts godoc
// @Summary List ledger accounts grouped by type
// @Description Categorization targets for the entry triage screens
// @Tags accounts
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} response.Response
// @Router /api/v1/companies/{company_id}/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	groups, err := h.service.AccountsGrouped(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err, "Failed to load accounts")
		return
	}

	response.Success(c, http.StatusOK, "Accounts retrieved successfully", groups)
}
