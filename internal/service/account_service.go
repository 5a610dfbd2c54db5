package service

import (
	"context"
	"sort"

	"recon-gateway/internal/domain"
	"recon-gateway/internal/upstream"
)

// AccountService serves the account pickers of the reconciliation screens.
type AccountService interface {
	BankAccounts(ctx context.Context, scope upstream.Scope) ([]domain.BankAccount, error)
	AccountsGrouped(ctx context.Context, scope upstream.Scope) ([]domain.AccountGroup, error)
}

type accountService struct {
	backend upstream.Client
}

func NewAccountService(backend upstream.Client) AccountService {
	return &accountService{backend: backend}
}

func (s *accountService) BankAccounts(ctx context.Context, scope upstream.Scope) ([]domain.BankAccount, error) {
	return s.backend.ListBankAccounts(ctx, scope)
}

// AccountsGrouped fetches ledger accounts and groups them by account type
// for select rendering. This is stateless recomputation of the last fetched
// snapshot; nothing is cached.
func (s *accountService) AccountsGrouped(ctx context.Context, scope upstream.Scope) ([]domain.AccountGroup, error) {
	accounts, err := s.backend.ListAccounts(ctx, scope)
	if err != nil {
		return nil, err
	}
	return GroupAccounts(accounts), nil
}

// GroupAccounts groups accounts by type, with types and accounts within each
// type in stable sorted order.
func GroupAccounts(accounts []domain.Account) []domain.AccountGroup {
	byType := make(map[string][]domain.Account)
	for _, account := range accounts {
		byType[account.AccountType] = append(byType[account.AccountType], account)
	}

	types := make([]string, 0, len(byType))
	for accountType := range byType {
		types = append(types, accountType)
	}
	sort.Strings(types)

	groups := make([]domain.AccountGroup, 0, len(types))
	for _, accountType := range types {
		group := byType[accountType]
		sort.Slice(group, func(i, j int) bool { return group[i].Code < group[j].Code })
		groups = append(groups, domain.AccountGroup{AccountType: accountType, Accounts: group})
	}
	return groups
}
