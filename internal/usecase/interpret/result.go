package interpret

import (
	"github.com/dt-gamer/payment-instruction-service/internal/domain/entity"
	"github.com/dt-gamer/payment-instruction-service/internal/domain/instruction"
)

const (
	StatusSuccessful = "successful"
	StatusPending    = "pending"
	StatusFailed     = "failed"
)

// AccountState reports one involved account before and after execution.
// On pending and failure paths Balance always equals BalanceBefore.
type AccountState struct {
	ID            string `json:"id"`
	Balance       int64  `json:"balance"`
	BalanceBefore int64  `json:"balance_before"`
	Currency      string `json:"currency"`
}

// Result is the response-shaped outcome of interpreting one instruction.
// The same shape doubles as the error context: on failure paths the pointer
// fields hold whatever the pipeline had produced before the failing stage,
// and are null otherwise.
type Result struct {
	Type          *string                `json:"type"`
	Amount        *float64               `json:"amount"`
	Currency      *string                `json:"currency"`
	DebitAccount  *string                `json:"debit_account"`
	CreditAccount *string                `json:"credit_account"`
	ExecuteBy     *string                `json:"execute_by"`
	Status        string                 `json:"status"`
	StatusReason  string                 `json:"status_reason"`
	StatusCode    instruction.StatusCode `json:"status_code"`
	Accounts      []AccountState         `json:"accounts"`
}

// buildErrorContext assembles the context attached to every failure from
// whatever was known at the failure point. Syntax errors predate any
// structured instruction data, so they always yield an all-null context
// with an empty account list; no failure path ever reports a mutated
// balance.
func buildErrorContext(ierr *instruction.Error, parsed *instruction.Parsed, involved []*entity.Account) *Result {
	ctx := &Result{
		Status:       StatusFailed,
		StatusReason: ierr.Message,
		StatusCode:   ierr.Code,
		Accounts:     []AccountState{},
	}

	if ierr.Code == instruction.StatusMissingKeyword || ierr.Code == instruction.StatusMalformed {
		return ctx
	}

	if parsed != nil {
		typ := string(parsed.Type)
		ctx.Type = &typ
		ctx.Currency = &parsed.Currency
		ctx.DebitAccount = &parsed.DebitAccountID
		ctx.CreditAccount = &parsed.CreditAccountID
		if parsed.Amount != nil {
			amount := parsed.Amount.InexactFloat64()
			ctx.Amount = &amount
		}
		if parsed.Date != "" {
			ctx.ExecuteBy = &parsed.Date
		}
	}

	for _, a := range involved {
		ctx.Accounts = append(ctx.Accounts, AccountState{
			ID:            a.ID(),
			Balance:       a.Balance(),
			BalanceBefore: a.Balance(),
			Currency:      a.Currency(),
		})
	}

	return ctx
}
