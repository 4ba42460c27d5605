package interpret

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dt-gamer/payment-instruction-service/internal/domain/entity"
	"github.com/dt-gamer/payment-instruction-service/internal/domain/instruction"
)

// executeInstruction applies a validated instruction to the involved pair.
// Instructions dated strictly after the current UTC calendar day are
// classified pending and leave balances untouched; everything else executes
// immediately. Insufficient funds are checked against the current balance in
// both cases.
func (uc *UseCase) executeInstruction(v *Validated, involved []*entity.Account) (*Result, *instruction.Error) {
	debit := findByID(involved, v.DebitAccountID)
	credit := findByID(involved, v.CreditAccountID)

	if accountCurrency := strings.ToUpper(debit.Currency()); accountCurrency != v.Currency {
		return nil, instruction.NewError(instruction.StatusCurrencyMismatch,
			fmt.Sprintf("instruction currency %s does not match account currency %s",
				v.Currency, accountCurrency))
	}

	amount, representable := transferUnits(v.Amount)
	if !representable || debit.Balance() < amount {
		return nil, instruction.NewError(instruction.StatusInsufficientFunds,
			fmt.Sprintf("insufficient funds in account %s", debit.ID()))
	}

	debitBefore := debit.Balance()
	creditBefore := credit.Balance()

	pending := v.ExecuteBy != nil && v.ExecuteBy.After(uc.today())
	if !pending {
		if err := debit.Debit(amount); err != nil {
			return nil, mapEntityError(err, debit)
		}
		if err := credit.Credit(amount); err != nil {
			return nil, mapEntityError(err, credit)
		}
	}

	result := &Result{
		Status:       StatusSuccessful,
		StatusReason: "transaction executed successfully",
		StatusCode:   instruction.StatusTransactionSuccessful,
	}
	if pending {
		executeBy := v.ExecuteBy.Format(dateLayout)
		result.Status = StatusPending
		result.StatusReason = fmt.Sprintf("transaction scheduled for execution by %s", executeBy)
		result.StatusCode = instruction.StatusTransactionPending
		result.ExecuteBy = &executeBy
	}

	typ := string(v.Type)
	amountOut := float64(amount)
	result.Type = &typ
	result.Amount = &amountOut
	result.Currency = &v.Currency
	result.DebitAccount = &v.DebitAccountID
	result.CreditAccount = &v.CreditAccountID

	result.Accounts = []AccountState{}
	befores := map[string]int64{debit.ID(): debitBefore, credit.ID(): creditBefore}
	for _, a := range involved {
		result.Accounts = append(result.Accounts, AccountState{
			ID:            a.ID(),
			Balance:       a.Balance(),
			BalanceBefore: befores[a.ID()],
			Currency:      strings.ToUpper(a.Currency()),
		})
	}

	return result, nil
}

// transferUnits converts an exact positive-integer amount into whole balance
// units. Integers beyond int64 are not representable and can never be covered
// by a balance, so callers treat them as exceeding any balance.
func transferUnits(d decimal.Decimal) (int64, bool) {
	bi := d.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// today is the current UTC calendar day at midnight.
func (uc *UseCase) today() time.Time {
	now := uc.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func mapEntityError(err error, account *entity.Account) *instruction.Error {
	if errors.Is(err, entity.ErrInsufficientFunds) {
		return instruction.NewError(instruction.StatusInsufficientFunds,
			fmt.Sprintf("insufficient funds in account %s", account.ID()))
	}
	return instruction.NewError(instruction.StatusInvalidAmount,
		"amount must be a whole number greater than zero")
}
