package interpret

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dt-gamer/payment-instruction-service/internal/domain/entity"
	"github.com/dt-gamer/payment-instruction-service/internal/domain/instruction"
)

const dateLayout = "2006-01-02"

// Validated is a semantically checked instruction: the amount is an exact
// positive whole number, the currency is supported and uppercased, and
// ExecuteBy is the requested calendar day at UTC midnight, or nil when none
// was given.
type Validated struct {
	Type            instruction.TransactionType
	Amount          decimal.Decimal
	Currency        string
	DebitAccountID  string
	CreditAccountID string
	ExecuteBy       *time.Time
}

// validate runs the semantic checks in a fixed order and stops at the first
// failure: account-id character set, distinct accounts, amount, currency
// support (instruction first, then each account), cross-account currency
// agreement, and finally the date clause when present.
func validate(parsed *instruction.Parsed, involved []*entity.Account) (*Validated, *instruction.Error) {
	for _, id := range []string{parsed.DebitAccountID, parsed.CreditAccountID} {
		if !validAccountID(id) {
			return nil, instruction.NewError(instruction.StatusInvalidAccountID,
				fmt.Sprintf("account id %s contains invalid characters", id))
		}
	}

	if parsed.DebitAccountID == parsed.CreditAccountID {
		return nil, instruction.NewError(instruction.StatusSameAccount,
			"debit and credit accounts must be different")
	}

	if parsed.Amount == nil || !parsed.Amount.IsInteger() || !parsed.Amount.IsPositive() {
		return nil, instruction.NewError(instruction.StatusInvalidAmount,
			"amount must be a whole number greater than zero")
	}

	currency := strings.ToUpper(parsed.Currency)
	if !supported(currency) {
		return nil, unsupportedCurrency(parsed.Currency)
	}
	for _, a := range involved {
		if !supported(strings.ToUpper(a.Currency())) {
			return nil, unsupportedCurrency(a.Currency())
		}
	}

	if len(involved) == 2 && !strings.EqualFold(involved[0].Currency(), involved[1].Currency()) {
		return nil, instruction.NewError(instruction.StatusCurrencyMismatch,
			fmt.Sprintf("accounts %s and %s hold different currencies",
				involved[0].ID(), involved[1].ID()))
	}

	v := &Validated{
		Type:            parsed.Type,
		Amount:          *parsed.Amount,
		Currency:        currency,
		DebitAccountID:  parsed.DebitAccountID,
		CreditAccountID: parsed.CreditAccountID,
	}

	if parsed.Date != "" {
		day, derr := parseDate(parsed.Date)
		if derr != nil {
			return nil, derr
		}
		v.ExecuteBy = &day
	}

	return v, nil
}

// validAccountID reports whether the id uses only ASCII letters, digits,
// hyphens, dots and at-signs.
func validAccountID(id string) bool {
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '.' || r == '@':
		default:
			return false
		}
	}
	return true
}

// parseDate accepts exactly YYYY-MM-DD; time.Parse enforces zero padding,
// month and day ranges, and leap years. The result is UTC midnight.
func parseDate(raw string) (time.Time, *instruction.Error) {
	if len(raw) != len(dateLayout) {
		return time.Time{}, invalidDate(raw)
	}
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, invalidDate(raw)
	}
	return day, nil
}

func supported(currency string) bool {
	_, ok := instruction.SupportedCurrencies[currency]
	return ok
}

func unsupportedCurrency(currency string) *instruction.Error {
	return instruction.NewError(instruction.StatusUnsupportedCurrency,
		fmt.Sprintf("currency %s is not supported", currency))
}

func invalidDate(raw string) *instruction.Error {
	return instruction.NewError(instruction.StatusInvalidDateFormat,
		fmt.Sprintf("invalid date %s, expected YYYY-MM-DD", raw))
}
