package instruction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDebit  TransactionType = "DEBIT"
	TypeCredit TransactionType = "CREDIT"
)

const (
	minTokens = 11 // KEYWORD <amount> <currency> plus the eight-token account phrase
	maxTokens = 13 // with the trailing ON <date> clause
)

// Parsed is the structured form of an instruction straight out of the
// grammar. Amount holds the exact value of the amount token, or nil when the
// token is not numeric at all; nothing here has been semantically validated.
type Parsed struct {
	Type            TransactionType
	Amount          *decimal.Decimal
	Currency        string
	DebitAccountID  string
	CreditAccountID string
	Date            string // raw ON-clause token, empty when absent
}

// Parse matches tokens against one of the two positional grammars:
//
//	DEBIT  <amount> <currency> FROM ACCOUNT <debit> FOR CREDIT TO ACCOUNT <credit> [ON <date>]
//	CREDIT <amount> <currency> TO ACCOUNT <credit> FOR DEBIT FROM ACCOUNT <debit> [ON <date>]
//
// Keywords match case-insensitively; amounts, account ids and dates are
// taken verbatim from their positions.
func Parse(tokens []string) (*Parsed, *Error) {
	if len(tokens) < minTokens || len(tokens) > maxTokens {
		return nil, NewError(StatusMalformed, fmt.Sprintf(
			"malformed instruction: expected %d or %d words, got %d",
			minTokens, maxTokens, len(tokens)))
	}

	var (
		p   *Parsed
		err *Error
	)

	switch {
	case keyword(tokens[0], "DEBIT"):
		p, err = parseDebitForm(tokens)
	case keyword(tokens[0], "CREDIT"):
		p, err = parseCreditForm(tokens)
	default:
		return nil, missingKeyword("DEBIT or CREDIT")
	}

	if err != nil {
		return nil, err
	}

	if len(tokens) > minTokens {
		if !keyword(tokens[len(tokens)-2], "ON") {
			return nil, missingKeyword("ON")
		}
		p.Date = tokens[len(tokens)-1]
	}

	return p, nil
}

func parseDebitForm(tokens []string) (*Parsed, *Error) {
	if !phraseAt(tokens, 3, "FROM", "ACCOUNT") {
		return nil, missingKeyword("FROM ACCOUNT")
	}
	if !phraseAt(tokens, 6, "FOR", "CREDIT", "TO", "ACCOUNT") {
		return nil, missingKeyword("FOR CREDIT TO ACCOUNT")
	}

	return &Parsed{
		Type:            TypeDebit,
		Amount:          parseAmount(tokens[1]),
		Currency:        tokens[2],
		DebitAccountID:  tokens[5],
		CreditAccountID: tokens[10],
	}, nil
}

func parseCreditForm(tokens []string) (*Parsed, *Error) {
	if !phraseAt(tokens, 3, "TO", "ACCOUNT") {
		return nil, missingKeyword("TO ACCOUNT")
	}
	if !phraseAt(tokens, 6, "FOR", "DEBIT", "FROM", "ACCOUNT") {
		return nil, missingKeyword("FOR DEBIT FROM ACCOUNT")
	}

	return &Parsed{
		Type:            TypeCredit,
		Amount:          parseAmount(tokens[1]),
		Currency:        tokens[2],
		CreditAccountID: tokens[5],
		DebitAccountID:  tokens[10],
	}, nil
}

// parseAmount captures the amount token exactly as written, fractional part
// and all; the semantic validator decides whether the value is acceptable.
func parseAmount(raw string) *decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func phraseAt(tokens []string, offset int, words ...string) bool {
	for i, w := range words {
		if !keyword(tokens[offset+i], w) {
			return false
		}
	}
	return true
}

func keyword(token, want string) bool {
	return strings.EqualFold(token, want)
}

func missingKeyword(phrase string) *Error {
	return NewError(StatusMissingKeyword,
		fmt.Sprintf("instruction is missing required keyword %q", phrase))
}
