package interpret

import (
	"fmt"

	"github.com/dt-gamer/payment-instruction-service/internal/domain/entity"
	"github.com/dt-gamer/payment-instruction-service/internal/domain/instruction"
)

// resolveAccounts narrows the supplied account list down to the two accounts
// the instruction names. The result keeps the list's original order, so
// later stages must look accounts up by id, never by position.
func resolveAccounts(accounts []*entity.Account, parsed *instruction.Parsed) ([]*entity.Account, *instruction.Error) {
	var involved []*entity.Account
	for _, a := range accounts {
		if a.ID() == parsed.DebitAccountID || a.ID() == parsed.CreditAccountID {
			involved = append(involved, a)
		}
	}

	if findByID(involved, parsed.DebitAccountID) == nil {
		return nil, notFound(parsed.DebitAccountID)
	}
	if findByID(involved, parsed.CreditAccountID) == nil {
		return nil, notFound(parsed.CreditAccountID)
	}

	return involved, nil
}

func findByID(accounts []*entity.Account, id string) *entity.Account {
	for _, a := range accounts {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

func notFound(id string) *instruction.Error {
	return instruction.NewError(instruction.StatusAccountNotFound,
		fmt.Sprintf("account %s not found in the supplied accounts", id))
}
