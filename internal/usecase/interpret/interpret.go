// Package interpret runs the payment-instruction pipeline: tokenize, parse,
// resolve accounts, validate, execute. Each stage short-circuits the rest on
// failure, and every failure carries a response-shaped context describing
// what was known at that point.
package interpret

import (
	"context"

	"github.com/dt-gamer/payment-instruction-service/internal/domain/entity"
	"github.com/dt-gamer/payment-instruction-service/internal/domain/instruction"
)

// Request is one self-contained interpretation: the full account list and
// the raw instruction string. Requests share no state with each other.
type Request struct {
	Accounts    []*entity.Account
	Instruction string
}

type UseCase struct {
	clock Clock
}

func NewUseCase(clock Clock) *UseCase {
	if clock == nil {
		clock = SystemClock()
	}
	return &UseCase{clock: clock}
}

// Execute interprets a single instruction against the request's accounts.
// On failure it returns a *instruction.Error whose Context field holds the
// partially populated result; no balance is ever mutated on a failure path.
func (uc *UseCase) Execute(_ context.Context, req Request) (*Result, error) {
	tokens := instruction.Tokenize(req.Instruction)

	parsed, perr := instruction.Parse(tokens)
	if perr != nil {
		return nil, perr.WithContext(buildErrorContext(perr, nil, nil))
	}

	involved, rerr := resolveAccounts(req.Accounts, parsed)
	if rerr != nil {
		return nil, rerr.WithContext(buildErrorContext(rerr, parsed, nil))
	}

	validated, verr := validate(parsed, involved)
	if verr != nil {
		return nil, verr.WithContext(buildErrorContext(verr, parsed, involved))
	}

	result, eerr := uc.executeInstruction(validated, involved)
	if eerr != nil {
		return nil, eerr.WithContext(buildErrorContext(eerr, parsed, involved))
	}

	return result, nil
}
