package instruction_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dt-gamer/payment-instruction-service/internal/domain/instruction"
)

func TestTokenize_SplitsOnOrdinarySpaces(t *testing.T) {
	tokens := instruction.Tokenize("DEBIT 500 USD")
	assert.Equal(t, []string{"DEBIT", "500", "USD"}, tokens)
}

func TestTokenize_NormalizesUnicodeWhitespace(t *testing.T) {
	tokens := instruction.Tokenize("DEBIT\t500\u00a0USD\nFROM\u2003ACCOUNT\u2028A\uFEFFB")
	assert.Equal(t, []string{"DEBIT", "500", "USD", "FROM", "ACCOUNT", "A", "B"}, tokens)
}

func TestTokenize_DiscardsEmptyTokens(t *testing.T) {
	tokens := instruction.Tokenize("  DEBIT   500 \r\n USD  ")
	assert.Equal(t, []string{"DEBIT", "500", "USD"}, tokens)
}

func TestTokenize_EmptyAndBlankInput(t *testing.T) {
	assert.Empty(t, instruction.Tokenize(""))
	assert.Empty(t, instruction.Tokenize(" \t\v\f\r\n "))
}

func TestTokenize_NextLineIsNotASeparator(t *testing.T) {
	tokens := instruction.Tokenize("DEBIT 500\u0085USD")
	assert.Equal(t, []string{"DEBIT", "500\u0085USD"}, tokens)
}

func TestTokenize_IdempotentOnNormalizedInput(t *testing.T) {
	once := instruction.Tokenize("DEBIT 500  USD FROM\tACCOUNT A FOR CREDIT TO ACCOUNT B")
	again := instruction.Tokenize(strings.Join(once, " "))
	assert.Equal(t, once, again)
}
