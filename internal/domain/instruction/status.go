package instruction

// StatusCode classifies the outcome of interpreting an instruction.
type StatusCode string

const (
	StatusTransactionSuccessful StatusCode = "AP00"
	StatusTransactionPending    StatusCode = "AP02"
	StatusInvalidAmount         StatusCode = "AM01"
	StatusCurrencyMismatch      StatusCode = "CU01"
	StatusUnsupportedCurrency   StatusCode = "CU02"
	StatusInsufficientFunds     StatusCode = "AC01"
	StatusSameAccount           StatusCode = "AC02"
	StatusAccountNotFound       StatusCode = "AC03"
	StatusInvalidAccountID      StatusCode = "AC04"
	StatusInvalidDateFormat     StatusCode = "DT01"
	StatusMissingKeyword        StatusCode = "SY01"
	StatusMalformed             StatusCode = "SY03"
)

// SupportedCurrencies are the currency codes the interpreter accepts,
// matched case-insensitively against instructions and accounts.
var SupportedCurrencies = map[string]struct{}{
	"NGN": {},
	"USD": {},
	"GBP": {},
	"GHS": {},
}

// Error is the structured failure raised by any pipeline stage. Context is
// the response-shaped object describing what was known at the failure point;
// it is attached by the pipeline, not by the stage that detected the failure.
type Error struct {
	Code    StatusCode
	Message string
	Context any
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code StatusCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithContext returns the error with its context attached.
func (e *Error) WithContext(ctx any) *Error {
	e.Context = ctx
	return e
}
