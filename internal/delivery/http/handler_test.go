package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httpdelivery "github.com/dt-gamer/payment-instruction-service/internal/delivery/http"
	hmocks "github.com/dt-gamer/payment-instruction-service/internal/delivery/http/mocks"
	"github.com/dt-gamer/payment-instruction-service/internal/usecase/interpret"
	imocks "github.com/dt-gamer/payment-instruction-service/internal/usecase/interpret/mocks"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) (http.Handler, *hmocks.MockAuditRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)

	clock := imocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)).AnyTimes()

	recorder := hmocks.NewMockAuditRecorder(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := httpdelivery.NewHandler(interpret.NewUseCase(clock), recorder, logger)
	return httpdelivery.NewRouter(handler), recorder
}

func post(t *testing.T, srv http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/payment-instructions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHandlePaymentInstructions_Success(t *testing.T) {
	srv, recorder := newServer(t)
	recorder.EXPECT().Record(gomock.Any()).Times(1)

	rec := post(t, srv, `{
		"accounts": [
			{"id": "N90394", "balance": 1000, "currency": "USD"},
			{"id": "N9122", "balance": 500, "currency": "USD"}
		],
		"instruction": "DEBIT 500 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "successful", env.Status)
	assert.Equal(t, "Transaction executed successfully", env.Message)

	var result interpret.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "AP00", string(result.StatusCode))
	require.Len(t, result.Accounts, 2)
}

func TestHandlePaymentInstructions_Pending(t *testing.T) {
	srv, recorder := newServer(t)
	recorder.EXPECT().Record(gomock.Any()).Times(1)

	rec := post(t, srv, `{
		"accounts": [
			{"id": "acc-001", "balance": 1000, "currency": "NGN"},
			{"id": "acc-002", "balance": 500, "currency": "NGN"}
		],
		"instruction": "CREDIT 300 NGN TO ACCOUNT acc-002 FOR DEBIT FROM ACCOUNT acc-001 ON 2026-12-31"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "pending", env.Status)
	assert.Equal(t, "Transaction pending execution", env.Message)

	var result interpret.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "AP02", string(result.StatusCode))
	require.NotNil(t, result.ExecuteBy)
	assert.Equal(t, "2026-12-31", *result.ExecuteBy)
}

func TestHandlePaymentInstructions_InterpreterFailure(t *testing.T) {
	srv, recorder := newServer(t)
	recorder.EXPECT().Record(gomock.Any()).Times(1)

	rec := post(t, srv, `{
		"accounts": [
			{"id": "a", "balance": 100, "currency": "USD"},
			{"id": "b", "balance": 500, "currency": "USD"}
		],
		"instruction": "DEBIT 500 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "failed", env.Status)
	assert.Equal(t, "Transaction failed", env.Message)

	var result interpret.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "AC01", string(result.StatusCode))
	assert.Equal(t, "failed", result.Status)
}

func TestHandlePaymentInstructions_SyntaxFailureContext(t *testing.T) {
	srv, recorder := newServer(t)
	recorder.EXPECT().Record(gomock.Any()).Times(1)

	rec := post(t, srv, `{
		"accounts": [{"id": "b", "balance": 500, "currency": "USD"}],
		"instruction": "SEND 100 USD TO ACCOUNT b"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Nil(t, data["type"])
	assert.Equal(t, []any{}, data["accounts"])
	assert.Equal(t, "SY03", data["status_code"])
}

func TestHandlePaymentInstructions_InvalidJSON(t *testing.T) {
	srv, recorder := newServer(t)
	recorder.EXPECT().Record(gomock.Any()).Times(0)

	rec := post(t, srv, `{"accounts": [`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "failed", env.Status)
	assert.Equal(t, "invalid json body", env.Message)
}

func TestHandlePaymentInstructions_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing instruction",
			body: `{"accounts": [{"id": "a", "balance": 10, "currency": "USD"}]}`,
		},
		{
			name: "blank instruction",
			body: `{"accounts": [{"id": "a", "balance": 10, "currency": "USD"}], "instruction": "   "}`,
		},
		{
			name: "negative balance",
			body: `{"accounts": [{"id": "a", "balance": -10, "currency": "USD"}], "instruction": "DEBIT 1 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b"}`,
		},
		{
			name: "account without id",
			body: `{"accounts": [{"balance": 10, "currency": "USD"}], "instruction": "DEBIT 1 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b"}`,
		},
		{
			name: "missing accounts",
			body: `{"instruction": "DEBIT 1 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, recorder := newServer(t)
			recorder.EXPECT().Record(gomock.Any()).Times(0)

			rec := post(t, srv, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, "failed", env.Status)
			assert.Empty(t, env.Data)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
