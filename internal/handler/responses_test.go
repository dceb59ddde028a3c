package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/catalog"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"insufficient balance", domain.ErrInsufficientBalance, http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError},
		{"wrapped not found", fmt.Errorf("debit: %w", domain.ErrAccountNotFound), http.StatusNotFound, ErrMsgAccountNotFoundErr},
		{"item not owned", domain.ErrItemNotFound, http.StatusUnprocessableEntity, ErrMsgItemNotFoundError},
		{"chance", domain.ErrInvalidChanceRange, http.StatusBadRequest, ErrMsgChanceRangeError},
		{"empty pool", domain.ErrEmptyOutcomePool, http.StatusUnprocessableEntity, ErrMsgBadCaseError},
		{"target below source", domain.ErrTargetNotUpgrade, http.StatusUnprocessableEntity, ErrMsgTargetNotUpgradeErr},
		{"chance for another target", fmt.Errorf("upgrade: %w", domain.ErrTargetChanceMismatch), http.StatusUnprocessableEntity, ErrMsgTargetMismatchError},
		{"conflict", domain.ErrConcurrentConflict, http.StatusConflict, ErrMsgConflictRetryError},
		{"reused", domain.ErrRequestIDReused, http.StatusConflict, ErrMsgRequestIDReusedErr},
		{"closed", domain.ErrServiceClosed, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"persistence", fmt.Errorf("commit: %w: %w", domain.ErrPersistenceFailure, errors.New("pq: connection reset")),
			http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown error does not leak", errors.New("secret internal detail"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

// MockService mocks coordinator.Service for failure paths the memory store cannot produce
type MockService struct {
	mock.Mock
	coordinator.Service
}

func (m *MockService) Deposit(ctx context.Context, req coordinator.DepositRequest) (*domain.DepositOutcome, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepositOutcome), args.Error(1)
}

func (m *MockService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func TestHandleDeposit_ServiceFailures(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"shutting down", domain.ErrServiceClosed, http.StatusServiceUnavailable},
		{"lock timeout", fmt.Errorf("acquire: %w", domain.ErrConcurrentConflict), http.StatusConflict},
		{"store failure", fmt.Errorf("%w: boom", domain.ErrPersistenceFailure), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Deposit", mock.Anything, coordinator.DepositRequest{
				RequestID: "dep-1", AccountID: "alice", Amount: 50,
			}).Return(nil, tt.err)

			api := &testAPI{router: routes(NewHandlers(svc, cat))}
			w := api.do(t, http.MethodPost, "/accounts/alice/deposit", DepositRequest{RequestID: "dep-1", Amount: 50})

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "boom")
			svc.AssertExpectations(t)
		})
	}
}

func TestRespondJSON_SetsContentType(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusAccepted, SuccessResponse{Message: "ok"})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
