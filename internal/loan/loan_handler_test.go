package loan_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-farmbook/internal/loan"
	loanerrors "go-farmbook/internal/loan/errors"
	loanMock "go-farmbook/internal/loan/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLoanRouter(t *testing.T) (*gin.Engine, *loanMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := loanMock.NewMockService(gomock.NewController(t))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("farm_id", "farm-1")
		c.Next()
	})
	loan.RegisterRoutes(r.Group("/api/v1"), loan.NewHandler(svc))
	return r, svc
}

func TestLoanHandler_AddPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := newLoanRouter(t)
		svc.EXPECT().
			AddPayment(gomock.Any(), "farm-1", "l-1", loan.AddPaymentRequest{Amount: 250, PaymentDate: "2026-02-01"}).
			Return(loan.LoanResponse{ID: "l-1", RemainingBalance: 750, Status: loan.StatusActive}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/l-1/payments", strings.NewReader(`{"amount":250,"payment_date":"2026-02-01"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"remaining_balance":750`)
	})

	t.Run("zero amount fails binding", func(t *testing.T) {
		r, _ := newLoanRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/l-1/payments", strings.NewReader(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoanHandler_Delete_NotFound(t *testing.T) {
	r, svc := newLoanRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "farm-1", "l-404").Return(loanerrors.ErrLoanNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/loans/l-404", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Loan not found")
}
