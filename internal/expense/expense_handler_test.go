package expense_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-farmbook/internal/expense"
	expenseerrors "go-farmbook/internal/expense/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeExpenseService struct {
	expense.Service
	createFn func(ctx context.Context, farmID string, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error)
	updateFn func(ctx context.Context, farmID, id string, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error)
}

func (f *fakeExpenseService) Create(ctx context.Context, farmID string, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	return f.createFn(ctx, farmID, req)
}

func (f *fakeExpenseService) Update(ctx context.Context, farmID, id string, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	return f.updateFn(ctx, farmID, id, req)
}

func newExpenseRouter(svc expense.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("farm_id", "farm-1")
		c.Next()
	})
	expense.RegisterRoutes(r.Group("/api/v1"), expense.NewHandler(svc))
	return r
}

func TestExpenseHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeExpenseService{createFn: func(ctx context.Context, farmID string, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
			assert.Equal(t, "farm-1", farmID)
			assert.Equal(t, "Fuel", req.Name)
			return expense.ExpenseResponse{ID: "e-1", Name: req.Name, Amount: req.Amount}, nil
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(`{"name":"Fuel","amount":900}`))
		req.Header.Set("Content-Type", "application/json")
		newExpenseRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":900`)
	})

	t.Run("missing name", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(`{"amount":900}`))
		req.Header.Set("Content-Type", "application/json")
		newExpenseRouter(&fakeExpenseService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExpenseHandler_Update_LoanManaged(t *testing.T) {
	svc := &fakeExpenseService{updateFn: func(ctx context.Context, farmID, id string, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
		return expense.ExpenseResponse{}, expenseerrors.ErrLoanManaged
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/expenses/e-1", strings.NewReader(`{"name":"Loan payment","amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	newExpenseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
