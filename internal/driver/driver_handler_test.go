package driver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-farmbook/internal/driver"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDriverService struct {
	driver.Service
	GetAllFn        func(ctx context.Context, farmID string) ([]driver.DriverResponse, error)
	GetByEmployeeFn func(ctx context.Context, farmID, employeeID string) (driver.DriverResponse, error)
}

func (f *fakeDriverService) GetAll(ctx context.Context, farmID string) ([]driver.DriverResponse, error) {
	return f.GetAllFn(ctx, farmID)
}

func (f *fakeDriverService) GetByEmployee(ctx context.Context, farmID, employeeID string) (driver.DriverResponse, error) {
	return f.GetByEmployeeFn(ctx, farmID, employeeID)
}

func TestDriverHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("employee filter uses the single lookup", func(t *testing.T) {
		svc := &fakeDriverService{
			GetByEmployeeFn: func(ctx context.Context, farmID, employeeID string) (driver.DriverResponse, error) {
				assert.Equal(t, "emp-7", employeeID)
				return driver.DriverResponse{EmployeeID: employeeID}, nil
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/drivers?employee_id=emp-7", nil)

		driver.NewHandler(svc).GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"emp-7"`)
		assert.Contains(t, w.Body.String(), `"wage":0`)
	})

	t.Run("full list", func(t *testing.T) {
		svc := &fakeDriverService{
			GetAllFn: func(ctx context.Context, farmID string) ([]driver.DriverResponse, error) {
				return []driver.DriverResponse{{ID: "d1"}, {ID: "d2"}}, nil
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/drivers", nil)

		driver.NewHandler(svc).GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":2`)
	})
}
