package travel_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-farmbook/internal/finance"
	"go-farmbook/internal/travel"
	travelerrors "go-farmbook/internal/travel/errors"
	travelMock "go-farmbook/internal/travel/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTravelRouter(t *testing.T) (*gin.Engine, *travelMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := travelMock.NewMockService(gomock.NewController(t))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("farm_id", "farm-1")
		c.Next()
	})
	travel.RegisterRoutes(r.Group("/api/v1"), travel.NewHandler(svc))
	return r, svc
}

func TestTravelHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := newTravelRouter(t)
		svc.EXPECT().Create(gomock.Any(), "farm-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, req travel.TravelRequest) (travel.TravelResponse, error) {
				assert.Equal(t, "d1", req.DriverID)
				assert.Equal(t, 12.5, req.Tons)
				return travel.TravelResponse{ID: "t-1", Tons: req.Tons}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/travels", strings.NewReader(`{"driver":"d1","tons":12.5}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"tons":12.5`)
	})

	t.Run("negative bags fails binding", func(t *testing.T) {
		r, _ := newTravelRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/travels", strings.NewReader(`{"bags":-3}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTravelHandler_GetAll_BindsFilter(t *testing.T) {
	r, svc := newTravelRouter(t)
	svc.EXPECT().
		GetAll(gomock.Any(), "farm-1", finance.TravelFilter{GroupID: "g1", From: "2026-01-01"}).
		Return([]travel.TravelResponse{{ID: "t-1"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/travels?group_id=g1&from=2026-01-01", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"t-1"`)
}

func TestTravelHandler_GetByID_NotFound(t *testing.T) {
	r, svc := newTravelRouter(t)
	svc.EXPECT().GetByID(gomock.Any(), "farm-1", "t-404").Return(travel.TravelResponse{}, travelerrors.ErrTravelNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/travels/t-404", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Travel not found")
}
