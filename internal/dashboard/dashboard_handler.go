package dashboard

import (
	"net/http"

	"go-farmbook/internal/middleware"
	"go-farmbook/internal/shared/apperror"
	"go-farmbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context(), c.GetString(middleware.ContextFarmID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Weekly(c *gin.Context) {
	resp, err := h.service.Weekly(c.Request.Context(), c.GetString(middleware.ContextFarmID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Daily(c *gin.Context) {
	resp, err := h.service.Daily(c.Request.Context(), c.GetString(middleware.ContextFarmID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Distribution(c *gin.Context) {
	by := c.DefaultQuery("by", DistributionLand)
	resp, err := h.service.Distribution(c.Request.Context(), c.GetString(middleware.ContextFarmID), by)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Earnings(c *gin.Context) {
	var q EarningsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Earnings(c.Request.Context(), c.GetString(middleware.ContextFarmID), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(int64(len(resp)), 1, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) ExportEarnings(c *gin.Context) {
	var q EarningsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	data, err := h.service.ExportEarnings(c.Request.Context(), c.GetString(middleware.ContextFarmID), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="earnings.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) GroupEarnings(c *gin.Context) {
	resp, err := h.service.GroupEarnings(c.Request.Context(), c.GetString(middleware.ContextFarmID), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
