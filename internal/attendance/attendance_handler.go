package attendance

import (
	"fmt"
	"net/http"
	"time"

	"go-fichaje/internal/domain"
	"go-fichaje/internal/middleware"
	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	poller  *Poller
	rbac    middleware.RBACService
	logger  *zap.Logger
}

// NewHandler builds the attendance handlers. rbacService decides who may read
// another employee's attendance (attendance:read_any).
func NewHandler(service Service, poller *Poller, rbacService middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, poller: poller, rbac: rbacService, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// targetEmployee returns the employee a read applies to. Reading someone
// else's attendance needs attendance:read_any.
func (h *Handler) targetEmployee(c *gin.Context, requested string) (string, error) {
	own := c.GetString("employee_id")
	if requested == "" || requested == own {
		if own == "" {
			return "", apperror.RequiredField("employee_id")
		}
		return own, nil
	}

	role := c.GetString("role")
	if role == "" || h.rbac == nil {
		return "", apperror.ErrForbidden
	}
	allowed, err := h.rbac.Enforce(domain.EnforceRequest{
		Role:     role,
		Resource: "attendance",
		Action:   "read_any",
	})
	if err != nil {
		return "", apperror.ErrInternal.WithCause(err)
	}
	if !allowed {
		return "", apperror.ErrForbidden
	}
	return requested, nil
}

func (h *Handler) GetState(c *gin.Context) {
	resp, err := h.service.QueryState(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// StreamState pushes the state as server-sent events until the client leaves.
func (h *Handler) StreamState(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	// Lift the server write timeout for this connection; unsupported writers keep it.
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Debug("stream keeps server write deadline", zap.Error(err))
	}

	err := h.poller.Run(c.Request.Context(), employeeID, func(state StateResponse, err error) bool {
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			c.SSEvent("error", gin.H{"code": httpErr.Code, "message": httpErr.Message})
		} else {
			c.SSEvent("state", state)
		}
		c.Writer.Flush()
		return true
	})
	h.logger.Debug("state stream closed", zap.String("employee_id", employeeID), zap.Error(err))
}

func (h *Handler) CheckIn(c *gin.Context) {
	resp, err := h.service.CheckIn(c.Request.Context(), c.GetString("employee_id"), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Check-in recorded", resp)
}

func (h *Handler) CheckOut(c *gin.Context) {
	resp, err := h.service.CheckOut(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	msg := "Check-out recorded"
	if resp.HoursLabel != "" {
		msg = fmt.Sprintf("Check-out recorded, %s worked", resp.HoursLabel)
	}
	response.SuccessWithMessage(c, http.StatusOK, msg, resp)
}

func (h *Handler) StartPause(c *gin.Context) {
	var req StartPauseRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	resp, err := h.service.StartPause(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, fmt.Sprintf("Pause (%s) started", resp.Kind), resp)
}

func (h *Handler) EndPause(c *gin.Context) {
	resp, err := h.service.EndPause(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Pause ended", resp)
}

func (h *Handler) History(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID, err := h.targetEmployee(c, req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.History(c.Request.Context(), employeeID, req.From, req.To)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID, err := h.targetEmployee(c, req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), employeeID, req.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportHistory(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID, err := h.targetEmployee(c, req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	buf, filename, err := h.service.ExportHistory(c.Request.Context(), employeeID, req.From, req.To)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
