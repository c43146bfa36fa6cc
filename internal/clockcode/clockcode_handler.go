package clockcode

import (
	"fmt"
	"net/http"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"
	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImportBytes = 10 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("clockcode.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clockcode.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("clock code request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListActive(c.Request.Context(), req.Search)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Code saved", resp)
}

func (h *Handler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Code deactivated", nil)
}

func (h *Handler) Resolve(c *gin.Context) {
	resp, err := h.service.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Import accepts a multipart "file" field holding an .xlsx or .csv sheet.
func (h *Handler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, clockcodeerrors.ErrImportFileRequired)
		return
	}

	file, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, clockcodeerrors.ErrImportUnreadable.WithCause(err))
		return
	}
	defer file.Close()

	rows, err := ParseImportFile(fh.Filename, file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.BulkImport(c.Request.Context(), c.GetString("user_id"), rows)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK,
		fmt.Sprintf("%d codes imported, %d errors", resp.Processed, resp.Errors), resp)
}
