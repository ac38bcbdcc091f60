package holiday

import (
	"net/http"
	"strconv"
	"time"

	holidayerrors "go-leaveai/internal/holiday/errors"
	"go-leaveai/internal/shared/apperror"
	"go-leaveai/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 5 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("holiday.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.handler")
	}
	return &Handler{service: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Import(c *gin.Context) {
	companyID := c.GetString("company_id")

	fh, err := c.FormFile("file")
	if err != nil {
		writeServiceError(c, holidayerrors.ErrFileRequired)
		return
	}
	if fh.Size > maxUploadBytes {
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Holiday file exceeds 5MB", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeServiceError(c, holidayerrors.ErrFileRequired)
		return
	}
	defer f.Close()

	res, err := h.service.Import(c.Request.Context(), companyID, fh.Filename, f)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) List(c *gin.Context) {
	companyID := c.GetString("company_id")

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			writeServiceError(c, holidayerrors.ErrInvalidYear)
			return
		}
		year = y
	}

	res, err := h.service.ListByYear(c.Request.Context(), companyID, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
