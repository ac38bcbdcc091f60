package holiday_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leaveai/internal/holiday"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeHolidayService struct {
	importFn func(ctx context.Context, companyID, filename string, r io.Reader) (holiday.ImportResult, error)
	listFn   func(ctx context.Context, companyID string, year int) ([]holiday.HolidayResponse, error)
}

func (f *fakeHolidayService) Import(ctx context.Context, companyID, filename string, r io.Reader) (holiday.ImportResult, error) {
	return f.importFn(ctx, companyID, filename, r)
}

func (f *fakeHolidayService) ListByYear(ctx context.Context, companyID string, year int) ([]holiday.HolidayResponse, error) {
	return f.listFn(ctx, companyID, year)
}

func TestHandler_Import(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "feed.ics")
	_, _ = part.Write([]byte(sampleICS))
	_ = mw.Close()

	svc := &fakeHolidayService{
		importFn: func(_ context.Context, companyID, filename string, r io.Reader) (holiday.ImportResult, error) {
			assert.Equal(t, "c-1", companyID)
			assert.Equal(t, "feed.ics", filename)
			raw, _ := io.ReadAll(r)
			assert.Equal(t, sampleICS, string(raw))
			return holiday.ImportResult{Format: holiday.FormatICS, Imported: 3}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/holidays/import", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	c.Set("company_id", "c-1")

	holiday.NewHandler(svc).Import(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"imported":3`)
}

func TestHandler_Import_MissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/holidays/import", nil)

	holiday.NewHandler(&fakeHolidayService{}).Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("year query", func(t *testing.T) {
		svc := &fakeHolidayService{
			listFn: func(_ context.Context, _ string, year int) ([]holiday.HolidayResponse, error) {
				assert.Equal(t, 2027, year)
				return []holiday.HolidayResponse{{Name: "New Year", Date: "2027-01-01"}}, nil
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/holidays?year=2027", nil)

		holiday.NewHandler(svc).List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2027-01-01")
	})

	t.Run("bad year", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/holidays?year=abc", nil)

		holiday.NewHandler(&fakeHolidayService{}).List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
