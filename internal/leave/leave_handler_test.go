package leave_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leaveai/internal/leave"
	leaveerrors "go-leaveai/internal/leave/errors"
	leaveMock "go-leaveai/internal/leave/mock"
	"go-leaveai/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLeaveRouter(svc leave.Service) *gin.Engine {
	return newLeaveRouterAs(svc, middleware.RoleEmployee)
}

func newLeaveRouterAs(svc leave.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Set("employee_id", "e-1")
		c.Set("role", role)
		c.Next()
	})
	h := leave.NewHandler(svc)
	r.GET("/leaves/working-days/preview", h.PreviewWorkingDays)
	r.GET("/leaves/:id", h.GetByID)
	r.GET("/leaves/:id/audit", h.GetAuditTrail)
	r.POST("/leaves/:id/process", h.Process)
	r.POST("/leaves/:id/approve", h.Approve)
	r.POST("/leaves/:id/reject", h.Reject)
	r.POST("/leaves/:id/cancel", h.Cancel)
	return r
}

func TestHandler_Process(t *testing.T) {
	cases := []struct {
		name    string
		outcome leave.Outcome
		status  int
	}{
		{"decided", leave.OutcomePendingReview, http.StatusOK},
		{"nothing to do", leave.OutcomeNoAction, http.StatusOK},
		{"missing", leave.OutcomeNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := leaveMock.NewMockService(ctrl)
			svc.EXPECT().Process(gomock.Any(), "c-1", "l-1").Return(tc.outcome, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/process", nil)
			newLeaveRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"outcome":"`+string(tc.outcome)+`"`)
		})
	}
}

func TestHandler_Approve(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), "c-1", "e-1", "l-1", "").
			Return(leave.LeaveResponse{ID: "l-1", Status: "APPROVED"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/approve", nil)
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
	})

	t.Run("with comments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), "c-1", "e-1", "l-1", "Get well soon").
			Return(leave.LeaveResponse{ID: "l-1", Status: "APPROVED"}, nil)

		body, _ := json.Marshal(leave.ApproveLeaveRequest{Comments: "Get well soon"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/approve", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), "c-1", "e-1", "l-1", "").
			Return(leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/approve", nil)
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, leaveerrors.ErrInvalidStatusTransition.HTTPStatus, w.Code)
	})
}

func TestHandler_Reject(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Reject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Reject(gomock.Any(), "c-1", "e-1", "l-1", "Quarter close").
			Return(leave.LeaveResponse{ID: "l-1", Status: "REJECTED"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", bytes.NewBufferString(`{"reason":"Quarter close"}`))
		req.Header.Set("Content-Type", "application/json")
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().Cancel(gomock.Any(), "c-1", "e-1", "l-1").
		Return(leave.LeaveResponse{}, leaveerrors.ErrNotLeaveOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/cancel", nil)
	newLeaveRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), "c-1", leave.Viewer{EmployeeID: "e-1"}, "l-1").Return(leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leaves/l-1", nil)
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("another employee's request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), "c-1", leave.Viewer{EmployeeID: "e-1"}, "l-2").Return(leave.LeaveResponse{}, leaveerrors.ErrNotLeaveOwner)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leaves/l-2", nil)
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("hr reads as reviewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), "c-1", leave.Viewer{EmployeeID: "e-1", Reviewer: true}, "l-2").Return(leave.LeaveResponse{ID: "l-2"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leaves/l-2", nil)
		newLeaveRouterAs(svc, middleware.RoleHRManager).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_GetAuditTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().GetAuditTrail(gomock.Any(), "c-1", leave.Viewer{EmployeeID: "e-1", Reviewer: true}, "l-1").Return([]leave.AuditEntryResponse{
		{ID: "a-1", Action: "Decision: APPROVED", ActorType: "SYSTEM", CreatedAt: "2026-03-02T09:00:00Z"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/leaves/l-1/audit", nil)
	newLeaveRouterAs(svc, middleware.RoleAdmin).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"Decision: APPROVED"`)
}

func TestHandler_PreviewWorkingDays(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leaves/working-days/preview?start_date=2026-03-13", nil)
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		want := leave.PreviewWorkingDaysRequest{StartDate: "2026-03-13", EndDate: "2026-03-18"}
		resp := leave.WorkingDaysPreviewResponse{StartDate: want.StartDate, EndDate: want.EndDate}
		resp.WorkingDays = 3
		svc.EXPECT().PreviewWorkingDays(gomock.Any(), "c-1", want).Return(resp, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leaves/working-days/preview?start_date=2026-03-13&end_date=2026-03-18", nil)
		newLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"working_days":3`)
	})
}
