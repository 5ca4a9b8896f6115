package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"vhc_service/internal/adapter/http/handlers/mocks"
	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
	"vhc_service/internal/domain/workflow"
	"vhc_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func healthCheckRouter(h *HealthCheckHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/health-checks", h.CreateHealthCheck)
	r.GET("/v1/health-checks/:id", h.GetHealthCheck)
	r.GET("/v1/health-checks/:id/quote", h.GetQuote)
	r.GET("/v1/health-checks/:id/quote/export", h.ExportQuote)
	r.GET("/v1/health-checks/:id/workflow-status", h.GetWorkflowStatus)
	r.POST("/v1/health-checks/:id/send", h.SendHealthCheck)
	r.PATCH("/v1/health-checks/:id/status", h.UpdateStatus)
	return r
}

func TestHealthCheckHandler_CreateHealthCheck(t *testing.T) {
	t.Run("missing registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHealthCheckUseCase(ctrl)
		r := healthCheckRouter(NewHealthCheckHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/health-checks", `{"customer_name":"Ann"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Details["VehicleRegistration"] != "required" {
			t.Fatalf("expected field detail, got %+v", body.Details)
		}
	})

	t.Run("invalid mobile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHealthCheckUseCase(ctrl)
		r := healthCheckRouter(NewHealthCheckHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.HealthCheck{}, usecase.ErrInvalidCustomerMobile)

		w := doJSON(r, http.MethodPost, "/v1/health-checks", `{"vehicle_registration":"AB12 CDE","customer_mobile":"12"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "INVALID_CUSTOMER_MOBILE" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHealthCheckUseCase(ctrl)
		r := healthCheckRouter(NewHealthCheckHandler(uc))

		uc.EXPECT().Create(gomock.Any(), usecase.CreateHealthCheckInput{
			VehicleRegistration: "AB12 CDE",
			CustomerName:        "Ann",
			CustomerMobile:      "07700 900123",
		}).Return(entities.HealthCheck{ID: "hc-1", VehicleRegistration: "AB12 CDE", Status: entities.HealthCheckStatusCreated}, nil)

		w := doJSON(r, http.MethodPost, "/v1/health-checks", `{"vehicle_registration":"AB12 CDE","customer_name":"Ann","customer_mobile":"07700 900123"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "hc-1" || body["status"] != "created" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestHealthCheckHandler_GetHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHealthCheckUseCase(ctrl)
	r := healthCheckRouter(NewHealthCheckHandler(uc))

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.HealthCheck{}, usecase.ErrHealthCheckNotFound)

	w := doJSON(r, http.MethodGet, "/v1/health-checks/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHealthCheckHandler_GetQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHealthCheckUseCase(ctrl)
	r := healthCheckRouter(NewHealthCheckHandler(uc))

	uc.EXPECT().GetQuote(gomock.Any(), "hc-1").Return(pricing.QuoteSummary{
		VATRate:         decimal.RequireFromString("0.2"),
		Subtotal:        decimal.RequireFromString("100"),
		VATAmount:       decimal.RequireFromString("20"),
		TotalIncVAT:     decimal.RequireFromString("120"),
		AuthorisedTotal: decimal.RequireFromString("120"),
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/health-checks/hc-1/quote", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["health_check_id"] != "hc-1" || body["total_inc_vat"] != "120.00" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestHealthCheckHandler_ExportQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHealthCheckUseCase(ctrl)
	r := healthCheckRouter(NewHealthCheckHandler(uc))

	uc.EXPECT().ExportQuote(gomock.Any(), "hc-1").Return([]byte("xlsx"), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil)

	w := doJSON(r, http.MethodGet, "/v1/health-checks/hc-1/quote/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="quote-hc-1.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if w.Body.String() != "xlsx" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestHealthCheckHandler_GetWorkflowStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHealthCheckUseCase(ctrl)
	r := healthCheckRouter(NewHealthCheckHandler(uc))

	uc.EXPECT().GetWorkflowStatus(gomock.Any(), "hc-1").Return(workflow.WorkflowStatus{
		Labour:        workflow.BadgeComplete,
		Parts:         workflow.BadgeInProgress,
		Authorization: workflow.BadgePending,
		Sent:          workflow.BadgePending,
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/health-checks/hc-1/workflow-status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["labour"] != "complete" || body["parts"] != "in_progress" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestHealthCheckHandler_SendHealthCheck(t *testing.T) {
	cases := []struct {
		name string
		hc   entities.HealthCheck
		err  error
		code int
	}{
		{name: "sent", hc: entities.HealthCheck{ID: "hc-1", Status: entities.HealthCheckStatusSent}, code: http.StatusOK},
		{name: "wrong status", err: entities.ErrInvalidStatusTransition, code: http.StatusConflict},
		{name: "locked", err: usecase.ErrHealthCheckLocked, code: http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIHealthCheckUseCase(ctrl)
			r := healthCheckRouter(NewHealthCheckHandler(uc))

			if tc.hc.ID != "" {
				now := time.Now().UTC()
				tc.hc.SentAt = &now
			}
			uc.EXPECT().Send(gomock.Any(), "hc-1").Return(tc.hc, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/health-checks/hc-1/send", "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestHealthCheckHandler_UpdateStatus(t *testing.T) {
	t.Run("needs action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHealthCheckUseCase(ctrl)
		r := healthCheckRouter(NewHealthCheckHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "hc-1", entities.HealthCheckStatusAuthorized).Return(entities.HealthCheck{}, usecase.ErrStatusNeedsAction)

		w := doJSON(r, http.MethodPatch, "/v1/health-checks/hc-1/status", `{"status":"authorized"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("moved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHealthCheckUseCase(ctrl)
		r := healthCheckRouter(NewHealthCheckHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "hc-1", entities.HealthCheckStatusInProgress).
			Return(entities.HealthCheck{ID: "hc-1", Status: entities.HealthCheckStatusInProgress}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/health-checks/hc-1/status", `{"status":"in_progress"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHealthCheckUseCase(ctrl)
		r := healthCheckRouter(NewHealthCheckHandler(uc))

		w := doJSON(r, http.MethodPatch, "/v1/health-checks/hc-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
