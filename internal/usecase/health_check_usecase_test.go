package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
	"vhc_service/internal/domain/workflow"
	mock_interfaces "vhc_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type healthCheckMocks struct {
	repo      *mock_interfaces.MockIHealthCheckRepository
	items     *mock_interfaces.MockIRepairItemRepository
	exporter  *mock_interfaces.MockIQuoteExporter
	phones    *mock_interfaces.MockIPhoneNormalizer
	publisher *mock_interfaces.MockIEventPublisher
}

func newHealthCheckUseCase(ctrl *gomock.Controller) (*HealthCheckUseCase, healthCheckMocks) {
	m := healthCheckMocks{
		repo:      mock_interfaces.NewMockIHealthCheckRepository(ctrl),
		items:     mock_interfaces.NewMockIRepairItemRepository(ctrl),
		exporter:  mock_interfaces.NewMockIQuoteExporter(ctrl),
		phones:    mock_interfaces.NewMockIPhoneNormalizer(ctrl),
		publisher: mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	uc := NewHealthCheckUseCase(m.repo, m.items, pricing.NewCalculator(dec("20")), m.exporter, m.phones, m.publisher)
	uc.now = fixedClock
	return uc, m
}

func TestHealthCheckUseCase_Create(t *testing.T) {
	t.Run("missing registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newHealthCheckUseCase(ctrl)

		_, err := uc.Create(context.Background(), CreateHealthCheckInput{VehicleRegistration: "  "})
		if !errors.Is(err, ErrInvalidHealthCheckData) {
			t.Fatalf("expected ErrInvalidHealthCheckData, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, hc entities.HealthCheck) (entities.HealthCheck, error) { return hc, nil })

		got, err := uc.Create(context.Background(), CreateHealthCheckInput{VehicleRegistration: " ab12 cde ", CustomerName: " Sam "})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID == "" || got.VehicleRegistration != "AB12 CDE" || got.CustomerName != "Sam" {
			t.Fatalf("unexpected health check: %+v", got)
		}
		if got.Status != entities.HealthCheckStatusCreated || !got.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected status or timestamps: %+v", got)
		}
	})
}

func TestHealthCheckUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newHealthCheckUseCase(ctrl)

		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidHealthCheckID) {
			t.Fatalf("expected ErrInvalidHealthCheckID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(entities.HealthCheck{}, nil)

		_, err := uc.GetByID(context.Background(), "hc-1")
		if !errors.Is(err, ErrHealthCheckNotFound) {
			t.Fatalf("expected ErrHealthCheckNotFound, got %v", err)
		}
	})
}

func TestHealthCheckUseCase_GetQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newHealthCheckUseCase(ctrl)
	m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusReadyToSend), nil)
	deleted := redItem("c", "999")
	deleted.OutcomeStatus = entities.OutcomeDeleted
	m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{redItem("a", "100"), redItem("b", "50"), deleted}, nil)

	q, err := uc.GetQuote(context.Background(), "hc-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(q.Items) != 2 || !q.TotalIncVAT.Equal(dec("180")) || !q.PendingTotal.Equal(dec("180")) {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestHealthCheckUseCase_GetQuote_OrphanChild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newHealthCheckUseCase(ctrl)
	orphan := redItem("a", "100")
	orphan.ParentRepairItemID = "missing"
	m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusReadyToSend), nil)
	m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{orphan}, nil)

	_, err := uc.GetQuote(context.Background(), "hc-1")
	if !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHealthCheckUseCase_GetWorkflowStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newHealthCheckUseCase(ctrl)

	sentAt := fixedNow
	hc := healthCheck("hc-1", entities.HealthCheckStatusSent)
	hc.SentAt = &sentAt
	item := decided(redItem("a", "100"), entities.OutcomeAuthorised)
	item.LabourStatus = entities.WorkStatusComplete
	item.NoPartsRequired = true
	m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(hc, nil)
	m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{item}, nil)

	ws, err := uc.GetWorkflowStatus(context.Background(), "hc-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := workflow.WorkflowStatus{
		Labour:        workflow.BadgeComplete,
		Parts:         workflow.BadgeComplete,
		Authorization: workflow.BadgeComplete,
		Sent:          workflow.BadgeComplete,
	}
	if ws != want {
		t.Fatalf("expected %+v, got %+v", want, ws)
	}
}

func TestHealthCheckUseCase_ExportQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newHealthCheckUseCase(ctrl)
	m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusSent), nil)
	m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{redItem("a", "100")}, nil)
	m.exporter.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
		func(hc entities.HealthCheck, q pricing.QuoteSummary) ([]byte, error) {
			if hc.ID != "hc-1" || !q.TotalIncVAT.Equal(dec("120")) {
				t.Fatalf("unexpected export input: %+v %+v", hc, q)
			}
			return []byte("xlsx"), nil
		})
	m.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	data, ct, err := uc.ExportQuote(context.Background(), "hc-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(data) != "xlsx" || ct == "" {
		t.Fatalf("unexpected export result %q %q", data, ct)
	}
}

func TestHealthCheckUseCase_Send(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)

		hc := healthCheck("hc-1", entities.HealthCheckStatusReadyToSend)
		hc.CustomerMobile = "07700 900123"
		m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(hc, nil)
		m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{redItem("a", "100")}, nil)
		m.phones.EXPECT().Normalize("07700 900123").Return("+447700900123", nil)
		m.repo.EXPECT().MarkSent(gomock.Any(), "hc-1", fixedNow, "+447700900123").
			DoAndReturn(func(_ context.Context, id string, sentAt time.Time, mobile string) (entities.HealthCheck, error) {
				out := hc
				out.Status = entities.HealthCheckStatusSent
				out.SentAt = &sentAt
				out.CustomerMobile = mobile
				return out, nil
			})

		var event HealthCheckSentEvent
		m.publisher.EXPECT().Publish(gomock.Any(), SubjectHealthCheckSent, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, v any) error {
				event = v.(HealthCheckSentEvent)
				return nil
			})

		got, err := uc.Send(context.Background(), "hc-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.HealthCheckStatusSent || got.SentAt == nil {
			t.Fatalf("unexpected health check: %+v", got)
		}
		if event.CustomerMobile != "+447700900123" || !event.TotalIncVAT.Equal(dec("120")) {
			t.Fatalf("unexpected event: %+v", event)
		}
	})

	t.Run("invalid mobile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)

		hc := healthCheck("hc-1", entities.HealthCheckStatusReadyToSend)
		hc.CustomerMobile = "12"
		m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(hc, nil)
		m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return(nil, nil)
		m.phones.EXPECT().Normalize("12").Return("", errors.New("bad"))

		_, err := uc.Send(context.Background(), "hc-1")
		if !errors.Is(err, ErrInvalidCustomerMobile) {
			t.Fatalf("expected ErrInvalidCustomerMobile, got %v", err)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusInProgress), nil)
		m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return(nil, nil)

		_, err := uc.Send(context.Background(), "hc-1")
		if !errors.Is(err, entities.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("quote does not price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)
		broken := redItem("a", "100")
		broken.Labour[0].Quantity = dec("0")
		m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusReadyToSend), nil)
		m.items.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{broken}, nil)

		_, err := uc.Send(context.Background(), "hc-1")
		if !errors.Is(err, entities.ErrNonPositiveQuantity) {
			t.Fatalf("expected ErrNonPositiveQuantity, got %v", err)
		}
	})
}

func TestHealthCheckUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newHealthCheckUseCase(ctrl)

		_, err := uc.UpdateStatus(context.Background(), "hc-1", entities.HealthCheckStatus("archived"))
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	for _, s := range []entities.HealthCheckStatus{
		entities.HealthCheckStatusSent,
		entities.HealthCheckStatusAuthorized,
		entities.HealthCheckStatusDeclined,
		entities.HealthCheckStatusPartiallyAuthorized,
	} {
		t.Run("reserved "+string(s), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, _ := newHealthCheckUseCase(ctrl)

			_, err := uc.UpdateStatus(context.Background(), "hc-1", s)
			if !errors.Is(err, ErrStatusNeedsAction) {
				t.Fatalf("expected ErrStatusNeedsAction, got %v", err)
			}
		})
	}

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusCreated), nil)

		_, err := uc.UpdateStatus(context.Background(), "hc-1", entities.HealthCheckStatusCompleted)
		if !errors.Is(err, entities.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newHealthCheckUseCase(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusTechCompleted), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "hc-1", entities.HealthCheckStatusReadyToSend).
			Return(healthCheck("hc-1", entities.HealthCheckStatusReadyToSend), nil)

		got, err := uc.UpdateStatus(context.Background(), "hc-1", entities.HealthCheckStatusReadyToSend)
		if err != nil || got.Status != entities.HealthCheckStatusReadyToSend {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}
