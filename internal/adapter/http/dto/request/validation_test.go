package request

import (
	"errors"
	"testing"

	"vhc_service/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	if err := registerOn(v); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return v
}

func TestCustomTags(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		payload any
		wantErr bool
		field   string
		tag     string
	}{
		{
			name:    "valid line",
			payload: LineItemRequest{Quantity: "1.5", UnitSellPrice: "85.00"},
		},
		{
			name:    "bad quantity",
			payload: LineItemRequest{Quantity: "one", UnitSellPrice: "85.00"},
			wantErr: true, field: "Quantity", tag: "decimal",
		},
		{
			name:    "bad optional cost",
			payload: LineItemRequest{Quantity: "1", UnitSellPrice: "1", UnitCostPrice: strPtr("abc")},
			wantErr: true, field: "UnitCostPrice", tag: "decimal",
		},
		{
			name:    "huge exponent quantity",
			payload: LineItemRequest{Quantity: "1e50000000", UnitSellPrice: "85.00"},
			wantErr: true, field: "Quantity", tag: "decimal",
		},
		{
			name:    "tiny exponent price",
			payload: LineItemRequest{Quantity: "1", UnitSellPrice: "1e-50000000"},
			wantErr: true, field: "UnitSellPrice", tag: "decimal",
		},
		{
			name:    "price at magnitude cap",
			payload: LineItemRequest{Quantity: "1", UnitSellPrice: "1000000000"},
			wantErr: true, field: "UnitSellPrice", tag: "decimal",
		},
		{
			name:    "largest accepted price",
			payload: LineItemRequest{Quantity: "1", UnitSellPrice: "999999999.99"},
		},
		{
			name:    "unknown allocation",
			payload: LineItemRequest{Quantity: "1", UnitSellPrice: "1", AllocationType: "split"},
			wantErr: true, field: "AllocationType", tag: "oneof",
		},
		{
			name: "valid authorization",
			payload: AuthorizationRequest{Method: "phone", Decisions: []DecisionRequest{
				{RepairItemID: "ri-1", Decision: "defer", DeferredUntil: "2024-06-01"},
			}},
		},
		{
			name:    "unknown method",
			payload: AuthorizationRequest{Method: "pigeon"},
			wantErr: true, field: "Method", tag: "auth_method",
		},
		{
			name: "unknown decision",
			payload: AuthorizationRequest{Method: "sms", Decisions: []DecisionRequest{
				{RepairItemID: "ri-1", Decision: "maybe"},
			}},
			wantErr: true, field: "Decision", tag: "vhc_decision",
		},
		{
			name: "bad deferred date",
			payload: AuthorizationRequest{Method: "sms", Decisions: []DecisionRequest{
				{RepairItemID: "ri-1", Decision: "defer", DeferredUntil: "01/06/2024"},
			}},
			wantErr: true, field: "DeferredUntil", tag: "datetime",
		},
		{
			name:    "sell price margin",
			payload: SellPriceRequest{CostPrice: "40", MarginPercent: "twenty"},
			wantErr: true, field: "MarginPercent", tag: "decimal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			details := ValidationDetails(err)
			if details[tt.field] != tt.tag {
				t.Fatalf("expected %s=%s, got %v", tt.field, tt.tag, details)
			}
		})
	}
}

func TestParseDecimal_OutOfRange(t *testing.T) {
	for _, s := range []string{"1e50000000", "-1e50000000", "0.00000000001", "1000000000"} {
		if _, err := parseDecimal(s); !errors.Is(err, entities.ErrValueOutOfRange) {
			t.Fatalf("%s: expected ErrValueOutOfRange, got %v", s, err)
		}
	}
	got, err := parseDecimal(" 12.50 ")
	if err != nil || got.String() != "12.5" {
		t.Fatalf("expected 12.5, got %s err=%v", got, err)
	}
}

func TestValidationDetails_NonValidatorError(t *testing.T) {
	if got := ValidationDetails(errString("boom")); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func strPtr(s string) *string { return &s }
