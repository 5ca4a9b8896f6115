package request

import "encoding/json"

// BillingPaymentCreateRequest documents the payment route body.
//
// `mp_payload` is forwarded to Mercado Pago as raw JSON. A body without the
// envelope is treated as the payload itself. The amount is never taken from it.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
