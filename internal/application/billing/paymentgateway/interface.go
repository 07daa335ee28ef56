// Package paymentgateway defines the contract with the external payment
// processor. The gateway reports business failures through result codes, not
// errors; implementations must fold transport and parse failures into the
// same NOTOK shape so dispatch has exactly one failure path.
package paymentgateway

import "context"

const (
	ResultCodeOK    = "OK"
	ResultCodeNotOK = "NOTOK"

	// ErrorCodeTransport marks results synthesized from network, timeout or
	// malformed-response failures rather than a gateway decline.
	ErrorCodeTransport = "ERROR"
)

// PaymentGateway is the synchronous request/cancel interface to the payment
// processor.
type PaymentGateway interface {
	// RequestPayment charges the billing record. It never returns an error:
	// every failure mode is expressed as a NOTOK result.
	RequestPayment(ctx context.Context, req PaymentRequest) Result
	// CancelPayment reverses a settled charge. Used by the refund flow only.
	CancelPayment(ctx context.Context, req CancelRequest) Result
}

// PaymentRequest identifies the billing record being charged.
type PaymentRequest struct {
	RecordID       uint
	StoreID        uint
	PaymentTokenID string
	Amount         int64
}

// CancelRequest identifies a settled charge to reverse.
type CancelRequest struct {
	ReferenceID string
	Token       string
}

// Result is the gateway's uniform response shape. The JSON form is what the
// billing ledger stores as the raw audit payload.
type Result struct {
	ResultCode    string `json:"result_code"`
	ResultMessage string `json:"result_message"`
	ErrorCode     string `json:"error_code,omitempty"`
}

// IsOK reports whether the gateway approved the request.
func (r Result) IsOK() bool {
	return r.ResultCode == ResultCodeOK
}
