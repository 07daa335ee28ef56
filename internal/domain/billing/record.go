// Package billing holds the billing ledger: one record per attempt to charge
// a merchant for a subscription batch, driven through a small payment state
// machine. The gateway is called exactly once per record; callers needing a
// retry create a new record.
package billing

import (
	"fmt"
	"time"

	vo "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/shared/biztime"
)

// Record is one billing attempt for (storeID, batchVersion).
type Record struct {
	id             uint
	storeID        uint
	batchVersion   int64
	paymentTokenID string
	amount         int64
	status         vo.RecordStatus
	refundAccount  vo.RefundAccount

	// Gateway outcome, preserved for audit on both success and failure.
	// gatewayPayload is the raw gateway response.
	resultMessage  string
	errorCode      string
	gatewayPayload []byte
	settledAt      *time.Time

	createdAt time.Time
	createdBy uint
	updatedAt time.Time
}

// NewRecord creates a billing attempt. status decides the dispatch path:
// standby records are sent to the gateway immediately, pending records are
// left for the scheduled settlement batch.
func NewRecord(
	storeID uint,
	batchVersion int64,
	paymentTokenID string,
	amount int64,
	status vo.RecordStatus,
	refundAccount vo.RefundAccount,
	actorID uint,
) (*Record, error) {
	if storeID == 0 {
		return nil, fmt.Errorf("store ID is required")
	}
	if batchVersion <= 0 {
		return nil, fmt.Errorf("batch version is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("billing amount cannot be negative")
	}
	if status != vo.RecordStatusPending && status != vo.RecordStatusStandby {
		return nil, fmt.Errorf("billing record must be created pending or standby, got %s", status)
	}

	now := biztime.NowUTC()
	return &Record{
		storeID:        storeID,
		batchVersion:   batchVersion,
		paymentTokenID: paymentTokenID,
		amount:         amount,
		status:         status,
		refundAccount:  refundAccount,
		createdAt:      now,
		createdBy:      actorID,
		updatedAt:      now,
	}, nil
}

// MarkStandby promotes a pending record for dispatch. The scheduled
// settlement batch calls this right before sending the record to the gateway.
func (r *Record) MarkStandby() error {
	if r.status != vo.RecordStatusPending {
		return ErrInvalidStatusTransition
	}
	r.status = vo.RecordStatusStandby
	r.updatedAt = biztime.NowUTC()
	return nil
}

// Complete marks the attempt settled. Only a dispatched standby record can
// complete. gatewayPayload is the raw gateway response, kept for audit.
func (r *Record) Complete(resultMessage string, gatewayPayload []byte) error {
	if r.status != vo.RecordStatusStandby {
		return ErrNotDispatchable(r.status)
	}
	now := biztime.NowUTC()
	r.status = vo.RecordStatusComplete
	r.resultMessage = resultMessage
	r.gatewayPayload = gatewayPayload
	r.settledAt = &now
	r.updatedAt = now
	return nil
}

// Fail records the gateway's failure outcome. The message, error code and raw
// response are preserved for audit.
func (r *Record) Fail(resultMessage, errorCode string, gatewayPayload []byte) error {
	if r.status != vo.RecordStatusStandby {
		return ErrNotDispatchable(r.status)
	}
	r.status = vo.RecordStatusFail
	r.resultMessage = resultMessage
	r.errorCode = errorCode
	r.gatewayPayload = gatewayPayload
	r.updatedAt = biztime.NowUTC()
	return nil
}

// Cancel withdraws an undispatched attempt. Terminal records are immutable;
// attempting to cancel one is a programming error, not a business outcome.
func (r *Record) Cancel() error {
	if !r.status.IsCancelable() {
		return ErrNotCancelable(r.status)
	}
	r.status = vo.RecordStatusCanceled
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Record) ID() uint                        { return r.id }
func (r *Record) StoreID() uint                   { return r.storeID }
func (r *Record) BatchVersion() int64             { return r.batchVersion }
func (r *Record) PaymentTokenID() string          { return r.paymentTokenID }
func (r *Record) Amount() int64                   { return r.amount }
func (r *Record) Status() vo.RecordStatus         { return r.status }
func (r *Record) RefundAccount() vo.RefundAccount { return r.refundAccount }
func (r *Record) ResultMessage() string           { return r.resultMessage }
func (r *Record) ErrorCode() string               { return r.errorCode }
func (r *Record) GatewayPayload() []byte          { return r.gatewayPayload }
func (r *Record) SettledAt() *time.Time           { return r.settledAt }
func (r *Record) CreatedAt() time.Time            { return r.createdAt }
func (r *Record) CreatedBy() uint                 { return r.createdBy }
func (r *Record) UpdatedAt() time.Time            { return r.updatedAt }

// SetID sets the record ID after persistence.
func (r *Record) SetID(id uint) { r.id = id }

func ReconstructRecord(
	id uint,
	storeID uint,
	batchVersion int64,
	paymentTokenID string,
	amount int64,
	status vo.RecordStatus,
	refundAccount vo.RefundAccount,
	resultMessage, errorCode string,
	gatewayPayload []byte,
	settledAt *time.Time,
	createdAt time.Time, createdBy uint,
	updatedAt time.Time,
) *Record {
	return &Record{
		id:             id,
		storeID:        storeID,
		batchVersion:   batchVersion,
		paymentTokenID: paymentTokenID,
		amount:         amount,
		status:         status,
		refundAccount:  refundAccount,
		resultMessage:  resultMessage,
		errorCode:      errorCode,
		gatewayPayload: gatewayPayload,
		settledAt:      settledAt,
		createdAt:      createdAt,
		createdBy:      createdBy,
		updatedAt:      updatedAt,
	}
}
