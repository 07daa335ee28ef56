package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/recero-inc/recero/internal/application/billing/paymentgateway"
	"github.com/recero-inc/recero/internal/domain/billing"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/domain/pointaccount"
	pointVO "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
	"github.com/recero-inc/recero/internal/shared/biztime"
	"github.com/recero-inc/recero/internal/shared/db"
	"github.com/recero-inc/recero/internal/shared/errors"
	"github.com/recero-inc/recero/internal/shared/logger"
)

// DispatchBillingResult reports the settled record and whether the gateway
// approved the charge. A declined charge is an outcome, not an error.
type DispatchBillingResult struct {
	Record   *billing.Record
	Approved bool
}

// DispatchBillingUseCase sends a standby billing record to the payment
// gateway exactly once and reconciles the outcome into the record and the
// store's point account. The gateway call runs outside any transaction; the
// outcome is applied with one short write afterwards so no row lock spans
// the network round trip.
type DispatchBillingUseCase struct {
	recordRepo  billing.RecordRepository
	accountRepo pointaccount.AccountRepository
	gateway     paymentgateway.PaymentGateway
	txManager   db.TxManager
	serviceTerm int // months
	logger      logger.Interface
}

func NewDispatchBillingUseCase(
	recordRepo billing.RecordRepository,
	accountRepo pointaccount.AccountRepository,
	gateway paymentgateway.PaymentGateway,
	txManager db.TxManager,
	serviceTermMonths int,
	logger logger.Interface,
) *DispatchBillingUseCase {
	return &DispatchBillingUseCase{
		recordRepo:  recordRepo,
		accountRepo: accountRepo,
		gateway:     gateway,
		txManager:   txManager,
		serviceTerm: serviceTermMonths,
		logger:      logger,
	}
}

// Execute dispatches a standby record. Calling it with a record in any other
// status is a programming error and is rejected before the gateway is
// touched.
func (uc *DispatchBillingUseCase) Execute(ctx context.Context, record *billing.Record) (*DispatchBillingResult, error) {
	if record.Status() != billingVO.RecordStatusStandby {
		uc.logger.Errorw("refusing to dispatch non-standby billing record",
			"record_id", record.ID(), "status", record.Status())
		return nil, errors.NewInternalError("billing record is not dispatchable",
			fmt.Sprintf("record %d has status %s", record.ID(), record.Status()))
	}

	result := uc.gateway.RequestPayment(ctx, paymentgateway.PaymentRequest{
		RecordID:       record.ID(),
		StoreID:        record.StoreID(),
		PaymentTokenID: record.PaymentTokenID(),
		Amount:         record.Amount(),
	})

	if result.IsOK() {
		return uc.finalizeApproved(ctx, record, result)
	}
	return uc.finalizeDeclined(ctx, record, result)
}

// finalizeApproved completes the record and activates the point account in
// one short transaction.
func (uc *DispatchBillingUseCase) finalizeApproved(ctx context.Context, record *billing.Record, result paymentgateway.Result) (*DispatchBillingResult, error) {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := record.Complete(result.ResultMessage, rawGatewayResult(result)); err != nil {
			return err
		}
		if err := uc.recordRepo.Update(txCtx, record); err != nil {
			return fmt.Errorf("failed to update billing record: %w", err)
		}

		account, err := uc.accountRepo.GetByStoreID(txCtx, record.StoreID())
		if err != nil {
			return fmt.Errorf("failed to get point account: %w", err)
		}
		if account == nil {
			return fmt.Errorf("point account missing for store %d", record.StoreID())
		}

		start := biztime.NowUTC()
		window, err := pointVO.NewServiceWindow(start, biztime.AddMonths(start, uc.serviceTerm))
		if err != nil {
			return err
		}
		if err := account.Activate(window); err != nil {
			return err
		}
		if err := uc.accountRepo.Update(txCtx, account); err != nil {
			return fmt.Errorf("failed to update point account: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to finalize approved billing",
			"error", err, "record_id", record.ID(), "store_id", record.StoreID())
		return nil, err
	}

	uc.logger.Infow("billing settled",
		"record_id", record.ID(), "store_id", record.StoreID(), "amount", record.Amount())

	return &DispatchBillingResult{Record: record, Approved: true}, nil
}

// finalizeDeclined records the failure. The point account is never touched:
// it is not auto-activated, and a previously active account is not revoked
// by a failed renewal attempt.
func (uc *DispatchBillingUseCase) finalizeDeclined(ctx context.Context, record *billing.Record, result paymentgateway.Result) (*DispatchBillingResult, error) {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := record.Fail(result.ResultMessage, result.ErrorCode, rawGatewayResult(result)); err != nil {
			return err
		}
		if err := uc.recordRepo.Update(txCtx, record); err != nil {
			return fmt.Errorf("failed to update billing record: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record billing failure",
			"error", err, "record_id", record.ID(), "store_id", record.StoreID())
		return nil, err
	}

	uc.logger.Warnw("billing declined by gateway",
		"record_id", record.ID(), "store_id", record.StoreID(),
		"result_code", result.ResultCode, "error_code", result.ErrorCode,
		"result_message", result.ResultMessage)

	return &DispatchBillingResult{Record: record, Approved: false}, nil
}

// rawGatewayResult serializes the gateway outcome for the record's audit
// payload. Result is a plain struct, so the marshal cannot fail.
func rawGatewayResult(result paymentgateway.Result) []byte {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil
	}
	return payload
}
