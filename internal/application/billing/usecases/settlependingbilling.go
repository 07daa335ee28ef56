package usecases

import (
	"context"
	"fmt"

	"github.com/recero-inc/recero/internal/domain/billing"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/shared/db"
	"github.com/recero-inc/recero/internal/shared/logger"
)

const defaultSettleBatchSize = 100

// SettlePendingBillingResult summarizes one settlement batch run.
type SettlePendingBillingResult struct {
	Dispatched int
	Approved   int
	Declined   int
}

// SettlePendingBillingUseCase drives the scheduled settlement batch: promote
// each pending record to standby and dispatch it. Records are settled one at
// a time so a single bad record cannot stall the rest of the batch.
type SettlePendingBillingUseCase struct {
	recordRepo billing.RecordRepository
	dispatch   *DispatchBillingUseCase
	txManager  db.TxManager
	batchSize  int
	logger     logger.Interface
}

func NewSettlePendingBillingUseCase(
	recordRepo billing.RecordRepository,
	dispatch *DispatchBillingUseCase,
	txManager db.TxManager,
	batchSize int,
	logger logger.Interface,
) *SettlePendingBillingUseCase {
	if batchSize <= 0 {
		batchSize = defaultSettleBatchSize
	}
	return &SettlePendingBillingUseCase{
		recordRepo: recordRepo,
		dispatch:   dispatch,
		txManager:  txManager,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// Execute settles one batch of pending records. Per-record failures are
// logged and skipped; the run only fails when the pending list itself cannot
// be read.
func (uc *SettlePendingBillingUseCase) Execute(ctx context.Context) (*SettlePendingBillingResult, error) {
	records, err := uc.recordRepo.ListByStatus(ctx, billingVO.RecordStatusPending, uc.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending billing records: %w", err)
	}

	var result SettlePendingBillingResult
	for _, record := range records {
		if err := uc.settleOne(ctx, record, &result); err != nil {
			uc.logger.Errorw("failed to settle billing record",
				"record_id", record.ID(), "store_id", record.StoreID(), "error", err)
		}
	}

	uc.logger.Infow("settlement batch finished",
		"dispatched", result.Dispatched,
		"approved", result.Approved,
		"declined", result.Declined)

	return &result, nil
}

func (uc *SettlePendingBillingUseCase) settleOne(ctx context.Context, record *billing.Record, result *SettlePendingBillingResult) error {
	// The promotion commits before the gateway call so a crash mid-dispatch
	// leaves the record standby, not silently pending forever.
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := record.MarkStandby(); err != nil {
			return err
		}
		return uc.recordRepo.Update(txCtx, record)
	})
	if err != nil {
		return err
	}

	dispatched, err := uc.dispatch.Execute(ctx, record)
	if err != nil {
		return err
	}

	result.Dispatched++
	if dispatched.Approved {
		result.Approved++
	} else {
		result.Declined++
	}
	return nil
}
