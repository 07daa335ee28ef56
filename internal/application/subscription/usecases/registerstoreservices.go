package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	billingUC "github.com/recero-inc/recero/internal/application/billing/usecases"
	"github.com/recero-inc/recero/internal/domain/billing"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	"github.com/recero-inc/recero/internal/domain/catalog"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	"github.com/recero-inc/recero/internal/domain/pointaccount"
	pointVO "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
	"github.com/recero-inc/recero/internal/domain/subscription"
	"github.com/recero-inc/recero/internal/domain/subscription/pricing"
	"github.com/recero-inc/recero/internal/shared/biztime"
	"github.com/recero-inc/recero/internal/shared/db"
	"github.com/recero-inc/recero/internal/shared/errors"
	"github.com/recero-inc/recero/internal/shared/logger"
)

// RegisterStoreServicesCommand carries one register/modify request. Modify is
// the same operation: an empty selection is how a store unsubscribes.
type RegisterStoreServicesCommand struct {
	StoreID        uint
	ActorID        uint
	Selection      pricing.Selection
	PaymentTokenID string
	// PayNow sends the billing record to the gateway immediately (standby);
	// otherwise it is left pending for the scheduled settlement batch.
	PayNow        bool
	RefundAccount billingVO.RefundAccount
	RenewalPolicy pointVO.RenewalPolicy
}

// RegisterStoreServicesResult is the outcome of one orchestration call.
type RegisterStoreServicesResult struct {
	BatchVersion int64
	Lines        []*subscription.Line
	// Record is nil when the selection expanded to nothing.
	Record *billing.Record
	// BillingFailed is set when the subscription committed but the gateway
	// declined the charge. The caller distinguishes this from full success.
	BillingFailed bool
	Account       *pointaccount.Account
}

// RegisterStoreServicesUseCase orchestrates the register/modify flow: mint a
// batch version, retire every prior line, expand and validate the selection
// against the pricing policy, persist the new batch, create the billing
// record and reconcile the point account. All writes up to dispatch run in
// one transaction; the gateway call happens after commit.
type RegisterStoreServicesUseCase struct {
	batchRepo   subscription.BatchRepository
	recordRepo  billing.RecordRepository
	accountRepo pointaccount.AccountRepository
	catalogRepo catalog.Repository
	dispatch    *billingUC.DispatchBillingUseCase
	txManager   db.TxManager
	policy      pricing.Policy
	logger      logger.Interface
}

func NewRegisterStoreServicesUseCase(
	batchRepo subscription.BatchRepository,
	recordRepo billing.RecordRepository,
	accountRepo pointaccount.AccountRepository,
	catalogRepo catalog.Repository,
	dispatch *billingUC.DispatchBillingUseCase,
	txManager db.TxManager,
	policy pricing.Policy,
	logger logger.Interface,
) *RegisterStoreServicesUseCase {
	return &RegisterStoreServicesUseCase{
		batchRepo:   batchRepo,
		recordRepo:  recordRepo,
		accountRepo: accountRepo,
		catalogRepo: catalogRepo,
		dispatch:    dispatch,
		txManager:   txManager,
		policy:      policy,
		logger:      logger,
	}
}

// Execute runs the orchestration. A duplicate-key conflict on the batch
// version means another writer won the race; the whole flow is retried once
// with a freshly minted version and is invisible to the caller.
func (uc *RegisterStoreServicesUseCase) Execute(ctx context.Context, cmd RegisterStoreServicesCommand) (*RegisterStoreServicesResult, error) {
	if cmd.StoreID == 0 {
		return nil, errors.NewValidationError("store ID is required")
	}
	if cmd.RenewalPolicy == "" {
		cmd.RenewalPolicy = pointVO.RenewalPolicyAuto
	}
	if !cmd.RenewalPolicy.IsValid() {
		return nil, errors.NewValidationError("invalid renewal policy", cmd.RenewalPolicy.String())
	}

	result, err := uc.registerOnce(ctx, cmd)
	if err != nil && errors.IsDuplicateError(err) {
		uc.logger.Warnw("batch version conflict, retrying with fresh version",
			"store_id", cmd.StoreID, "error", err)
		result, err = uc.registerOnce(ctx, cmd)
		if err != nil && errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("concurrent subscription change for store",
				fmt.Sprintf("store %d", cmd.StoreID))
		}
	}
	if err != nil {
		return nil, err
	}

	// Dispatch after commit so no row lock spans the gateway round trip.
	if result.Record != nil && result.Record.Status() == billingVO.RecordStatusStandby {
		dispatched, err := uc.dispatch.Execute(ctx, result.Record)
		if err != nil {
			return nil, err
		}
		result.Record = dispatched.Record
		result.BillingFailed = !dispatched.Approved
		if dispatched.Approved {
			// Reflect the activation the dispatch committed. The activation
			// itself is already durable, so a failed refresh only means the
			// caller sees the pre-activation snapshot.
			account, err := uc.accountRepo.GetByStoreID(ctx, cmd.StoreID)
			switch {
			case err != nil:
				uc.logger.Warnw("failed to refresh point account after dispatch",
					"store_id", cmd.StoreID, "error", err)
			case account != nil:
				result.Account = account
			}
		}
	}

	uc.logger.Infow("store services registered",
		"store_id", cmd.StoreID,
		"batch_version", result.BatchVersion,
		"line_count", len(result.Lines),
		"billing_failed", result.BillingFailed)

	return result, nil
}

// registerOnce runs steps 2-6 and 8 of the orchestration inside one ambient
// transaction. A pricing mismatch rolls everything back, including the
// deactivation of prior lines.
func (uc *RegisterStoreServicesUseCase) registerOnce(ctx context.Context, cmd RegisterStoreServicesCommand) (*RegisterStoreServicesResult, error) {
	var result RegisterStoreServicesResult

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		batchVersion, err := uc.mintBatchVersion(txCtx, cmd.StoreID)
		if err != nil {
			return err
		}
		result.BatchVersion = batchVersion

		// Retire every prior batch and withdraw any undispatched charge for
		// it. This runs even for an empty selection: modify-with-nothing is
		// how a store unsubscribes.
		if _, err := uc.batchRepo.DeactivateAllByStore(txCtx, cmd.StoreID, cmd.ActorID); err != nil {
			return fmt.Errorf("failed to deactivate prior subscription lines: %w", err)
		}
		if _, err := uc.recordRepo.CancelAllOpenByStore(txCtx, cmd.StoreID); err != nil {
			return fmt.Errorf("failed to cancel open billing records: %w", err)
		}

		canonical, err := uc.expandSelection(txCtx, cmd.Selection)
		if err != nil {
			return err
		}

		if len(canonical) == 0 {
			return uc.unsubscribe(txCtx, cmd.StoreID, &result)
		}

		lines := make([]*subscription.Line, 0, len(canonical))
		for _, cl := range canonical {
			line, err := subscription.NewLine(
				batchVersion, cmd.StoreID, cl.ServiceCode,
				cl.ServiceCharge, cl.RewardDeposit, cl.RewardPoint, cl.Commission,
				cmd.ActorID,
			)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}
		if err := uc.batchRepo.CreateLines(txCtx, lines); err != nil {
			return err
		}
		result.Lines = lines

		amount := pricing.CalculateBillingAmount(cmd.Selection, uc.policy)

		status := billingVO.RecordStatusPending
		if cmd.PayNow {
			status = billingVO.RecordStatusStandby
		}
		record, err := billing.NewRecord(
			cmd.StoreID, batchVersion, cmd.PaymentTokenID,
			amount, status, cmd.RefundAccount, cmd.ActorID,
		)
		if err != nil {
			return err
		}
		if err := uc.recordRepo.Create(txCtx, record); err != nil {
			return fmt.Errorf("failed to create billing record: %w", err)
		}
		result.Record = record

		account, err := uc.upsertAccount(txCtx, cmd, amount, canonical)
		if err != nil {
			return err
		}
		result.Account = account

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// mintBatchVersion derives a fresh version from the clock, bumped above the
// store's latest so versions stay monotonic even when two calls land within
// the same second. The latest-version read is locked inside the transaction.
func (uc *RegisterStoreServicesUseCase) mintBatchVersion(ctx context.Context, storeID uint) (int64, error) {
	latest, err := uc.batchRepo.LatestBatchVersion(ctx, storeID)
	if err != nil {
		return 0, fmt.Errorf("failed to read latest batch version: %w", err)
	}
	version := biztime.VersionStamp(biztime.NowUTC())
	if version <= latest {
		version = latest + 1
	}
	return version, nil
}

// expandSelection snapshots the catalog once and runs the pricing expansion
// and validation. Pricing and catalog problems surface as validation errors.
func (uc *RegisterStoreServicesUseCase) expandSelection(ctx context.Context, sel pricing.Selection) ([]pricing.CanonicalLine, error) {
	if len(sel) == 0 {
		return nil, nil
	}

	codes := make([]catalogVO.ServiceCode, 0, len(sel)+1)
	for code := range sel {
		if !code.IsValid() {
			return nil, errors.NewValidationError("unknown service code", code.String())
		}
		codes = append(codes, code)
	}
	// Review families carry the e-receipt line along, so its definition is
	// always part of the snapshot.
	if _, ok := sel[catalogVO.ServiceCodeEReceipt]; !ok {
		codes = append(codes, catalogVO.ServiceCodeEReceipt)
	}

	snapshot, err := uc.catalogRepo.GetSnapshot(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot service catalog: %w", err)
	}

	canonical, err := pricing.Expand(sel, snapshot, uc.policy)
	if err != nil {
		var unknown *pricing.UnknownServiceCodeError
		if stderrors.As(err, &unknown) {
			return nil, errors.NewValidationError("unknown service code", unknown.ServiceCode.String())
		}
		return nil, err
	}

	if err := pricing.Validate(sel, canonical); err != nil {
		var mismatch *pricing.MismatchError
		if stderrors.As(err, &mismatch) {
			uc.logger.Warnw("pricing mismatch rejected",
				"service_code", mismatch.ServiceCode,
				"field", mismatch.Field,
				"submitted", mismatch.Submitted,
				"expected", mismatch.Expected)
			return nil, errors.NewValidationError("submitted amount does not match pricing policy", mismatch.Error())
		}
		return nil, err
	}

	return canonical, nil
}

// unsubscribe finishes an empty-selection call: no new lines, no billing,
// point account marked deleted.
func (uc *RegisterStoreServicesUseCase) unsubscribe(ctx context.Context, storeID uint, result *RegisterStoreServicesResult) error {
	account, err := uc.accountRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return fmt.Errorf("failed to get point account: %w", err)
	}
	if account == nil {
		return nil
	}
	account.Deactivate()
	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update point account: %w", err)
	}
	result.Account = account
	return nil
}

// upsertAccount lazily creates the store's point account or refreshes its
// billing settings. Status is only advanced by settled billing, never here.
func (uc *RegisterStoreServicesUseCase) upsertAccount(ctx context.Context, cmd RegisterStoreServicesCommand, amount int64, canonical []pricing.CanonicalLine) (*pointaccount.Account, error) {
	reviewPoints := int64(0)
	for _, cl := range canonical {
		if cl.ServiceCode == catalogVO.ServiceCodeReviewReward || cl.ServiceCode == catalogVO.ServiceCodeReviewProject {
			reviewPoints = cl.RewardPoint
		}
	}

	account, err := uc.accountRepo.GetByStoreID(ctx, cmd.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to get point account: %w", err)
	}

	if account == nil {
		account, err = pointaccount.NewAccount(cmd.StoreID, amount, reviewPoints, cmd.RenewalPolicy)
		if err != nil {
			return nil, err
		}
		if err := uc.accountRepo.Create(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to create point account: %w", err)
		}
		return account, nil
	}

	if err := account.UpdateBillingSettings(amount, reviewPoints); err != nil {
		return nil, err
	}
	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update point account: %w", err)
	}
	return account, nil
}
