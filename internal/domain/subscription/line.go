// Package subscription holds the versioned set of service subscription lines
// per store. One batch version is minted per register/modify call; registering
// a new batch deactivates every line of every prior batch first, so mixed
// old/new state is never visible.
package subscription

import (
	"fmt"
	"time"

	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	vo "github.com/recero-inc/recero/internal/domain/subscription/valueobjects"
	"github.com/recero-inc/recero/internal/shared/biztime"
)

// Line is one subscribed service under a specific batch version.
// Identified by (batchVersion, storeID, serviceCode).
type Line struct {
	id            uint
	batchVersion  int64
	storeID       uint
	serviceCode   catalogVO.ServiceCode
	serviceCharge int64
	rewardDeposit int64
	rewardPoint   int64
	commission    int64
	status        vo.LineStatus

	createdAt  time.Time
	createdBy  uint
	modifiedAt time.Time
	modifiedBy uint
}

func NewLine(
	batchVersion int64,
	storeID uint,
	serviceCode catalogVO.ServiceCode,
	serviceCharge, rewardDeposit, rewardPoint, commission int64,
	actorID uint,
) (*Line, error) {
	if batchVersion <= 0 {
		return nil, ErrInvalidBatchVersion
	}
	if storeID == 0 {
		return nil, fmt.Errorf("store ID is required")
	}
	if !serviceCode.IsValid() {
		return nil, fmt.Errorf("invalid service code: %s", serviceCode)
	}
	if serviceCharge < 0 || rewardDeposit < 0 || rewardPoint < 0 || commission < 0 {
		return nil, fmt.Errorf("subscription line amounts cannot be negative")
	}

	now := biztime.NowUTC()
	return &Line{
		batchVersion:  batchVersion,
		storeID:       storeID,
		serviceCode:   serviceCode,
		serviceCharge: serviceCharge,
		rewardDeposit: rewardDeposit,
		rewardPoint:   rewardPoint,
		commission:    commission,
		status:        vo.LineStatusActive,
		createdAt:     now,
		createdBy:     actorID,
		modifiedAt:    now,
		modifiedBy:    actorID,
	}, nil
}

// Deactivate retires the line. Deactivation is terminal for a line; a new
// batch carries any replacement.
func (l *Line) Deactivate(actorID uint) {
	if l.status == vo.LineStatusInactive {
		return
	}
	l.status = vo.LineStatusInactive
	l.modifiedAt = biztime.NowUTC()
	l.modifiedBy = actorID
}

func (l *Line) ID() uint                           { return l.id }
func (l *Line) BatchVersion() int64                { return l.batchVersion }
func (l *Line) StoreID() uint                      { return l.storeID }
func (l *Line) ServiceCode() catalogVO.ServiceCode { return l.serviceCode }
func (l *Line) ServiceCharge() int64               { return l.serviceCharge }
func (l *Line) RewardDeposit() int64               { return l.rewardDeposit }
func (l *Line) RewardPoint() int64                 { return l.rewardPoint }
func (l *Line) Commission() int64                  { return l.commission }
func (l *Line) Status() vo.LineStatus              { return l.status }
func (l *Line) CreatedAt() time.Time               { return l.createdAt }
func (l *Line) CreatedBy() uint                    { return l.createdBy }
func (l *Line) ModifiedAt() time.Time              { return l.modifiedAt }
func (l *Line) ModifiedBy() uint                   { return l.modifiedBy }

// SetID sets the line ID after persistence.
func (l *Line) SetID(id uint) { l.id = id }

func ReconstructLine(
	id uint,
	batchVersion int64,
	storeID uint,
	serviceCode catalogVO.ServiceCode,
	serviceCharge, rewardDeposit, rewardPoint, commission int64,
	status vo.LineStatus,
	createdAt time.Time, createdBy uint,
	modifiedAt time.Time, modifiedBy uint,
) *Line {
	return &Line{
		id:            id,
		batchVersion:  batchVersion,
		storeID:       storeID,
		serviceCode:   serviceCode,
		serviceCharge: serviceCharge,
		rewardDeposit: rewardDeposit,
		rewardPoint:   rewardPoint,
		commission:    commission,
		status:        status,
		createdAt:     createdAt,
		createdBy:     createdBy,
		modifiedAt:    modifiedAt,
		modifiedBy:    modifiedBy,
	}
}
