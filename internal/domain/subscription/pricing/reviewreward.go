package pricing

import (
	"github.com/recero-inc/recero/internal/domain/catalog"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

// reviewRewardFamily prices the review reward program. The e-receipt service
// is charged at its catalog list price alongside the reward line; commission
// and deposit are tiered on the reward point the store grants per review.
type reviewRewardFamily struct{}

func (reviewRewardFamily) expand(sel Selection, cat catalog.Snapshot, p Policy) ([]CanonicalLine, error) {
	receiptDef, err := lookupDef(cat, catalogVO.ServiceCodeEReceipt)
	if err != nil {
		return nil, err
	}
	rewardDef, err := lookupDef(cat, catalogVO.ServiceCodeReviewReward)
	if err != nil {
		return nil, err
	}

	rewardPoint := sel[catalogVO.ServiceCodeReviewReward].RewardPoint

	return []CanonicalLine{
		{
			ServiceCode:   catalogVO.ServiceCodeEReceipt,
			ServiceCharge: receiptDef.ListPrice(),
		},
		{
			ServiceCode:   catalogVO.ServiceCodeReviewReward,
			ServiceCharge: rewardDef.ListPrice(),
			RewardDeposit: reviewRewardDeposit(rewardPoint, p),
			RewardPoint:   rewardPoint,
			Commission:    reviewRewardCommission(rewardPoint, p),
		},
	}, nil
}

func (reviewRewardFamily) billingAmount(sel Selection, p Policy) int64 {
	return reviewRewardCommission(sel[catalogVO.ServiceCodeReviewReward].RewardPoint, p)
}

// reviewRewardCommission is rewardPoint * 0.5 truncated to an integer,
// floored at the policy minimum up to the lower breakpoint and capped at the
// maximum above the upper breakpoint.
func reviewRewardCommission(rewardPoint int64, p Policy) int64 {
	switch {
	case rewardPoint <= p.LowerBreakpoint:
		return p.ReviewRewardMinCommission
	case rewardPoint > p.UpperBreakpoint:
		return p.ReviewRewardMaxCommission
	default:
		return rewardPoint / 2
	}
}

// reviewRewardDeposit is rewardPoint * 100 between the breakpoints, floored
// and capped at the policy bounds outside them.
func reviewRewardDeposit(rewardPoint int64, p Policy) int64 {
	switch {
	case rewardPoint <= p.LowerBreakpoint:
		return p.ReviewRewardMinDeposit
	case rewardPoint > p.UpperBreakpoint:
		return p.ReviewRewardMaxDeposit
	default:
		return rewardPoint * p.DepositPerPoint
	}
}
