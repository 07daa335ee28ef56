package pricing

import (
	"github.com/recero-inc/recero/internal/domain/catalog"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

// reviewProjectFamily prices a managed review campaign. The e-receipt line
// rides along at zero charge regardless of its catalog price, commission is
// the flat policy constant, and the deposit is tiered on the reward point
// with a lower cap than the review reward family.
type reviewProjectFamily struct{}

func (reviewProjectFamily) expand(sel Selection, cat catalog.Snapshot, p Policy) ([]CanonicalLine, error) {
	if _, err := lookupDef(cat, catalogVO.ServiceCodeEReceipt); err != nil {
		return nil, err
	}
	projectDef, err := lookupDef(cat, catalogVO.ServiceCodeReviewProject)
	if err != nil {
		return nil, err
	}

	rewardPoint := sel[catalogVO.ServiceCodeReviewProject].RewardPoint

	return []CanonicalLine{
		{
			// Rides along with the campaign subscription at no charge.
			ServiceCode:   catalogVO.ServiceCodeEReceipt,
			ServiceCharge: 0,
		},
		{
			ServiceCode:   catalogVO.ServiceCodeReviewProject,
			ServiceCharge: projectDef.ListPrice(),
			RewardDeposit: reviewProjectDeposit(rewardPoint, p),
			RewardPoint:   rewardPoint,
			Commission:    p.ReviewProjectCommission,
		},
	}, nil
}

func (reviewProjectFamily) billingAmount(sel Selection, p Policy) int64 {
	return p.ReviewProjectCommission
}

// reviewProjectDeposit is min(rewardPoint * 100, cap) between the
// breakpoints, floored below the lower breakpoint and flat above the upper.
func reviewProjectDeposit(rewardPoint int64, p Policy) int64 {
	switch {
	case rewardPoint <= p.LowerBreakpoint:
		return p.ReviewProjectMinDeposit
	case rewardPoint > p.UpperBreakpoint:
		return p.ReviewProjectMaxDeposit
	default:
		deposit := rewardPoint * p.DepositPerPoint
		if deposit > p.ReviewProjectMaxDeposit {
			return p.ReviewProjectMaxDeposit
		}
		return deposit
	}
}
