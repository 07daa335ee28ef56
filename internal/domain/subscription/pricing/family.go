package pricing

import (
	"github.com/recero-inc/recero/internal/domain/catalog"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

// ProposedLine carries the amounts a merchant submitted for one service.
type ProposedLine struct {
	ServiceCharge int64
	RewardDeposit int64
	RewardPoint   int64
	Commission    int64
}

// Selection maps service codes to the merchant's proposed amounts.
type Selection map[catalogVO.ServiceCode]ProposedLine

// CanonicalLine is one line of the expanded, policy-priced set to persist.
type CanonicalLine struct {
	ServiceCode   catalogVO.ServiceCode
	ServiceCharge int64
	RewardDeposit int64
	RewardPoint   int64
	Commission    int64
}

// family is one closed pricing rule set. Adding a family means adding a type
// here, not another string branch.
type family interface {
	// expand turns the raw selection into the canonical line set.
	expand(sel Selection, cat catalog.Snapshot, p Policy) ([]CanonicalLine, error)
	// billingAmount computes the period charge for the selection without
	// building lines. Expanding and summing commissions must agree with it.
	billingAmount(sel Selection, p Policy) int64
}

// detectFamily picks the pricing family for a selection. Review project takes
// precedence over review reward; a bare e-receipt passes through; anything
// else prices to the empty set.
func detectFamily(sel Selection) family {
	if _, ok := sel[catalogVO.ServiceCodeReviewProject]; ok {
		return reviewProjectFamily{}
	}
	if _, ok := sel[catalogVO.ServiceCodeReviewReward]; ok {
		return reviewRewardFamily{}
	}
	if _, ok := sel[catalogVO.ServiceCodeEReceipt]; ok && len(sel) == 1 {
		return receiptOnlyFamily{}
	}
	return nil
}

// Expand returns the canonical line set for a selection. An empty selection,
// or one with no pricing family, expands to nil: no services means no billing.
func Expand(sel Selection, cat catalog.Snapshot, p Policy) ([]CanonicalLine, error) {
	fam := detectFamily(sel)
	if fam == nil {
		return nil, nil
	}
	return fam.expand(sel, cat, p)
}

// CalculateBillingAmount computes the amount to bill for the period: the sum
// of service commissions across the selection. Deposits and flat charges are
// intentionally excluded.
func CalculateBillingAmount(sel Selection, p Policy) int64 {
	fam := detectFamily(sel)
	if fam == nil {
		return 0
	}
	return fam.billingAmount(sel, p)
}

// Validate compares the submitted amounts against the canonical set and
// reports the first mismatch. Only codes present in both the selection and
// the canonical set are compared; ride-along lines the merchant did not
// submit are accepted as computed.
func Validate(sel Selection, canonical []CanonicalLine) error {
	for _, line := range canonical {
		submitted, ok := sel[line.ServiceCode]
		if !ok {
			continue
		}
		if submitted.ServiceCharge != line.ServiceCharge {
			return &MismatchError{
				Kind:        KindInvalidServiceCharge,
				ServiceCode: line.ServiceCode,
				Field:       "serviceCharge",
				Submitted:   submitted.ServiceCharge,
				Expected:    line.ServiceCharge,
			}
		}
		if submitted.RewardDeposit != line.RewardDeposit {
			return &MismatchError{
				Kind:        KindInvalidDeposit,
				ServiceCode: line.ServiceCode,
				Field:       "rewardDeposit",
				Submitted:   submitted.RewardDeposit,
				Expected:    line.RewardDeposit,
			}
		}
		if submitted.Commission != line.Commission {
			return &MismatchError{
				Kind:        KindInvalidCommission,
				ServiceCode: line.ServiceCode,
				Field:       "serviceCommission",
				Submitted:   submitted.Commission,
				Expected:    line.Commission,
			}
		}
	}
	return nil
}

// lookupDef fetches a required definition from the snapshot.
func lookupDef(cat catalog.Snapshot, code catalogVO.ServiceCode) (*catalog.ServiceDef, error) {
	def := cat.Lookup(code)
	if def == nil {
		return nil, &UnknownServiceCodeError{ServiceCode: code}
	}
	return def, nil
}
