package pricing

import (
	"github.com/recero-inc/recero/internal/domain/catalog"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

// receiptOnlyFamily passes a bare e-receipt subscription through at catalog
// price. No deposit, no commission, nothing to bill for the period.
type receiptOnlyFamily struct{}

func (receiptOnlyFamily) expand(sel Selection, cat catalog.Snapshot, p Policy) ([]CanonicalLine, error) {
	receiptDef, err := lookupDef(cat, catalogVO.ServiceCodeEReceipt)
	if err != nil {
		return nil, err
	}

	return []CanonicalLine{
		{
			ServiceCode:   catalogVO.ServiceCodeEReceipt,
			ServiceCharge: receiptDef.ListPrice(),
		},
	}, nil
}

func (receiptOnlyFamily) billingAmount(sel Selection, p Policy) int64 {
	return 0
}
