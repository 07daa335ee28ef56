package valueobjects

// ServiceCode identifies a sellable reward/point program.
type ServiceCode string

const (
	// ServiceCodeEReceipt is the flat electronic receipt service.
	ServiceCodeEReceipt ServiceCode = "ERECEIPT"
	// ServiceCodeReviewReward is the review reward program: the store grants
	// points to customers for reviews and pays a commission per period.
	ServiceCodeReviewReward ServiceCode = "REVIEWPT"
	// ServiceCodeReviewProject is a managed review campaign. Subscribing to it
	// carries the e-receipt service along at no charge.
	ServiceCodeReviewProject ServiceCode = "REVIEWPJ"
	// ServiceCodeCouponAd is coupon advertising. Listed in the catalog but has
	// no pricing family of its own.
	ServiceCodeCouponAd ServiceCode = "COUPONAD"
)

func (c ServiceCode) IsValid() bool {
	switch c {
	case ServiceCodeEReceipt, ServiceCodeReviewReward, ServiceCodeReviewProject, ServiceCodeCouponAd:
		return true
	default:
		return false
	}
}

func (c ServiceCode) String() string {
	return string(c)
}
