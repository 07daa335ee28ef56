// Package pricing expands a store's proposed service selection into the
// canonical line set to persist and validates the submitted amounts against
// the tiered contract rules. Everything here is pure: no I/O, no clock.
package pricing

import "github.com/recero-inc/recero/internal/shared/config"

// Policy centralizes the contractual pricing thresholds. The breakpoints and
// caps are regulatory/contractual values and change between policy revisions,
// so they are carried as one versioned structure instead of scattered
// literals.
type Policy struct {
	Version string

	// Reward point breakpoints shared by both review families.
	LowerBreakpoint int64 // 2,000 points
	UpperBreakpoint int64 // 10,000 points

	// Deposit is rewardPoint * DepositPerPoint between the breakpoints.
	DepositPerPoint int64

	// Review reward family.
	ReviewRewardMinCommission int64
	ReviewRewardMaxCommission int64
	ReviewRewardMinDeposit    int64
	ReviewRewardMaxDeposit    int64

	// Review project family. Commission is flat regardless of reward point.
	ReviewProjectCommission int64
	ReviewProjectMinDeposit int64
	ReviewProjectMaxDeposit int64

	// ServiceTermMonths is the point account service window granted per
	// settled billing record.
	ServiceTermMonths int
}

// DefaultPolicy returns the current contractual pricing policy.
func DefaultPolicy() Policy {
	return Policy{
		Version:                   "2024-01",
		LowerBreakpoint:           2_000,
		UpperBreakpoint:           10_000,
		DepositPerPoint:           100,
		ReviewRewardMinCommission: 1_000,
		ReviewRewardMaxCommission: 5_000,
		ReviewRewardMinDeposit:    200_000,
		ReviewRewardMaxDeposit:    1_000_000,
		ReviewProjectCommission:   10_000,
		ReviewProjectMinDeposit:   200_000,
		ReviewProjectMaxDeposit:   500_000,
		ServiceTermMonths:         1,
	}
}

// PolicyFromConfig overlays configured thresholds onto the default policy.
// Zero values in the configuration keep the default.
func PolicyFromConfig(cfg config.PricingConfig) Policy {
	p := DefaultPolicy()
	if cfg.PolicyVersion != "" {
		p.Version = cfg.PolicyVersion
	}
	if cfg.LowerBreakpoint > 0 {
		p.LowerBreakpoint = cfg.LowerBreakpoint
	}
	if cfg.UpperBreakpoint > 0 {
		p.UpperBreakpoint = cfg.UpperBreakpoint
	}
	if cfg.ReviewProjectCommission > 0 {
		p.ReviewProjectCommission = cfg.ReviewProjectCommission
	}
	if cfg.ServiceTermMonths > 0 {
		p.ServiceTermMonths = cfg.ServiceTermMonths
	}
	return p
}
