// Package register implements the back-office CLI for store service
// registration.
package register

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	subscriptionUC "github.com/recero-inc/recero/internal/application/subscription/usecases"
	billingVO "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
	catalogVO "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	pointVO "github.com/recero-inc/recero/internal/domain/pointaccount/valueobjects"
	"github.com/recero-inc/recero/internal/domain/subscription/pricing"
	"github.com/recero-inc/recero/internal/interfaces/cli/runtime"
)

var (
	env            string
	storeID        uint
	actorID        uint
	selectionJSON  string
	selectionFile  string
	paymentTokenID string
	payNow         bool
	renewalPolicy  string
	refundBank     string
	refundAccount  string
	refundHolder   string
)

// selectionEntry is the JSON shape for one proposed service line.
type selectionEntry struct {
	ServiceCharge int64 `json:"service_charge"`
	RewardDeposit int64 `json:"reward_deposit"`
	RewardPoint   int64 `json:"reward_point"`
	Commission    int64 `json:"commission"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register or modify a store's service subscription",
		Long: `Register, modify or cancel a store's service subscription.
The selection is a JSON object keyed by service code; an empty selection
unsubscribes the store.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "default", "Environment (debug, release)")
	cmd.Flags().UintVar(&storeID, "store-id", 0, "Store ID (required)")
	cmd.Flags().UintVar(&actorID, "actor-id", 0, "Admin user performing the change")
	cmd.Flags().StringVar(&selectionJSON, "selection", "", `Selection JSON, e.g. '{"REVIEWPT":{"service_charge":30000,"reward_deposit":500000,"reward_point":5000,"commission":2500}}'`)
	cmd.Flags().StringVar(&selectionFile, "selection-file", "", "Path to a file holding the selection JSON")
	cmd.Flags().StringVar(&paymentTokenID, "payment-token", "", "Registered payment token ID")
	cmd.Flags().BoolVar(&payNow, "pay-now", false, "Charge immediately instead of leaving the record for the settlement batch")
	cmd.Flags().StringVar(&renewalPolicy, "renewal-policy", "", "Renewal policy (auto_renewal, manual_renewal, non_renewal)")
	cmd.Flags().StringVar(&refundBank, "refund-bank", "", "Refund account bank code")
	cmd.Flags().StringVar(&refundAccount, "refund-account", "", "Refund account number")
	cmd.Flags().StringVar(&refundHolder, "refund-holder", "", "Refund account holder name")
	cmd.MarkFlagRequired("store-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	selection, err := parseSelection()
	if err != nil {
		return err
	}

	rt, err := runtime.New(env)
	if err != nil {
		return err
	}
	defer rt.Close()

	refund := billingVO.EmptyRefundAccount()
	if refundAccount != "" {
		refund, err = billingVO.NewRefundAccount(refundBank, refundAccount, refundHolder)
		if err != nil {
			return err
		}
	}

	result, err := rt.Register.Execute(cmd.Context(), subscriptionUC.RegisterStoreServicesCommand{
		StoreID:        storeID,
		ActorID:        actorID,
		Selection:      selection,
		PaymentTokenID: paymentTokenID,
		PayNow:         payNow,
		RefundAccount:  refund,
		RenewalPolicy:  pointVO.RenewalPolicy(renewalPolicy),
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nRegistration result for store %d:\n", storeID)
	fmt.Printf("  Batch Version: %d\n", result.BatchVersion)
	fmt.Printf("  Lines:         %d\n", len(result.Lines))
	for _, line := range result.Lines {
		fmt.Printf("    %-10s charge=%d deposit=%d point=%d commission=%d\n",
			line.ServiceCode(), line.ServiceCharge(), line.RewardDeposit(),
			line.RewardPoint(), line.Commission())
	}
	if result.Record != nil {
		fmt.Printf("  Billing:       record=%d amount=%d status=%s\n",
			result.Record.ID(), result.Record.Amount(), result.Record.Status())
	}
	if result.BillingFailed {
		fmt.Printf("  WARNING: subscription saved but the charge was declined (%s)\n",
			result.Record.ResultMessage())
	}
	if result.Account != nil {
		fmt.Printf("  Point Account: status=%s\n", result.Account.Status())
	}

	return nil
}

func parseSelection() (pricing.Selection, error) {
	raw := selectionJSON
	if selectionFile != "" {
		data, err := os.ReadFile(selectionFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read selection file: %w", err)
		}
		raw = string(data)
	}
	if raw == "" {
		return nil, nil
	}

	var entries map[string]selectionEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("invalid selection JSON: %w", err)
	}

	selection := make(pricing.Selection, len(entries))
	for code, entry := range entries {
		serviceCode := catalogVO.ServiceCode(code)
		if !serviceCode.IsValid() {
			return nil, fmt.Errorf("unknown service code in selection: %s", code)
		}
		selection[serviceCode] = pricing.ProposedLine{
			ServiceCharge: entry.ServiceCharge,
			RewardDeposit: entry.RewardDeposit,
			RewardPoint:   entry.RewardPoint,
			Commission:    entry.Commission,
		}
	}

	return selection, nil
}
