package valueobjects

import "fmt"

// RefundAccount holds the bank account deposits are refunded to. The account
// number is PII and is stored encrypted through the refund account codec.
type RefundAccount struct {
	bankCode      string
	accountNumber string
	holderName    string
}

func NewRefundAccount(bankCode, accountNumber, holderName string) (RefundAccount, error) {
	if bankCode == "" || accountNumber == "" || holderName == "" {
		return RefundAccount{}, fmt.Errorf("refund account requires bank code, account number and holder name")
	}
	return RefundAccount{
		bankCode:      bankCode,
		accountNumber: accountNumber,
		holderName:    holderName,
	}, nil
}

// EmptyRefundAccount is used when the billing instruction carries no refund
// details (e.g. zero-deposit subscriptions).
func EmptyRefundAccount() RefundAccount {
	return RefundAccount{}
}

func (a RefundAccount) BankCode() string      { return a.bankCode }
func (a RefundAccount) AccountNumber() string { return a.accountNumber }
func (a RefundAccount) HolderName() string    { return a.holderName }

func (a RefundAccount) IsEmpty() bool {
	return a.bankCode == "" && a.accountNumber == "" && a.holderName == ""
}

// ReconstructRefundAccount rebuilds the value from persistence without
// validation; empty fields stay empty.
func ReconstructRefundAccount(bankCode, accountNumber, holderName string) RefundAccount {
	return RefundAccount{
		bankCode:      bankCode,
		accountNumber: accountNumber,
		holderName:    holderName,
	}
}
