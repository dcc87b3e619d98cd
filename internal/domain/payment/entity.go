// internal/domain/payment/entity.go
package payment

// Settings holds the bank-transfer details shown at checkout
type Settings struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Instructions  string `json:"instructions"`
}

// DefaultSettings returns the built-in bank details used when no snapshot exists
func DefaultSettings() Settings {
	return Settings{
		BankName:      "Earth Trust Bank",
		AccountName:   "Fifi Bags Official",
		AccountNumber: "123-456-7890",
		Instructions:  "Please include your name in the transfer description.",
	}
}
