package bankbook

// Account identifies a bank account seen during import. Accounts are
// created on first sighting and never deleted; only the alias is
// user-settable afterwards.
type Account struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	Institution string `json:"institution"`
	Alias       string `json:"alias,omitempty"`
}

// DisplayName returns the alias if set, otherwise the account number.
func (a Account) DisplayName() string {
	if a.Alias != "" {
		return a.Alias
	}
	return a.Number
}
