package registry

// BankProfile is one configured bank integration. Driver decides which
// source implementation handles it; the remaining fields are
// driver-specific connection parameters.
type BankProfile struct {
	Name     string
	Driver   string // mongo, postgres, lambda, dal
	URI      string
	Database string
	DSN      string
	Function string
	Region   string
	BaseURL  string
}

// ConfigRegistry reads the per-bank profile file.
type ConfigRegistry interface {
	GetProfiles() ([]BankProfile, error)
	GetProfile(name string) (BankProfile, error)
}
