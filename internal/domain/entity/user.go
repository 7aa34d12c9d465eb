package entity

import (
	"time"
)

// User is the owner of accounts. Only the fields the ledger touches are modelled.
type User struct {
	ID        uint64
	Email     string
	FirstName string
	LastName  string
	// Accounts is the denormalized list of account names, in creation order
	Accounts  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAccountName checks the denormalized list for a name
func (u *User) HasAccountName(name string) bool {
	for _, n := range u.Accounts {
		if n == name {
			return true
		}
	}
	return false
}

// AccountNamesDrift compares the denormalized list against the names derived
// from the accounts table. It returns names missing from the list and names
// listed without a backing account.
func AccountNamesDrift(listed, actual []string) (missing, orphaned []string) {
	listedSet := make(map[string]struct{}, len(listed))
	for _, n := range listed {
		listedSet[n] = struct{}{}
	}
	actualSet := make(map[string]struct{}, len(actual))
	for _, n := range actual {
		actualSet[n] = struct{}{}
		if _, ok := listedSet[n]; !ok {
			missing = append(missing, n)
		}
	}
	for _, n := range listed {
		if _, ok := actualSet[n]; !ok {
			orphaned = append(orphaned, n)
		}
	}
	return missing, orphaned
}
