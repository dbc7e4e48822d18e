package domain

// Org carries identity only. All financial state for an org is derived
// from the ledger and the campaign store, never persisted on the org.
type Org struct {
	ID string
}

// Scope is the breadth of a requester's read permission over orgs.
const (
	ScopeOwn = "own"
	ScopeAll = "all"
)

// Requester identifies the already-authenticated caller of a read
// operation. Visibility enforcement itself happens in the org directory;
// this struct only transports the identity and scope downstream.
type Requester struct {
	OrgID string
	Scope string
}
