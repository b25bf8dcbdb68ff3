package domain

// Session is a time-bounded proof of authentication for one user. Its ID is
// the owning user's ID, so there is at most one session per user; creating a
// new one replaces any prior session for that user.
type Session struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	// Timer is the moment the session was created or last revalidated, in
	// Unix milliseconds. Expiry is measured from it.
	Timer int64 `json:"timer"`
}
