package domain

// Lawsuit is a tracked court case owned by a single user.
// ID is generated by the store and echoed inside the record.
type Lawsuit struct {
	ID        string
	Username  string
	URL       string
	Plaintiff string
	Defendant string
	Note      string
	Status    string
	// Created is the client-supplied creation time in epoch milliseconds.
	Created int64
}

// OwnedBy reports whether username owns the lawsuit.
func (l *Lawsuit) OwnedBy(username string) bool {
	return l.Username == username
}
