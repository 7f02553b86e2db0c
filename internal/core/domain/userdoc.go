package domain

// UserDoc is a document link saved by a user.
type UserDoc struct {
	ID       string
	Username string
	Title    string
	URL      string
}

// Link is the public projection of a UserDoc.
type Link struct {
	Title string
	URL   string
}
