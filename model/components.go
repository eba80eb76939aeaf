package model

// RepoIdentifier holds the parsed owner/name of a hosted repository
type RepoIdentifier struct {
	Owner      string
	Repository string
}

// String returns the identifier in "owner/repo" form.
func (id RepoIdentifier) String() string {
	return id.Owner + "/" + id.Repository
}
