package domain

// Profile is the public view of a user's page: identity fields, links,
// and presentation settings in one shape. This is the single canonical
// public-profile contract.
type Profile struct {
	Username string
	FullName string
	Bio      string
	Links    []Link
	Settings Settings
}
