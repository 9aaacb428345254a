package domain

// Product is a row in the legacy catalog. It predates the link-in-bio
// feature set and has no ownership relation; ids are client-assigned.
type Product struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int64
}
