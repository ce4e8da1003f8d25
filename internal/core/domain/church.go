package domain

// Church is an organizational entity participants and users belong to.
type Church struct {
	ChurchID string
	Nome     string
}

// District groups churches administratively. There is no CRUD surface for
// districts; rows are seeded by migration and only joined at read time.
type District struct {
	DistrictID string
	Nome       string
}
