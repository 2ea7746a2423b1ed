package domain

// Profile identifies one of the two fixed salesperson identities the whole
// dashboard is partitioned by. The set is closed and not user-configurable.
type Profile string

const (
	ProfileHarley   Profile = "harley"
	ProfileGiovanni Profile = "giovanni"
)

// Profiles lists every known profile, in display order.
var Profiles = []Profile{ProfileHarley, ProfileGiovanni}

func (p Profile) Valid() bool {
	return p == ProfileHarley || p == ProfileGiovanni
}
