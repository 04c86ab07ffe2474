package types

import "strings"

// LocationCandidate is one geocoding hit for a free-text place query
type LocationCandidate struct {
	Name        string
	Country     string
	State       string
	City        string
	Street      string
	Coordinates Coords
}

// Summary renders the candidate as "name, country, state, city, street".
// Empty fields stay empty so the column positions never shift.
func (c LocationCandidate) Summary() string {
	return strings.Join([]string{c.Name, c.Country, c.State, c.City, c.Street}, ", ")
}
