package types

// PointOfInterest is a nearby place returned by a radius search
type PointOfInterest struct {
	ID          string // opaque token used to fetch the description
	Name        string
	Kinds       string // comma separated category tags
	Coordinates Coords
	Rate        int
	Distance    float64 // meters from the search center
}

// PointDescription is the descriptive text of a single point of interest.
// Text may legitimately be empty.
type PointDescription struct {
	ID    string
	Name  string
	Text  string
	Image Image
}

// Image holds the media metadata attached to a description
type Image struct {
	URL    string
	Source string
	Width  int
	Height int
}
