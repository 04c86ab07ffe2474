package graphhopper

type GeocodeAPIResponse struct {
	Hits   []Hit  `json:"hits"`
	Locale string `json:"locale"`
}

type Hit struct {
	Point       Point     `json:"point"`
	Extent      []float64 `json:"extent"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	CountryCode string    `json:"countrycode"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	Street      string    `json:"street"`
	HouseNumber string    `json:"housenumber"`
	Postcode    string    `json:"postcode"`
	OsmId       int64     `json:"osm_id"`
	OsmType     string    `json:"osm_type"`
	OsmKey      string    `json:"osm_key"`
	OsmValue    string    `json:"osm_value"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
