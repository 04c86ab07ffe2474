package opentripmap

// PlaceAPIResponse is one entry of the radius search in format=json
type PlaceAPIResponse struct {
	Xid      string  `json:"xid"`
	Name     string  `json:"name"`
	Dist     float64 `json:"dist"`
	Rate     int     `json:"rate"`
	Osm      string  `json:"osm"`
	Wikidata string  `json:"wikidata"`
	Kinds    string  `json:"kinds"`
	Point    Point   `json:"point"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PlaceDetailsAPIResponse is the full record of a single object by xid.
// Unlike the radius search, rate is a string here ("3h", "7").
type PlaceDetailsAPIResponse struct {
	Xid       string `json:"xid"`
	Name      string `json:"name"`
	Kinds     string `json:"kinds"`
	Rate      string `json:"rate"`
	Osm       string `json:"osm"`
	Otm       string `json:"otm"`
	Wikidata  string `json:"wikidata"`
	Wikipedia string `json:"wikipedia"`
	Image     string `json:"image"`
	Point     Point  `json:"point"`
	Bbox      struct {
		LonMin float64 `json:"lon_min"`
		LonMax float64 `json:"lon_max"`
		LatMin float64 `json:"lat_min"`
		LatMax float64 `json:"lat_max"`
	} `json:"bbox"`
	Sources struct {
		Geometry   string   `json:"geometry"`
		Attributes []string `json:"attributes"`
	} `json:"sources"`
	Info struct {
		Src       string `json:"src"`
		SrcId     int    `json:"src_id"`
		Descr     string `json:"descr"`
		Image     string `json:"image"`
		ImgWidth  int    `json:"img_width"`
		ImgHeight int    `json:"img_height"`
	} `json:"info"`
	Preview struct {
		Source string `json:"source"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"preview"`
	WikipediaExtracts struct {
		Title string `json:"title"`
		Text  string `json:"text"`
		Html  string `json:"html"`
	} `json:"wikipedia_extracts"`
}
