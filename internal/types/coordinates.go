package types

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Point returns the coordinates as an orb point; orb orders them [lon, lat]
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// DistanceTo returns the great-circle distance in meters
func (c Coords) DistanceTo(other Coords) float64 {
	return geo.Distance(c.Point(), other.Point())
}
