package geo

import "time"

type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// GeoPlace memoizes a geocoding result for an exact address string.
// Lon and Lat stay nil when an attempt produced nothing.
type GeoPlace struct {
	ID      uint      `gorm:"primaryKey"`
	Address string    `gorm:"size:250;uniqueIndex;not null"`
	Lon     *float64
	Lat     *float64
	SavedAt time.Time `gorm:"index;not null"`
}

func (GeoPlace) TableName() string {
	return "geo_places"
}

func (p GeoPlace) Coordinate() *Coordinate {
	if p.Lon == nil || p.Lat == nil {
		return nil
	}
	return &Coordinate{Lon: *p.Lon, Lat: *p.Lat}
}
