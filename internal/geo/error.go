package geo

import "errors"

var (
	errGeocoderStatus   = errors.New("unexpected geocoder status")
	errGeocoderResponse = errors.New("malformed geocoder response")
	errHotCacheValue    = errors.New("malformed hot cache value")
)
