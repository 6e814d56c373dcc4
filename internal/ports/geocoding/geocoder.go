package geocoding

import "context"

// Place es el resultado de una geocodificación inversa.
type Place struct {
	AdminArea string // provincia / estado
	Locality  string // ciudad
	Street    string
}

type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (Place, error)
}
