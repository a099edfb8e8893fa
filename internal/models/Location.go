package models

// Location is a named geographic point the user can search for, view and pin.
// Identity is the ID: two values with the same ID describe the same place, and
// the later one wins on upsert.
type Location struct {
	ID         string  `json:"id" example:"1"`
	Name       string  `json:"name" example:"Paris City, Country"`
	Lat        float64 `json:"lat" example:"40.7128"`
	Lon        float64 `json:"lon" example:"-74.006"`
	IsFavorite bool    `json:"isFavorite"`
}
