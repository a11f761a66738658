// Package model contains domain models passed between layers.
package model

// Coordinates is a geocoded point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Location describes where a volunteer lives or an event takes place.
// Coordinates is nil when the address has not been geocoded.
type Location struct {
	Address     string       `json:"address,omitempty" yaml:"address"`
	City        string       `json:"city,omitempty" yaml:"city"`
	State       string       `json:"state,omitempty" yaml:"state"`
	ZipCode     string       `json:"zipCode,omitempty" yaml:"zip_code"`
	Coordinates *Coordinates `json:"coordinates,omitempty" yaml:"coordinates"`
}

// HasCoordinates reports whether the location carries a geocoded point.
func (l Location) HasCoordinates() bool {
	return l.Coordinates != nil
}

// Slots flags the parts of a day a volunteer can help.
type Slots struct {
	Morning   bool `json:"morning" yaml:"morning"`
	Afternoon bool `json:"afternoon" yaml:"afternoon"`
	Evening   bool `json:"evening" yaml:"evening"`
}

// Availability is the weekly grid a volunteer fills in on their profile.
type Availability struct {
	Weekdays Slots `json:"weekdays" yaml:"weekdays"`
	Weekends Slots `json:"weekends" yaml:"weekends"`
}

// Preferences captures how far a volunteer will travel and what they like doing.
// A zero MaxDistanceMiles means the volunteer never set one.
type Preferences struct {
	MaxDistanceMiles float64  `json:"maxDistance,omitempty" yaml:"max_distance_miles"`
	EventTypes       []string `json:"eventTypes,omitempty" yaml:"event_types"`
}

// Volunteer is a registered volunteer profile.
type Volunteer struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Email        string       `json:"email,omitempty" yaml:"email"`
	Phone        string       `json:"phone,omitempty" yaml:"phone"`
	Skills       []string     `json:"skills" yaml:"skills"`
	Availability Availability `json:"availability" yaml:"availability"`
	Preferences  Preferences  `json:"preferences" yaml:"preferences"`
	Location     Location     `json:"location" yaml:"location"`
	Active       bool         `json:"isActive" yaml:"active"`
}

// PrefersType reports whether eventType is among the volunteer's preferred types.
func (v Volunteer) PrefersType(eventType string) bool {
	for _, t := range v.Preferences.EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}
