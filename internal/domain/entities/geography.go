package entities

import "errors"

type Country struct {
	Code string
	Name string
}

func NewCountry(code, name string) *Country {
	return &Country{Code: code, Name: name}
}

func (c *Country) Validate() error {
	if len(c.Code) != 2 {
		return errors.New("country code must be two letters")
	}
	if c.Name == "" {
		return errors.New("country name must not be empty")
	}
	return nil
}

// Town is immutable once created: there is no update path by design of
// the API surface.
type Town struct {
	ID          uint
	Name        string
	CountryCode string
	Latitude    float64
	Longitude   float64
}

func NewTown(name, countryCode string, latitude, longitude float64) *Town {
	return &Town{
		Name:        name,
		CountryCode: countryCode,
		Latitude:    latitude,
		Longitude:   longitude,
	}
}

func (t *Town) Validate() error {
	if t.Name == "" {
		return errors.New("town name must not be empty")
	}
	if len(t.CountryCode) != 2 {
		return errors.New("country code must be two letters")
	}
	if t.Latitude < -90 || t.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if t.Longitude < -180 || t.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// PersonTown links a person to a town they are active in.
type PersonTown struct {
	PersonID uint
	TownID   uint
}
