package entity

type PropertyType struct {
	Base
	Name string `db:"name"`
}

type Location struct {
	Base
	City    string `db:"city"`
	State   string `db:"state"`
	Country string `db:"country"`
	ZipCode string `db:"zip_code"`
}

type Amenity struct {
	Base
	Name string `db:"name"`
}
