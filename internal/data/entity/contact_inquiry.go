package entity

type ContactInquiry struct {
	Base
	PropertyID int64  `db:"property_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Message    string `db:"message"`
}
