package models

type OfficeModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	AirlineID string `gorm:"size:32;not null;uniqueIndex:idx_offices_airline_city,priority:1"`
	// Slug is a routing convenience and is deliberately not unique.
	Slug      string `gorm:"size:240;not null;index"`
	City      string `gorm:"size:100;not null"`
	CityKey   string `gorm:"size:100;not null;uniqueIndex:idx_offices_airline_city,priority:2"`
	Country   string `gorm:"size:100;not null;index"`
	Address   string `gorm:"size:300;not null"`
	Phone     string `gorm:"size:40;not null"`
	Email     string `gorm:"size:255"`
	OpensAt   string `gorm:"size:5;not null"`
	ClosesAt  string `gorm:"size:5;not null"`
	PhotoURL  string `gorm:"size:500"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// The airline reference is checked by the office use cases.
}

func (OfficeModel) TableName() string {
	return "offices"
}
