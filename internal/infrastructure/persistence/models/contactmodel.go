package models

type ContactModel struct {
	ID          string  `gorm:"primaryKey;size:32"`
	Name        string  `gorm:"size:100;not null"`
	Email       string  `gorm:"size:255;not null;index"`
	Phone       string  `gorm:"size:40"`
	Subject     string  `gorm:"size:200"`
	Message     string  `gorm:"type:text;not null"`
	AirlineID   *string `gorm:"size:32;index"`
	OfficeID    *string `gorm:"size:32;index"`
	InquiryType string  `gorm:"size:20;not null;index"`
	Status      string  `gorm:"size:20;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	Response    string  `gorm:"type:text"`
	AssignedTo  *string `gorm:"size:64;index"`
	ResolvedAt  *int64
	IPAddress   string `gorm:"size:45"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: airline_id and office_id are soft references and may dangle.
}

func (ContactModel) TableName() string {
	return "contacts"
}
