package models

import "gorm.io/datatypes"

type AirlineModel struct {
	ID             string         `gorm:"primaryKey;size:32"`
	Name           string         `gorm:"size:100;not null"`
	Slug           string         `gorm:"uniqueIndex:idx_airlines_slug;size:120;not null"`
	// ActiveNameKey holds the folded name while the airline is active and NULL
	// otherwise, so the unique index only covers active airlines.
	ActiveNameKey  *string        `gorm:"uniqueIndex:idx_airlines_active_name_key;size:100"`
	Logo           string         `gorm:"size:500;not null"`
	Category       string         `gorm:"size:20;not null;index"`
	Fleet          datatypes.JSON `gorm:"column:fleet"`
	Services       datatypes.JSON `gorm:"column:services"`
	AboutLocation  string         `gorm:"type:text"`
	AboutOverview  string         `gorm:"type:text"`
	AboutNetwork   string         `gorm:"type:text"`
	AboutFleet     string         `gorm:"type:text"`
	AboutAlliance  string         `gorm:"type:text"`
	AboutSupport   string         `gorm:"type:text"`
	ContactPhone   string         `gorm:"size:40"`
	ContactEmail   string         `gorm:"size:255"`
	ContactWebsite string         `gorm:"size:500"`
	Rating         float64        `gorm:"not null;default:0;index"`
	TotalReviews   int            `gorm:"not null;default:0"`
	IsActive       bool           `gorm:"not null;index"`
	Version        int            `gorm:"not null;default:1"`
	CreatedAt      int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (AirlineModel) TableName() string {
	return "airlines"
}
