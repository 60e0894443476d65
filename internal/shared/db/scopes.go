package db

import (
	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/shared/query"
)

// Paginate applies the offset and limit of a page filter.
//
//	tx.Model(&models.AirlineModel{}).Scopes(db.Paginate(filter.PageFilter)).Find(&rows)
func Paginate(p query.PageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit())
	}
}

// ActiveOnly restricts a query to rows whose is_active flag is set.
// alias may be empty when the query touches a single table.
func ActiveOnly(alias string) func(db *gorm.DB) *gorm.DB {
	column := "is_active"
	if alias != "" {
		column = alias + ".is_active"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", true)
	}
}
