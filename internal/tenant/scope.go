package tenant

import "gorm.io/gorm"

// Scope restricts a query to one farm's records.
func Scope(farmID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("farm_id = ?", farmID)
	}
}
