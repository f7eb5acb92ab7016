package order

import "gorm.io/gorm"

// RunSchemaMigration expects the catalog tables to exist.
func RunSchemaMigration(db *gorm.DB) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}
