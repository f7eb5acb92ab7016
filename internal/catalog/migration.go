package catalog

import "gorm.io/gorm"

func RunSchemaMigration(db *gorm.DB) error {
	return db.AutoMigrate(&ProductCategory{}, &Product{}, &Restaurant{}, &MenuItem{})
}
