package dao

import "gorm.io/gorm"

// InitTables creates missing tables. Existing tables are left alone apart
// from the columns and indexes AutoMigrate adds.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Cafe{},
	)
}

// dropAllTables is used by the integration tests to reset the schema.
func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&Cafe{})
}
