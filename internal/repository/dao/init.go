package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Student{},
		&Stand{},
		&Menu{},
		&Discount{},
		&Order{},
		&OrderItem{},
	)
}

// DropAllTables wipes the public schema. Only meant for local resets.
func DropAllTables(db *gorm.DB) error {
	// Disable foreign key checks
	db.Exec("SET CONSTRAINTS ALL DEFERRED;")

	var tableNames []string
	if err := db.Table("information_schema.tables").
		Where("table_schema = ?", "public").
		Pluck("table_name", &tableNames).Error; err != nil {
		return err
	}

	for _, tableName := range tableNames {
		if err := db.Exec("DROP TABLE IF EXISTS " + tableName + " CASCADE").Error; err != nil {
			return err
		}
	}

	db.Exec("SET CONSTRAINTS ALL IMMEDIATE;")

	return nil
}
