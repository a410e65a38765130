package Models

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbFile := os.Getenv("DB_FILE")
	if dbFile == "" {
		dbFile = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// Migrate creates the schema in dependency order: vendors first, then
// purchases, then the tables referencing purchases and vendors.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Vendor{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&Purchase{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Payment{}, &CheckIssuance{})
}
