package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"villa-service/internal/domain/villa"
)

// Migrate creates or updates the villas and villa_numbers tables.
func Migrate(db *gorm.DB) error {
	if err := backfillNameKeys(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := db.AutoMigrate(&VillaSchema{}, &VillaNumberSchema{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// backfillNameKeys adds name_key to a villas table created before the
// column existed and fills it, so the unique index can be built on it.
func backfillNameKeys(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&VillaSchema{}) || m.HasColumn(&VillaSchema{}, "NameKey") {
		return nil
	}
	if err := m.AddColumn(&VillaSchema{}, "NameKey"); err != nil {
		return fmt.Errorf("add name_key: %w", err)
	}

	var rows []VillaSchema
	if err := db.Select("id", "name").Find(&rows).Error; err != nil {
		return fmt.Errorf("read villa names: %w", err)
	}
	for _, row := range rows {
		err := db.Model(&VillaSchema{}).Where("id = ?", row.ID).
			UpdateColumn("name_key", villa.NameKey(row.Name)).Error
		if err != nil {
			return fmt.Errorf("fill name_key for villa %d: %w", row.ID, err)
		}
	}
	return nil
}

var seededAt = time.Date(2024, time.January, 30, 12, 20, 47, 0, time.UTC)

// SeedVillas returns the villas inserted by Seed.
func SeedVillas() []VillaSchema {
	villas := []VillaSchema{
		{ID: 1, Name: "Royal Villa", Details: "Fusce 11 tincidunt maximus leo, sed scelerisque massa auctor sit amet. Donec ex mauris, hendrerit quis nibh ac, efficitur fringilla enim.", Rate: 200, Sqft: 550, Occupancy: 4, ImageURL: "https://dotnetmasteryimages.blob.core.windows.net/bluevillaimages/villa3.jpg", CreatedDate: seededAt},
		{ID: 2, Name: "Premium Pool Villa", Details: "Fusce 11 tincidunt maximus leo, sed scelerisque massa auctor sit amet. Donec ex mauris, hendrerit quis nibh ac, efficitur fringilla enim.", Rate: 300, Sqft: 550, Occupancy: 4, ImageURL: "https://dotnetmasteryimages.blob.core.windows.net/bluevillaimages/villa1.jpg", CreatedDate: seededAt},
		{ID: 3, Name: "Luxury Pool Villa", Details: "Fusce 11 tincidunt maximus leo, sed scelerisque massa auctor sit amet. Donec ex mauris, hendrerit quis nibh ac, efficitur fringilla enim.", Rate: 400, Sqft: 750, Occupancy: 4, ImageURL: "https://dotnetmasteryimages.blob.core.windows.net/bluevillaimages/villa4.jpg", CreatedDate: seededAt},
		{ID: 4, Name: "Diamond Villa", Details: "Fusce 11 tincidunt maximus leo, sed scelerisque massa auctor sit amet. Donec ex mauris, hendrerit quis nibh ac, efficitur fringilla enim.", Rate: 550, Sqft: 900, Occupancy: 4, ImageURL: "https://dotnetmasteryimages.blob.core.windows.net/bluevillaimages/villa5.jpg", CreatedDate: seededAt},
		{ID: 5, Name: "Diamond Pool Villa", Details: "Fusce 11 tincidunt maximus leo, sed scelerisque massa auctor sit amet. Donec ex mauris, hendrerit quis nibh ac, efficitur fringilla enim.", Rate: 600, Sqft: 1100, Occupancy: 4, ImageURL: "https://dotnetmasteryimages.blob.core.windows.net/bluevillaimages/villa2.jpg", CreatedDate: seededAt},
	}
	for i := range villas {
		villas[i].NameKey = villa.NameKey(villas[i].Name)
	}
	return villas
}

// SeedVillaNumbers returns the villa numbers inserted by Seed.
func SeedVillaNumbers() []VillaNumberSchema {
	return []VillaNumberSchema{
		{VillaNo: 101, VillaID: 1, SpecialDetails: "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.", CreatedDate: seededAt},
		{VillaNo: 201, VillaID: 2, SpecialDetails: "Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.", CreatedDate: seededAt},
		{VillaNo: 301, VillaID: 3, SpecialDetails: "Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur.", CreatedDate: seededAt},
		{VillaNo: 401, VillaID: 4, SpecialDetails: "Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.", CreatedDate: seededAt},
		{VillaNo: 501, VillaID: 5, SpecialDetails: "Sunt in culpa qui officia deserunt mollit anim id est laborum.", CreatedDate: seededAt},
	}
}

// Seed inserts the reference villas and villa numbers. Rows that already
// exist are left untouched, so Seed can run on every start.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	villas := SeedVillas()
	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&villas)
	if res.Error != nil {
		return fmt.Errorf("failed to seed villas: %w", res.Error)
	}
	log.Info("villas seeded", zap.Int64("inserted", res.RowsAffected))

	// Explicit ids do not advance the postgres sequence.
	if db.Dialector.Name() == "postgres" {
		err := db.WithContext(ctx).Exec(
			"SELECT setval(pg_get_serial_sequence('villas', 'id'), COALESCE((SELECT MAX(id) FROM villas), 1))",
		).Error
		if err != nil {
			return fmt.Errorf("failed to reset villas sequence: %w", err)
		}
	}

	numbers := SeedVillaNumbers()
	res = db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&numbers)
	if res.Error != nil {
		return fmt.Errorf("failed to seed villa numbers: %w", res.Error)
	}
	log.Info("villa numbers seeded", zap.Int64("inserted", res.RowsAffected))

	return nil
}
