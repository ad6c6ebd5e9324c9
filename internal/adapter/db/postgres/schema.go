package postgres

import (
	"time"

	"villa-service/internal/domain/villa"
)

// VillaSchema represents the database schema for the villas table.
type VillaSchema struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`                        // Surrogate key
	Name        string    `gorm:"not null;size:30"`                                // Display name
	NameKey     string    `gorm:"column:name_key;not null;default:'';uniqueIndex"` // villa.NameKey(Name), unique
	Details     string    `gorm:"type:text"`                                       // Free-text description
	Rate        float64   `gorm:"not null"`                                        // Nightly rate
	Sqft        int       `gorm:"not null;default:0"`                              // Floor area
	Occupancy   int       `gorm:"not null;default:0"`                              // Guest capacity
	ImageURL    string    `gorm:"column:image_url"`                                // Cover picture
	Amenity     string    `gorm:"type:text"`                                       // Amenities
	CreatedDate time.Time `gorm:"column:created_date;autoCreateTime"`              // Set on insert
	UpdatedDate time.Time `gorm:"column:updated_date;autoUpdateTime"`              // Set on every write
}

// TableName specifies the table name for the VillaSchema model.
func (VillaSchema) TableName() string {
	return "villas"
}

// VillaNumberSchema represents the database schema for the villa_numbers table.
type VillaNumberSchema struct {
	VillaNo        int          `gorm:"primaryKey;autoIncrement:false"`                                                 // Natural key
	VillaID        int          `gorm:"not null;index"`                                                                 // Owning villa
	Villa          *VillaSchema `gorm:"foreignKey:VillaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"` // Loaded on reads
	SpecialDetails string       `gorm:"type:text"`                                                                      // Free-text note
	CreatedDate    time.Time    `gorm:"column:created_date;autoCreateTime"`                                             // Set on insert
	UpdatedDate    time.Time    `gorm:"column:updated_date;autoUpdateTime"`                                             // Set on every write
}

// TableName specifies the table name for the VillaNumberSchema model.
func (VillaNumberSchema) TableName() string {
	return "villa_numbers"
}

func villaFromSchema(m *VillaSchema) *villa.Villa {
	return &villa.Villa{
		ID:          m.ID,
		Name:        m.Name,
		Details:     m.Details,
		Rate:        m.Rate,
		Sqft:        m.Sqft,
		Occupancy:   m.Occupancy,
		ImageURL:    m.ImageURL,
		Amenity:     m.Amenity,
		CreatedDate: m.CreatedDate,
		UpdatedDate: m.UpdatedDate,
	}
}

func villaToSchema(v *villa.Villa) VillaSchema {
	return VillaSchema{
		ID:          v.ID,
		Name:        v.Name,
		NameKey:     villa.NameKey(v.Name),
		Details:     v.Details,
		Rate:        v.Rate,
		Sqft:        v.Sqft,
		Occupancy:   v.Occupancy,
		ImageURL:    v.ImageURL,
		Amenity:     v.Amenity,
		CreatedDate: v.CreatedDate,
		UpdatedDate: v.UpdatedDate,
	}
}

func villaNumberFromSchema(m *VillaNumberSchema) *villa.VillaNumber {
	vn := &villa.VillaNumber{
		VillaNo:        m.VillaNo,
		VillaID:        m.VillaID,
		SpecialDetails: m.SpecialDetails,
		CreatedDate:    m.CreatedDate,
		UpdatedDate:    m.UpdatedDate,
	}
	if m.Villa != nil {
		vn.Villa = villaFromSchema(m.Villa)
	}
	return vn
}

func villaNumberToSchema(vn *villa.VillaNumber) VillaNumberSchema {
	return VillaNumberSchema{
		VillaNo:        vn.VillaNo,
		VillaID:        vn.VillaID,
		SpecialDetails: vn.SpecialDetails,
		CreatedDate:    vn.CreatedDate,
		UpdatedDate:    vn.UpdatedDate,
	}
}
