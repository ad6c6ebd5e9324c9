package villa

import "time"

// Villa represents a rentable villa.
type Villa struct {
	ID          int       // ID is assigned by the store and never changes
	Name        string    // Name is unique, compared case-insensitively
	Details     string    // Details is a free-text description
	Rate        float64   // Rate is the nightly price
	Sqft        int       // Sqft is the floor area
	Occupancy   int       // Occupancy is the maximum number of guests
	ImageURL    string    // ImageURL points at the cover picture
	Amenity     string    // Amenity lists the amenities as free text
	CreatedDate time.Time // CreatedDate is set once on create
	UpdatedDate time.Time // UpdatedDate is refreshed on every update
}

// VillaNumber represents a numbered unit belonging to a villa.
type VillaNumber struct {
	VillaNo        int       // VillaNo is the natural key
	VillaID        int       // VillaID references Villa.ID
	SpecialDetails string    // SpecialDetails is a free-text note
	CreatedDate    time.Time // CreatedDate is set once on create
	UpdatedDate    time.Time // UpdatedDate is refreshed on every update
	Villa          *Villa    // Villa is the owning villa when it was loaded
}
