package villa

import domain "villa-service/internal/domain/villa"

// VillaDTO is the villa shape returned to callers.
type VillaDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate"`
	Sqft      int     `json:"sqft"`
	Occupancy int     `json:"occupancy"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}

// VillaCreateDTO represents the request payload for creating a villa.
type VillaCreateDTO struct {
	Name      string  `json:"name" validate:"required,max=30"`
	Details   string  `json:"details" validate:"max=500"`
	Rate      float64 `json:"rate" validate:"gt=0"`
	Sqft      int     `json:"sqft" validate:"gte=0"`
	Occupancy int     `json:"occupancy" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl" validate:"omitempty,url"`
	Amenity   string  `json:"amenity" validate:"max=500"`
}

// VillaUpdateDTO represents the request payload for updating a villa.
// ID must match the identifier in the path.
type VillaUpdateDTO struct {
	ID        int     `json:"id" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required,max=30"`
	Details   string  `json:"details" validate:"max=500"`
	Rate      float64 `json:"rate" validate:"gt=0"`
	Sqft      int     `json:"sqft" validate:"gte=0"`
	Occupancy int     `json:"occupancy" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl" validate:"omitempty,url"`
	Amenity   string  `json:"amenity" validate:"max=500"`
}

// ListVillasRequest represents the request payload for listing villas.
// A nil Occupancy disables the occupancy filter.
type ListVillasRequest struct {
	Occupancy  *int
	Search     string
	PageNumber int
	PageSize   int
}

// ListVillasResponse represents the response payload for villa listing.
type ListVillasResponse struct {
	Villas []VillaDTO
	Page   domain.Page
}
