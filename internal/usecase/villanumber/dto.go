package villanumber

import (
	domain "villa-service/internal/domain/villa"
	villauc "villa-service/internal/usecase/villa"
)

// VillaNumberDTO is the villa number shape returned to callers. Villa is
// the owning villa when it could be loaded.
type VillaNumberDTO struct {
	VillaNo        int               `json:"villaNo"`
	VillaID        int               `json:"villaID"`
	SpecialDetails string            `json:"specialDetails"`
	Villa          *villauc.VillaDTO `json:"villa,omitempty"`
}

// VillaNumberCreateDTO represents the request payload for creating a villa number.
type VillaNumberCreateDTO struct {
	VillaNo        int    `json:"villaNo" validate:"required,gt=0"`
	VillaID        int    `json:"villaID" validate:"required,gt=0"`
	SpecialDetails string `json:"specialDetails" validate:"max=500"`
}

// VillaNumberUpdateDTO represents the request payload for updating a villa
// number. VillaNo must match the identifier in the path.
type VillaNumberUpdateDTO struct {
	VillaNo        int    `json:"villaNo" validate:"required,gt=0"`
	VillaID        int    `json:"villaID" validate:"required,gt=0"`
	SpecialDetails string `json:"specialDetails" validate:"max=500"`
}

// ListVillaNumbersRequest represents the request payload for listing
// villa numbers. A zero VillaID lists every villa number.
type ListVillaNumbersRequest struct {
	VillaID    int
	PageNumber int
	PageSize   int
}

// ListVillaNumbersResponse represents the response payload for villa number listing.
type ListVillaNumbersResponse struct {
	VillaNumbers []VillaNumberDTO
	Page         domain.Page
}
