package villa

import domain "villa-service/internal/domain/villa"

// ToDTO maps a villa entity to its DTO.
func ToDTO(v *domain.Villa) VillaDTO {
	return VillaDTO{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Sqft:      v.Sqft,
		Occupancy: v.Occupancy,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

func fromCreateDTO(in *VillaCreateDTO) *domain.Villa {
	return &domain.Villa{
		Name:      in.Name,
		Details:   in.Details,
		Rate:      in.Rate,
		Sqft:      in.Sqft,
		Occupancy: in.Occupancy,
		ImageURL:  in.ImageURL,
		Amenity:   in.Amenity,
	}
}

func fromUpdateDTO(in *VillaUpdateDTO) *domain.Villa {
	return &domain.Villa{
		ID:        in.ID,
		Name:      in.Name,
		Details:   in.Details,
		Rate:      in.Rate,
		Sqft:      in.Sqft,
		Occupancy: in.Occupancy,
		ImageURL:  in.ImageURL,
		Amenity:   in.Amenity,
	}
}
