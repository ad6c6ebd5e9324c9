package villanumber

import (
	domain "villa-service/internal/domain/villa"
	villauc "villa-service/internal/usecase/villa"
)

// ToDTO maps a villa number entity to its DTO.
func ToDTO(vn *domain.VillaNumber) VillaNumberDTO {
	dto := VillaNumberDTO{
		VillaNo:        vn.VillaNo,
		VillaID:        vn.VillaID,
		SpecialDetails: vn.SpecialDetails,
	}
	if vn.Villa != nil {
		v := villauc.ToDTO(vn.Villa)
		dto.Villa = &v
	}
	return dto
}

func fromCreateDTO(in *VillaNumberCreateDTO) *domain.VillaNumber {
	return &domain.VillaNumber{
		VillaNo:        in.VillaNo,
		VillaID:        in.VillaID,
		SpecialDetails: in.SpecialDetails,
	}
}

func fromUpdateDTO(in *VillaNumberUpdateDTO) *domain.VillaNumber {
	return &domain.VillaNumber{
		VillaNo:        in.VillaNo,
		VillaID:        in.VillaID,
		SpecialDetails: in.SpecialDetails,
	}
}
