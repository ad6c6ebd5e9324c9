package villanumber

import "context"

// Service defines the interface for villa number business logic operations.
type Service interface {
	ListVillaNumbers(ctx context.Context, in ListVillaNumbersRequest) (*ListVillaNumbersResponse, error)
	GetVillaNumber(ctx context.Context, villaNo int) (*VillaNumberDTO, error)
	CreateVillaNumber(ctx context.Context, in *VillaNumberCreateDTO) (*VillaNumberDTO, error)
	UpdateVillaNumber(ctx context.Context, villaNo int, in *VillaNumberUpdateDTO) error
	DeleteVillaNumber(ctx context.Context, villaNo int) error
}
