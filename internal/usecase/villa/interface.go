package villa

import "context"

// Service defines the interface for villa business logic operations.
type Service interface {
	ListVillas(ctx context.Context, in ListVillasRequest) (*ListVillasResponse, error)
	GetVilla(ctx context.Context, id int) (*VillaDTO, error)
	CreateVilla(ctx context.Context, in *VillaCreateDTO) (*VillaDTO, error)
	UpdateVilla(ctx context.Context, id int, in *VillaUpdateDTO) error
	DeleteVilla(ctx context.Context, id int) error
}
