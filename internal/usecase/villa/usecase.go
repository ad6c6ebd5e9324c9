package villa

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "villa-service/internal/domain/villa"
	"villa-service/internal/usecase"
	apperrors "villa-service/pkg/errors"
	"villa-service/pkg/logger"
	"villa-service/pkg/security"
)

const (
	msgVillaExists     = "Villa already Exists!"
	msgVillaReferenced = "Villa is still referenced by villa numbers"
)

// Usecase implements the business logic for villa management operations.
type Usecase struct {
	villas   domain.Repository[domain.Villa]       // Repository for villas
	numbers  domain.Repository[domain.VillaNumber] // Repository for villa numbers, used for delete checks
	log      *zap.Logger                           // Logger for structured logging
	validate *validator.Validate                   // Validator for request validation
}

// New creates a new instance of Usecase.
func New(villas domain.Repository[domain.Villa], numbers domain.Repository[domain.VillaNumber], log *zap.Logger) *Usecase {
	return &Usecase{
		villas:   villas,
		numbers:  numbers,
		log:      log,
		validate: usecase.NewValidator(),
	}
}

// ListVillas returns villas matching the optional occupancy and name search.
func (uc *Usecase) ListVillas(ctx context.Context, in ListVillasRequest) (*ListVillasResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	var filters []domain.Filter
	if in.Occupancy != nil {
		if *in.Occupancy < 0 {
			return nil, apperrors.NewValidationError("Occupancy must be at least 0")
		}
		filters = append(filters, domain.ByOccupancy(*in.Occupancy))
	}

	search, err := security.ValidateSearchQuery(in.Search)
	if err != nil {
		log.Warn("invalid search query", zap.String("search", in.Search), zap.Error(err))
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid search query: %v", err))
	}
	if search != "" {
		filters = append(filters, domain.NameContains(search))
	}

	page := domain.NewPage(in.PageNumber, in.PageSize)
	log.Debug("listing villas", zap.String("search", search), zap.Int("page", page.Number), zap.Int("size", page.Size))

	villas, err := uc.villas.GetAll(ctx, page, filters...)
	if err != nil {
		log.Error("failed to list villas", zap.Error(err))
		return nil, fmt.Errorf("failed to list villas: %w", err)
	}

	out := make([]VillaDTO, len(villas))
	for i := range villas {
		out[i] = ToDTO(&villas[i])
	}
	return &ListVillasResponse{Villas: out, Page: page}, nil
}

// GetVilla returns one villa by id.
func (uc *Usecase) GetVilla(ctx context.Context, id int) (*VillaDTO, error) {
	log := logger.WithContext(ctx, uc.log)

	if id <= 0 {
		log.Warn("get villa validation failed", zap.Int("id", id), zap.String("reason", "invalid id"))
		return nil, apperrors.NewValidationError("ID must be greater than 0")
	}

	v, err := uc.villas.Get(ctx, domain.ByID(id))
	if err != nil {
		log.Error("failed to get villa", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get villa: %w", err)
	}
	if v == nil {
		return nil, apperrors.NewNotFoundError("villa", "")
	}

	dto := ToDTO(v)
	return &dto, nil
}

// CreateVilla creates a villa after validating the request and checking
// that no villa already uses the name.
func (uc *Usecase) CreateVilla(ctx context.Context, in *VillaCreateDTO) (*VillaDTO, error) {
	log := logger.WithContext(ctx, uc.log)

	if in == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, usecase.FormatValidationError(err)
	}

	log.Info("creating villa", zap.String("name", in.Name))

	if err := uc.ensureNameFree(ctx, in.Name, 0); err != nil {
		return nil, err
	}

	v := fromCreateDTO(in)
	if err := uc.villas.Create(ctx, v); err != nil {
		log.Error("failed to create villa", zap.Error(err))
		return nil, fmt.Errorf("failed to create villa: %w", err)
	}

	dto := ToDTO(v)
	return &dto, nil
}

// UpdateVilla replaces the villa identified by id.
func (uc *Usecase) UpdateVilla(ctx context.Context, id int, in *VillaUpdateDTO) error {
	log := logger.WithContext(ctx, uc.log)

	if in == nil {
		return apperrors.NewValidationError("request body is required")
	}
	if in.ID != id {
		log.Warn("update villa id mismatch", zap.Int("path_id", id), zap.Int("body_id", in.ID))
		return apperrors.NewValidationError("ID in body does not match the path")
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return usecase.FormatValidationError(err)
	}

	log.Info("updating villa", zap.Int("id", id), zap.String("name", in.Name))

	if err := uc.ensureNameFree(ctx, in.Name, id); err != nil {
		return err
	}

	existing, err := uc.villas.Get(ctx, domain.ByID(id))
	if err != nil {
		log.Error("failed to get villa", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("failed to get villa: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("villa", "")
	}

	v := fromUpdateDTO(in)
	v.CreatedDate = existing.CreatedDate
	if err := uc.villas.Update(ctx, v); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		log.Error("failed to update villa", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("failed to update villa: %w", err)
	}
	return nil
}

// DeleteVilla removes a villa that no villa number references.
func (uc *Usecase) DeleteVilla(ctx context.Context, id int) error {
	log := logger.WithContext(ctx, uc.log)

	if id <= 0 {
		log.Warn("delete villa validation failed", zap.Int("id", id), zap.String("reason", "invalid id"))
		return apperrors.NewValidationError("ID must be greater than 0")
	}

	log.Info("deleting villa", zap.Int("id", id))

	owned, err := uc.numbers.GetAll(ctx, domain.NewPage(1, 1), domain.ByOwner(id))
	if err != nil {
		log.Error("failed to check villa references", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("failed to check villa references: %w", err)
	}
	if len(owned) > 0 {
		log.Warn("villa still referenced", zap.Int("id", id), zap.Int("villa_no", owned[0].VillaNo))
		return apperrors.NewReferentialIntegrityError("villa id", msgVillaReferenced)
	}

	v, err := uc.villas.Get(ctx, domain.ByID(id))
	if err != nil {
		log.Error("failed to get villa", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("failed to get villa: %w", err)
	}
	if v == nil {
		return apperrors.NewNotFoundError("villa", "")
	}

	if err := uc.villas.Remove(ctx, v); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		log.Error("failed to delete villa", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete villa: %w", err)
	}
	return nil
}

// ensureNameFree fails when a villa other than exceptID already uses name.
func (uc *Usecase) ensureNameFree(ctx context.Context, name string, exceptID int) error {
	existing, err := uc.villas.Get(ctx, domain.ByName(name))
	if err != nil {
		uc.log.Error("failed to check existing name", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("failed to validate name uniqueness: %w", err)
	}
	if existing != nil && existing.ID != exceptID {
		uc.log.Warn("villa name already exists", zap.String("name", name), zap.Int("existing_id", existing.ID))
		return apperrors.NewUniquenessError("villa", msgVillaExists)
	}
	return nil
}

var _ Service = (*Usecase)(nil)
