package villanumber

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "villa-service/internal/domain/villa"
	"villa-service/internal/usecase"
	apperrors "villa-service/pkg/errors"
	"villa-service/pkg/logger"
)

const (
	msgVillaNumberExists = "Villa Number already Exists!"
	msgVillaIDInvalid    = "Villa ID is invalid"
)

// Usecase implements the business logic for villa number management operations.
type Usecase struct {
	numbers  domain.Repository[domain.VillaNumber] // Repository for villa numbers
	villas   domain.Repository[domain.Villa]       // Repository for villas, used for reference checks
	log      *zap.Logger                           // Logger for structured logging
	validate *validator.Validate                   // Validator for request validation
}

// New creates a new instance of Usecase.
func New(numbers domain.Repository[domain.VillaNumber], villas domain.Repository[domain.Villa], log *zap.Logger) *Usecase {
	return &Usecase{
		numbers:  numbers,
		villas:   villas,
		log:      log,
		validate: usecase.NewValidator(),
	}
}

// ListVillaNumbers returns villa numbers, optionally restricted to one villa.
func (uc *Usecase) ListVillaNumbers(ctx context.Context, in ListVillaNumbersRequest) (*ListVillaNumbersResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	var filters []domain.Filter
	if in.VillaID < 0 {
		return nil, apperrors.NewValidationError("VillaID must be greater than 0")
	}
	if in.VillaID > 0 {
		filters = append(filters, domain.ByOwner(in.VillaID))
	}

	page := domain.NewPage(in.PageNumber, in.PageSize)
	log.Debug("listing villa numbers", zap.Int("villa_id", in.VillaID), zap.Int("page", page.Number), zap.Int("size", page.Size))

	numbers, err := uc.numbers.GetAll(ctx, page, filters...)
	if err != nil {
		log.Error("failed to list villa numbers", zap.Error(err))
		return nil, fmt.Errorf("failed to list villa numbers: %w", err)
	}

	out := make([]VillaNumberDTO, len(numbers))
	for i := range numbers {
		out[i] = ToDTO(&numbers[i])
	}
	return &ListVillaNumbersResponse{VillaNumbers: out, Page: page}, nil
}

// GetVillaNumber returns one villa number by its natural key.
func (uc *Usecase) GetVillaNumber(ctx context.Context, villaNo int) (*VillaNumberDTO, error) {
	log := logger.WithContext(ctx, uc.log)

	if villaNo <= 0 {
		log.Warn("get villa number validation failed", zap.Int("villa_no", villaNo), zap.String("reason", "invalid id"))
		return nil, apperrors.NewValidationError("VillaNo must be greater than 0")
	}

	vn, err := uc.numbers.Get(ctx, domain.ByVillaNo(villaNo))
	if err != nil {
		log.Error("failed to get villa number", zap.Int("villa_no", villaNo), zap.Error(err))
		return nil, fmt.Errorf("failed to get villa number: %w", err)
	}
	if vn == nil {
		return nil, apperrors.NewNotFoundError("villa number", "")
	}

	dto := ToDTO(vn)
	return &dto, nil
}

// CreateVillaNumber creates a villa number after validating the request,
// checking that the number is free and that the owning villa exists.
func (uc *Usecase) CreateVillaNumber(ctx context.Context, in *VillaNumberCreateDTO) (*VillaNumberDTO, error) {
	log := logger.WithContext(ctx, uc.log)

	if in == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, usecase.FormatValidationError(err)
	}

	log.Info("creating villa number", zap.Int("villa_no", in.VillaNo), zap.Int("villa_id", in.VillaID))

	existing, err := uc.numbers.Get(ctx, domain.ByVillaNo(in.VillaNo))
	if err != nil {
		log.Error("failed to check existing villa number", zap.Int("villa_no", in.VillaNo), zap.Error(err))
		return nil, fmt.Errorf("failed to validate villa number uniqueness: %w", err)
	}
	if existing != nil {
		log.Warn("villa number already exists", zap.Int("villa_no", in.VillaNo))
		return nil, apperrors.NewUniquenessError("villa number", msgVillaNumberExists)
	}

	owner, err := uc.owner(ctx, in.VillaID)
	if err != nil {
		return nil, err
	}

	vn := fromCreateDTO(in)
	if err := uc.numbers.Create(ctx, vn); err != nil {
		log.Error("failed to create villa number", zap.Int("villa_no", in.VillaNo), zap.Error(err))
		return nil, fmt.Errorf("failed to create villa number: %w", err)
	}
	vn.Villa = owner

	dto := ToDTO(vn)
	return &dto, nil
}

// UpdateVillaNumber replaces the villa number identified by villaNo.
func (uc *Usecase) UpdateVillaNumber(ctx context.Context, villaNo int, in *VillaNumberUpdateDTO) error {
	log := logger.WithContext(ctx, uc.log)

	if in == nil {
		return apperrors.NewValidationError("request body is required")
	}
	if in.VillaNo != villaNo {
		log.Warn("update villa number id mismatch", zap.Int("path_villa_no", villaNo), zap.Int("body_villa_no", in.VillaNo))
		return apperrors.NewValidationError("VillaNo in body does not match the path")
	}
	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return usecase.FormatValidationError(err)
	}

	log.Info("updating villa number", zap.Int("villa_no", villaNo), zap.Int("villa_id", in.VillaID))

	if _, err := uc.owner(ctx, in.VillaID); err != nil {
		return err
	}

	existing, err := uc.numbers.Get(ctx, domain.ByVillaNo(villaNo))
	if err != nil {
		log.Error("failed to get villa number", zap.Int("villa_no", villaNo), zap.Error(err))
		return fmt.Errorf("failed to get villa number: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("villa number", "")
	}

	vn := fromUpdateDTO(in)
	vn.CreatedDate = existing.CreatedDate
	if err := uc.numbers.Update(ctx, vn); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		log.Error("failed to update villa number", zap.Int("villa_no", villaNo), zap.Error(err))
		return fmt.Errorf("failed to update villa number: %w", err)
	}
	return nil
}

// DeleteVillaNumber removes a villa number.
func (uc *Usecase) DeleteVillaNumber(ctx context.Context, villaNo int) error {
	log := logger.WithContext(ctx, uc.log)

	if villaNo <= 0 {
		log.Warn("delete villa number validation failed", zap.Int("villa_no", villaNo), zap.String("reason", "invalid id"))
		return apperrors.NewValidationError("VillaNo must be greater than 0")
	}

	log.Info("deleting villa number", zap.Int("villa_no", villaNo))

	vn, err := uc.numbers.Get(ctx, domain.ByVillaNo(villaNo))
	if err != nil {
		log.Error("failed to get villa number", zap.Int("villa_no", villaNo), zap.Error(err))
		return fmt.Errorf("failed to get villa number: %w", err)
	}
	if vn == nil {
		return apperrors.NewNotFoundError("villa number", "")
	}

	if err := uc.numbers.Remove(ctx, vn); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		log.Error("failed to delete villa number", zap.Int("villa_no", villaNo), zap.Error(err))
		return fmt.Errorf("failed to delete villa number: %w", err)
	}
	return nil
}

// owner loads the villa a villa number points at, failing with a
// referential error when it does not exist.
func (uc *Usecase) owner(ctx context.Context, villaID int) (*domain.Villa, error) {
	v, err := uc.villas.Get(ctx, domain.ByID(villaID))
	if err != nil {
		uc.log.Error("failed to check villa reference", zap.Int("villa_id", villaID), zap.Error(err))
		return nil, fmt.Errorf("failed to validate villa id: %w", err)
	}
	if v == nil {
		uc.log.Warn("villa id is invalid", zap.Int("villa_id", villaID))
		return nil, apperrors.NewReferentialIntegrityError("villa id", msgVillaIDInvalid)
	}
	return v, nil
}

var _ Service = (*Usecase)(nil)
