package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"villa-service/internal/domain/villa"
	apperrors "villa-service/pkg/errors"
)

var villaNumberColumns = map[string]bool{"villa_no": true, "villa_id": true}

// VillaNumberRepoPG implements villa.Repository[villa.VillaNumber] using GORM.
// Reads preload the owning villa.
type VillaNumberRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewVillaNumberRepoPG creates a new instance of VillaNumberRepoPG.
func NewVillaNumberRepoPG(db *gorm.DB, log *zap.Logger) *VillaNumberRepoPG {
	return &VillaNumberRepoPG{db: db, log: log}
}

// GetAll returns every villa number matching filters, ordered by villa_no.
func (r *VillaNumberRepoPG) GetAll(ctx context.Context, page villa.Page, filters ...villa.Filter) ([]villa.VillaNumber, error) {
	q, err := applyFilters(r.db.WithContext(ctx).Model(&VillaNumberSchema{}), villaNumberColumns, filters)
	if err != nil {
		return nil, err
	}

	var models []VillaNumberSchema
	if err := applyPage(q, page).Preload("Villa").Order("villa_no").Find(&models).Error; err != nil {
		r.log.Error("failed to list villa numbers from db", zap.Error(err))
		return nil, fmt.Errorf("select villa_numbers: %w", err)
	}

	numbers := make([]villa.VillaNumber, len(models))
	for i := range models {
		numbers[i] = *villaNumberFromSchema(&models[i])
	}
	return numbers, nil
}

// Get returns the first villa number matching filters, or nil when there is none.
func (r *VillaNumberRepoPG) Get(ctx context.Context, filters ...villa.Filter) (*villa.VillaNumber, error) {
	q, err := applyFilters(r.db.WithContext(ctx), villaNumberColumns, filters)
	if err != nil {
		return nil, err
	}

	var model VillaNumberSchema
	if err := q.Preload("Villa").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("villa number not found", zap.Any("filters", filters))
			return nil, nil
		}
		r.log.Error("failed to get villa number from db", zap.Error(err))
		return nil, fmt.Errorf("select villa_number: %w", err)
	}

	return villaNumberFromSchema(&model), nil
}

// Create inserts vn. The owning villa is never written through this call.
func (r *VillaNumberRepoPG) Create(ctx context.Context, vn *villa.VillaNumber) error {
	if vn == nil {
		return errors.New("villa number cannot be nil")
	}

	model := villaNumberToSchema(vn)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model).Error; err != nil {
		r.log.Error("failed to create villa number in db", zap.Error(err), zap.Int("villa_no", vn.VillaNo))
		return fmt.Errorf("insert villa_number %d: %w", vn.VillaNo, err)
	}

	vn.CreatedDate = model.CreatedDate
	vn.UpdatedDate = model.UpdatedDate
	r.log.Info("villa number created in db", zap.Int("villa_no", vn.VillaNo))
	return nil
}

// Update overwrites every column of the villa number identified by
// vn.VillaNo except its creation time. A missing row is a NotFoundError.
func (r *VillaNumberRepoPG) Update(ctx context.Context, vn *villa.VillaNumber) error {
	if vn == nil {
		return errors.New("villa number cannot be nil")
	}

	model := villaNumberToSchema(vn)
	res := r.db.WithContext(ctx).Model(&model).Select("*").Omit("created_date", clause.Associations).Updates(&model)
	if res.Error != nil {
		r.log.Error("failed to update villa number in db", zap.Error(res.Error), zap.Int("villa_no", vn.VillaNo))
		return fmt.Errorf("update villa_number %d: %w", vn.VillaNo, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("villa number", fmt.Sprintf("villa number not found: villa_no=%d", vn.VillaNo))
	}

	vn.UpdatedDate = model.UpdatedDate
	r.log.Info("villa number updated in db", zap.Int("villa_no", vn.VillaNo))
	return nil
}

// Remove deletes the villa number identified by vn.VillaNo.
func (r *VillaNumberRepoPG) Remove(ctx context.Context, vn *villa.VillaNumber) error {
	if vn == nil {
		return errors.New("villa number cannot be nil")
	}

	res := r.db.WithContext(ctx).Delete(&VillaNumberSchema{}, vn.VillaNo)
	if res.Error != nil {
		r.log.Error("failed to delete villa number in db", zap.Error(res.Error), zap.Int("villa_no", vn.VillaNo))
		return fmt.Errorf("delete villa_number %d: %w", vn.VillaNo, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("villa number", fmt.Sprintf("villa number not found: villa_no=%d", vn.VillaNo))
	}

	r.log.Info("villa number deleted in db", zap.Int("villa_no", vn.VillaNo))
	return nil
}
