package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"villa-service/internal/domain/villa"
	apperrors "villa-service/pkg/errors"
)

var villaColumns = map[string]bool{"id": true, "name": true, "name_key": true, "occupancy": true}

// VillaRepoPG implements villa.Repository[villa.Villa] using GORM.
type VillaRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewVillaRepoPG creates a new instance of VillaRepoPG.
func NewVillaRepoPG(db *gorm.DB, log *zap.Logger) *VillaRepoPG {
	return &VillaRepoPG{db: db, log: log}
}

// GetAll returns every villa matching filters, ordered by id.
func (r *VillaRepoPG) GetAll(ctx context.Context, page villa.Page, filters ...villa.Filter) ([]villa.Villa, error) {
	q, err := applyFilters(r.db.WithContext(ctx).Model(&VillaSchema{}), villaColumns, filters)
	if err != nil {
		return nil, err
	}

	var models []VillaSchema
	if err := applyPage(q, page).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list villas from db", zap.Error(err))
		return nil, fmt.Errorf("select villas: %w", err)
	}

	villas := make([]villa.Villa, len(models))
	for i := range models {
		villas[i] = *villaFromSchema(&models[i])
	}
	return villas, nil
}

// Get returns the first villa matching filters, or nil when there is none.
func (r *VillaRepoPG) Get(ctx context.Context, filters ...villa.Filter) (*villa.Villa, error) {
	q, err := applyFilters(r.db.WithContext(ctx), villaColumns, filters)
	if err != nil {
		return nil, err
	}

	var model VillaSchema
	if err := q.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("villa not found", zap.Any("filters", filters))
			return nil, nil
		}
		r.log.Error("failed to get villa from db", zap.Error(err))
		return nil, fmt.Errorf("select villa: %w", err)
	}

	return villaFromSchema(&model), nil
}

// Create inserts v and copies the generated id and timestamps back into it.
func (r *VillaRepoPG) Create(ctx context.Context, v *villa.Villa) error {
	if v == nil {
		return errors.New("villa cannot be nil")
	}

	model := villaToSchema(v)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create villa in db", zap.Error(err), zap.String("name", v.Name))
		return fmt.Errorf("insert villa %q: %w", v.Name, err)
	}

	*v = *villaFromSchema(&model)
	r.log.Info("villa created in db", zap.Int("id", v.ID))
	return nil
}

// Update overwrites every column of the villa identified by v.ID except
// its creation time. A villa that no longer exists is a NotFoundError and
// is never re-inserted.
func (r *VillaRepoPG) Update(ctx context.Context, v *villa.Villa) error {
	if v == nil {
		return errors.New("villa cannot be nil")
	}

	model := villaToSchema(v)
	res := r.db.WithContext(ctx).Model(&model).Select("*").Omit("created_date").Updates(&model)
	if res.Error != nil {
		r.log.Error("failed to update villa in db", zap.Error(res.Error), zap.Int("id", v.ID))
		return fmt.Errorf("update villa %d: %w", v.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("villa", fmt.Sprintf("villa not found: id=%d", v.ID))
	}

	*v = *villaFromSchema(&model)
	r.log.Info("villa updated in db", zap.Int("id", v.ID))
	return nil
}

// Remove deletes the villa identified by v.ID.
func (r *VillaRepoPG) Remove(ctx context.Context, v *villa.Villa) error {
	if v == nil {
		return errors.New("villa cannot be nil")
	}

	res := r.db.WithContext(ctx).Delete(&VillaSchema{}, v.ID)
	if res.Error != nil {
		r.log.Error("failed to delete villa in db", zap.Error(res.Error), zap.Int("id", v.ID))
		return fmt.Errorf("delete villa %d: %w", v.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("villa", fmt.Sprintf("villa not found: id=%d", v.ID))
	}

	r.log.Info("villa deleted in db", zap.Int("id", v.ID))
	return nil
}
