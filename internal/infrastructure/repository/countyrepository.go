package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"titledesk/internal/domain/county"
	"titledesk/internal/infrastructure/persistence/mappers"
	"titledesk/internal/infrastructure/persistence/models"
	db "titledesk/internal/shared/db"
	"titledesk/internal/shared/errors"
)

type CountyRepository struct {
	db     *gorm.DB
	mapper mappers.CountyMapper
}

func NewCountyRepository(db *gorm.DB) *CountyRepository {
	return &CountyRepository{
		db:     db,
		mapper: mappers.NewCountyMapper(),
	}
}

func (r *CountyRepository) List(ctx context.Context) ([]*county.County, error) {
	var list []models.CountyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list counties: %w", err)
	}

	counties := make([]*county.County, 0, len(list))
	for i := range list {
		counties = append(counties, r.mapper.CountyToDomain(&list[i]))
	}
	return counties, nil
}

func (r *CountyRepository) FindByID(ctx context.Context, id uint) (*county.County, error) {
	var model models.CountyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("county not found")
		}
		return nil, fmt.Errorf("failed to find county: %w", err)
	}

	return r.mapper.CountyToDomain(&model), nil
}

func (r *CountyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*county.County, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.CountyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find counties: %w", err)
	}

	counties := make([]*county.County, 0, len(list))
	for i := range list {
		counties = append(counties, r.mapper.CountyToDomain(&list[i]))
	}
	return counties, nil
}

func (r *CountyRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.CountyModel{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check county ids: %w", err)
	}
	return existing, nil
}

func (r *CountyRepository) FindRule(ctx context.Context, countyID uint, cityID *uint) (*county.ProcessingRule, error) {
	var model models.ProcessingRuleModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("county_id = ?", countyID).
		Scopes(cityScope("city_id", cityID)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// absence of configuration is not an error
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find processing rule: %w", err)
	}

	return r.mapper.RuleToDomain(&model)
}

func (r *CountyRepository) ListRules(ctx context.Context, countyID uint) ([]*county.ProcessingRule, error) {
	var list []models.ProcessingRuleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("county_id = ?", countyID).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list processing rules: %w", err)
	}

	rules := make([]*county.ProcessingRule, 0, len(list))
	for i := range list {
		rule, err := r.mapper.RuleToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
