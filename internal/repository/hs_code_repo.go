package repository

import (
	"context"
	"errors"

	"importduty/internal/model"

	"gorm.io/gorm"
)

type HSCodeRepository interface {
	List(ctx context.Context) ([]model.HSCode, error)
	FindByCode(ctx context.Context, code string) (*model.HSCode, error)
	Count(ctx context.Context) (int64, error)
	// CreateMissing inserts rows whose code is not stored yet and returns how many were inserted.
	CreateMissing(ctx context.Context, rows []model.HSCode) (int, error)
}

type hsCodeRepository struct {
	db *gorm.DB
}

func NewHSCodeRepository(db *gorm.DB) HSCodeRepository {
	return &hsCodeRepository{db: db}
}

func (r *hsCodeRepository) List(ctx context.Context) ([]model.HSCode, error) {
	var rows []model.HSCode
	if err := GetDB(ctx, r.db).Order("position asc").Order("code asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *hsCodeRepository) FindByCode(ctx context.Context, code string) (*model.HSCode, error) {
	var row model.HSCode
	if err := GetDB(ctx, r.db).First(&row, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *hsCodeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.HSCode{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *hsCodeRepository) CreateMissing(ctx context.Context, rows []model.HSCode) (int, error) {
	inserted := 0
	for i := range rows {
		_, err := r.FindByCode(ctx, rows[i].Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, err
		}
		if err := GetDB(ctx, r.db).Create(&rows[i]).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
