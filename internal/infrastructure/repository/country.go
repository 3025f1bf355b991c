package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/persondex/persondex/internal/domain"
	"github.com/persondex/persondex/internal/infrastructure/database/models"
)

type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) AddCountry(ctx context.Context, country domain.Country) (domain.Country, error) {
	model := models.Country{
		ID:   country.ID,
		Name: optString(country.Name),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Country{}, errors.Wrap(err, "inserting country")
	}
	return toDomainCountry(model), nil
}

func (r *CountryRepository) GetAllCountries(ctx context.Context) ([]domain.Country, error) {
	var countryModels []models.Country
	err := r.db.WithContext(ctx).Find(&countryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "selecting countries")
	}

	countries := make([]domain.Country, 0, len(countryModels))
	for _, model := range countryModels {
		countries = append(countries, toDomainCountry(model))
	}
	return countries, nil
}

func (r *CountryRepository) GetCountryByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	var model models.Country
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "selecting country")
	}

	country := toDomainCountry(model)
	return &country, nil
}

func (r *CountryRepository) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	var model models.Country
	err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "selecting country")
	}

	country := toDomainCountry(model)
	return &country, nil
}

func toDomainCountry(model models.Country) domain.Country {
	return domain.Country{
		ID:   model.ID,
		Name: deref(model.Name),
	}
}
