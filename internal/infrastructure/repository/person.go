package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/persondex/persondex/internal/domain"
	"github.com/persondex/persondex/internal/infrastructure/database/models"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) AddPerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	model := toPersonModel(person)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Person{}, errors.Wrap(err, "inserting person")
	}

	// Re-read with the country association so the caller gets a fully
	// resolved record.
	saved, err := r.GetPersonByID(ctx, person.ID)
	if err != nil {
		return domain.Person{}, err
	}
	if saved == nil {
		return domain.Person{}, domain.NotFoundError{Resource: "person"}
	}
	return *saved, nil
}

func (r *PersonRepository) GetAllPersons(ctx context.Context) ([]domain.Person, error) {
	var personModels []models.Person
	err := r.db.WithContext(ctx).Preload("Country").Find(&personModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "selecting persons")
	}

	persons := make([]domain.Person, 0, len(personModels))
	for _, model := range personModels {
		persons = append(persons, toDomainPerson(model))
	}
	return persons, nil
}

func (r *PersonRepository) GetPersonByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	var model models.Person
	err := r.db.WithContext(ctx).Preload("Country").First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "selecting person")
	}

	person := toDomainPerson(model)
	return &person, nil
}

// GetFilteredPersons applies an in-memory predicate over the fully
// resolved records. The predicate is opaque, so it cannot be pushed
// down into SQL.
func (r *PersonRepository) GetFilteredPersons(ctx context.Context, match func(domain.Person) bool) ([]domain.Person, error) {
	persons, err := r.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Person, 0, len(persons))
	for _, person := range persons {
		if match(person) {
			matched = append(matched, person)
		}
	}
	return matched, nil
}

func (r *PersonRepository) UpdatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	model := toPersonModel(person)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return domain.Person{}, errors.Wrap(err, "updating person")
	}

	saved, err := r.GetPersonByID(ctx, person.ID)
	if err != nil {
		return domain.Person{}, err
	}
	if saved == nil {
		return domain.Person{}, domain.NotFoundError{Resource: "person"}
	}
	return *saved, nil
}

func (r *PersonRepository) DeletePersonByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Person{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "deleting person")
	}
	return result.RowsAffected > 0, nil
}

func toPersonModel(person domain.Person) models.Person {
	return models.Person{
		ID:                 person.ID,
		PersonName:         optString(person.PersonName),
		Email:              optString(person.Email),
		DateOfBirth:        person.DateOfBirth,
		Gender:             optString(person.Gender),
		CountryID:          person.CountryID,
		Address:            optString(person.Address),
		ReceiveNewsLetters: person.ReceiveNewsLetters,
		TIN:                optString(person.TIN),
	}
}

func toDomainPerson(model models.Person) domain.Person {
	person := domain.Person{
		ID:                 model.ID,
		PersonName:         deref(model.PersonName),
		Email:              deref(model.Email),
		DateOfBirth:        model.DateOfBirth,
		Gender:             deref(model.Gender),
		CountryID:          model.CountryID,
		Address:            deref(model.Address),
		ReceiveNewsLetters: model.ReceiveNewsLetters,
		TIN:                deref(model.TIN),
	}
	if model.Country != nil {
		person.Country = &domain.Country{
			ID:   model.Country.ID,
			Name: deref(model.Country.Name),
		}
	}
	return person
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
