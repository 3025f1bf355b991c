package usecase

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/persondex/persondex"
	"github.com/persondex/persondex/internal/domain"
)

var tracer trace.Tracer = otel.Tracer("usecase")

// PersonRepository defines storage operations for persons. GetAllPersons
// and lookups resolve the country association eagerly.
type PersonRepository interface {
	AddPerson(ctx context.Context, person domain.Person) (domain.Person, error)
	GetAllPersons(ctx context.Context) ([]domain.Person, error)
	GetPersonByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	GetFilteredPersons(ctx context.Context, match func(domain.Person) bool) ([]domain.Person, error)
	UpdatePerson(ctx context.Context, person domain.Person) (domain.Person, error)
	DeletePersonByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PersonUsecase struct {
	repo PersonRepository

	// now supplies the reference time for age computation.
	now func() time.Time
}

func NewPersonUsecase(repo PersonRepository) *PersonUsecase {
	return &PersonUsecase{repo: repo, now: time.Now}
}

// AddPerson validates the request, assigns a fresh identity, persists
// the person and returns its projection.
func (uc *PersonUsecase) AddPerson(ctx context.Context, request *persondex.PersonAddRequest) (persondex.PersonResponse, error) {
	ctx, span := tracer.Start(ctx, "Person.Usecase.AddPerson")
	defer span.End()

	if request == nil {
		err := domain.MissingInputError{Name: "personAddRequest"}
		span.RecordError(err)
		return persondex.PersonResponse{}, err
	}
	if err := validateFirst(request); err != nil {
		span.RecordError(err)
		return persondex.PersonResponse{}, err
	}

	person := domain.Person{
		ID:                 uuid.New(),
		PersonName:         request.PersonName,
		Email:              request.Email,
		DateOfBirth:        request.DateOfBirth,
		Gender:             request.Gender,
		CountryID:          request.CountryID,
		Address:            request.Address,
		ReceiveNewsLetters: request.ReceiveNewsLetters,
		TIN:                request.TIN,
	}

	saved, err := uc.repo.AddPerson(ctx, person)
	if err != nil {
		span.RecordError(err)
		return persondex.PersonResponse{}, errors.Wrap(err, "adding person")
	}
	return uc.toResponse(saved), nil
}

// GetAllPersons returns the projection of every stored person.
func (uc *PersonUsecase) GetAllPersons(ctx context.Context) ([]persondex.PersonResponse, error) {
	persons, err := uc.repo.GetAllPersons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing persons")
	}
	return uc.toResponses(persons), nil
}

// GetPersonByID returns the projection of a single person.
func (uc *PersonUsecase) GetPersonByID(ctx context.Context, id uuid.UUID) (persondex.PersonResponse, error) {
	person, err := uc.repo.GetPersonByID(ctx, id)
	if err != nil {
		return persondex.PersonResponse{}, errors.Wrap(err, "fetching person")
	}
	if person == nil {
		return persondex.PersonResponse{}, domain.NotFoundError{Resource: "person"}
	}
	return uc.toResponse(*person), nil
}

// GetFilteredPersons narrows the stored persons by the named field and
// search text. An empty or unknown searchBy, or an empty searchString,
// returns everyone.
func (uc *PersonUsecase) GetFilteredPersons(ctx context.Context, searchBy string, searchString string) ([]persondex.PersonResponse, error) {
	ctx, span := tracer.Start(ctx, "Person.Usecase.GetFilteredPersons")
	defer span.End()

	field := domain.ParsePersonField(searchBy)
	if field == domain.FieldUnknown || searchString == "" {
		return uc.GetAllPersons(ctx)
	}

	persons, err := uc.repo.GetFilteredPersons(ctx, func(person domain.Person) bool {
		return matchesField(uc.toResponse(person), field, searchString)
	})
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "filtering persons")
	}
	return uc.toResponses(persons), nil
}

// GetSortedPersons orders the given projections by the named field and
// direction. It never touches storage.
func (uc *PersonUsecase) GetSortedPersons(persons []persondex.PersonResponse, sortBy string, order persondex.SortOrder) []persondex.PersonResponse {
	return SortPersons(persons, sortBy, order)
}

// UpdatePerson validates the request, overwrites every field of the
// matching person and returns the updated projection.
func (uc *PersonUsecase) UpdatePerson(ctx context.Context, request *persondex.PersonUpdateRequest) (persondex.PersonResponse, error) {
	ctx, span := tracer.Start(ctx, "Person.Usecase.UpdatePerson")
	defer span.End()

	if request == nil {
		err := domain.MissingInputError{Name: "personUpdateRequest"}
		span.RecordError(err)
		return persondex.PersonResponse{}, err
	}
	if err := validateFirst(request); err != nil {
		span.RecordError(err)
		return persondex.PersonResponse{}, err
	}

	matching, err := uc.repo.GetPersonByID(ctx, request.PersonID)
	if err != nil {
		span.RecordError(err)
		return persondex.PersonResponse{}, errors.Wrap(err, "fetching person")
	}
	if matching == nil {
		err := domain.NotFoundError{Resource: "person"}
		span.RecordError(err)
		return persondex.PersonResponse{}, err
	}

	person := domain.Person{
		ID:                 request.PersonID,
		PersonName:         request.PersonName,
		Email:              request.Email,
		DateOfBirth:        request.DateOfBirth,
		Gender:             request.Gender,
		CountryID:          request.CountryID,
		Address:            request.Address,
		ReceiveNewsLetters: request.ReceiveNewsLetters,
		TIN:                request.TIN,
	}

	saved, err := uc.repo.UpdatePerson(ctx, person)
	if err != nil {
		span.RecordError(err)
		return persondex.PersonResponse{}, errors.Wrap(err, "updating person")
	}
	return uc.toResponse(saved), nil
}

// DeletePerson removes the person with the given id. It reports false
// without error when no such person exists.
func (uc *PersonUsecase) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, span := tracer.Start(ctx, "Person.Usecase.DeletePerson")
	defer span.End()

	person, err := uc.repo.GetPersonByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrap(err, "fetching person")
	}
	if person == nil {
		return false, nil
	}

	deleted, err := uc.repo.DeletePersonByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrap(err, "deleting person")
	}
	return deleted, nil
}

// GetPersonsCSV exports every stored person as CSV.
func (uc *PersonUsecase) GetPersonsCSV(ctx context.Context) (*bytes.Reader, error) {
	persons, err := uc.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}
	return EncodePersonsCSV(persons)
}

// GetPersonsSheet exports every stored person as a workbook.
func (uc *PersonUsecase) GetPersonsSheet(ctx context.Context) (*bytes.Reader, error) {
	persons, err := uc.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}
	return EncodePersonsSheet(persons)
}

func (uc *PersonUsecase) toResponses(persons []domain.Person) []persondex.PersonResponse {
	responses := make([]persondex.PersonResponse, 0, len(persons))
	for _, person := range persons {
		responses = append(responses, uc.toResponse(person))
	}
	return responses
}

func (uc *PersonUsecase) toResponse(person domain.Person) persondex.PersonResponse {
	response := persondex.PersonResponse{
		PersonID:           person.ID,
		PersonName:         person.PersonName,
		Email:              person.Email,
		DateOfBirth:        person.DateOfBirth,
		Gender:             person.Gender,
		CountryID:          person.CountryID,
		Address:            person.Address,
		ReceiveNewsLetters: person.ReceiveNewsLetters,
		TIN:                person.TIN,
	}
	if person.Country != nil {
		response.Country = person.Country.Name
	}
	if person.DateOfBirth != nil {
		age := wholeYears(*person.DateOfBirth, uc.now())
		response.Age = &age
	}
	return response
}

// wholeYears computes a non-negative age in whole calendar years.
func wholeYears(dateOfBirth, now time.Time) int {
	years := now.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(years, 0, 0).After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
