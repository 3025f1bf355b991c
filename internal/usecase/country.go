package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/persondex/persondex"
	"github.com/persondex/persondex/internal/domain"
)

// uploadSheetName is the worksheet scanned by the country upload.
const uploadSheetName = "Countries"

// CountryRepository defines storage operations for countries.
type CountryRepository interface {
	AddCountry(ctx context.Context, country domain.Country) (domain.Country, error)
	GetAllCountries(ctx context.Context) ([]domain.Country, error)
	GetCountryByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)
}

type CountryUsecase struct {
	repo CountryRepository
}

func NewCountryUsecase(repo CountryRepository) *CountryUsecase {
	return &CountryUsecase{repo: repo}
}

// AddCountry validates the request, rejects duplicate names, assigns a
// fresh identity and persists the country.
func (uc *CountryUsecase) AddCountry(ctx context.Context, request *persondex.CountryAddRequest) (persondex.CountryResponse, error) {
	ctx, span := tracer.Start(ctx, "Country.Usecase.AddCountry")
	defer span.End()

	if request == nil {
		err := domain.MissingInputError{Name: "countryAddRequest"}
		span.RecordError(err)
		return persondex.CountryResponse{}, err
	}
	if err := validateFirst(request); err != nil {
		span.RecordError(err)
		return persondex.CountryResponse{}, err
	}

	existing, err := uc.repo.GetCountryByName(ctx, request.CountryName)
	if err != nil {
		span.RecordError(err)
		return persondex.CountryResponse{}, errors.Wrap(err, "checking country name")
	}
	if existing != nil {
		err := domain.InvalidFieldError{Message: "Given country name already exists"}
		span.RecordError(err)
		return persondex.CountryResponse{}, err
	}

	country := domain.Country{
		ID:   uuid.New(),
		Name: request.CountryName,
	}
	saved, err := uc.repo.AddCountry(ctx, country)
	if err != nil {
		span.RecordError(err)
		return persondex.CountryResponse{}, errors.Wrap(err, "adding country")
	}
	return toCountryResponse(saved), nil
}

// GetAllCountries returns every stored country.
func (uc *CountryUsecase) GetAllCountries(ctx context.Context) ([]persondex.CountryResponse, error) {
	countries, err := uc.repo.GetAllCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing countries")
	}
	responses := make([]persondex.CountryResponse, 0, len(countries))
	for _, country := range countries {
		responses = append(responses, toCountryResponse(country))
	}
	return responses, nil
}

// GetCountryByID returns a single country.
func (uc *CountryUsecase) GetCountryByID(ctx context.Context, id uuid.UUID) (persondex.CountryResponse, error) {
	country, err := uc.repo.GetCountryByID(ctx, id)
	if err != nil {
		return persondex.CountryResponse{}, errors.Wrap(err, "fetching country")
	}
	if country == nil {
		return persondex.CountryResponse{}, domain.NotFoundError{Resource: "country"}
	}
	return toCountryResponse(*country), nil
}

// GetCountryByName returns a single country looked up by its name.
func (uc *CountryUsecase) GetCountryByName(ctx context.Context, name string) (persondex.CountryResponse, error) {
	country, err := uc.repo.GetCountryByName(ctx, name)
	if err != nil {
		return persondex.CountryResponse{}, errors.Wrap(err, "fetching country")
	}
	if country == nil {
		return persondex.CountryResponse{}, domain.NotFoundError{Resource: "country"}
	}
	return toCountryResponse(*country), nil
}

// UploadFromExcel reads country names from column A of the "Countries"
// worksheet, skipping the header row, blank cells and names already
// stored. It reports how many countries were inserted.
func (uc *CountryUsecase) UploadFromExcel(ctx context.Context, reader io.Reader) (int, error) {
	ctx, span := tracer.Start(ctx, "Country.Usecase.UploadFromExcel")
	defer span.End()

	file, err := excelize.OpenReader(reader)
	if err != nil {
		span.RecordError(err)
		return 0, domain.InvalidFieldError{Message: "uploaded file is not a valid workbook"}
	}
	defer file.Close()

	rows, err := file.GetRows(uploadSheetName)
	if err != nil {
		span.RecordError(err)
		return 0, domain.InvalidFieldError{Message: "workbook has no Countries sheet"}
	}

	added := 0
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		existing, err := uc.repo.GetCountryByName(ctx, name)
		if err != nil {
			span.RecordError(err)
			return added, errors.Wrap(err, "checking country name")
		}
		if existing != nil {
			continue
		}

		if _, err := uc.repo.AddCountry(ctx, domain.Country{ID: uuid.New(), Name: name}); err != nil {
			span.RecordError(err)
			return added, errors.Wrap(err, "adding country")
		}
		added++
	}
	return added, nil
}

func toCountryResponse(country domain.Country) persondex.CountryResponse {
	return persondex.CountryResponse{
		CountryID:   country.ID,
		CountryName: country.Name,
	}
}
