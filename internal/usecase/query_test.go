package usecase

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/persondex/persondex"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int {
	return &v
}

func queryFixture() []persondex.PersonResponse {
	return []persondex.PersonResponse{
		{
			PersonID:    uuid.New(),
			PersonName:  "Alice",
			Email:       "alice@example.com",
			DateOfBirth: date(1990, time.January, 1),
			Age:         intPtr(35),
			Gender:      persondex.GenderFemale,
			Country:     "Iceland",
			Address:     "12 Main Street",
		},
		{
			PersonID:           uuid.New(),
			PersonName:         "bob",
			Email:              "bob@example.com",
			DateOfBirth:        date(1985, time.May, 5),
			Age:                intPtr(40),
			Gender:             persondex.GenderMale,
			Country:            "Norway",
			Address:            "34 High Street",
			ReceiveNewsLetters: true,
		},
		{
			PersonID:   uuid.New(),
			PersonName: "Carol",
			Email:      "carol@example.com",
			Gender:     persondex.GenderOther,
		},
	}
}

func names(persons []persondex.PersonResponse) []string {
	out := make([]string, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.PersonName)
	}
	return out
}

func TestFilterUnknownFieldIdentity(t *testing.T) {
	persons := queryFixture()

	filtered := FilterPersons(persons, "NoSuchField", "anything")
	if !reflect.DeepEqual(names(filtered), names(persons)) {
		t.Fatalf("expected identity for an unknown field, got %v", names(filtered))
	}
}

func TestFilterEmptySearchIdentity(t *testing.T) {
	persons := queryFixture()

	filtered := FilterPersons(persons, "PersonName", "")
	if !reflect.DeepEqual(names(filtered), names(persons)) {
		t.Fatalf("expected identity for an empty search, got %v", names(filtered))
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	persons := queryFixture()

	lower := FilterPersons(persons, "PersonName", "bob")
	upper := FilterPersons(persons, "PersonName", "BOB")
	if !reflect.DeepEqual(names(lower), names(upper)) {
		t.Fatalf("expected identical results, got %v and %v", names(lower), names(upper))
	}
	if len(lower) != 1 || lower[0].PersonName != "bob" {
		t.Fatalf("expected bob only, got %v", names(lower))
	}
}

func TestFilterDateOfBirthUsesDisplayFormat(t *testing.T) {
	persons := queryFixture()

	filtered := FilterPersons(persons, "DateOfBirth", "january")
	if len(filtered) != 1 || filtered[0].PersonName != "Alice" {
		t.Fatalf("expected Alice only, got %v", names(filtered))
	}
}

func TestFilterAbsentFieldExcluded(t *testing.T) {
	persons := queryFixture()

	// Carol has no date of birth and must never match.
	filtered := FilterPersons(persons, "DateOfBirth", "19")
	for _, person := range filtered {
		if person.PersonName == "Carol" {
			t.Fatalf("expected Carol excluded, got %v", names(filtered))
		}
	}
}

func TestFilterCountryName(t *testing.T) {
	persons := queryFixture()

	filtered := FilterPersons(persons, "Country", "nor")
	if len(filtered) != 1 || filtered[0].PersonName != "bob" {
		t.Fatalf("expected bob only, got %v", names(filtered))
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	persons := queryFixture()
	before := names(persons)

	filtered := FilterPersons(persons, "Email", "example.com")
	if !reflect.DeepEqual(names(filtered), before) {
		t.Fatalf("expected survivors in input order, got %v", names(filtered))
	}
	if !reflect.DeepEqual(names(persons), before) {
		t.Fatalf("input slice was mutated: %v", names(persons))
	}
}

func TestSortUnknownFieldIdentity(t *testing.T) {
	persons := queryFixture()

	sorted := SortPersons(persons, "NoSuchField", persondex.ASC)
	if !reflect.DeepEqual(names(sorted), names(persons)) {
		t.Fatalf("expected input order for an unknown field, got %v", names(sorted))
	}

	sorted = SortPersons(persons, "", persondex.ASC)
	if !reflect.DeepEqual(names(sorted), names(persons)) {
		t.Fatalf("expected input order for an empty field, got %v", names(sorted))
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	persons := queryFixture()

	sorted := SortPersons(persons, "PersonName", persondex.ASC)
	want := []string{"Alice", "bob", "Carol"}
	if !reflect.DeepEqual(names(sorted), want) {
		t.Fatalf("expected %v, got %v", want, names(sorted))
	}
}

func TestSortDescReversesAsc(t *testing.T) {
	persons := queryFixture()

	asc := SortPersons(persons, "PersonName", persondex.ASC)
	desc := SortPersons(persons, "PersonName", persondex.DESC)

	for i := range asc {
		if asc[i].PersonName != desc[len(desc)-1-i].PersonName {
			t.Fatalf("DESC is not the reverse of ASC: %v vs %v", names(asc), names(desc))
		}
	}
}

func TestSortDeterministic(t *testing.T) {
	persons := queryFixture()

	first := SortPersons(persons, "Age", persondex.ASC)
	second := SortPersons(persons, "Age", persondex.ASC)
	if !reflect.DeepEqual(names(first), names(second)) {
		t.Fatalf("expected deterministic output, got %v and %v", names(first), names(second))
	}
}

func TestSortDateNilFirstAscLastDesc(t *testing.T) {
	persons := queryFixture()

	asc := SortPersons(persons, "DateOfBirth", persondex.ASC)
	if asc[0].PersonName != "Carol" {
		t.Fatalf("expected nil date first ascending, got %v", names(asc))
	}

	desc := SortPersons(persons, "DateOfBirth", persondex.DESC)
	if desc[len(desc)-1].PersonName != "Carol" {
		t.Fatalf("expected nil date last descending, got %v", names(desc))
	}
}

func TestSortBoolFalseBeforeTrue(t *testing.T) {
	persons := queryFixture()

	sorted := SortPersons(persons, "ReceiveNewsLetters", persondex.ASC)
	if sorted[len(sorted)-1].PersonName != "bob" {
		t.Fatalf("expected the subscriber last ascending, got %v", names(sorted))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	persons := queryFixture()
	before := names(persons)

	SortPersons(persons, "PersonName", persondex.DESC)
	if !reflect.DeepEqual(names(persons), before) {
		t.Fatalf("input slice was mutated: %v", names(persons))
	}
}
