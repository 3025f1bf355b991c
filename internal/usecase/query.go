package usecase

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/persondex/persondex"
	"github.com/persondex/persondex/internal/domain"
)

// searchDateLayout is the legacy display format searched against for
// date-of-birth, e.g. "01 January 1990".
const searchDateLayout = "02 January 2006"

// FilterPersons returns the persons whose named field contains
// searchString, case-insensitively. An empty or unknown searchBy, or an
// empty searchString, returns the input unchanged. A person whose
// target field is absent never matches. The input slice is not
// modified; survivors keep their relative order.
func FilterPersons(persons []persondex.PersonResponse, searchBy string, searchString string) []persondex.PersonResponse {
	field := domain.ParsePersonField(searchBy)
	if field == domain.FieldUnknown || searchString == "" {
		return persons
	}

	matched := make([]persondex.PersonResponse, 0, len(persons))
	for _, person := range persons {
		if matchesField(person, field, searchString) {
			matched = append(matched, person)
		}
	}
	return matched
}

func matchesField(person persondex.PersonResponse, field domain.PersonField, searchString string) bool {
	text := fieldText(person, field)
	if text == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(searchString))
}

// fieldText projects the named field to the text form it is searched
// against. Absent values project to the empty string.
func fieldText(person persondex.PersonResponse, field domain.PersonField) string {
	switch field {
	case domain.FieldPersonName:
		return person.PersonName
	case domain.FieldEmail:
		return person.Email
	case domain.FieldDateOfBirth:
		if person.DateOfBirth == nil {
			return ""
		}
		return person.DateOfBirth.Format(searchDateLayout)
	case domain.FieldAge:
		if person.Age == nil {
			return ""
		}
		return strconv.Itoa(*person.Age)
	case domain.FieldGender:
		return person.Gender
	case domain.FieldCountry:
		return person.Country
	case domain.FieldAddress:
		return person.Address
	case domain.FieldReceiveNewsLetters:
		return strconv.FormatBool(person.ReceiveNewsLetters)
	default:
		return ""
	}
}

type sortKey struct {
	field domain.PersonField
	order persondex.SortOrder
}

type personComparator func(a, b persondex.PersonResponse) int

// personComparators is the static dispatch table keyed by
// (field, direction). The DESC entry of each field is the reversed ASC
// comparator, so nil dates and ages sort first ascending and last
// descending.
var personComparators = buildComparators()

func buildComparators() map[sortKey]personComparator {
	base := map[domain.PersonField]personComparator{
		domain.FieldPersonName: func(a, b persondex.PersonResponse) int {
			return compareFold(a.PersonName, b.PersonName)
		},
		domain.FieldEmail: func(a, b persondex.PersonResponse) int {
			return compareFold(a.Email, b.Email)
		},
		domain.FieldDateOfBirth: func(a, b persondex.PersonResponse) int {
			return compareTimePtr(a.DateOfBirth, b.DateOfBirth)
		},
		domain.FieldAge: func(a, b persondex.PersonResponse) int {
			return compareIntPtr(a.Age, b.Age)
		},
		domain.FieldGender: func(a, b persondex.PersonResponse) int {
			return compareFold(a.Gender, b.Gender)
		},
		domain.FieldCountry: func(a, b persondex.PersonResponse) int {
			return compareFold(a.Country, b.Country)
		},
		domain.FieldAddress: func(a, b persondex.PersonResponse) int {
			return compareFold(a.Address, b.Address)
		},
		domain.FieldReceiveNewsLetters: func(a, b persondex.PersonResponse) int {
			return compareBool(a.ReceiveNewsLetters, b.ReceiveNewsLetters)
		},
	}

	table := make(map[sortKey]personComparator, len(base)*2)
	for field, cmp := range base {
		cmp := cmp
		table[sortKey{field, persondex.ASC}] = cmp
		table[sortKey{field, persondex.DESC}] = func(a, b persondex.PersonResponse) int {
			return -cmp(a, b)
		}
	}
	return table
}

// SortPersons returns a new slice ordered by the named field and
// direction. An empty or unknown sortBy returns the input in its
// original order. The sort is deterministic but not stable: equal keys
// may land in either relative order, identically for identical inputs.
func SortPersons(persons []persondex.PersonResponse, sortBy string, order persondex.SortOrder) []persondex.PersonResponse {
	cmp, ok := personComparators[sortKey{domain.ParsePersonField(sortBy), order}]
	if !ok {
		return persons
	}

	sorted := slices.Clone(persons)
	slices.SortFunc(sorted, cmp)
	return sorted
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareTimePtr orders nil before any value.
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}

// compareIntPtr orders nil before any value.
func compareIntPtr(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return *a - *b
	}
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
