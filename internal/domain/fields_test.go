package domain

import "testing"

func TestParsePersonFieldUnknown(t *testing.T) {
	for _, name := range []string{"", "NoSuchField", "personname"} {
		if got := ParsePersonField(name); got != FieldUnknown {
			t.Fatalf("expected FieldUnknown for %q, got %v", name, got)
		}
	}
}

func TestParsePersonFieldLegacyCountryKey(t *testing.T) {
	if ParsePersonField("CountryID") != FieldCountry {
		t.Fatalf("expected CountryID to resolve to the country name field")
	}
	if ParsePersonField("Country") != FieldCountry {
		t.Fatalf("expected Country to resolve to the country name field")
	}
}

func TestFieldTypes(t *testing.T) {
	cases := map[PersonField]FieldType{
		FieldPersonName:         TypeText,
		FieldEmail:              TypeText,
		FieldDateOfBirth:        TypeDate,
		FieldAge:                TypeNumber,
		FieldGender:             TypeEnum,
		FieldCountry:            TypeForeignKeyName,
		FieldAddress:            TypeText,
		FieldReceiveNewsLetters: TypeBoolean,
		FieldUnknown:            TypeUnknown,
	}
	for field, want := range cases {
		if got := field.Type(); got != want {
			t.Fatalf("field %v: expected type %v, got %v", field, want, got)
		}
	}
}

func TestFieldDisplayNames(t *testing.T) {
	if FieldDateOfBirth.DisplayName() != "Date of Birth" {
		t.Fatalf("unexpected display name %q", FieldDateOfBirth.DisplayName())
	}
	if FieldUnknown.DisplayName() != "" {
		t.Fatalf("expected empty display name for FieldUnknown")
	}
}
