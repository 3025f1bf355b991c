package domain

// PersonField enumerates the searchable and sortable fields of a person
// projection. FieldUnknown is a valid value everywhere downstream and
// degrades filtering/sorting to a no-op.
type PersonField int

const (
	FieldUnknown PersonField = iota
	FieldPersonName
	FieldEmail
	FieldDateOfBirth
	FieldAge
	FieldGender
	FieldCountry
	FieldAddress
	FieldReceiveNewsLetters
)

// FieldType is the semantic type of a person field.
type FieldType int

const (
	TypeUnknown FieldType = iota
	TypeText
	TypeDate
	TypeNumber
	TypeEnum
	TypeBoolean
	TypeForeignKeyName
)

var fieldNames = map[string]PersonField{
	"PersonName":         FieldPersonName,
	"Email":              FieldEmail,
	"DateOfBirth":        FieldDateOfBirth,
	"Age":                FieldAge,
	"Gender":             FieldGender,
	"Country":            FieldCountry,
	"CountryID":          FieldCountry, // legacy search key for the resolved country name
	"Address":            FieldAddress,
	"ReceiveNewsLetters": FieldReceiveNewsLetters,
}

var fieldTypes = map[PersonField]FieldType{
	FieldPersonName:         TypeText,
	FieldEmail:              TypeText,
	FieldDateOfBirth:        TypeDate,
	FieldAge:                TypeNumber,
	FieldGender:             TypeEnum,
	FieldCountry:            TypeForeignKeyName,
	FieldAddress:            TypeText,
	FieldReceiveNewsLetters: TypeBoolean,
}

var fieldDisplayNames = map[PersonField]string{
	FieldPersonName:         "Person Name",
	FieldEmail:              "Email",
	FieldDateOfBirth:        "Date of Birth",
	FieldAge:                "Age",
	FieldGender:             "Gender",
	FieldCountry:            "Country",
	FieldAddress:            "Address",
	FieldReceiveNewsLetters: "Receive News Letters",
}

// ParsePersonField maps a wire-level field name to its enum value.
// Unrecognized names yield FieldUnknown.
func ParsePersonField(name string) PersonField {
	field, ok := fieldNames[name]
	if !ok {
		return FieldUnknown
	}
	return field
}

// Type reports the semantic type of the field.
func (f PersonField) Type() FieldType {
	t, ok := fieldTypes[f]
	if !ok {
		return TypeUnknown
	}
	return t
}

// DisplayName reports the human-readable name of the field, or the
// empty string for FieldUnknown.
func (f PersonField) DisplayName() string {
	return fieldDisplayNames[f]
}
