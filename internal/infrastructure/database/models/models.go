package models

import (
	"time"

	"github.com/google/uuid"
)

type Country struct {
	ID      uuid.UUID `json:"countryID" gorm:"primaryKey;type:uuid"`
	Name    *string   `json:"countryName" gorm:"type:varchar(40)"`
	Persons []Person  `json:"-" gorm:"foreignKey:CountryID"`
}

type Person struct {
	ID                 uuid.UUID  `json:"personID" gorm:"primaryKey;type:uuid"`
	PersonName         *string    `json:"personName" gorm:"type:varchar(40)"`
	Email              *string    `json:"email" gorm:"type:varchar(40)"`
	DateOfBirth        *time.Time `json:"dateOfBirth" gorm:"type:timestamp"`
	Gender             *string    `json:"gender" gorm:"type:varchar(10)"`
	CountryID          *uuid.UUID `json:"countryID" gorm:"type:uuid;index"`
	Country            *Country   `json:"-" gorm:"foreignKey:CountryID"`
	Address            *string    `json:"address" gorm:"type:varchar(200)"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
	TIN                *string    `json:"tin" gorm:"type:varchar(8);check:tin IS NULL OR length(tin) = 8"`
}
