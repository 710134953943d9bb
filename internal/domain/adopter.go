package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// MaxOccupationLength bounds Adopter.Occupation.
const MaxOccupationLength = 100

// Adopter is a user who opted into adoption. UserID is a reference by id only.
type Adopter struct {
	ID             int64
	UserID         int64
	DocumentType   DocumentType
	DocumentNumber int64
	BirthDate      Date
	Occupation     string
	MonthlyIncome  decimal.Decimal
	Validated      bool
}

// NewAdopter builds an unvalidated Adopter.
func NewAdopter(userID int64, docType DocumentType, docNumber int64, birthDate Date, occupation string, income decimal.Decimal) (*Adopter, error) {
	a := &Adopter{
		UserID:         userID,
		DocumentType:   docType,
		DocumentNumber: docNumber,
		BirthDate:      birthDate,
		Occupation:     strings.TrimSpace(occupation),
		MonthlyIncome:  income,
	}
	if err := a.CheckRequired(); err != nil {
		return nil, err
	}
	return a, nil
}

// CheckRequired validates presence and value ranges of the fields.
func (a *Adopter) CheckRequired() error {
	var missing []string
	if a.UserID == 0 {
		missing = append(missing, "idUser")
	}
	if a.DocumentType == "" {
		missing = append(missing, "documentType")
	}
	if a.DocumentNumber == 0 {
		missing = append(missing, "documentNumber")
	}
	if a.BirthDate.IsZero() {
		missing = append(missing, "birthDate")
	}
	if len(missing) > 0 {
		return apperrors.NewMissingRequiredField(missing...)
	}
	if !a.DocumentType.IsValid() {
		return apperrors.NewInvalidEnumValue("documentType", string(a.DocumentType), names(DocumentTypes))
	}
	if a.UserID < 0 || a.DocumentNumber < 0 {
		return apperrors.NewInvalidValue("idUser and documentNumber must be positive", nil)
	}
	if utf8.RuneCountInString(a.Occupation) > MaxOccupationLength {
		return apperrors.NewInvalidValue("occupation is too long",
			map[string]any{"field": "occupation", "max": MaxOccupationLength})
	}
	if a.MonthlyIncome.IsNegative() {
		return apperrors.NewInvalidValue("monthlyIncome must not be negative",
			map[string]any{"field": "monthlyIncome", "value": a.MonthlyIncome.String()})
	}
	return ValidateMoney("monthlyIncome", a.MonthlyIncome)
}
