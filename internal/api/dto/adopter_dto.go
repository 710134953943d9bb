package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/adoptafacil/internal/domain"
)

// AdopterSaveRequest payload for POST /Adopter/save.
type AdopterSaveRequest struct {
	UserID         *int64           `json:"idUser" validate:"required,gt=0"`
	DocumentType   string           `json:"documentType" validate:"required"`
	DocumentNumber *int64           `json:"documentNumber" validate:"required,gt=0"`
	BirthDate      *domain.Date     `json:"birthDate" validate:"required"`
	Occupation     string           `json:"occupation" validate:"max=100"`
	MonthlyIncome  *decimal.Decimal `json:"monthlyIncome" validate:"required"`
}

func (r AdopterSaveRequest) ToDomain() (*domain.Adopter, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	docType, err := domain.ParseDocumentType(r.DocumentType)
	if err != nil {
		return nil, err
	}
	return domain.NewAdopter(*r.UserID, docType, *r.DocumentNumber, *r.BirthDate, r.Occupation, *r.MonthlyIncome)
}

type AdopterResponse struct {
	ID             int64       `json:"idAdopter"`
	UserID         int64       `json:"idUser"`
	DocumentType   string      `json:"documentType"`
	DocumentNumber int64       `json:"documentNumber"`
	BirthDate      domain.Date `json:"birthDate"`
	Occupation     *string     `json:"occupation"`
	MonthlyIncome  string      `json:"monthlyIncome"`
	Validated      bool        `json:"validated"`
}

func NewAdopterResponse(a domain.Adopter) AdopterResponse {
	resp := AdopterResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		DocumentType:   a.DocumentType.String(),
		DocumentNumber: a.DocumentNumber,
		BirthDate:      a.BirthDate,
		MonthlyIncome:  domain.FormatMoney(a.MonthlyIncome),
		Validated:      a.Validated,
	}
	if a.Occupation != "" {
		occupation := a.Occupation
		resp.Occupation = &occupation
	}
	return resp
}

func NewAdopterResponses(adopters []domain.Adopter) []AdopterResponse {
	out := make([]AdopterResponse, 0, len(adopters))
	for _, a := range adopters {
		out = append(out, NewAdopterResponse(a))
	}
	return out
}
