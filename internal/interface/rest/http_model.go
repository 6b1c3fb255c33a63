package rest

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"flightsearch-service/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// searchParams carries the raw query string values before validation
type searchParams struct {
	From     string
	To       string
	Start    string
	End      string
	Pax      string
	Optimize string
}

// Validate enforces the query precondition: from, to and start present,
// dates well-formed, pax a positive integer when given
func (p searchParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.From, validation.Required),
		validation.Field(&p.To, validation.Required),
		validation.Field(&p.Start, validation.Required, validation.Date(dateLayout)),
		validation.Field(&p.End, validation.Date(dateLayout)),
		validation.Field(&p.Pax, validation.Match(paxPattern).Error("must be a positive integer")),
	)
}

type searchResponse struct {
	Options []entity.Option `json:"options"`
	Count   int             `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}
