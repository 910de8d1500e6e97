package server

import (
	"github.com/samber/lo"

	"numclass/internal/domain/entity"
	"numclass/pkg/rest"
)

func newRESTClassification(c entity.Classification) rest.ClassifyNumberResponse {
	return rest.ClassifyNumberResponse{
		Number:    c.Number,
		IsPrime:   c.IsPrime,
		IsPerfect: c.IsPerfect,
		Properties: lo.Map(c.Properties, func(p entity.Property, _ int) string {
			return p.String()
		}),
		DigitSum: c.DigitSum,
		FunFact:  c.FunFact,
	}
}
