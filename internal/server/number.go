package server

import (
	"context"
	"fmt"
	"net/http"

	"numclass/internal/domain/entity"
	"numclass/internal/domain/value"
	"numclass/pkg/httpx/reply"
	"numclass/pkg/httpx/req"
)

const queryParamNumber = "number"

type numberService interface {
	Classify(context.Context, value.Number) (entity.Classification, error)
}

type NumberServer struct {
	numberService numberService
}

func NewNumberServer(numberService numberService) NumberServer {
	return NumberServer{
		numberService: numberService,
	}
}

func (s NumberServer) getClassifyNumber(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	raw, err := req.Query(r, queryParamNumber)
	if err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	number, err := value.ParseNumber(raw)
	if err != nil {
		return fmt.Errorf("value.ParseNumber: %w", err)
	}

	classification, err := s.numberService.Classify(ctx, number)
	if err != nil {
		return fmt.Errorf("numberService.Classify: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTClassification(classification))

	return nil
}
