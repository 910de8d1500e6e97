package number

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"

	"numclass/internal/domain/entity"
	"numclass/internal/domain/service/classifier"
	"numclass/internal/domain/value"
	"numclass/pkg/contextx"
	"numclass/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "numclass",
	Name:      "classifications_total",
	Help:      "Classified numbers, by property. Prime and perfect are counted as properties here.",
}, []string{"property"})

type FactProvider interface {
	Fact(ctx context.Context, n uint64) (string, error)
}

type Service struct {
	facts FactProvider
}

func NewService(facts FactProvider) *Service {
	return &Service{
		facts: facts,
	}
}

// Classify runs the classifier and asks the fact provider about |n|. Wrap the
// provider with fact.WithFallback unless an upstream failure should fail the
// whole classification.
func (s *Service) Classify(ctx context.Context, n value.Number) (entity.Classification, error) {
	classification := classifier.Classify(n.Int64())

	funFact, err := s.facts.Fact(ctx, n.Abs())
	if err != nil {
		return entity.Classification{}, fmt.Errorf("facts.Fact: %w", err)
	}

	classification.FunFact = funFact

	observe(classification)

	logger(ctx).Debug(
		"number classified",
		logx.Stringer(logx.FieldNumber, n),
		slog.Any(logx.FieldProperties, lo.Map(classification.Properties, func(p entity.Property, _ int) string {
			return p.String()
		})),
	)

	return classification, nil
}

func observe(c entity.Classification) {
	for _, p := range c.Properties {
		classificationsTotal.WithLabelValues(p.String()).Inc()
	}

	if c.IsPrime {
		classificationsTotal.WithLabelValues("prime").Inc()
	}

	if c.IsPerfect {
		classificationsTotal.WithLabelValues("perfect").Inc()
	}
}
