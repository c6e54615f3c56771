//go:build unit

package builder

import (
	domservice "servemart/internal/domain/service"
	reqdto "servemart/internal/handler/dto/request"
	"servemart/internal/usecase/queries"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ProviderID    uuid.UUID
	Title         string
	Category      domservice.Category
	PriceSubunits int64
	Available     bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ProviderID:    uuid.New(),
		Title:         "Math Tutoring",
		Category:      domservice.CategoryTutoring,
		PriceSubunits: 50000,
		Available:     true,
	}
}

func (s *ServiceBuilder) BuildDomain() (*domservice.Service, error) {
	return domservice.NewService(uuid.New(), s.ProviderID, s.Title, s.Category, s.PriceSubunits, s.Available)
}

func (s *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Title:         s.Title,
		Category:      string(s.Category),
		PriceSubunits: s.PriceSubunits,
	}
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:            uuid.New(),
		ProviderID:    s.ProviderID,
		Title:         s.Title,
		Category:      string(s.Category),
		PriceSubunits: s.PriceSubunits,
		Available:     s.Available,
	}
}

func (s *ServiceBuilder) BuildSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:            uuid.New(),
		ProviderID:    s.ProviderID,
		Title:         s.Title,
		PriceSubunits: s.PriceSubunits,
		Available:     s.Available,
	}
}

func (s *ServiceBuilder) WithProviderID(providerID uuid.UUID) *ServiceBuilder {
	s.ProviderID = providerID
	return s
}

func (s *ServiceBuilder) WithPriceSubunits(price int64) *ServiceBuilder {
	s.PriceSubunits = price
	return s
}

func (s *ServiceBuilder) AsUnavailable() *ServiceBuilder {
	s.Available = false
	return s
}
