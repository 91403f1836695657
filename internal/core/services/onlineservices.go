package services

import (
	"context"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/logger"
)

// OnlineServices resolves the online service references of a product
// resource into teaser links.
type OnlineServices struct {
	loader driven.ResourceLoader
}

// NewOnlineServices creates the online service resolver.
func NewOnlineServices(loader driven.ResourceLoader) *OnlineServices {
	return &OnlineServices{loader: loader}
}

// Resolve loads every referenced online service resource and returns
// its link. A failed load is logged and skipped; products keep their
// remaining online services.
func (s *OnlineServices) Resolve(ctx context.Context, res *domain.Resource) []domain.OnlineService {
	if res.Metadata.Product == nil {
		return nil
	}

	var services []domain.OnlineService
	for _, ref := range res.Metadata.Product.OnlineServices.ServiceList.Items {
		if ref.URL == "" {
			continue
		}
		service, err := s.loader.Load(ctx, ref.URL, res.Language)
		if err != nil {
			logger.Error("loading online service %s: %v", ref.URL, err)
			continue
		}
		services = append(services, domain.OnlineService{
			Link: domain.Link{
				URL:   service.Location,
				Label: service.Name,
			},
		})
	}
	return services
}
