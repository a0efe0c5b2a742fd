package service

import (
	"context"
	"strconv"

	"github.com/aoneretail/footwear-pos/internal/infrastructure/upstream"
	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

// CatalogService serves the cascading brand/category/section/size dropdowns
// and the typed product lookup. Responses that lose the race against a
// newer request for the same widget are reported stale so the client drops
// them instead of overwriting fresher options.
type CatalogService struct {
	client *upstream.Client
	seq    *upstream.Sequencer
}

// NewCatalogService creates a new catalog service
func NewCatalogService(client *upstream.Client) *CatalogService {
	return &CatalogService{
		client: client,
		seq:    upstream.NewSequencer(),
	}
}

// Categories lists the categories under a brand for the given widget region.
func (s *CatalogService) Categories(ctx context.Context, region, brandID string) ([]upstream.Option, error) {
	token := s.seq.Next(region)
	opts, err := s.client.Categories(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if !s.seq.IsCurrent(region, token) {
		return nil, apperror.NewStaleDataError(region)
	}
	return opts, nil
}

// Sections lists the sections under a category for the given widget region.
func (s *CatalogService) Sections(ctx context.Context, region, categoryID string) ([]upstream.Option, error) {
	token := s.seq.Next(region)
	opts, err := s.client.Sections(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !s.seq.IsCurrent(region, token) {
		return nil, apperror.NewStaleDataError(region)
	}
	return opts, nil
}

// Sizes lists the sizes under a section for the given widget region.
func (s *CatalogService) Sizes(ctx context.Context, region, sectionID string) ([]upstream.Option, error) {
	token := s.seq.Next(region)
	opts, err := s.client.Sizes(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if !s.seq.IsCurrent(region, token) {
		return nil, apperror.NewStaleDataError(region)
	}
	return opts, nil
}

// ProductLookup is the typed catalog map for a hierarchy selection, indexed
// by product ID. The UI queries this instead of smuggling MRP/GST/stock
// through markup attributes.
type ProductLookup struct {
	Products []upstream.ProductInfo          `json:"products"`
	ByID     map[string]upstream.ProductInfo `json:"by_id"`
}

// Lookup fetches the catalog entries for a selection and indexes them.
func (s *CatalogService) Lookup(ctx context.Context, q upstream.ProductQuery) (*ProductLookup, error) {
	infos, err := s.client.ProductInfos(ctx, q)
	if err != nil {
		return nil, err
	}

	lookup := &ProductLookup{
		Products: infos,
		ByID:     make(map[string]upstream.ProductInfo, len(infos)),
	}
	for _, p := range infos {
		lookup.ByID[strconv.FormatInt(p.ProductID, 10)] = p
	}
	return lookup, nil
}
