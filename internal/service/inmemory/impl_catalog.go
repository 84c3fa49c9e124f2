package inmemory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
)

// ListProducts implements CatalogService.ListProducts
func (s *memSvc) ListProducts(_ context.Context, opts ...service.Option) (*service.ProductPage, error) {
	options, err := service.ApplyOptions[service.ListProductsOptions](opts...)
	if err != nil {
		return nil, err
	}
	active := service.ProductStatusActive
	options.Status = &active

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listProductsLocked(options, true), nil
}

// listProductsLocked filters, sorts and pages products. Caller must hold s.mu read lock.
func (s *memSvc) listProductsLocked(options *service.ListProductsOptions, storefront bool) *service.ProductPage {
	search := strings.ToLower(options.Search)

	matched := make([]service.Product, 0, len(s.products))
	for _, p := range s.products {
		if !productMatches(p, options, search) {
			continue
		}
		if storefront && !s.visible(p) {
			continue
		}
		matched = append(matched, cloneProduct(p))
	}

	sortProducts(matched, options.Sort)

	start := min(options.Offset, len(matched))
	end := min(start+options.Limit, len(matched))
	return &service.ProductPage{
		Products: matched[start:end],
		Total:    len(matched),
		Limit:    options.Limit,
		Offset:   options.Offset,
	}
}

func productMatches(p *service.Product, o *service.ListProductsOptions, search string) bool {
	if o.Status != nil && p.Status != *o.Status {
		return false
	}
	if o.Category != "" && !strings.EqualFold(p.Category, o.Category) {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) &&
		!strings.Contains(strings.ToLower(p.FarmName), search) {
		return false
	}
	if len(o.Tags) > 0 && !anyTag(p.Tags, o.Tags) {
		return false
	}
	if o.MinPriceCents != nil && p.PriceCents < *o.MinPriceCents {
		return false
	}
	if o.MaxPriceCents != nil && p.PriceCents > *o.MaxPriceCents {
		return false
	}
	if o.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

func anyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func sortProducts(products []service.Product, by service.ProductSort) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := &products[i], &products[j]
		switch by {
		case service.SortPriceAsc:
			if a.PriceCents != b.PriceCents {
				return a.PriceCents < b.PriceCents
			}
		case service.SortPriceDesc:
			if a.PriceCents != b.PriceCents {
				return a.PriceCents > b.PriceCents
			}
		case service.SortName:
			if an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name); an != bn {
				return an < bn
			}
		}
		return newerFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
}

// GetProduct implements CatalogService.GetProduct
func (s *memSvc) GetProduct(_ context.Context, idOrSlug string) (*service.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.lookupProductLocked(idOrSlug)
	if p == nil || !p.IsActive() || !s.visible(p) {
		return nil, service.ErrProductNotFound
	}
	out := cloneProduct(p)
	return &out, nil
}

// lookupProductLocked finds a product by id or slug. Caller must hold s.mu read lock.
func (s *memSvc) lookupProductLocked(idOrSlug string) *service.Product {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		return s.products[id]
	}
	if id, ok := s.slugs[strings.ToLower(strings.TrimSpace(idOrSlug))]; ok {
		return s.products[id]
	}
	return nil
}

// ListCategories implements CatalogService.ListCategories
func (s *memSvc) ListCategories(_ context.Context) ([]service.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range s.products {
		if p.IsActive() && s.visible(p) {
			counts[p.Category]++
		}
	}

	out := make([]service.Category, 0, len(counts))
	for name, n := range counts {
		out = append(out, service.Category{Name: name, ProductCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListTopProducts implements CatalogService.ListTopProducts
func (s *memSvc) ListTopProducts(_ context.Context, limit int) ([]service.TopProduct, error) {
	if limit < 1 || limit > service.MaxPageSize {
		return nil, service.NewValidationError("limit", "must be between 1 and %d", service.MaxPageSize)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.topProductsLocked(limit, true), nil
}

// topProductsLocked joins the stored ranking with active products. Caller must hold s.mu read lock.
func (s *memSvc) topProductsLocked(limit int, storefront bool) []service.TopProduct {
	out := make([]service.TopProduct, 0, min(limit, len(s.top)))
	for _, e := range s.top {
		if len(out) == limit {
			break
		}
		p, ok := s.products[e.productID]
		if !ok || !p.IsActive() || (storefront && !s.visible(p)) {
			continue
		}
		out = append(out, service.TopProduct{
			ProductID:    p.ID,
			Name:         p.Name,
			Slug:         p.Slug,
			ImageURL:     p.ImageURL,
			PriceCents:   p.PriceCents,
			UnitsSold:    e.unitsSold,
			RevenueCents: e.revenueCents,
			Rank:         e.rank,
			ComputedAt:   e.computedAt,
		})
	}
	return out
}
