package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/otel"
	"github.com/harvestlink/harvestlink/internal/service"
)

// ListProducts implements CatalogService.ListProducts
func (s *dbService) ListProducts(ctx context.Context, opts ...service.Option) (*service.ProductPage, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListProducts")
	defer span.End()

	options, err := service.ApplyOptions[service.ListProductsOptions](opts...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	active := service.ProductStatusActive
	options.Status = &active

	page, err := s.listProducts(ctx, options, s.filtering())
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(otel.AttrPageSize.Int(options.Limit), otel.AttrResultCount.Int(len(page.Products)))
	return page, nil
}

// listProducts runs a product listing. With filtered set, the visibility rules
// are applied in Go over the full result and the page is cut afterwards, so
// totals stay consistent with what shoppers can see.
func (s *dbService) listProducts(
	ctx context.Context,
	options *service.ListProductsOptions,
	filtered bool,
) (*service.ProductPage, error) {
	params := sqlc.ListProductsParams{
		Category: optionalString(options.Category),
		Search:   likePattern(options.Search),
		Tags:     nonNil(options.Tags),
		MinPrice: options.MinPriceCents,
		MaxPrice: options.MaxPriceCents,
		InStock:  options.InStock,
		Sort:     string(options.Sort),
	}
	if options.Status != nil {
		status := string(*options.Status)
		params.Status = &status
	}

	slog.DebugContext(ctx, "ListProducts query",
		"limit", options.Limit,
		"offset", options.Offset,
		"search", options.Search,
		"filtered", filtered,
		"request_id", middleware.GetReqID(ctx))

	q := s.queries()
	page := &service.ProductPage{Limit: options.Limit, Offset: options.Offset}

	if filtered {
		rows, err := q.ListProducts(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		visible := make([]service.Product, 0, len(rows))
		for _, row := range rows {
			p := toProduct(row)
			if s.visible(&p) {
				visible = append(visible, p)
			}
		}

		page.Total = len(visible)
		start := min(options.Offset, len(visible))
		end := min(start+options.Limit, len(visible))
		page.Products = visible[start:end]
		return page, nil
	}

	size := int32(options.Limit)
	params.Size = &size
	params.Skip = int32(options.Offset)

	rows, err := q.ListProducts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	total, err := q.CountProducts(ctx, sqlc.CountProductsParams{
		Status:   params.Status,
		Category: params.Category,
		Search:   params.Search,
		Tags:     params.Tags,
		MinPrice: params.MinPrice,
		MaxPrice: params.MaxPrice,
		InStock:  params.InStock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	page.Products = toProducts(rows)
	page.Total = int(total)
	return page, nil
}

// GetProduct implements CatalogService.GetProduct
func (s *dbService) GetProduct(ctx context.Context, idOrSlug string) (*service.Product, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetProduct",
		trace.WithAttributes(otel.AttrProductSlug.String(idOrSlug)))
	defer span.End()

	product, err := s.getProduct(ctx, s.queries(), idOrSlug)
	if err == nil && (!product.IsActive() || !s.visible(product)) {
		err = service.ErrProductNotFound
	}
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return product, nil
}

func (*dbService) getProduct(ctx context.Context, q *sqlc.Queries, idOrSlug string) (*service.Product, error) {
	var (
		row sqlc.Product
		err error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		row, err = q.GetProduct(ctx, id)
	} else {
		row, err = q.GetProductBySlug(ctx, strings.ToLower(strings.TrimSpace(idOrSlug)))
	}
	if err != nil {
		return nil, notFound(err, service.ErrProductNotFound, "get product")
	}

	p := toProduct(row)
	return &p, nil
}

// ListCategories implements CatalogService.ListCategories
func (s *dbService) ListCategories(ctx context.Context) ([]service.Category, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListCategories")
	defer span.End()

	categories, err := s.listCategories(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(categories)))
	return categories, nil
}

func (s *dbService) listCategories(ctx context.Context) ([]service.Category, error) {
	q := s.queries()

	if !s.filtering() {
		rows, err := q.ListCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		out := make([]service.Category, 0, len(rows))
		for _, r := range rows {
			out = append(out, service.Category{Name: r.Category, ProductCount: int(r.ProductCount)})
		}
		return out, nil
	}

	active := string(service.ProductStatusActive)
	rows, err := q.ListProducts(ctx, sqlc.ListProductsParams{Status: &active, Tags: []string{}})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	counts := make(map[string]int)
	for _, row := range rows {
		p := toProduct(row)
		if s.visible(&p) {
			counts[p.Category]++
		}
	}
	return sortedCategories(counts), nil
}

func sortedCategories(counts map[string]int) []service.Category {
	out := make([]service.Category, 0, len(counts))
	for name, n := range counts {
		out = append(out, service.Category{Name: name, ProductCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListTopProducts implements CatalogService.ListTopProducts
func (s *dbService) ListTopProducts(ctx context.Context, limit int) ([]service.TopProduct, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListTopProducts")
	defer span.End()

	if limit < 1 || limit > service.MaxPageSize {
		err := service.NewValidationError("limit", "must be between 1 and %d", service.MaxPageSize)
		recordError(span, err)
		return nil, err
	}

	size := limit
	if s.filtering() {
		size = service.MaxPageSize
	}

	rows, err := s.queries().ListTopProducts(ctx, int32(size))
	if err != nil {
		err = fmt.Errorf("failed to list top products: %w", err)
		recordError(span, err)
		return nil, err
	}

	out := make([]service.TopProduct, 0, limit)
	for _, r := range rows {
		if len(out) == limit {
			break
		}
		if !s.visible(&service.Product{Slug: r.Slug, Tags: r.Tags}) {
			continue
		}
		out = append(out, toTopProduct(r))
	}
	return out, nil
}

// loadProductForCart returns a product a shopper may put in a cart
func (s *dbService) loadProductForCart(ctx context.Context, q *sqlc.Queries, productID uuid.UUID) (*service.Product, error) {
	row, err := q.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	p := toProduct(row)
	if !s.visible(&p) {
		return nil, service.ErrProductNotFound
	}
	if !p.IsActive() {
		return nil, service.ErrProductUnavailable
	}
	return &p, nil
}
