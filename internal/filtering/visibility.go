package filtering

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
)

type rules struct {
	names *NameFilter
	tags  *TagFilter
}

// Visibility is the live storefront product filter
type Visibility struct {
	current atomic.Pointer[rules]
}

var _ service.ProductVisibility = (*Visibility)(nil)

// NewVisibility builds a Visibility from the filter configuration. A nil config shows everything.
func NewVisibility(cfg *config.FilterConfig) (*Visibility, error) {
	v := &Visibility{}
	if err := v.Update(cfg); err != nil {
		return nil, err
	}
	return v, nil
}

// Update swaps in new rules. On error the previous rules stay active.
func (v *Visibility) Update(cfg *config.FilterConfig) error {
	r := &rules{}
	if cfg != nil {
		if cfg.Names != nil {
			names, err := NewNameFilter(cfg.Names.Include, cfg.Names.Exclude)
			if err != nil {
				return fmt.Errorf("catalog name filter: %w", err)
			}
			r.names = names
		}
		if cfg.Tags != nil {
			r.tags = NewTagFilter(cfg.Tags.Include, cfg.Tags.Exclude)
		}
	}

	v.current.Store(r)
	return nil
}

// ShouldInclude reports whether a product passes both filters, with the reason
func (v *Visibility) ShouldInclude(slug string, tags []string) (bool, string) {
	r := v.current.Load()
	if r == nil {
		return true, "no filters specified"
	}

	if ok, reason := r.names.ShouldInclude(slug); !ok {
		return false, "name filter: " + reason
	}
	if ok, reason := r.tags.ShouldInclude(tags); !ok {
		return false, "tag filter: " + reason
	}
	return true, "passed all filters"
}

// Active reports whether a name or tag filter is configured
func (v *Visibility) Active() bool {
	r := v.current.Load()
	return r != nil && (r.names != nil || r.tags != nil)
}

// Visible implements service.ProductVisibility
func (v *Visibility) Visible(p *service.Product) bool {
	ok, reason := v.ShouldInclude(p.Slug, p.Tags)
	if !ok {
		slog.Debug("Product hidden from storefront", "slug", p.Slug, "reason", reason)
	}
	return ok
}
