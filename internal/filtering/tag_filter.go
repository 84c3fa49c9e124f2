package filtering

import (
	"fmt"
	"slices"
)

// TagFilter matches product tags against include and exclude lists
type TagFilter struct {
	include []string
	exclude []string
}

// NewTagFilter creates a TagFilter. Tags compare exactly.
func NewTagFilter(include, exclude []string) *TagFilter {
	return &TagFilter{include: include, exclude: exclude}
}

// ShouldInclude reports whether a product with tags passes the filter, with the reason.
// Any excluded tag hides the product. With an include list, at least one tag must be on it.
func (f *TagFilter) ShouldInclude(tags []string) (bool, string) {
	if f == nil {
		return true, "no tag filters specified"
	}

	for _, tag := range tags {
		if slices.Contains(f.exclude, tag) {
			return false, fmt.Sprintf("excluded by tag '%s'", tag)
		}
	}

	if len(f.include) > 0 {
		for _, tag := range tags {
			if slices.Contains(f.include, tag) {
				return true, fmt.Sprintf("included by tag '%s'", tag)
			}
		}
		return false, fmt.Sprintf("no matching tags found in include list %v (product tags: %v)", f.include, tags)
	}

	if len(f.exclude) > 0 {
		return true, "no matching tags in exclude list"
	}
	return true, "no tag filters specified"
}
