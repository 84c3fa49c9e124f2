package filtering

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

type pattern struct {
	raw string
	g   glob.Glob
}

// NameFilter matches product slugs against include and exclude glob patterns
type NameFilter struct {
	include []pattern
	exclude []pattern
}

// NewNameFilter compiles the patterns. '*' matches any run of characters.
func NewNameFilter(include, exclude []string) (*NameFilter, error) {
	inc, err := compilePatterns(include)
	if err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}
	exc, err := compilePatterns(exclude)
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}
	return &NameFilter{include: inc, exclude: exc}, nil
}

func compilePatterns(raw []string) ([]pattern, error) {
	out := make([]pattern, 0, len(raw))
	for _, p := range raw {
		// filepath.Match reports malformed classes that glob would accept
		if _, err := filepath.Match(p, "test"); err != nil {
			return nil, fmt.Errorf("invalid glob pattern '%s': %w", p, err)
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern '%s': %w", p, err)
		}
		out = append(out, pattern{raw: p, g: g})
	}
	return out, nil
}

// ShouldInclude reports whether the name passes the filter, with the reason.
// A nil filter includes everything.
func (f *NameFilter) ShouldInclude(name string) (bool, string) {
	if f == nil {
		return true, "no name filters specified"
	}

	for _, p := range f.exclude {
		if p.g.Match(name) {
			return false, fmt.Sprintf("excluded by pattern '%s'", p.raw)
		}
	}

	if len(f.include) > 0 {
		for _, p := range f.include {
			if p.g.Match(name) {
				return true, fmt.Sprintf("included by pattern '%s'", p.raw)
			}
		}
		return false, "no match found in include patterns"
	}

	if len(f.exclude) > 0 {
		return true, "no match in exclude patterns"
	}
	return true, "no name filters specified"
}
