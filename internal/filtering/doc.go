// Package filtering hides catalog products from the storefront by slug pattern or tag.
//
// Rules come from the catalog.filter configuration section:
//
//	catalog:
//	  filter:
//	    names:
//	      include: ["*"]
//	      exclude: ["test-*", "internal-*"]
//	    tags:
//	      exclude: ["hidden", "wholesale"]
//
// Name patterns are globs matched against product slugs. Tags match exactly.
// Exclude rules take precedence over include rules, and a product must pass
// both the name and the tag filter to be visible. Administrators always see
// every product; the filter only applies to storefront listings.
//
// Visibility is safe for concurrent use and is swapped in place when the
// configuration file is reloaded.
package filtering
