package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed category_map.yaml
var defaultCategoryMap []byte

// Placement is a canonical (category, subCategory) pair.
type Placement struct {
	Category    string `yaml:"category" json:"category"`
	SubCategory string `yaml:"subCategory" json:"sub_category"`
}

type fallbackRule struct {
	Keywords  []string  `yaml:"keywords"`
	Match     Placement `yaml:"match"`
	Otherwise Placement `yaml:"otherwise"`
}

type refineRule struct {
	SubCategory string   `yaml:"subCategory"`
	Keywords    []string `yaml:"keywords"`
}

type categoryMap struct {
	Remap     map[string]Placement `yaml:"remap"`
	Ambiguous []string             `yaml:"ambiguous"`
	Fallback  fallbackRule         `yaml:"fallback"`
	Refine    []refineRule         `yaml:"refine"`
}

type Classifier struct {
	remap     map[string]Placement
	ambiguous map[string]struct{}
	fallback  fallbackRule
	refine    []refineRule
}

// DefaultClassifier returns the classifier built from the embedded table.
func DefaultClassifier() *Classifier {
	c, err := LoadClassifier(bytes.NewReader(defaultCategoryMap))
	if err != nil {
		panic(fmt.Sprintf("embedded category map: %v", err))
	}

	return c
}

// LoadClassifier parses a category map document.
func LoadClassifier(r io.Reader) (*Classifier, error) {
	var m categoryMap
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding category map: %w", err)
	}

	for from, to := range m.Remap {
		if to.Category == "" || to.SubCategory == "" {
			return nil, fmt.Errorf("remap entry %q: category and subCategory are required", from)
		}
		if from == to.Category {
			return nil, fmt.Errorf("remap entry %q maps onto itself", from)
		}
	}

	if len(m.Ambiguous) > 0 && (m.Fallback.Match.Category == "" || m.Fallback.Otherwise.Category == "") {
		return nil, fmt.Errorf("ambiguous categories need both fallback placements")
	}

	c := &Classifier{
		remap:     m.Remap,
		ambiguous: make(map[string]struct{}, len(m.Ambiguous)),
		fallback:  m.Fallback,
		refine:    m.Refine,
	}
	for _, a := range m.Ambiguous {
		if _, ok := m.Remap[a]; ok {
			return nil, fmt.Errorf("category %q is both remapped and ambiguous", a)
		}
		c.ambiguous[a] = struct{}{}
	}

	return c, nil
}

// Classify maps a possibly malformed category to its canonical placement.
// Categories that are neither in the remap table nor ambiguous are left
// alone and reported unchanged.
func (c *Classifier) Classify(category, name string) (Placement, bool) {
	if p, ok := c.remap[category]; ok {
		return p, true
	}

	if _, ok := c.ambiguous[category]; ok {
		if containsAny(strings.ToLower(name), c.fallback.Keywords) {
			return c.fallback.Match, true
		}
		return c.fallback.Otherwise, true
	}

	return Placement{Category: category}, false
}

// RefineSubCategory picks a sub-category from keywords in the product name.
// Only fashion categories are refined. The second result is false when the
// sub-category already matches or no rule applies.
func (c *Classifier) RefineSubCategory(category, subCategory, name string) (string, bool) {
	if !IsFashion(category) {
		return subCategory, false
	}

	lowered := strings.ToLower(name)
	for _, rule := range c.refine {
		if !containsAny(lowered, rule.Keywords) {
			continue
		}
		if rule.SubCategory == subCategory {
			return subCategory, false
		}
		return rule.SubCategory, true
	}

	return subCategory, false
}

// Correct runs the classifier and the refinement over a product and returns
// the patch that would bring it to its canonical placement.
func (c *Classifier) Correct(p domain.Product) (domain.ProductPatch, bool) {
	category, subCategory := p.Category, p.SubCategory
	if placement, changed := c.Classify(p.Category, p.Name); changed {
		category, subCategory = placement.Category, placement.SubCategory
	}

	if refined, changed := c.RefineSubCategory(category, subCategory, p.Name); changed {
		subCategory = refined
	}

	var patch domain.ProductPatch
	if category != p.Category {
		patch.Category = &category
	}
	if subCategory != p.SubCategory {
		patch.SubCategory = &subCategory
	}

	return patch, !patch.IsEmpty()
}

// Entries returns a copy of the remap table.
func (c *Classifier) Entries() map[string]Placement {
	out := make(map[string]Placement, len(c.remap))
	for k, v := range c.remap {
		out[k] = v
	}

	return out
}

func IsFashion(category string) bool {
	return strings.Contains(category, "Fashion")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}

	return false
}
