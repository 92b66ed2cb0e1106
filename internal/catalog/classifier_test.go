package catalog

import (
	"strings"
	"testing"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRemapTable(t *testing.T) {
	c := DefaultClassifier()

	entries := c.Entries()
	require.NotEmpty(t, entries)

	for from, want := range entries {
		got, changed := c.Classify(from, "anything at all")
		assert.True(t, changed, from)
		assert.Equal(t, want, got, from)
	}
}

func TestClassifyAmbiguousFallback(t *testing.T) {
	type TestCase struct {
		Name     string
		Category string
		Product  string
		Expected Placement
	}

	women := Placement{Category: "Women's Fashion", SubCategory: "Apparel"}
	men := Placement{Category: "Men's Fashion", SubCategory: "Apparel"}

	testCases := []TestCase{
		{Name: "saree", Category: "Fashion", Product: "Banarasi Saree", Expected: women},
		{Name: "kurti", Category: "Clothing", Product: "Printed Kurti", Expected: women},
		{Name: "dress", Category: "Apparel", Product: "Summer DRESS", Expected: women},
		{Name: "top", Category: "Fashion", Product: "Crop Top", Expected: women},
		{Name: "floral", Category: "Clothes", Product: "Floral Print Blouse", Expected: women},
		{Name: "women", Category: "Fashion", Product: "Women Running Jacket", Expected: women},
		{Name: "no keyword", Category: "Fashion", Product: "Slim Fit Chinos", Expected: men},
		{Name: "empty name", Category: "Clothing", Product: "", Expected: men},
	}

	c := DefaultClassifier()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, changed := c.Classify(tc.Category, tc.Product)
			assert.True(t, changed)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestClassifyLeavesUnknownCategoriesAlone(t *testing.T) {
	c := DefaultClassifier()

	for _, category := range []string{"Electronics", "Women's Fashion", "Toys", ""} {
		got, changed := c.Classify(category, "Floral Dress")
		assert.False(t, changed, category)
		assert.Equal(t, category, got.Category)
	}
}

func TestRefineSubCategory(t *testing.T) {
	type TestCase struct {
		Name        string
		Category    string
		SubCategory string
		Product     string
		Expected    string
		Changed     bool
	}

	testCases := []TestCase{
		{Name: "already matching scarf", Category: "Women's Fashion", SubCategory: "Apparel", Product: "Wool Blend Oversized Scarf", Expected: "Apparel"},
		{Name: "saree from general", Category: "Women's Fashion", SubCategory: "General", Product: "Pure Silk Saree", Expected: "Ethnic Wear", Changed: true},
		{Name: "ethnic wins over apparel", Category: "Women's Fashion", SubCategory: "Apparel", Product: "Kurti Dress Set", Expected: "Ethnic Wear", Changed: true},
		{Name: "shoes", Category: "Men's Fashion", SubCategory: "Apparel", Product: "Running Shoes", Expected: "Footwear", Changed: true},
		{Name: "watches", Category: "Men's Fashion", SubCategory: "General", Product: "Pack of 2 Watches", Expected: "Accessories", Changed: true},
		{Name: "no rule", Category: "Men's Fashion", SubCategory: "General", Product: "Leather Belt", Expected: "General"},
		{Name: "not fashion", Category: "Electronics", SubCategory: "Gadgets", Product: "Laptop Sleeve Shirt Print", Expected: "Gadgets"},
	}

	c := DefaultClassifier()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, changed := c.RefineSubCategory(tc.Category, tc.SubCategory, tc.Product)
			assert.Equal(t, tc.Changed, changed)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestCorrect(t *testing.T) {
	c := DefaultClassifier()

	patch, changed := c.Correct(domain.Product{Name: "Wool Blend Oversized Scarf", Category: "Women's Fashion", SubCategory: "Apparel"})
	assert.False(t, changed)
	assert.True(t, patch.IsEmpty())

	patch, changed = c.Correct(domain.Product{Name: "Pure Silk Saree", Category: "Women's Fashion", SubCategory: "General"})
	require.True(t, changed)
	assert.Nil(t, patch.Category)
	require.NotNil(t, patch.SubCategory)
	assert.Equal(t, "Ethnic Wear", *patch.SubCategory)

	patch, changed = c.Correct(domain.Product{Name: "Silk Saree", Category: "Fashion", SubCategory: "General"})
	require.True(t, changed)
	assert.Equal(t, "Women's Fashion", *patch.Category)
	assert.Equal(t, "Ethnic Wear", *patch.SubCategory)
	assert.Equal(t, []string{"category", "subCategory"}, patch.Fields())

	p := domain.Product{Name: "Silk Saree", Category: "Fashion", SubCategory: "General"}
	p.Apply(patch)
	_, changed = c.Correct(p)
	assert.False(t, changed)
}

func TestLoadClassifier(t *testing.T) {
	doc := `
remap:
  Gizmos: {category: Electronics, subCategory: Gadgets}
`
	c, err := LoadClassifier(strings.NewReader(doc))
	require.NoError(t, err)

	got, changed := c.Classify("Gizmos", "USB Hub")
	assert.True(t, changed)
	assert.Equal(t, Placement{Category: "Electronics", SubCategory: "Gadgets"}, got)

	_, changed = c.Classify("Fashion", "Saree")
	assert.False(t, changed)
}

func TestLoadClassifierRejectsBadTables(t *testing.T) {
	docs := map[string]string{
		"self mapping":           "remap:\n  Electronics: {category: Electronics, subCategory: Gadgets}\n",
		"missing sub":            "remap:\n  Gizmos: {category: Electronics}\n",
		"no fallback":            "ambiguous: [Fashion]\n",
		"remapped and ambiguous": "remap:\n  Fashion: {category: Men's Fashion, subCategory: Apparel}\nambiguous: [Fashion]\nfallback:\n  match: {category: A, subCategory: B}\n  otherwise: {category: C, subCategory: D}\n",
		"not yaml":               "remap: [",
	}

	for name, doc := range docs {
		_, err := LoadClassifier(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}
