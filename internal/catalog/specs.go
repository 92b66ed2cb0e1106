package catalog

import "github.com/alimikegami/point-of-sales/store-admin/internal/domain"

// MinSpecificationKeys is the size under which a specification map is
// considered incomplete.
const MinSpecificationKeys = 4

type specTemplate struct {
	specifications map[string]string
	sizes          []string
}

var (
	electronicsTemplate = specTemplate{
		specifications: map[string]string{
			"Brand":        "Generic",
			"Model":        "Standard",
			"Warranty":     "1 Year",
			"Power Source": "Electric",
			"Connectivity": "Wired",
		},
	}
	fashionTemplate = specTemplate{
		specifications: map[string]string{
			"Material":          "Cotton",
			"Fit":               "Regular",
			"Pattern":           "Solid",
			"Occasion":          "Casual",
			"Care Instructions": "Machine wash",
		},
		sizes: []string{"S", "M", "L", "XL"},
	}
	homeTemplate = specTemplate{
		specifications: map[string]string{
			"Material":          "Wood",
			"Dimensions":        "Standard",
			"Weight":            "1 kg",
			"Care Instructions": "Wipe clean",
		},
	}
	beautyTemplate = specTemplate{
		specifications: map[string]string{
			"Skin Type":   "All",
			"Volume":      "100 ml",
			"Shelf Life":  "24 months",
			"Ingredients": "See packaging",
		},
		sizes: []string{"50 ml", "100 ml", "200 ml"},
	}
	defaultTemplate = specTemplate{
		specifications: map[string]string{
			"Brand":    "Generic",
			"Material": "Mixed",
			"Weight":   "500 g",
			"Origin":   "India",
		},
	}
)

func templateFor(category string) specTemplate {
	switch {
	case category == "Electronics":
		return electronicsTemplate
	case IsFashion(category):
		return fashionTemplate
	case category == "Home & Living":
		return homeTemplate
	case category == "Beauty":
		return beautyTemplate
	}

	return defaultTemplate
}

// TemplateKeys lists the specification keys the template for category carries.
func TemplateKeys(category string) []string {
	t := templateFor(category)
	keys := make([]string, 0, len(t.specifications))
	for k := range t.specifications {
		keys = append(keys, k)
	}

	return keys
}

// FillSpecifications backfills incomplete specifications from the category
// template, keeping the product's own values on conflict, and sets default
// sizes when the product has none.
func FillSpecifications(p domain.Product) (domain.ProductPatch, bool) {
	t := templateFor(p.Category)

	var patch domain.ProductPatch
	if len(p.Specifications) < MinSpecificationKeys {
		merged := make(map[string]string, len(t.specifications)+len(p.Specifications))
		for k, v := range t.specifications {
			merged[k] = v
		}
		for k, v := range p.Specifications {
			merged[k] = v
		}
		patch.Specifications = merged
	}

	if len(t.sizes) > 0 && len(p.Sizes) == 0 {
		patch.Sizes = append([]string(nil), t.sizes...)
	}

	return patch, !patch.IsEmpty()
}
