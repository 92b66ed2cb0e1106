package dto

import "github.com/alimikegami/point-of-sales/store-admin/internal/domain"

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CategoryCorrection struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	FromCategory    string `json:"from_category"`
	FromSubCategory string `json:"from_sub_category"`
	ToCategory      string `json:"to_category"`
	ToSubCategory   string `json:"to_sub_category"`
}

type CategoryAudit struct {
	Total        int                  `json:"total"`
	ByCategory   []CategoryCount      `json:"by_category"`
	NonCanonical []CategoryCorrection `json:"non_canonical"`
	Undecodable  []string             `json:"undecodable,omitempty"`
}

type Correction struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Fields    []string `json:"fields"`
	Detail    string   `json:"detail,omitempty"`
}

// CorrectionReport lists what a fix run changed, or would change when
// DryRun is set. After a failed write it holds the corrections applied
// before the failure.
type CorrectionReport struct {
	DryRun      bool         `json:"dry_run"`
	Scanned     int          `json:"scanned"`
	Corrected   []Correction `json:"corrected"`
	Undecodable []string     `json:"undecodable,omitempty"`
}

// ProductInspection shows one product next to what each correction would
// make of it.
type ProductInspection struct {
	Product          domain.Product `json:"product"`
	Suggested        *Placement     `json:"suggested_placement,omitempty"`
	MissingSpecKeys  []string       `json:"missing_specification_keys"`
	NeedsSpecFill    bool           `json:"needs_specification_fill"`
	NormalizedColors []domain.Color `json:"normalized_colors,omitempty"`
}

type Placement struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
}

type ReviewableItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

type UserProfile struct {
	User       domain.User           `json:"user"`
	Wishlist   []domain.WishlistItem `json:"wishlist"`
	OrderCount int64                 `json:"order_count"`
}

type SeedOptions struct {
	Reset bool
	Users int
}

type SeedReport struct {
	Sellers  int `json:"sellers"`
	Users    int `json:"users"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Reviews  int `json:"reviews"`
	Wishlist int `json:"wishlist"`
}

type SmokeResult struct {
	Name       string `json:"name"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	StatusCode int    `json:"status_code"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
}
