package dto

// Filter narrows a product scan. Category matches exactly and Q matches
// the name case-insensitively. Limit caps the page size; Page starts at 1.
type Filter struct {
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
	Q        string `query:"q"`
	Category string `query:"category"`
}
