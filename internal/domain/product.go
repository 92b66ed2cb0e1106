package domain

import "time"

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID             string            `bson:"_id" json:"id"`
	Name           string            `bson:"name" json:"name"`
	Category       string            `bson:"category" json:"category"`
	SubCategory    string            `bson:"subCategory" json:"sub_category"`
	Price          float64           `bson:"price" json:"price"`
	Rating         float64           `bson:"rating" json:"rating"`
	ReviewCount    int               `bson:"reviewCount" json:"review_count"`
	Specifications map[string]string `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Sizes          []string          `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Colors         []Color           `bson:"colors,omitempty" json:"colors,omitempty"`
	SellerID       string            `bson:"sellerId" json:"seller_id"`
	IsApproved     bool              `bson:"isApproved" json:"is_approved"`
	Status         string            `bson:"status" json:"status"`
	UpdatedAt      time.Time         `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}

// ProductPatch carries only the top-level fields a correction changes.
// Nil fields are left untouched.
type ProductPatch struct {
	Category       *string
	SubCategory    *string
	Specifications map[string]string
	Sizes          []string
	Colors         []Color
}

func (p ProductPatch) IsEmpty() bool {
	return p.Category == nil && p.SubCategory == nil && p.Specifications == nil && p.Sizes == nil && p.Colors == nil
}

// Fields lists the names of the document fields the patch sets.
func (p ProductPatch) Fields() []string {
	var fields []string
	if p.Category != nil {
		fields = append(fields, "category")
	}
	if p.SubCategory != nil {
		fields = append(fields, "subCategory")
	}
	if p.Specifications != nil {
		fields = append(fields, "specifications")
	}
	if p.Sizes != nil {
		fields = append(fields, "sizes")
	}
	if p.Colors != nil {
		fields = append(fields, "colors")
	}

	return fields
}

// Apply copies the fields set in patch onto the product.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SubCategory != nil {
		p.SubCategory = *patch.SubCategory
	}
	if patch.Specifications != nil {
		p.Specifications = patch.Specifications
	}
	if patch.Sizes != nil {
		p.Sizes = patch.Sizes
	}
	if patch.Colors != nil {
		p.Colors = patch.Colors
	}
}

type Seller struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	IsVerified bool      `bson:"isVerified" json:"is_verified"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}
