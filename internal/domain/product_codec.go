package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// productDocument mirrors Product with the loosely typed fields left raw.
type productDocument struct {
	ID             string        `bson:"_id"`
	Name           string        `bson:"name"`
	Category       string        `bson:"category"`
	SubCategory    string        `bson:"subCategory"`
	Price          bson.RawValue `bson:"price"`
	Rating         bson.RawValue `bson:"rating"`
	ReviewCount    bson.RawValue `bson:"reviewCount"`
	Specifications bson.RawValue `bson:"specifications"`
	Sizes          bson.RawValue `bson:"sizes"`
	Colors         []Color       `bson:"colors"`
	SellerID       string        `bson:"sellerId"`
	IsApproved     bool          `bson:"isApproved"`
	Status         string        `bson:"status"`
	UpdatedAt      time.Time     `bson:"updatedAt"`
}

// UnmarshalBSON accepts the shapes older writers left behind: numeric or
// boolean specification values, numeric or comma separated sizes and
// prices stored as strings.
func (p *Product) UnmarshalBSON(data []byte) error {
	var doc productDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	specifications, err := decodeSpecifications(doc.Specifications)
	if err != nil {
		return fmt.Errorf("specifications: %w", err)
	}

	*p = Product{
		ID:             doc.ID,
		Name:           doc.Name,
		Category:       doc.Category,
		SubCategory:    doc.SubCategory,
		Price:          decodeNumber(doc.Price),
		Rating:         decodeNumber(doc.Rating),
		ReviewCount:    int(decodeNumber(doc.ReviewCount)),
		Specifications: specifications,
		Sizes:          decodeSizes(doc.Sizes),
		Colors:         doc.Colors,
		SellerID:       doc.SellerID,
		IsApproved:     doc.IsApproved,
		Status:         doc.Status,
		UpdatedAt:      doc.UpdatedAt,
	}

	return nil
}

func isAbsent(v bson.RawValue) bool {
	return v.Type == 0 || v.Type == bsontype.Null || v.Type == bsontype.Undefined
}

// scalarString renders a scalar as text. ok is false for null values.
func scalarString(v bson.RawValue) (s string, ok bool) {
	switch v.Type {
	case bsontype.String:
		return v.StringValue(), true
	case bsontype.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10), true
	case bsontype.Int64:
		return strconv.FormatInt(v.Int64(), 10), true
	case bsontype.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64), true
	case bsontype.Decimal128:
		return v.Decimal128().String(), true
	case bsontype.Boolean:
		return strconv.FormatBool(v.Boolean()), true
	}

	if isAbsent(v) {
		return "", false
	}

	return v.String(), true
}

func decodeSpecifications(v bson.RawValue) (map[string]string, error) {
	if isAbsent(v) {
		return nil, nil
	}
	if v.Type != bsontype.EmbeddedDocument {
		return nil, fmt.Errorf("unsupported type %s", v.Type)
	}

	elements, err := v.Document().Elements()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(elements))
	for _, e := range elements {
		if s, ok := scalarString(e.Value()); ok {
			out[e.Key()] = s
		}
	}

	return out, nil
}

func decodeSizes(v bson.RawValue) []string {
	switch {
	case isAbsent(v):
		return nil
	case v.Type == bsontype.Array:
		values, err := v.Array().Values()
		if err != nil {
			return nil
		}
		out := make([]string, 0, len(values))
		for _, value := range values {
			if s, ok := scalarString(value); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case v.Type == bsontype.String:
		var out []string
		for _, s := range strings.Split(v.StringValue(), ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	s, _ := scalarString(v)
	return []string{s}
}

// decodeNumber reads any numeric encoding, including text such as
// "Rs. 1,299.00". Unreadable values count as zero.
func decodeNumber(v bson.RawValue) float64 {
	switch v.Type {
	case bsontype.Double:
		return v.Double()
	case bsontype.Int32:
		return float64(v.Int32())
	case bsontype.Int64:
		return float64(v.Int64())
	case bsontype.Decimal128:
		f, _ := strconv.ParseFloat(v.Decimal128().String(), 64)
		return f
	case bsontype.String:
		f, _ := strconv.ParseFloat(numericText(v.StringValue()), 64)
		return f
	}

	return 0
}

func numericText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), ".")
}
