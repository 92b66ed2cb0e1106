package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func decodeProduct(t *testing.T, doc bson.M) (Product, error) {
	t.Helper()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var product Product
	err = bson.Unmarshal(raw, &product)
	return product, err
}

func TestProductDecodesLooseShapes(t *testing.T) {
	type TestCase struct {
		Name   string
		Doc    bson.M
		Assert func(t *testing.T, p Product)
	}

	decimal, err := primitive.ParseDecimal128("1299.50")
	require.NoError(t, err)

	testCases := []TestCase{
		{
			Name: "numeric and boolean specification values",
			Doc: bson.M{"_id": "p1", "specifications": bson.M{
				"Weight": int32(250), "Battery": 4.5, "Waterproof": true, "Model": "X1", "Notes": nil,
			}},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, map[string]string{
					"Weight": "250", "Battery": "4.5", "Waterproof": "true", "Model": "X1",
				}, p.Specifications)
			},
		},
		{
			Name: "numeric shoe sizes",
			Doc:  bson.M{"_id": "p2", "sizes": bson.A{int32(7), int64(8), 9.5, "10", nil}},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, []string{"7", "8", "9.5", "10"}, p.Sizes)
			},
		},
		{
			Name: "comma separated sizes",
			Doc:  bson.M{"_id": "p3", "sizes": "S, M ,L,"},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, []string{"S", "M", "L"}, p.Sizes)
			},
		},
		{
			Name: "single numeric size",
			Doc:  bson.M{"_id": "p4", "sizes": int32(42)},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, []string{"42"}, p.Sizes)
			},
		},
		{
			Name: "price stored as text",
			Doc:  bson.M{"_id": "p5", "price": "Rs. 1,299.00", "rating": "4.2", "reviewCount": "17"},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, 1299.0, p.Price)
				assert.Equal(t, 4.2, p.Rating)
				assert.Equal(t, 17, p.ReviewCount)
			},
		},
		{
			Name: "integer and decimal prices",
			Doc:  bson.M{"_id": "p6", "price": decimal, "rating": int32(4), "reviewCount": 3.0},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, 1299.5, p.Price)
				assert.Equal(t, 4.0, p.Rating)
				assert.Equal(t, 3, p.ReviewCount)
			},
		},
		{
			Name: "unreadable price",
			Doc:  bson.M{"_id": "p7", "price": "on request"},
			Assert: func(t *testing.T, p Product) {
				assert.Zero(t, p.Price)
			},
		},
		{
			Name: "null colors entry",
			Doc:  bson.M{"_id": "p8", "colors": bson.A{nil, "Red"}},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, []Color{{Legacy: true}, {Name: "Red", Legacy: true}}, p.Colors)
			},
		},
		{
			Name: "missing and null fields",
			Doc:  bson.M{"_id": "p9", "name": "Mug", "specifications": nil, "sizes": nil},
			Assert: func(t *testing.T, p Product) {
				assert.Equal(t, "Mug", p.Name)
				assert.Nil(t, p.Specifications)
				assert.Nil(t, p.Sizes)
				assert.Zero(t, p.Price)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			product, err := decodeProduct(t, tc.Doc)
			require.NoError(t, err)
			tc.Assert(t, product)
		})
	}
}

func TestProductDecodesObjectIDAsHex(t *testing.T) {
	id := primitive.NewObjectID()

	product, err := decodeProduct(t, bson.M{"_id": id, "category": "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), product.ID)
}

func TestProductRejectsNonDocumentSpecifications(t *testing.T) {
	_, err := decodeProduct(t, bson.M{"_id": "p1", "specifications": bson.A{"Cotton"}})
	assert.ErrorContains(t, err, "specifications")
}

func TestProductRoundTripKeepsTypedFields(t *testing.T) {
	in := Product{
		ID:             "p1",
		Name:           "Kurti",
		Price:          799,
		Specifications: map[string]string{"Material": "Rayon"},
		Sizes:          []string{"S", "M"},
		Colors:         []Color{{Name: "Red", Code: "#FF0000"}},
		UpdatedAt:      time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC),
	}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out Product
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
