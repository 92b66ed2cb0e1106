package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Color decodes from either a bare scalar or a {name, code} document and
// always encodes as a document. A null entry decodes as an empty legacy
// color.
type Color struct {
	Name string `bson:"name" json:"name"`
	Code string `bson:"code" json:"code"`

	// Legacy is set when the stored value was a bare string.
	Legacy bool `bson:"-" json:"-"`
}

type colorDocument struct {
	Name string `bson:"name"`
	Code string `bson:"code"`
}

func (c *Color) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.EmbeddedDocument:
		var doc colorDocument
		if err := raw.Unmarshal(&doc); err != nil {
			return fmt.Errorf("decoding color document: %w", err)
		}
		*c = Color{Name: doc.Name, Code: doc.Code}
		return nil
	case bsontype.Array, bsontype.Binary, bsontype.JavaScript, bsontype.CodeWithScope:
		return fmt.Errorf("unsupported color type %s", t)
	}

	name, _ := scalarString(raw)
	*c = Color{Name: name, Legacy: true}
	return nil
}

func (c Color) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(colorDocument{Name: c.Name, Code: c.Code})
}
