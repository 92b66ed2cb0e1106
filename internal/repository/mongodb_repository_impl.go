package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBRepositoryImpl struct {
	db *mongo.Database
}

// CreateNewMongoDBRepository returns one repository value that serves every
// collection of the store.
func CreateNewMongoDBRepository(db *mongo.Database) *MongoDBRepositoryImpl {
	return &MongoDBRepositoryImpl{db: db}
}

// GetProducts scans products matching param, sorted by id. Documents that
// cannot be decoded are skipped and their ids returned in undecodable so
// one malformed product does not stop a scan.
func (r *MongoDBRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, undecodable []string, err error) {
	filter := bson.D{}
	if param.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: param.Category})
	}
	if param.Q != "" {
		filter = append(filter, bson.E{Key: "name", Value: bson.D{{Key: "$regex", Value: regexp.QuoteMeta(param.Q)}, {Key: "$options", Value: "i"}}})
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if param.Limit > 0 {
		opts = opts.SetLimit(int64(param.Limit))
		if param.Page > 1 {
			opts = opts.SetSkip(int64(param.Page-1) * int64(param.Limit))
		}
	}

	cursor, err := r.db.Collection(ProductsCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var product domain.Product
		if decodeErr := cursor.Decode(&product); decodeErr != nil {
			id := documentID(cursor.Current)
			log.Ctx(ctx).Warn().Err(decodeErr).Str("component", "GetProducts").Str("product_id", id).Msg("skipping undecodable product")
			undecodable = append(undecodable, id)
			continue
		}
		data = append(data, product)
	}

	if err = cursor.Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, undecodable, err
	}

	return data, undecodable, nil
}

func documentID(doc bson.Raw) string {
	value, err := doc.LookupErr("_id")
	if err != nil {
		return ""
	}
	if s, ok := value.StringValueOK(); ok {
		return s
	}
	if oid, ok := value.ObjectIDOK(); ok {
		return oid.Hex()
	}

	return value.String()
}

func (r *MongoDBRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(ProductsCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrNotFound
		}

		return product, err
	}

	return product, nil
}

// UpdateProductFields sets only the fields carried by patch, plus updatedAt.
func (r *MongoDBRepositoryImpl) UpdateProductFields(ctx context.Context, id string, patch domain.ProductPatch, at time.Time) (err error) {
	set := bson.D{}
	if patch.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *patch.Category})
	}
	if patch.SubCategory != nil {
		set = append(set, bson.E{Key: "subCategory", Value: *patch.SubCategory})
	}
	if patch.Specifications != nil {
		set = append(set, bson.E{Key: "specifications", Value: patch.Specifications})
	}
	if patch.Sizes != nil {
		set = append(set, bson.E{Key: "sizes", Value: patch.Sizes})
	}
	if patch.Colors != nil {
		set = append(set, bson.E{Key: "colors", Value: patch.Colors})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: at})

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: set}}

	result, err := r.db.Collection(ProductsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProductFields").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		log.Ctx(ctx).Error().Str("component", "UpdateProductFields").Str("product_id", id).Msg("Failed to update product")
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBRepositoryImpl) AddProducts(ctx context.Context, data []domain.Product) (err error) {
	return r.insertMany(ctx, ProductsCollection, "AddProducts", toDocuments(data))
}

func (r *MongoDBRepositoryImpl) AddSellers(ctx context.Context, data []domain.Seller) (err error) {
	return r.insertMany(ctx, SellersCollection, "AddSellers", toDocuments(data))
}

func (r *MongoDBRepositoryImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(OrdersCollection).FindOne(ctx, filter).Decode(&order)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return order, errs.ErrNotFound
		}

		return order, err
	}

	return order, nil
}

// GetOrdersByUserID returns the user's orders oldest first, the order
// reviewable products are listed in. An empty status matches every order.
func (r *MongoDBRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID string, status string) (data []domain.Order, err error) {
	filter := bson.D{{Key: "userId", Value: userID}}
	if status != "" {
		filter = append(filter, bson.E{Key: "status", Value: status})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.db.Collection(OrdersCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRepositoryImpl) CountOrdersByUserID(ctx context.Context, userID string) (count int64, err error) {
	count, err = r.db.Collection(OrdersCollection).CountDocuments(ctx, bson.D{{Key: "userId", Value: userID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrdersByUserID").Msg("")
		return
	}

	return count, nil
}

func (r *MongoDBRepositoryImpl) UpdateOrderStatus(ctx context.Context, id string, status string, at time.Time) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updatedAt", Value: at},
	}}}

	result, err := r.db.Collection(OrdersCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("Failed to update order")
		return
	}

	if result.MatchedCount == 0 {
		log.Ctx(ctx).Error().Str("component", "UpdateOrderStatus").Str("order_id", id).Msg("Failed to update order")
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBRepositoryImpl) AddOrders(ctx context.Context, data []domain.Order) (err error) {
	return r.insertMany(ctx, OrdersCollection, "AddOrders", toDocuments(data))
}

func (r *MongoDBRepositoryImpl) GetReviewsByUserID(ctx context.Context, userID string) (data []domain.Review, err error) {
	filter := bson.D{{Key: "userId", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection(ReviewsCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByUserID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRepositoryImpl) AddReviews(ctx context.Context, data []domain.Review) (err error) {
	return r.insertMany(ctx, ReviewsCollection, "AddReviews", toDocuments(data))
}

func (r *MongoDBRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	err = r.db.Collection(UsersCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, errs.ErrNotFound
		}

		return user, err
	}

	return user, nil
}

func (r *MongoDBRepositoryImpl) GetWishlistByUserID(ctx context.Context, userID string) (data []domain.WishlistItem, err error) {
	filter := bson.D{{Key: "userId", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})

	cursor, err := r.db.Collection(WishlistCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistByUserID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRepositoryImpl) AddUsers(ctx context.Context, data []domain.User) (err error) {
	return r.insertMany(ctx, UsersCollection, "AddUsers", toDocuments(data))
}

func (r *MongoDBRepositoryImpl) AddWishlistItems(ctx context.Context, data []domain.WishlistItem) (err error) {
	return r.insertMany(ctx, WishlistCollection, "AddWishlistItems", toDocuments(data))
}

func (r *MongoDBRepositoryImpl) ClearCollections(ctx context.Context, names []string) (deleted map[string]int64, err error) {
	deleted = make(map[string]int64, len(names))
	for _, name := range names {
		result, err := r.db.Collection(name).DeleteMany(ctx, bson.D{})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "ClearCollections").Str("collection", name).Msg("")
			return deleted, err
		}
		deleted[name] = result.DeletedCount
	}

	return deleted, nil
}

func (r *MongoDBRepositoryImpl) insertMany(ctx context.Context, collection string, component string, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}

	_, err := r.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrConflict
		}

		return err
	}

	return nil
}

func toDocuments[T any](data []T) []interface{} {
	docs := make([]interface{}, 0, len(data))
	for _, d := range data {
		docs = append(docs, d)
	}

	return docs
}
