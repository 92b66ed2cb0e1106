package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const productsNS = "test.products"

// commandPart decodes one field of the command the driver sent.
func commandPart(t *testing.T, command bson.Raw, key ...string) bson.D {
	var out bson.D
	require.NoError(t, bson.Unmarshal(command.Lookup(key...).Document(), &out))
	return out
}

func TestGetProducts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filter sort and paging", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "p3"}, {Key: "name", Value: "Silk Saree"}, {Key: "category", Value: "Fashion"}},
		))

		data, undecodable, err := repo.GetProducts(context.Background(), pkgdto.Filter{Category: "Fashion", Q: "saree (new)", Limit: 20, Page: 3})
		require.NoError(t, err)
		assert.Empty(t, undecodable)
		require.Len(t, data, 1)
		assert.Equal(t, "Silk Saree", data[0].Name)

		command := mt.GetStartedEvent().Command
		assert.Equal(t, bson.D{
			{Key: "category", Value: "Fashion"},
			{Key: "name", Value: bson.D{{Key: "$regex", Value: `saree \(new\)`}, {Key: "$options", Value: "i"}}},
		}, commandPart(t, command, "filter"))
		assert.Equal(t, bson.D{{Key: "_id", Value: int32(1)}}, commandPart(t, command, "sort"))
		assert.Equal(t, int64(20), command.Lookup("limit").Int64())
		assert.Equal(t, int64(40), command.Lookup("skip").Int64())
	})

	mt.Run("no filter scans everything", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

		data, undecodable, err := repo.GetProducts(context.Background(), pkgdto.Filter{})
		require.NoError(t, err)
		assert.Empty(t, data)
		assert.Empty(t, undecodable)

		command := mt.GetStartedEvent().Command
		assert.Empty(t, commandPart(t, command, "filter"))
		_, err = command.LookupErr("limit")
		assert.Error(t, err)
		_, err = command.LookupErr("skip")
		assert.Error(t, err)
	})

	mt.Run("unreadable documents are skipped", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "p1"}, {Key: "name", Value: "Kurta"}, {Key: "price", Value: "Rs. 899"}},
			bson.D{{Key: "_id", Value: "p2"}, {Key: "name", Value: bson.D{{Key: "en", Value: "Scarf"}}}},
			bson.D{{Key: "_id", Value: "p3"}, {Key: "name", Value: "Mug"}, {Key: "sizes", Value: bson.A{int32(250), int32(500)}}},
		))

		data, undecodable, err := repo.GetProducts(context.Background(), pkgdto.Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"p2"}, undecodable)
		require.Len(t, data, 2)
		assert.Equal(t, 899.0, data[0].Price)
		assert.Equal(t, []string{"250", "500"}, data[1].Sizes)
	})

	mt.Run("server error", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not allowed"}))

		_, _, err := repo.GetProducts(context.Background(), pkgdto.Filter{})
		assert.ErrorContains(t, err, "not allowed")
	})
}

func TestGetProductByIDNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

		_, err := repo.GetProductByID(context.Background(), "p9")
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Equal(t, bson.D{{Key: "_id", Value: "p9"}}, commandPart(t, mt.GetStartedEvent().Command, "filter"))
	})
}

func TestUpdateProductFields(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("sets only patched fields", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		category := "Women's Fashion"
		err := repo.UpdateProductFields(context.Background(), "p1", domain.ProductPatch{
			Category: &category,
			Sizes:    []string{"S", "M"},
		}, at)
		require.NoError(t, err)

		command := mt.GetStartedEvent().Command
		assert.Equal(t, bson.D{{Key: "_id", Value: "p1"}}, commandPart(t, command, "updates", "0", "q"))

		set := commandPart(t, command, "updates", "0", "u", "$set")
		keys := make([]string, 0, len(set))
		for _, e := range set {
			keys = append(keys, e.Key)
		}
		assert.Equal(t, []string{"category", "sizes", "updatedAt"}, keys)
		assert.Equal(t, "Women's Fashion", set[0].Value)
		assert.Equal(t, bson.A{"S", "M"}, set[1].Value)
	})

	mt.Run("unknown product", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		subCategory := "Apparel"
		err := repo.UpdateProductFields(context.Background(), "p9", domain.ProductPatch{SubCategory: &subCategory}, at)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("delivered", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(t, repo.UpdateOrderStatus(context.Background(), "o1", domain.OrderStatusDelivered, at))

		set := commandPart(t, mt.GetStartedEvent().Command, "updates", "0", "u", "$set")
		require.Len(t, set, 2)
		assert.Equal(t, bson.E{Key: "status", Value: domain.OrderStatusDelivered}, set[0])
		assert.Equal(t, "updatedAt", set[1].Key)
	})

	mt.Run("unknown order", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateOrderStatus(context.Background(), "o9", domain.OrderStatusDelivered, at)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestGetOrdersByUserID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delivered orders oldest first", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "o1"}, {Key: "userId", Value: "u1"}, {Key: "status", Value: domain.OrderStatusDelivered}},
			bson.D{{Key: "_id", Value: "o2"}, {Key: "userId", Value: "u1"}, {Key: "status", Value: domain.OrderStatusDelivered}},
		))

		orders, err := repo.GetOrdersByUserID(context.Background(), "u1", domain.OrderStatusDelivered)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o1", orders[0].ID)

		command := mt.GetStartedEvent().Command
		assert.Equal(t, bson.D{
			{Key: "userId", Value: "u1"},
			{Key: "status", Value: "Delivered"},
		}, commandPart(t, command, "filter"))
		assert.Equal(t, bson.D{{Key: "createdAt", Value: int32(1)}}, commandPart(t, command, "sort"))
	})

	mt.Run("any status", func(mt *mtest.T) {
		repo := CreateNewMongoDBRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch))

		_, err := repo.GetOrdersByUserID(context.Background(), "u1", "")
		require.NoError(t, err)
		assert.Equal(t, bson.D{{Key: "userId", Value: "u1"}}, commandPart(t, mt.GetStartedEvent().Command, "filter"))
	})
}
