package app

import (
	"context"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/config"
	"github.com/alimikegami/point-of-sales/store-admin/internal/catalog"
	circuitbreaker "github.com/alimikegami/point-of-sales/store-admin/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/store-admin/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/point-of-sales/store-admin/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/store-admin/internal/infrastructure/tracing"
	"github.com/alimikegami/point-of-sales/store-admin/internal/repository"
	"github.com/alimikegami/point-of-sales/store-admin/internal/service"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/httpclient"
	"github.com/rs/zerolog/log"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Infrastructure holds the process wide connections.
type Infrastructure struct {
	DB            *mongo.Database
	Producer      *kafkago.Conn
	TraceProvider *sdktrace.TracerProvider
}

type Services struct {
	Catalog service.CatalogService
	Order   service.OrderService
	Review  service.ReviewService
	User    service.UserService
	Seed    service.SeedService
}

// Connect opens the store once for the whole process. Kafka and tracing are
// optional and only logged when they fail.
func Connect(ctx context.Context, conf *config.Config, serviceName string) (*Infrastructure, error) {
	infra := &Infrastructure{}

	traceProvider, err := tracing.InitTracing(ctx, conf.TracingConfig.CollectorHost, serviceName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}
	infra.TraceProvider = traceProvider

	infra.DB, err = mongodb.ConnectToMongoDB(ctx, conf.MongoDBConfig.MongoURI(), conf.MongoDBConfig.DBName)
	if err != nil {
		infra.Close(context.Background())
		return nil, err
	}

	infra.Producer, err = kafka.CreateKafkaProducer(ctx, conf)
	if err != nil {
		log.Warn().Err(err).Msg("Kafka unavailable, change events are disabled")
	}

	return infra, nil
}

func (i *Infrastructure) Close(ctx context.Context) {
	if i.Producer != nil {
		if err := i.Producer.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka producer")
		}
	}

	if err := mongodb.Disconnect(ctx, i.DB); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from mongodb")
	}

	if i.TraceProvider != nil {
		if err := i.TraceProvider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}
}

func BuildServices(db *mongo.Database, producer *kafkago.Conn, classifier *catalog.Classifier) Services {
	repo := repository.CreateNewMongoDBRepository(db)
	publisher := service.CreateEventPublisher(producer)

	return Services{
		Catalog: service.CreateCatalogService(repo, classifier, publisher),
		Order:   service.CreateOrderService(repo, publisher),
		Review:  service.CreateReviewService(repo, repo),
		User:    service.CreateUserService(repo, repo),
		Seed:    service.CreateSeedService(repo, repo, repo, repo, repo),
	}
}

// NewHTTPClient returns an outbound client guarded by a breaker named name.
func NewHTTPClient(name string, timeout time.Duration) *httpclient.Client {
	return httpclient.NewClient(timeout, circuitbreaker.CreateCircuitBreaker[httpclient.Response](name))
}
