package appcontext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/RoyceAzure/lab/stylish/internal/catalog"
	"github.com/RoyceAzure/lab/stylish/internal/config"
	"github.com/RoyceAzure/lab/stylish/internal/dataset"
	"github.com/RoyceAzure/lab/stylish/internal/infra/producer"
	"github.com/RoyceAzure/lab/stylish/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/stylish/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/stylish/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ApplicationContext 持有整個store的共用依賴
// 商品目錄開機載入一次，session快照與事件流走外部服務
type ApplicationContext struct {
	Cf          *config.Config
	Logger      zerolog.Logger
	RedisClient *redis.Client
	SessionRepo redis_repo.ISessionRepository
	Producer    producer.IStoreEventProducer
	Catalog     *catalog.Catalog
	Orders      *service.OrderBook
	Checkout    *service.CheckoutService
	Admin       *service.AdminService
}

func NewApplicationContext(ctx context.Context, cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}

	err := app.Init(ctx)
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init(ctx context.Context) error {
	app.setUpLogger()

	err := app.setUpRedis(ctx)
	if err != nil {
		return err
	}

	app.setUpProducer()

	err = app.setUpCatalog(ctx)
	if err != nil {
		return err
	}

	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	app.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "stylish").
		Logger()
}

func (app *ApplicationContext) setUpRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
		DB:       app.Cf.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect redis: %w", err)
	}
	app.RedisClient = client
	app.SessionRepo = redis_repo.NewSessionRepo(client, app.Cf.KeyPrefix, app.Cf.SnapshotTTL())
	return nil
}

// setUpProducer 沒設KAFKA_BROKERS就不發事件
func (app *ApplicationContext) setUpProducer() {
	if app.Cf.KafkaBrokers == "" {
		app.Producer = producer.NewNoopProducer()
		return
	}
	brokers := strings.Split(app.Cf.KafkaBrokers, ",")
	app.Producer = producer.NewKafkaProducer(brokers, app.Cf.KafkaTopic)
	app.Logger.Info().Strs("brokers", brokers).Str("topic", app.Cf.KafkaTopic).Msg("kafka producer enabled")
}

// setUpCatalog 有設POSTGRES_DB就從db載入商品，否則用內嵌種子資料
func (app *ApplicationContext) setUpCatalog(ctx context.Context) error {
	var prov catalog.IProvider

	if app.Cf.DbName != "" {
		conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
		if err != nil {
			return fmt.Errorf("failed to connect db: %w", err)
		}
		repo := db.NewProductDBRepo(conn)
		if err := repo.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate products table: %w", err)
		}
		if err := repo.Seed(ctx, dataset.Products()); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		prov = repo
		app.Logger.Info().Str("db", app.Cf.DbName).Msg("catalog provider: postgres")
	} else {
		prov = dataset.NewProvider()
		app.Logger.Info().Msg("catalog provider: embedded dataset")
	}

	cat, err := catalog.Load(ctx, prov)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	app.Catalog = cat
	app.Logger.Info().Int("products", cat.Len()).Msg("catalog loaded")
	return nil
}

func (app *ApplicationContext) setUpServices() {
	app.Orders = service.NewOrderBook(dataset.Orders())
	app.Checkout = service.NewCheckoutService(app.Catalog, app.Orders, app.Producer, app.Logger)
	app.Admin = service.NewAdminService(app.Catalog, app.Orders, dataset.Customers())
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	var errs []error

	if app.Producer != nil {
		if err := app.Producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close producer: %w", err))
		}
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}
