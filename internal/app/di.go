package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	s3client "catalogcore/internal/client/s3"
	"catalogcore/internal/config"
	"catalogcore/internal/platform/closer"
	brandrepo "catalogcore/internal/repository/brand"
	categoryrepo "catalogcore/internal/repository/category"
	itemrepo "catalogcore/internal/repository/item"
	notificationrepo "catalogcore/internal/repository/notification"
	"catalogcore/internal/state"
	uploadhttp "catalogcore/internal/transport/http/upload/v1"
	"catalogcore/internal/view"
)

type di struct {
	mongo *mongo.Client

	brandStore        *state.BrandStore
	categoryStore     *state.CategoryStore
	notificationStore *state.NotificationStore
	itemStore         *state.ItemStore

	uploader uploadhttp.Uploader
	prices   *view.PriceFormatter

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		pingCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout())
		defer cancel()
		if err := mongoClient.Ping(pingCtx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) collection(ctx context.Context, name string) *mongo.Collection {
	return d.MongoDB(ctx).
		Database(config.C().Mongo.DatabaseName()).
		Collection(name)
}

func (d *di) BrandStore(ctx context.Context) *state.BrandStore {
	if d.brandStore == nil {
		d.brandStore = state.NewBrandStore(
			brandrepo.NewBrandRepository(
				d.collection(ctx, config.C().Mongo.BrandsCollection()),
			),
		)
	}

	return d.brandStore
}

func (d *di) CategoryStore(ctx context.Context) *state.CategoryStore {
	if d.categoryStore == nil {
		d.categoryStore = state.NewCategoryStore(
			categoryrepo.NewCategoryRepository(
				d.collection(ctx, config.C().Mongo.CategoriesCollection()),
			),
		)
	}

	return d.categoryStore
}

func (d *di) NotificationStore(ctx context.Context) *state.NotificationStore {
	if d.notificationStore == nil {
		d.notificationStore = state.NewNotificationStore(
			notificationrepo.NewNotificationRepository(
				d.collection(ctx, config.C().Mongo.NotificationsCollection()),
			),
		)
	}

	return d.notificationStore
}

func (d *di) ItemStore(ctx context.Context) *state.ItemStore {
	if d.itemStore == nil {
		d.itemStore = state.NewItemStore(
			itemrepo.NewItemRepository(
				d.collection(ctx, config.C().Mongo.InventoryCollection()),
			),
		)
	}

	return d.itemStore
}

func (d *di) Uploader(ctx context.Context) uploadhttp.Uploader {
	if d.uploader == nil {
		cfg := config.C()

		up, err := s3client.NewUploader(ctx, s3client.Config{
			Region:        cfg.S3.Region(),
			Bucket:        cfg.S3.Bucket(),
			Endpoint:      cfg.S3.Endpoint(),
			PathStyle:     cfg.S3.PathStyle(),
			PublicBaseURL: cfg.S3.PublicBaseURL(),
		})
		if err != nil {
			panic(fmt.Sprintf("failed to create s3 uploader: %v\n", err))
		}

		d.uploader = up
	}

	return d.uploader
}

func (d *di) PriceFormatter(_ context.Context) *view.PriceFormatter {
	if d.prices == nil {
		cfg := config.C()

		pf, err := view.NewPriceFormatter(cfg.Display.Locale(), cfg.Display.Currency())
		if err != nil {
			panic(fmt.Sprintf("failed to create price formatter: %v\n", err))
		}

		d.prices = pf
	}

	return d.prices
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func ensureCatalogIndexes(ctx context.Context, d *di) error {
	cfg := config.C()

	items := d.collection(ctx, cfg.Mongo.InventoryCollection())
	if _, err := items.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "brand_id", Value: 1}}},
	}, options.CreateIndexes()); err != nil {
		return err
	}

	notifications := d.collection(ctx, cfg.Mongo.NotificationsCollection())
	if _, err := notifications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_read", Value: 1}}},
	}, options.CreateIndexes()); err != nil {
		return err
	}

	return nil
}
