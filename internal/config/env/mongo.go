package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host     string `env:"MONGO_HOST,required"`
	Port     int    `env:"MONGO_PORT,required"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME,required"`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD,required"`
	DBName   string `env:"MONGO_DATABASE,required"`
	AuthDB   string `env:"MONGO_AUTH_DB,required"`

	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	// Fixed top-level collection keys of the catalog store.
	BrandsCollection        string `env:"MONGO_BRANDS_COLLECTION" envDefault:"brands"`
	CategoriesCollection    string `env:"MONGO_CATEGORIES_COLLECTION" envDefault:"categories"`
	NotificationsCollection string `env:"MONGO_NOTIFICATIONS_COLLECTION" envDefault:"notifications"`
	InventoryCollection     string `env:"MONGO_INVENTORY_COLLECTION" envDefault:"inventory"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }

func (cfg *mongo) ConnectTimeout() time.Duration { return cfg.raw.ConnectTimeout }

func (cfg *mongo) BrandsCollection() string        { return cfg.raw.BrandsCollection }
func (cfg *mongo) CategoriesCollection() string    { return cfg.raw.CategoriesCollection }
func (cfg *mongo) NotificationsCollection() string { return cfg.raw.NotificationsCollection }
func (cfg *mongo) InventoryCollection() string     { return cfg.raw.InventoryCollection }

func (cfg *mongo) DSN() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
