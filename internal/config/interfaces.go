package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadHeaderTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DSN() string
	DatabaseName() string
	ConnectTimeout() time.Duration
	BrandsCollection() string
	CategoriesCollection() string
	NotificationsCollection() string
	InventoryCollection() string
}

type Storage interface {
	Bucket() string
	Region() string
	Endpoint() string
	PathStyle() bool
	PublicBaseURL() string
}

type Display interface {
	Locale() string
	Currency() string
}
