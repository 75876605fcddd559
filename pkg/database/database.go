package database

type DatabaseType string

const (
	MongoDBNoSQL DatabaseType = "mongodb"
)

// Database is the minimal lifecycle contract the service needs from its
// persistence layer. Mi Boleta services persist in MongoDB only.
type Database interface {
	Connect() error
	Close() error
	Ping() error
	GetType() DatabaseType
	IsConnected() bool
}
