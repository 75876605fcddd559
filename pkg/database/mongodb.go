package database

import (
	"context"
	"fmt"
	"time"

	"github.com/iamjuaness/mi-boleta/config"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// MongoDB implements the Database interface over mongo-driver v2.
type MongoDB struct {
	config *config.MongoConfig
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongoDB(cfg *config.MongoConfig) *MongoDB {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 30
	}
	return &MongoDB{
		config: cfg,
		logger: zap.L(),
	}
}

func (m *MongoDB) Connect() error {
	m.logger.Info("Connecting to MongoDB",
		zap.String("database", m.config.Database),
		zap.String("auth_source", m.config.AuthSource),
		zap.Int("connect_timeout_seconds", m.config.ConnectTimeout))

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(m.config.ConnectTimeout)*time.Second,
	)
	defer cancel()

	opts := options.Client().ApplyURI(m.config.URI)
	if m.config.Username != "" {
		opts.SetAuth(options.Credential{
			AuthSource: m.config.AuthSource,
			Username:   m.config.Username,
			Password:   m.config.Password,
		})
	}
	if m.config.ReplicaSet != "" {
		opts.SetReplicaSet(m.config.ReplicaSet)
	}
	if m.config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(m.config.MaxPoolSize))
	}
	if m.config.MinPoolSize > 0 {
		opts.SetMinPoolSize(uint64(m.config.MinPoolSize))
	}
	if m.config.SocketTimeout > 0 {
		opts.SetTimeout(time.Duration(m.config.SocketTimeout) * time.Second)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		m.logger.Error("Failed to create MongoDB client", zap.Error(err))
		return fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		m.logger.Error("MongoDB ping failed", zap.Error(err))
		client.Disconnect(ctx)
		return fmt.Errorf("mongo ping failed: %w", err)
	}

	m.client = client
	m.db = client.Database(m.config.Database)

	m.logger.Info("Successfully connected to MongoDB",
		zap.String("database", m.config.Database))
	return nil
}

func (m *MongoDB) Close() error {
	if m.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		m.logger.Error("Failed to disconnect MongoDB client", zap.Error(err))
		return err
	}
	m.client = nil
	m.db = nil
	return nil
}

func (m *MongoDB) Ping() error {
	if m.client == nil {
		return fmt.Errorf("mongodb is not connected")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary())
}

// Database returns the connected database handle.
func (m *MongoDB) Database() *mongo.Database {
	return m.db
}

func (m *MongoDB) GetType() DatabaseType {
	return MongoDBNoSQL
}

func (m *MongoDB) IsConnected() bool {
	return m.client != nil && m.Ping() == nil
}
