package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/matchlabs/resumerank/internal/ai/classifier"
	"github.com/matchlabs/resumerank/internal/ai/embeddings"
	"github.com/matchlabs/resumerank/internal/config"
	"github.com/matchlabs/resumerank/pkg/fsx"
	"github.com/matchlabs/resumerank/pkg/fsx/fsxs3"
	"github.com/matchlabs/resumerank/pkg/logx"
	"github.com/matchlabs/resumerank/screening/jd"
	"github.com/matchlabs/resumerank/screening/prediction"
	"github.com/matchlabs/resumerank/screening/prediction/predictionapi"
	"github.com/matchlabs/resumerank/screening/prediction/predictioninfra"
	"github.com/matchlabs/resumerank/screening/prediction/predictionsrv"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem

	// Model artifacts and catalog, loaded once at startup
	Embedder   *embeddings.Generator
	Classifier *classifier.Model
	Corpus     *jd.Corpus

	// Services
	PredictionService *predictionsrv.Service

	// API Handlers
	PredictionHandlers *predictionapi.Handlers
}

// NewContainer initializes the dependency injection container. Everything
// here is fail-fast: a service without its catalog, classifier or database
// must not start.
func NewContainer() *Container {
	c := &Container{Config: config.Load()}
	c.initInfrastructure()
	c.initModels()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database connection
	db, err := sqlx.Connect("postgres", c.Config.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis, prediction cache disabled: %v", err)
		c.Redis = nil
	}

	// 3. Upload storage (optional)
	if c.Config.Storage.Bucket != "" {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(c.Config.Storage.AWSRegion))
		if err != nil {
			logx.Fatalf("Unable to load AWS SDK config: %v", err)
		}
		c.FileSystem = fsxs3.NewS3FileSystem(s3.NewFromConfig(cfg), c.Config.Storage.Bucket, "uploads")
	} else {
		logx.Warn("AWS_BUCKET is not set, uploaded resumes will not be retained")
	}
}

func (c *Container) initModels() {
	// Embedding provider
	c.Embedder = embeddings.NewGenerator(c.Config.OpenAI.APIKey)

	// Calibrated classifier artifact
	model, err := classifier.Load(c.Config.Corpus.ClassifierPath)
	if err != nil {
		logx.Fatalf("Failed to load classifier artifact: %v", err)
	}
	c.Classifier = model
	logx.Infof("Loaded classifier %s: %d labels, dim %d",
		model.Name(), len(model.Labels()), model.Dim())

	// JD catalog with precomputed embeddings
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	corpus, err := jd.LoadCorpus(ctx, c.Config.Corpus.Path, c.Embedder)
	if err != nil {
		logx.Fatalf("Failed to load JD catalog: %v", err)
	}
	c.Corpus = corpus
}

func (c *Container) initServices() {
	predictionRepo := predictioninfra.NewPostgresPredictionRepository(c.DB)

	// Cache is optional; a nil interface keeps caching disabled
	var cache prediction.Cache
	if c.Redis != nil {
		cache = predictioninfra.NewRedisPredictionCache(c.Redis, c.Config.Redis.CacheTTL)
	}

	c.PredictionService = predictionsrv.NewService(
		predictionRepo,
		cache,
		c.Embedder,
		c.Classifier,
		c.Corpus,
		c.FileSystem,
	)

	c.PredictionHandlers = predictionapi.NewHandlers(c.PredictionService)
}

// Close releases the container's connections
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}
