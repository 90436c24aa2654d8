package main

import (
	"context"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/narenkarthik370h/smart-feedback-analysis/api"
	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
	"github.com/narenkarthik370h/smart-feedback-analysis/store"
)

func initConfig() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	viper.SetEnvPrefix("feedback")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.address", ":5000")
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "smartFeedback")
	viper.SetDefault("admin.name", "System Admin")
	viper.SetDefault("log.level", "info")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Debug("no config file loaded")
	}

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func main() {
	initConfig()

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongo database")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to index mongo database")
	}

	mongoStore := store.NewMongoStore(client, database)
	defer mongoStore.Close()

	if viper.GetString("jwt.secret") == "" {
		log.Fatal("jwt.secret is required")
	}

	server := api.NewServer(mongoStore, api.Config{
		JWTSecret:         viper.GetString("jwt.secret"),
		AdminCreateSecret: viper.GetString("admin.create_secret"),
		EnvAdmin: api.EnvAdmin{
			Name:     viper.GetString("admin.name"),
			Email:    viper.GetString("admin.email"),
			Password: viper.GetString("admin.password"),
		},
		AllowedOrigin: viper.GetString("server.allowed_origin"),
		TraceMode:     viper.GetBool("server.trace"),
	})

	log.WithField("address", viper.GetString("server.address")).Info("starting feedback api server")
	if err := server.Run(viper.GetString("server.address")); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
