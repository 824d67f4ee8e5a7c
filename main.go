package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/api"
	"github.com/bitmark-inc/flo-api/cache"
	"github.com/bitmark-inc/flo-api/external/cadence"
	"github.com/bitmark-inc/flo-api/external/insight"
	"github.com/bitmark-inc/flo-api/store"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoStore  store.MongoStore
	redisClient *redis.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("flo")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoStore != nil {
			mongoStore.Close()
		}

		if redisClient != nil {
			log.Info("Shutting down redis cache")
			if err := redisClient.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load JWT public key of the authentication service
	jwtPubKeyByte, err := ioutil.ReadFile(viper.GetString("jwt.pubkeyfile"))
	if err != nil {
		log.Panic(err)
	}
	jwtPublicKey, err := jwt.ParseRSAPublicKeyFromPEM(jwtPubKeyByte)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded jwt public key")

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	// Init redis
	redisClient = redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis.conn"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})
	if err := redisClient.Ping(initialCtx).Err(); err != nil {
		log.Panicf("connect redis with error: %s", err)
	}

	cadenceClient := cadence.NewClient(
		cadence.BuildCadenceServiceClient(viper.GetString("cadence.conn")),
		viper.GetString("cadence.domain"),
	)

	insightClient := insight.NewGeminiClient(httpClient,
		viper.GetString("insight.endpoint"),
		viper.GetString("insight.apikey"),
		viper.GetString("insight.model"),
	)

	// Init http server
	server = api.NewServer(
		store.NewFloStore(ormDB),
		mongoStore,
		cache.NewRedisCache(redisClient, viper.GetDuration("redis.ttl")),
		jwtPublicKey,
		insightClient,
		cadenceClient)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
