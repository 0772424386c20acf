package main

import (
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"notehub-server/config"
	"notehub-server/errors"
	"notehub-server/events"
	"notehub-server/global"
	"notehub-server/middlewares"
	"notehub-server/notes"
	"notehub-server/policy"
	"notehub-server/relations"
	"notehub-server/routes"
	"notehub-server/services"
	"notehub-server/store"

	redis "github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	fiber "github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func init() {
	internalErrorsFile, err := os.OpenFile("internal_errors.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	monitorLogsFile, err := os.OpenFile("monitor_logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	global.InternalLogger = log.New(internalErrorsFile, "", log.LstdFlags)
	global.MonitorLogger = log.New(monitorLogsFile, "", log.LstdFlags)

	data, err := ioutil.ReadFile("./config.json")
	errors.HandleFatalError(err)

	err = json.Unmarshal(data, &config.Config)
	errors.HandleFatalError(err)

	jwtKeyStream, err := ioutil.ReadFile("./jwt_key.pem")
	errors.HandleFatalError(err)
	block, _ := pem.Decode(jwtKeyStream)
	global.JwtKey, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	errors.HandleFatalError(err)

	jwtKeyStream, err = ioutil.ReadFile("./jwt_key.pub")
	errors.HandleFatalError(err)
	block, _ = pem.Decode(jwtKeyStream)
	global.JwtParseKey, err = x509.ParsePKCS1PublicKey(block.Bytes)
	errors.HandleFatalError(err)
}

func main() {

	minioClient, err := minio.New(config.Config.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Config.MinIO.User, config.Config.MinIO.Password, ""),
		Secure: false,
	})
	errors.HandleFatalError(err)

	exists, err := minioClient.BucketExists(global.Context, store.AttachmentBucket)
	errors.HandleFatalError(err)
	if !exists {
		err = minioClient.MakeBucket(global.Context, store.AttachmentBucket, minio.MakeBucketOptions{Region: "us-east-1"})
		errors.HandleFatalError(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Config.Redis.Addr,
		Password: config.Config.Redis.Password,
		DB:       config.Config.Redis.DB,
	})

	cluster := gocql.NewCluster(config.Config.Scylla.Hosts...)
	cluster.Keyspace = config.Config.Scylla.Keyspace
	session, err := cluster.CreateSession()
	errors.HandleFatalError(err)
	defer session.Close()
	fmt.Println("ScyllaDB initialized")
	fmt.Printf("Keyspace: %s\n\n", cluster.Keyspace)

	db := store.New(session, redisClient, minioClient)
	errors.HandleFatalError(db.EnsureSchema())

	graph := relations.NewGraph(db)
	sharing := policy.NewSharing(graph)
	noteStore := notes.New(db, sharing)
	hub := events.NewHub()

	svc := services.New(db, graph, noteStore, hub)
	mw := middlewares.New(db)

	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})
	defer app.Shutdown()

	routes.SetRoutes(app, svc, mw)

	fmt.Println("Starting server on port: " + config.Config.Port)
	log.Fatal(app.Listen(config.Config.Port))
}
