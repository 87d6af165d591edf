//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/bdevic/habitstats/internal"
	"github.com/bdevic/habitstats/internal/achievements"
	"github.com/bdevic/habitstats/internal/config"
	"github.com/bdevic/habitstats/internal/db"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
	testDBName = "habitstats_db"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup(ctx)
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			RedisPassword:           "",
			VersionInfo:             "test-version-info",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                           serverHost,
		Port:                           serverPort,
		RedisHost:                      "localhost",
		RedisPort:                      redisPort,
		PostgresHost:                   "localhost",
		PostgresPort:                   postgresPort,
		PostgresDBName:                 testDBName,
		DemoUserID:                     "demo-user",
		LogEntryRateLimitAllowedPerMin: 100,
		HeatmapCacheTTLMinutes:         10,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup(ctx context.Context) (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			// the server connects without a password
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = sqlDB

	// postgres needs a moment to boot
	if err := s.dockerPool.Retry(sqlDB.Ping); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: testDBName,
	})
	if err != nil {
		return "", fmt.Errorf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.ApplySchema(ctx, dbPool); err != nil {
		return "", fmt.Errorf("apply schema: %s", err)
	}

	achievementsRepo := achievements.NewRepo(dbPool)
	for _, a := range achievements.Stock() {
		if _, err := achievementsRepo.Add(ctx, a); err != nil {
			return "", fmt.Errorf("add stock achievement %q: %s", a.Title, err)
		}
	}

	log.Println("postgres setup done, schema applied")

	return pgPort, nil
}
