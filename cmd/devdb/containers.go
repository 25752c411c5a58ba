package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/inmobiliaria/api-inmobiliaria/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const defaultImage = "mysql:8.4"

// DevDatabase holds the docker resources backing the development database.
type DevDatabase struct {
	Network     *testcontainers.DockerNetwork
	DBContainer testcontainers.Container
}

// Terminate tears the container and its network down.
func (d *DevDatabase) Terminate() {
	ctx := context.Background()
	if d.DBContainer != nil {
		if err := d.DBContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate database container: %v", err)
		}
	}
	if d.Network != nil {
		if err := d.Network.Remove(ctx); err != nil {
			log.Printf("Failed to remove network: %v", err)
		}
	}
}

// StartDevDatabase starts a MySQL container configured from the environment,
// creates the application database and user and leaves the container running
// until terminated.
func StartDevDatabase() (*DevDatabase, error) {
	ctx := context.Background()
	devDB := &DevDatabase{}

	imageName := os.Getenv("DB_IMAGE")
	if imageName == "" {
		imageName = defaultImage
	}

	// A missing image means docker will pull, which can take a while.
	exists, err := imageExists(ctx, imageName)
	if err != nil {
		return nil, fmt.Errorf("failed to check local images: %w", err)
	}
	if !exists {
		log.Printf("Image %s not found locally, docker will pull it", imageName)
	}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	devDB.Network = nw

	dbPortNumber := os.Getenv("DB_PORT")
	if dbPortNumber == "" {
		dbPortNumber = "3306"
	}
	tcpDbPort, err := nat.NewPort("tcp", dbPortNumber)
	if err != nil {
		devDB.Terminate()
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	sessionID := uuid.New().String()
	dbAlias := os.Getenv("DB_HOST")
	if dbAlias == "" {
		dbAlias = "inmobiliaria-db"
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageName,
			Name:         "inmobiliaria-devdb-" + sessionID[:8],
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
				"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {dbAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		devDB.Terminate()
		return nil, fmt.Errorf("failed to start database container: %w", err)
	}
	devDB.DBContainer = dbContainer

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)

	if err := initDatabase(dbHost, dbPort); err != nil {
		devDB.Terminate()
		return nil, err
	}

	log.Printf("DB_HOST=%s DB_PORT=%s", dbHost, dbPort.Port())
	log.Printf("Development database started successfully")
	return devDB, nil
}

func initDatabase(dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", os.Getenv("DB_ROOT_PASSWORD"), dbHost, dbPort.Port()))
	if err != nil {
		return fmt.Errorf("failed to connect for setup: %w", err)
	}
	defer db.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("database not ready after 30 seconds: %w", err)
	}

	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")

	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database)); err != nil {
		return fmt.Errorf("failed to create %s: %w", database, err)
	}
	if _, err := db.Exec(fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", user, password)); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user, err)
	}
	if _, err := db.Exec(fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'", database, user)); err != nil {
		return fmt.Errorf("failed to grant privileges on %s: %w", database, err)
	}
	if _, err := db.Exec("FLUSH PRIVILEGES"); err != nil {
		return fmt.Errorf("failed to flush privileges: %w", err)
	}

	// The embedded schema and seed statements qualify tables with the
	// inmobiliaria database name, so only apply them when that is the target.
	if database == "inmobiliaria" {
		if err := executeSQL(db, data.InitdbMySQLTables); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
		if err := executeSQL(db, data.InitdbMySQLSeed); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
		log.Printf("Seeded development data into %s", database)
	}

	return nil
}

// executeSQL runs a multi-statement script, dropping full-line comments and
// splitting on semicolons.
func executeSQL(db *sql.DB, script string) error {
	var kept []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	statements := strings.Split(strings.Join(kept, "\n"), ";")
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), stmt)
		}
	}
	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}
