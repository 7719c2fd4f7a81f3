package database

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/rs/zerolog/log"

	"digitalpage/config"
)

const (
	maxIdleConnection = 10
	maxOpenConnection = 10

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Connection wraps the sqlx handle so the driver name travels with it;
// repositories need it to interpret driver-specific error codes.
type Connection struct {
	DB     *sqlx.DB
	Driver string
}

func New(config *config.Config) *Connection {
	driver := config.DB.Driver
	if driver == "" {
		driver = DriverPostgres
	}

	return &Connection{
		DB:     connect(driver, descriptor(driver, config), config.DB.MaxRetry, config.DB.RetryWaitTime),
		Driver: driver,
	}
}

func descriptor(driver string, config *config.Config) string {
	hostPort := net.JoinHostPort(config.DB.Host, config.DB.Port)

	if driver == DriverMySQL {
		return fmt.Sprintf(
			"%s:%s@tcp(%s)/%s?parseTime=true",
			config.DB.Username,
			config.DB.Password,
			hostPort,
			config.DB.Name,
		)
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		config.DB.Username,
		config.DB.Password,
		hostPort,
		config.DB.Name,
		config.DB.SSLMode,
	)
}

func connect(driver, descriptor string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driver, descriptor)
		if err == nil {
			log.
				Info().
				Str("driver", driver).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(maxIdleConnection)
			sqlDB.SetMaxOpenConns(maxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("driver", driver).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
