package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"digitalpage/config"
	"digitalpage/infras/database"
)

func connectionString(config *config.Config) (string, error) {
	switch config.DB.Driver {
	case database.DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
			config.DB.Username,
			config.DB.Password,
			net.JoinHostPort(config.DB.Host, config.DB.Port),
			config.DB.Name,
			config.DB.SSLMode,
			config.DB.MigrationTable,
		), nil
	case database.DriverMySQL:
		return fmt.Sprintf("mysql://%s:%s@tcp(%s)/%s?x-migrations-table=%s",
			config.DB.Username,
			config.DB.Password,
			net.JoinHostPort(config.DB.Host, config.DB.Port),
			config.DB.Name,
			config.DB.MigrationTable,
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", config.DB.Driver)
	}
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connString, err := connectionString(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(
		"file://migrations/"+config.DB.Driver,
		connString,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
