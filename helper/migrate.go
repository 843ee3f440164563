package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"

	"concierge/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action")

// actions maps a CLI verb to the migrate call that implements it.
var actions = map[string]func(mig *migrate.Migrate) error{
	"up":      func(mig *migrate.Migrate) error { return mig.Up() },
	"down":    func(mig *migrate.Migrate) error { return mig.Steps(-1) },
	"step-up": func(mig *migrate.Migrate) error { return mig.Steps(1) },
	"drop":    func(mig *migrate.Migrate) error { return mig.Down() },
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		getDBName(config, write.Name),
		write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)
}

func Runner(config *config.Config, action string) error {
	run, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration completed")

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
