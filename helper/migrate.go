package helper

//nolint:revive
import (
	"net/url"

	"hotelhills/config"
	"hotelhills/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

// ParseAction maps a command line argument to a migration action.
func ParseAction(value string) (Action, error) {
	switch action := Action(value); action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion:
		return action, nil
	}

	return "", errors.Wrapf(ErrUnknownAction, "%q", value)
}

// DatabaseURL builds the migrate connection string against the write pool.
func DatabaseURL(cfg *config.Config) string {
	var extra url.Values

	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		extra = url.Values{"x-migrations-table": {table}}
	}

	return postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix, extra)
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(cfg.DB.Postgres.MigrationSource, DatabaseURL(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "error creating migrate instance")
	}

	return mig, nil
}

// Run applies a single migration action. ErrNoChange is not treated as a failure.
func Run(cfg *config.Config, action Action) error {
	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		return logVersion(mig)
	default:
		return errors.Wrapf(ErrUnknownAction, "%q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "error running %s migration", action)
	}

	log.Info().Str("action", string(action)).Msg("Database migration finished")

	return logVersion(mig)
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("Database has no migrations applied")

		return nil
	}

	if err != nil {
		return errors.Wrap(err, "error reading migration version")
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}
