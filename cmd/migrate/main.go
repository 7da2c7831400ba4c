package main

import (
	"errors"
	"flag"
	"net/url"
	"strconv"

	"storeadmin/internal/config"
	"storeadmin/internal/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

func main() {
	var command string
	flag.StringVar(&command, "cmd", "up", "Migration command (up, down, version, force)")
	flag.Parse()

	cfg := config.Load()
	utils.InitLogger(cfg.IsProduction())

	log.Info().
		Str("source", cfg.MigrationsPath).
		Str("database", maskDatabaseURL(cfg.DatabaseURL)).
		Msg("[migrate] starting")

	m, err := migrate.New(cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("[migrate] failed to create migrate instance")
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("[migrate] up failed")
		}
		log.Info().Msg("[migrate] up completed")

	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("[migrate] down failed")
		}
		log.Info().Msg("[migrate] rolled back one migration")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("[migrate] failed to get version")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("[migrate] current version")

	case "force":
		if flag.NArg() < 1 {
			log.Fatal().Msg("[migrate] force needs a version number")
		}
		v, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Msg("[migrate] invalid version")
		}
		if err := m.Force(v); err != nil {
			log.Fatal().Err(err).Msg("[migrate] force failed")
		}
		log.Info().Int("version", v).Msg("[migrate] forced version")

	default:
		log.Fatal().Str("cmd", command).Msg("[migrate] unknown command (use: up, down, version, force)")
	}
}

// maskDatabaseURL hides the password in a database URL for logging.
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return "***"
	}
	return u.Redacted()
}
