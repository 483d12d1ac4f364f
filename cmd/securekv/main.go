package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-secure-kv/crypto"
	"github.com/MKhiriev/go-secure-kv/internal/config"
	"github.com/MKhiriev/go-secure-kv/internal/logger"
	"github.com/MKhiriev/go-secure-kv/models"
	"github.com/MKhiriev/go-secure-kv/store"
	"github.com/MKhiriev/go-secure-kv/vault"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("securekv")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("securekv", cfg.Log.File)
	}

	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("recovery", cfg.Vault.Recovery).
		Bool("password_set", cfg.Vault.Password != "").
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	kv, err := openStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}

	vaultCfg, err := vaultConfig(cfg.Vault, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error building vault configs")
	}

	v, err := vault.Open(ctx, kv, vaultCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening vault")
	}

	if err := run(ctx, v, kv, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("operation error")
	}

	if err := v.Close(); err != nil {
		log.Fatal().Err(err).Msg("error closing vault")
	}
}

// run executes the single operation named by the positional arguments
// against the opened vault. The keys operation deliberately reads the
// underlying store, showing the pseudonymized view the backend holds.
func run(ctx context.Context, v vault.Vault, kv store.KeyValue, args []string) error {
	if len(args) == 0 {
		return errors.New("no operation given, want one of: put, get, remove, keys, len, clear")
	}

	op, rest := args[0], args[1:]
	switch op {
	case "put":
		if len(rest) != 2 {
			return errors.New("usage: put <key> <value>")
		}

		return v.Put(ctx, rest[0], rest[1])
	case "get":
		if len(rest) != 1 {
			return errors.New("usage: get <key>")
		}

		value, err := v.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Println(value)

		return nil
	case "remove":
		if len(rest) != 1 {
			return errors.New("usage: remove <key>")
		}

		return v.Remove(ctx, rest[0])
	case "keys":
		keys, err := kv.Keys(ctx)
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Println(key)
		}

		return nil
	case "len":
		count, err := v.Len(ctx)
		if err != nil {
			return err
		}
		fmt.Println(count)

		return nil
	case "clear":
		return v.Clear(ctx)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// openStore builds the [store.KeyValue] backend selected in cfg. The
// returned store is handed to the vault, which owns it from then on.
func openStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (store.KeyValue, error) {
	switch cfg.Backend {
	case "", config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendFile:
		return store.NewFileStore(cfg.File.Path, log)
	case config.BackendSQLite:
		return store.NewSQLiteStore(ctx, cfg.DB.DSN, log)
	case config.BackendPostgres:
		return store.NewPostgresStore(ctx, cfg.DB.DSN, log)
	case config.BackendRedis:
		return store.NewRedisStore(ctx, cfg.Redis, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// vaultConfig maps the CLI configuration onto [vault.Config].
func vaultConfig(cfg config.Vault, log *logger.Logger) (vault.Config, error) {
	out := vault.Config{Logger: log}

	if cfg.Password != "" {
		out.Password = []byte(cfg.Password)
	}
	if cfg.Recovery == config.RecoveryRemove {
		out.Recovery = vault.RecoveryRemove
	}
	if cfg.FingerprintSeed != "" {
		fingerprint, err := crypto.NewHostFingerprint([]byte(cfg.FingerprintSeed))
		if err != nil {
			return vault.Config{}, fmt.Errorf("error building host fingerprint: %w", err)
		}
		out.Fingerprint = fingerprint
	}

	return out, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
