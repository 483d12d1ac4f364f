package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b storage backend (memory, file, sqlite, postgres, redis)
//	-d database DSN (sqlite file path or postgres connection string)
//	-f store file path for the file backend
//	-redis-addr redis address in format [host]:[port]
//	-redis-dial-timeout redis dial timeout (e.g., "5s")
//	-password vault password
//	-fingerprint-seed extra fingerprint binding data
//	-recovery decrypt recovery policy (fail, remove)
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backend string
	var databaseDSN string
	var fileStoragePath string
	var redisAddress NetAddress
	var redisDialTimeout time.Duration
	var vaultPassword string
	var fingerprintSeed string
	var recovery string
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&backend, "b", "", "Storage backend (memory, file, sqlite, postgres, redis)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&fileStoragePath, "f", "", "File storage path")
	flag.Var(&redisAddress, "redis-addr", "Redis address host:port")
	flag.DurationVar(&redisDialTimeout, "redis-dial-timeout", 0, "Redis dial timeout (e.g., 5s)")
	flag.StringVar(&vaultPassword, "password", "", "Vault password")
	flag.StringVar(&fingerprintSeed, "fingerprint-seed", "", "Extra fingerprint binding data")
	flag.StringVar(&recovery, "recovery", "", "Decrypt recovery policy (fail, remove)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Vault: Vault{
			Password:        vaultPassword,
			FingerprintSeed: fingerprintSeed,
			Recovery:        recovery,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				DSN: databaseDSN,
			},
			File: File{
				Path: fileStoragePath,
			},
			Redis: RedisConfig{
				Addr:        redisAddress.String(),
				DialTimeout: redisDialTimeout,
			},
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
