// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/rl1809/weaselparts/internal/core/scan"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	DBDriver   string
	DBDSN      string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBDatabase string
	SQLitePath string

	// RedisAddr empty means guards and the statistics cache stay in process.
	RedisAddr string

	HTTPAddr string
	GRPCAddr string

	// InventoryAddr is the gRPC address scan stations dial. Empty means the
	// station opens the database itself.
	InventoryAddr string
	SerialPort    string
	SerialBaud    int

	Scan scan.Config
}

func Default() Config {
	return Config{
		DBDriver:   DriverMySQL,
		DBHost:     "localhost",
		DBPort:     3306,
		DBUser:     "root",
		DBDatabase: "weaselparts",
		SQLitePath: "weaselparts.db",
		HTTPAddr:   ":8080",
		GRPCAddr:   ":50051",
		SerialBaud: 9600,
		Scan:       scan.DefaultConfig(),
	}
}

// Load reads the process environment on top of Default.
func Load() (Config, error) {
	return FromEnv(os.Getenv)
}

// FromEnv reads settings through getenv on top of Default.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	var err error

	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v := getenv(key)
		if v == "" || err != nil {
			return
		}
		n, perr := strconv.Atoi(v)
		if perr != nil {
			err = fmt.Errorf("%s: %w", key, perr)
			return
		}
		*dst = n
	}
	millis := func(key string, dst *time.Duration) {
		var n int
		num(key, &n)
		if n > 0 {
			*dst = time.Duration(n) * time.Millisecond
		}
	}

	str("DB_DRIVER", &c.DBDriver)
	str("DB_DSN", &c.DBDSN)
	str("DB_HOST", &c.DBHost)
	num("DB_PORT", &c.DBPort)
	str("DB_USER", &c.DBUser)
	str("DB_PASSWORD", &c.DBPassword)
	str("DB_DATABASE", &c.DBDatabase)
	str("DB_PATH", &c.SQLitePath)
	str("REDIS_ADDR", &c.RedisAddr)
	str("HTTP_ADDR", &c.HTTPAddr)
	str("GRPC_ADDR", &c.GRPCAddr)
	str("INVENTORY_ADDR", &c.InventoryAddr)
	str("SERIAL_PORT", &c.SerialPort)
	num("SERIAL_BAUD", &c.SerialBaud)

	millis("SCANNER_MAX_GAP_MS", &c.Scan.ScannerMaxGap)
	millis("SCANNER_END_DELAY_MS", &c.Scan.ScannerEndDelay)
	millis("TOGGLE_WINDOW_MS", &c.Scan.ToggleWindow)
	millis("INVENTORY_TIMEOUT_MS", &c.Scan.InventoryTimeout)
	num("MIN_BARCODE_LENGTH", &c.Scan.MinIdentifierLen)
	num("MAX_BARCODE_LENGTH", &c.Scan.MaxIdentifierLen)
	if err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.Scan.MinIdentifierLen < 1 || c.Scan.MaxIdentifierLen < c.Scan.MinIdentifierLen {
		return fmt.Errorf("barcode length bounds %d..%d are invalid", c.Scan.MinIdentifierLen, c.Scan.MaxIdentifierLen)
	}
	return nil
}

// MySQLDSN returns DB_DSN when set, otherwise a DSN built from the DB_*
// parts. Times are parsed and updates report matched rows.
func (c Config) MySQLDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	m := mysql.NewConfig()
	m.User = c.DBUser
	m.Passwd = c.DBPassword
	m.Net = "tcp"
	m.Addr = net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort))
	m.DBName = c.DBDatabase
	m.ParseTime = true
	m.ClientFoundRows = true
	return m.FormatDSN()
}
