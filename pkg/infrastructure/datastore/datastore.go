package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"reactive-todo-backend/config"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported values of database.driver
const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultMaxConns        = 20
	defaultMaxConnLifetime = time.Minute * 2
)

// NewDSN builds the connection string from config. An explicit
// database.dsn wins over the individual fields.
func NewDSN() string {
	db := config.C.Database
	if db.DSN != "" {
		return db.DSN
	}

	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Addr + ":" + db.Port,
		Path:     "/" + db.DBName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// NewClient opens the driver configured in config.C.Database.
func NewClient() (dialect.Driver, error) {
	drv, err := Open(config.C.Database.Driver, NewDSN())
	if err != nil {
		return nil, err
	}
	if config.C.Database.Debug {
		drv = dialect.Debug(drv, zap.S().Named("sql").Debug)
	}
	return drv, nil
}

// Open creates an ent SQL driver for the given driver name and DSN.
func Open(driver, dsn string) (dialect.Driver, error) {
	switch driver {
	case DriverPgx, "":
		return openPgxPool(dsn)
	case DriverPostgres:
		drv, err := openDB(DriverPostgres, dialect.Postgres, dsn)
		if err != nil {
			return nil, err
		}
		return drv, nil
	case DriverSQLite:
		drv, err := openDB(DriverSQLite, dialect.SQLite, dsn)
		if err != nil {
			return nil, err
		}
		// in-memory databases live on a single connection
		drv.DB().SetMaxOpenConns(1)
		return drv, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// poolDriver closes the pgx pool along with the database/sql wrapper.
type poolDriver struct {
	*entsql.Driver
	pool *pgxpool.Pool
}

func (d *poolDriver) Close() error {
	err := d.Driver.Close()
	d.pool.Close()
	return err
}

func openPgxPool(dsn string) (dialect.Driver, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool config: %w", err)
	}
	poolConfig.MaxConns = defaultMaxConns
	if n := config.C.Database.MaxConns; n > 0 {
		poolConfig.MaxConns = n
	}
	poolConfig.MinConns = config.C.Database.MinConns
	poolConfig.MaxConnLifetime = defaultMaxConnLifetime
	if d := config.C.Database.MaxConnLifetime; d > 0 {
		poolConfig.MaxConnLifetime = d
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	// Use stdlib to wrap pgxpool in database/sql compatibility
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &poolDriver{Driver: entsql.OpenDB(dialect.Postgres, sqlDB), pool: pool}, nil
}

func openDB(driverName, dialectName, dsn string) (*entsql.Driver, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	if n := config.C.Database.MaxConns; n > 0 {
		db.SetMaxOpenConns(int(n))
	}
	if d := config.C.Database.MaxConnLifetime; d > 0 {
		db.SetConnMaxLifetime(d)
	}
	return entsql.OpenDB(dialectName, db), nil
}
