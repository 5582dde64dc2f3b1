package store

import (
	"database/sql"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	genericStore "github.com/ndjamen/todos/pkg/store"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/store/ddl"
	"github.com/russross/meddler"
	"github.com/sirupsen/logrus"

	// pgx driver, registered as "pgx"
	_ "github.com/jackc/pgx/v5/stdlib"
	// PostgreSQL driver
	_ "github.com/lib/pq"
	// Sqlite driver
	_ "modernc.org/sqlite"
)

// UserStore is the persistence capability the user endpoints need.
type UserStore interface {
	// User gets a user by its id
	User(id int64) (*model.User, error)
	// UserByEmail gets a user by its email
	UserByEmail(email string) (*model.User, error)
	// UserBySecret gets the user the api secret was issued to
	UserBySecret(secret string) (*model.User, error)
	// CreateUser stores a new user and sets its id
	CreateUser(user *model.User) error
}

// ToDoStore is the persistence capability the to-do endpoints need.
type ToDoStore interface {
	// ToDo gets a to-do by its id
	ToDo(id int64) (*model.ToDo, error)
	// ToDosByUser returns the to-dos owned by the user, optionally filtered on the done flag
	ToDosByUser(userID int64, isDone *bool) ([]*model.ToDo, error)
	// ToDoExists tells whether a to-do with the id is stored
	ToDoExists(id int64) (bool, error)
	// SaveToDo inserts a to-do without an id, updates it otherwise
	SaveToDo(todo *model.ToDo) error
	// DeleteToDo deletes a to-do by its id
	DeleteToDo(id int64) error
}

// Store is used to access data
// from the sql/database driver with a relational database backend.
type Store struct {
	*sql.DB

	driver string
	config string
}

var (
	_ UserStore = (*Store)(nil)
	_ ToDoStore = (*Store)(nil)
)

// New creates a database connection for the given driver and datasource
// and returns a new Store.
func New(driver, config, encryptionKey string) *Store {
	return &Store{
		DB:     open(driver, config, encryptionKey),
		driver: driver,
		config: config,
	}
}

// From returns a Store using an existing database connection.
func From(driver string, db *sql.DB) *Store {
	return &Store{DB: db, driver: driver}
}

// open opens a new database connection with the specified
// driver and connection string and returns a store.
func open(driver, config, encryptionKey string) *sql.DB {
	db, err := sql.Open(driver, config)
	if err != nil {
		logrus.Errorln(err)
		logrus.Fatalln("database connection failed")
	}
	if driver == "sqlite" {
		// an in-memory database lives as long as its only connection
		db.SetMaxOpenConns(1)
	}

	setupMeddler(driver, encryptionKey)

	if err := pingDatabase(db); err != nil {
		logrus.Errorln(err)
		logrus.Fatalln("database ping attempts failed")
	}

	if err := setupDatabase(driver, db); err != nil {
		logrus.Errorln(err)
		logrus.Fatalln("migration failed")
	}
	return db
}

// NewTest creates a new database connection for testing purposes.
// The database driver and connection string are provided by
// environment variables, with fallback to in-memory sqlite.
func NewTest() *Store {
	var (
		driver = "sqlite"
		config = ":memory:"
	)
	if os.Getenv("DATABASE_DRIVER") != "" {
		driver = os.Getenv("DATABASE_DRIVER")
		config = os.Getenv("DATABASE_CONFIG")
	}
	store := &Store{
		DB:     open(driver, config, os.Getenv("DATABASE_ENCRYPTION_KEY")),
		driver: driver,
		config: config,
	}

	// if not in-memory DB, recreate tables between tests
	if driver != "sqlite" {
		store.Exec(`
drop table migrations;
drop table users;
drop table todos;
`)
		setupDatabase(driver, store.DB)
	}

	return store
}

// helper function to ping the database with backoff to ensure
// a connection can be established before we proceed with the
// database setup and migration.
func pingDatabase(db *sql.DB) error {
	retry := backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 10)
	return backoff.RetryNotify(db.Ping, retry, func(err error, next time.Duration) {
		logrus.Infof("database ping failed. retry in %s", next)
	})
}

// helper function to setup the databsae by performing
// automated database migration steps.
func setupDatabase(driver string, db *sql.DB) error {
	return ddl.Migrate(driver, db)
}

// meddler caches the meddler of each field on first use,
// so the "encrypted" meddler is registered once and only its key changes.
var (
	encrypted         = &genericStore.EncryptionMeddler{}
	registerEncrypted sync.Once
)

// helper function to setup the meddler default driver
// based on the selected driver name.
func setupMeddler(driver, encryptionKey string) {
	switch driver {
	case "sqlite":
		meddler.Default = meddler.SQLite
	case "postgres", "pgx":
		meddler.Default = meddler.PostgreSQL
	}

	registerEncrypted.Do(func() {
		meddler.Register("encrypted", encrypted)
	})
	encrypted.EncryptionKey = encryptionKey
}
