package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	ContextURL ContextKey = "fundflow-url"
)

// Connect opens the SQLite database at dsn, migrates it and configures
// the connection pool.
func Connect(dsn string) error {
	config := gormConfig()

	// Migration runs with foreign keys disabled since sqlite does not
	// support ALTER COLUMN and copies tables instead
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return register(db)
}

// ConnectPostgres opens the PostgreSQL database described by dsn and
// migrates it.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return register(db)
}

// PostgresDSN builds the connection string for ConnectPostgres.
func PostgresDSN(host string, port int, user, password, name string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s", host, port, user, password, name)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}
}

// register registers the error translating callbacks and sets DB.
func register(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "fundflow:after_query", queryCallback},
		{db.Callback().Query().After("*"), "fundflow:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "fundflow:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "fundflow:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "fundflow:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "fundflow:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "fundflow:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = plural.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

var plural = regexp.MustCompile("ies$")

// uniqueViolations maps unique indices to the errors returned when they
// are violated. sqlite reports the columns, PostgreSQL the index name.
var uniqueViolations = []struct {
	sqlite string
	index  string
	err    error
}{
	{"preferences.user_id", "preferences_pkey", ErrPreferencesExist},
	{"funds.user_id, funds.name", "fund_user_name", ErrFundNameNotUnique},
	{"main_categories.user_id, main_categories.name", "main_category_user_name", ErrMainCategoryNameNotUnique},
	{"subcategories.main_category_id, subcategories.name", "subcategory_main_category_name", ErrSubcategoryNameNotUnique},
	{"budgets.user_id, budgets.subcategory_id, budgets.period_start, budgets.period_end", "budget_subcategory_period", ErrBudgetNotUnique},
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	for _, v := range uniqueViolations {
		if strings.Contains(msg, "UNIQUE constraint failed: "+v.sqlite) || strings.Contains(msg, fmt.Sprintf("unique constraint %q", v.index)) {
			db.Error = v.err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(db.Error, &pgErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Preferences{}, Fund{}, MainCategory{}, Subcategory{}, Budget{}, Transaction{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
