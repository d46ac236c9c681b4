package table_test

import (
	"context"
	"testing"

	"catalog-reconciler/core/database"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/feature/catalog/models"
	"catalog-reconciler/feature/catalog/table"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestParseLocation(t *testing.T) {
	name, ok := table.ParseLocation("db://merged_products")
	assert.True(t, ok)
	assert.Equal(t, "merged_products", name)

	for _, loc := range []string{"merged.xlsx", "db://", "s3://bucket/key", "db://a;drop", "db://x/y"} {
		_, ok := table.ParseLocation(loc)
		assert.False(t, ok, loc)
	}
}

func TestSource_ReadsInIDOrder(t *testing.T) {
	db := newSQLite(t)
	require.NoError(t, db.Table("primary_catalog").AutoMigrate(&models.Product{}))
	require.NoError(t, db.Table("primary_catalog").Create(&[]models.Product{
		{ID: 2, Description: "LUCK", Price: decimal.NewFromInt(3)},
		{ID: 1, Description: "TURBO", Price: decimal.RequireFromString("9.5")},
	}).Error)

	src := table.NewSource(db, "primary_catalog")
	assert.Equal(t, "db://primary_catalog", src.Name())

	records, err := reconcile.Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "TURBO", records[0].Description)
	assert.True(t, decimal.RequireFromString("9.5").Equal(records[0].Price))
	assert.Equal(t, "LUCK", records[1].Description)
	assert.True(t, decimal.NewFromInt(3).Equal(records[1].Price))
}

func TestSource_NullPriceIsMalformed(t *testing.T) {
	db := newSQLite(t)
	require.NoError(t, db.Exec("CREATE TABLE legacy (id INTEGER PRIMARY KEY, description TEXT, price NUMERIC)").Error)
	require.NoError(t, db.Exec("INSERT INTO legacy (id, description, price) VALUES (1, 'TURBO', NULL)").Error)

	_, err := reconcile.Load(context.Background(), table.NewSource(db, "legacy"))
	assert.ErrorIs(t, err, reconcile.ErrMalformedRow)
}

func TestSource_MissingTable(t *testing.T) {
	db := newSQLite(t)

	_, err := reconcile.Load(context.Background(), table.NewSource(db, "missing"))
	assert.Error(t, err)
}

func TestSink_MigratesAndInserts(t *testing.T) {
	ctx := context.Background()
	db := newSQLite(t)

	sink := table.NewSink(db, "merged_products", table.SinkOptions{Migrate: true, BatchSize: 1})
	require.NoError(t, sink.Open(ctx))
	require.NoError(t, sink.Write(ctx, reconcile.Row{Description: "TURBO", Price: decimal.RequireFromString("9.5")}))
	require.NoError(t, sink.Write(ctx, reconcile.Row{Description: "LUCK", Price: decimal.NewFromInt(3)}))
	require.NoError(t, sink.Close())

	var stored []models.Product
	require.NoError(t, db.Order("id").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "TURBO", stored[0].Description)
	assert.Equal(t, "LUCK", stored[1].Description)

	// A closed sink inserts nothing more.
	require.NoError(t, sink.Close())
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSink_WriteBeforeOpen(t *testing.T) {
	sink := table.NewSink(newSQLite(t), "merged_products", table.SinkOptions{})
	assert.Error(t, sink.Write(context.Background(), reconcile.Row{Description: "TURBO"}))
}

func newMySQLMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func TestSink_MySQLBatchInsert(t *testing.T) {
	ctx := context.Background()
	gormDB, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `merged_products`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	sink := table.NewSink(gormDB, "merged_products", table.SinkOptions{})
	require.NoError(t, sink.Open(ctx))
	require.NoError(t, sink.Write(ctx, reconcile.Row{Description: "TURBO", Price: decimal.RequireFromString("9.5")}))
	require.NoError(t, sink.Write(ctx, reconcile.Row{Description: "LUCK", Price: decimal.NewFromInt(3)}))
	require.NoError(t, sink.Close())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSink_MySQLEmptyRunSkipsInsert(t *testing.T) {
	gormDB, mock := newMySQLMock(t)

	sink := table.NewSink(gormDB, "merged_products", table.SinkOptions{})
	require.NoError(t, sink.Open(context.Background()))
	require.NoError(t, sink.Close())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSink_MySQLInsertError(t *testing.T) {
	ctx := context.Background()
	gormDB, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `merged_products`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	sink := table.NewSink(gormDB, "merged_products", table.SinkOptions{})
	require.NoError(t, sink.Open(ctx))
	require.NoError(t, sink.Write(ctx, reconcile.Row{Description: "TURBO", Price: decimal.NewFromInt(1)}))

	assert.ErrorIs(t, sink.Close(), assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
