package mysql

import (
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// MySQL error 1062: duplicate entry for a unique key.
const duplicateEntryErrNo = 1062

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryErrNo
}

// Connect opens a MySQL connection pool and verifies it with a ping. The DSN
// must carry parseTime=true so DATETIME columns scan into time.Time.
func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", dsn)
	return db, errors.Wrap(err, "connect mysql")
}
