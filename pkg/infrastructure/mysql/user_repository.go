package mysql

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"inventoryservice/pkg/domain/model"
)

const (
	insertUserSQL     = `INSERT INTO users (id, username, hashed_password, created_at) VALUES (:id, :username, :hashed_password, :created_at)`
	findUserByNameSQL = `SELECT id, username, hashed_password, created_at FROM users WHERE username = ?`
)

type userRow struct {
	ID             string    `db:"id"`
	Username       string    `db:"username"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *UserRepository) Create(user *model.User) error {
	row := userRow{
		ID:             user.ID.String(),
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		CreatedAt:      user.CreatedAt,
	}
	_, err := r.db.NamedExec(insertUserSQL, row)
	if isDuplicateEntry(err) {
		return model.ErrUsernameTaken
	}
	return errors.Wrap(err, "insert user")
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var row userRow
	err := r.db.Get(&row, findUserByNameSQL, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}

	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "parse user id %q", row.ID)
	}
	return &model.User{
		ID:             id,
		Username:       row.Username,
		HashedPassword: row.HashedPassword,
		CreatedAt:      row.CreatedAt,
	}, nil
}
