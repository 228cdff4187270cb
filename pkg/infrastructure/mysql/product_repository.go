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
	insertProductSQL = `INSERT INTO products (id, name, price, description, quantity, unit, created_at, updated_at)
VALUES (:id, :name, :price, :description, :quantity, :unit, :created_at, :updated_at)`

	updateProductSQL = `UPDATE products
SET name = :name, price = :price, description = :description, quantity = :quantity, unit = :unit, updated_at = :updated_at
WHERE id = :id`

	selectProductSQL = `SELECT id, name, price, description, quantity, unit, created_at, updated_at FROM products`
	reportSQL        = `SELECT name, quantity, price * quantity AS total_value FROM products`
	productExistsSQL = `SELECT COUNT(*) FROM products WHERE id = ?`
	deleteProductSQL = `DELETE FROM products WHERE id = ?`
	findProductByID  = selectProductSQL + ` WHERE id = ?`
)

type productRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Price       float64   `db:"price"`
	Description string    `db:"description"`
	Quantity    int       `db:"quantity"`
	Unit        string    `db:"unit"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toProductRow(p *model.Product) productRow {
	return productRow{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r productRow) toModel() (model.Product, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "parse product id %q", r.ID)
	}
	return model.Product{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *ProductRepository) Create(product *model.Product) error {
	_, err := r.db.NamedExec(insertProductSQL, toProductRow(product))
	if isDuplicateEntry(err) {
		return model.ErrProductNameTaken
	}
	return errors.Wrap(err, "insert product")
}

func (r *ProductRepository) Update(product *model.Product) error {
	res, err := r.db.NamedExec(updateProductSQL, toProductRow(product))
	if isDuplicateEntry(err) {
		return model.ErrProductNameTaken
	}
	if err != nil {
		return errors.Wrap(err, "update product")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update product: rows affected")
	}
	if affected == 0 {
		// Zero affected rows means either a missing id or an update that
		// changed nothing; only the former is an error.
		return r.checkExists(product.ID)
	}
	return nil
}

func (r *ProductRepository) checkExists(id uuid.UUID) error {
	var n int
	if err := r.db.Get(&n, productExistsSQL, id.String()); err != nil {
		return errors.Wrap(err, "check product exists")
	}
	if n == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(id uuid.UUID) error {
	res, err := r.db.Exec(deleteProductSQL, id.String())
	if err != nil {
		return errors.Wrap(err, "delete product")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete product: rows affected")
	}
	if affected == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Find(id uuid.UUID) (*model.Product, error) {
	var row productRow
	err := r.db.Get(&row, findProductByID, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	product, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindAll() ([]model.Product, error) {
	var rows []productRow
	if err := r.db.Select(&rows, selectProductSQL); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		product, err := row.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

type reportRow struct {
	Name       string  `db:"name"`
	Quantity   int     `db:"quantity"`
	TotalValue float64 `db:"total_value"`
}

func (r *ProductRepository) Report() ([]model.ReportRow, error) {
	var rows []reportRow
	if err := r.db.Select(&rows, reportSQL); err != nil {
		return nil, errors.Wrap(err, "product report")
	}

	report := make([]model.ReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, model.ReportRow{
			Name:       row.Name,
			Quantity:   row.Quantity,
			TotalValue: row.TotalValue,
		})
	}
	return report, nil
}
