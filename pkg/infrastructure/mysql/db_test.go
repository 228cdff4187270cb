package mysql

import (
	"testing"

	driver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventoryservice/pkg/domain/model"
)

func TestIsDuplicateEntry(t *testing.T) {
	dup := &driver.MySQLError{Number: duplicateEntryErrNo, Message: "Duplicate entry 'Widget' for key 'uniq_products_name'"}

	assert.True(t, isDuplicateEntry(dup))
	assert.True(t, isDuplicateEntry(errors.Wrap(dup, "insert product")))
	assert.False(t, isDuplicateEntry(&driver.MySQLError{Number: 1045}))
	assert.False(t, isDuplicateEntry(errors.New("storage down")))
	assert.False(t, isDuplicateEntry(nil))
}

func TestProductRowRoundTrip(t *testing.T) {
	repo := &ProductRepository{}
	id, err := repo.NextID()
	require.NoError(t, err)

	product := model.Product{
		ID:          id,
		Name:        "Widget",
		Price:       10.5,
		Description: "a widget",
		Quantity:    5,
		Unit:        "pcs",
	}

	back, err := toProductRow(&product).toModel()
	require.NoError(t, err)
	assert.Equal(t, product, back)
}

func TestProductRowRejectsBrokenID(t *testing.T) {
	_, err := productRow{ID: "not-a-uuid"}.toModel()
	assert.Error(t, err)
}
