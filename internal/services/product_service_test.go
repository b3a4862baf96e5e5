package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCreateAndGetProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	created, err := svc.Create("Widget", "A widget", mustDecimal(t, "19.99"), nil)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "19.99", created.Price.String())
	assert.Nil(t, created.ImageURL)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "19.99", got.Price.String())

	_, err = svc.Get(created.ID + 1000)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	var ids []int64
	for _, name := range []string{"First", "Second", "Third"} {
		p, err := svc.Create(name, "desc", mustDecimal(t, "1.00"), nil)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	page, err := svc.List(0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[0], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	rest, err := svc.List(2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, ids[2], rest[0].ID)

	// Defaults: non-positive limit, negative skip.
	all, err := svc.List(-1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	url := "https://img.example.com/widget.png"
	created, err := svc.Create("Widget", "A widget", mustDecimal(t, "19.99"), &url)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, "Gadget", "A gadget", mustDecimal(t, "24.50"), nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, "A gadget", updated.Description)
	assert.Equal(t, "24.5", updated.Price.String())
	assert.Nil(t, updated.ImageURL)
}

func TestUpdateMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	_, err := svc.Update(42, "Ghost", "not there", mustDecimal(t, "1.00"), nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, countRows(t, db, "products"))
}

func TestDeleteIsNotFoundOnRepeat(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	created, err := svc.Create("Widget", "A widget", mustDecimal(t, "19.99"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	require.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
	require.ErrorIs(t, svc.Delete(9999), ErrNotFound)
}

func TestPriceSurvivesExactly(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	created, err := svc.Create("Precise", "no float drift", mustDecimal(t, "0.10"), nil)
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(mustDecimal(t, "0.1")))
	assert.Equal(t, "0.1", got.Price.String())
}
