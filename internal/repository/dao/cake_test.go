package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCakeDAO_InsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	want := Cake{
		Name:        "Test Cake",
		Description: "A delicious test cake",
		Flavor:      "Vanilla",
		Price:       10,
		IsAvailable: true,
	}

	created, err := d.Insert(ctx, want)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)

	want.ID = created.ID
	assert.Equal(t, want, got)
}

func TestCakeDAO_InsertIgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	cake := newCake("Sponge", "Vanilla", 5)
	cake.ID = 42

	created, err := d.Insert(ctx, cake)
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
}

func TestCakeDAO_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	first, err := d.Insert(ctx, newCake("First", "Vanilla", 1))
	require.NoError(t, err)
	second, err := d.Insert(ctx, newCake("Second", "Vanilla", 2))
	require.NoError(t, err)

	require.NoError(t, d.DeleteByID(ctx, second.ID))

	third, err := d.Insert(ctx, newCake("Third", "Vanilla", 3))
	require.NoError(t, err)

	assert.Greater(t, third.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestCakeDAO_FindByID_NotFound(t *testing.T) {
	d := NewCakeDAO(newSQLiteDB(t))

	_, err := d.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCakeNotFound)
}

func TestCakeDAO_FindAll(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	cakes, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cakes)

	names := []string{"Carrot", "Brownie", "Cheesecake"}
	for _, name := range names {
		_, err = d.Insert(ctx, newCake(name, "Mixed", 4))
		require.NoError(t, err)
	}

	cakes, err = d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cakes, len(names))
	for i, c := range cakes {
		assert.Equal(t, names[i], c.Name)
		assert.Equal(t, uint(i+1), c.ID)
	}
}

func TestCakeDAO_Search(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	seed := []Cake{
		newCake("Chocolate Dream", "Chocolate", 12),
		newCake("Lemon Tart", "Citrus", 8),
		newCake("Black Forest", "Cherry and chocolate", 15),
	}
	for _, c := range seed {
		_, err := d.Insert(ctx, c)
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		term  string
		wants []string
	}{
		{name: "name match is case-insensitive", term: "LEMON", wants: []string{"Lemon Tart"}},
		{name: "flavor match", term: "citrus", wants: []string{"Lemon Tart"}},
		{name: "name or flavor", term: "choc", wants: []string{"Chocolate Dream", "Black Forest"}},
		{name: "substring in the middle", term: "fore", wants: []string{"Black Forest"}},
		{name: "no match", term: "strawberry", wants: nil},
		{name: "percent is literal", term: "%", wants: nil},
		{name: "underscore is literal", term: "_", wants: nil},
		{name: "backslash is literal", term: `\`, wants: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cakes, err := d.Search(ctx, tt.term)
			require.NoError(t, err)

			var got []string
			for _, c := range cakes {
				got = append(got, c.Name)
			}
			assert.Equal(t, tt.wants, got)
		})
	}
}

func TestCakeDAO_UpdateByID(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	created, err := d.Insert(ctx, newCake("Test Cake", "Vanilla", 10))
	require.NoError(t, err)

	update := CakeUpdate{Price: ptr(12.0)}
	require.NoError(t, d.UpdateByID(ctx, created.ID, update))

	got, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)

	want := created
	want.Price = 12
	assert.Equal(t, want, got)

	// Same update again leaves the row as it is.
	require.NoError(t, d.UpdateByID(ctx, created.ID, update))
	got, err = d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCakeDAO_UpdateByID_SetsFalseAndZero(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	created, err := d.Insert(ctx, newCake("Free Sample", "Vanilla", 3))
	require.NoError(t, err)

	err = d.UpdateByID(ctx, created.ID, CakeUpdate{
		Price:       ptr(0.0),
		IsAvailable: ptr(false),
	})
	require.NoError(t, err)

	got, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Price)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, created.Name, got.Name)
}

func TestCakeDAO_UpdateByID_Errors(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	err := d.UpdateByID(ctx, 7, CakeUpdate{Name: ptr("Ghost")})
	assert.ErrorIs(t, err, ErrCakeNotFound)

	err = d.UpdateByID(ctx, 7, CakeUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestCakeDAO_DeleteByID(t *testing.T) {
	ctx := context.Background()
	d := NewCakeDAO(newSQLiteDB(t))

	created, err := d.Insert(ctx, newCake("Test Cake", "Vanilla", 10))
	require.NoError(t, err)

	require.NoError(t, d.DeleteByID(ctx, created.ID))

	_, err = d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCakeNotFound)

	err = d.DeleteByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCakeNotFound)
}

func TestCakeDAO_StoreError(t *testing.T) {
	conn := newSQLiteDB(t)
	d := NewCakeDAO(conn)

	require.NoError(t, conn.Migrator().DropTable(&Cake{}))

	_, err := d.FindAll(context.Background())
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "find all", storeErr.Op)
	assert.Contains(t, storeErr.Error(), "no such table")
	assert.Empty(t, storeErr.Code)
}
