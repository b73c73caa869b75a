package catalog

import (
	"testing"

	"lenshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsIDAndActivates(t *testing.T) {
	c := NewCollection[models.Gift]()

	g := c.Create(models.Gift{Name: "Mini Album", Price: 900})
	assert.NotEmpty(t, g.ID)
	assert.True(t, g.Active)

	// A supplied id is kept.
	g2 := c.Create(models.Gift{ID: "fixed-id", Name: "Frame", Price: 400})
	assert.Equal(t, "fixed-id", g2.ID)
	assert.Equal(t, 2, c.Len())
}

func TestCollectionRoundTrip(t *testing.T) {
	c := NewCollection[models.Gift]()
	a := c.Create(models.Gift{Name: "A", Price: 1})
	b := c.Create(models.Gift{Name: "B", Price: 2})
	d := c.Create(models.Gift{Name: "D", Price: 3})

	require.NoError(t, c.Update(b.ID, func(g models.Gift) models.Gift {
		g.Price = 20
		return g
	}))
	got, err := c.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Price)

	require.NoError(t, c.Remove(b.ID))
	_, err = c.Get(b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Untouched entries keep their order and content.
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, d.ID, items[1].ID)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "D", items[1].Name)
}

func TestCollectionAppendOrder(t *testing.T) {
	c := NewCollection[models.Gift]()
	for _, name := range []string{"first", "second", "third"} {
		c.Create(models.Gift{Name: name})
	}
	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
	assert.Equal(t, "third", items[2].Name)
}

func TestMissingIDIsExplicitError(t *testing.T) {
	c := NewCollection[models.Gift]()
	c.Create(models.Gift{Name: "only"})

	assert.ErrorIs(t, c.Update("nope", func(g models.Gift) models.Gift { return g }), ErrNotFound)
	assert.ErrorIs(t, c.Remove("nope"), ErrNotFound)
	assert.ErrorIs(t, c.ToggleActive("nope"), ErrNotFound)
}

func TestToggleActive(t *testing.T) {
	c := NewCollection[models.Gift]()
	g := c.Create(models.Gift{Name: "toggle-me"})
	require.True(t, g.Active)

	require.NoError(t, c.ToggleActive(g.ID))
	got, err := c.Get(g.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, c.ToggleActive(g.ID))
	got, err = c.Get(g.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := NewCollection[models.Gift]()
	c.Create(models.Gift{Name: "keep"})

	items := c.Items()
	items[0].Name = "mutated"

	fresh := c.Items()
	assert.Equal(t, "keep", fresh[0].Name)
}
