package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scancare/internal/domain/entity"
)

func TestFlatten_PreservesSectionOrderAndSynthesizesIDs(t *testing.T) {
	t.Parallel()

	sections := []Section{
		{Title: "A", Data: []RawEntry{N("one"), {Name: "two", ID: "custom"}}},
		{Title: "B", Data: []RawEntry{N("three")}},
	}

	products := Flatten(sections)
	require.Len(t, products, 3)

	assert.Equal(t, "A-one", products[0].ID)
	assert.Equal(t, "A", products[0].Category)
	assert.Equal(t, "custom", products[1].ID)
	assert.Equal(t, "B-three", products[2].ID)
}

func TestFlatten_ShippedCatalog(t *testing.T) {
	t.Parallel()

	products := Flatten(Sections())
	require.NotEmpty(t, products)

	// First product of the shipped catalog anchors the ordering contract.
	assert.Equal(t, "CeraVe Moisturizing Cream", products[0].Name)
	assert.Equal(t, "🌿 Drugstore & Affordable Moisturizers", products[0].Category)
	assert.Equal(t, "🌿 Drugstore & Affordable Moisturizers-CeraVe Moisturizing Cream", products[0].ID)
	assert.Equal(t, "CeraVe", products[0].Brand)

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate id %q", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestFlatten_DerivesBrandFromName(t *testing.T) {
	t.Parallel()

	products := Flatten([]Section{{Title: "x", Data: []RawEntry{
		N("Nivea Soft Moisturizing Cream"),
		N("la roche-posay Lipikar Balm AP+"),
		N("Unbranded Wonder Cream"),
	}}})

	assert.Equal(t, "NIVEA", products[0].Brand)
	assert.Equal(t, "La Roche-Posay", products[1].Brand)
	assert.Empty(t, products[2].Brand)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	products := Flatten(Sections())

	t.Run("blank query returns everything", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, products, Filter(products, "   "))
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := Filter(products, "cerave")
		require.NotEmpty(t, got)
		for _, p := range got {
			assert.Contains(t, p.Name, "CeraVe")
		}
	})

	t.Run("matches category", func(t *testing.T) {
		t.Parallel()

		got := Filter(products, "luxury")
		require.NotEmpty(t, got)
		for _, p := range got {
			assert.Equal(t, "✨ High-End / Luxury Moisturizers", p.Category)
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Filter(products, "zzz-not-a-product"))
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	products := Flatten(Sections())

	found := Lookup(products, "🌿 Drugstore & Affordable Moisturizers-CeraVe Moisturizing Cream")
	require.NotNil(t, found)
	assert.Equal(t, "CeraVe Moisturizing Cream", found.Name)

	assert.Nil(t, Lookup(products, "missing"))
}

func TestResolve_MappedAndCataloged(t *testing.T) {
	t.Parallel()

	products := Flatten(Sections())

	got := Resolve("5901234123457", products)
	require.NotNil(t, got)
	assert.Equal(t, "CeraVe Moisturizing Cream", got.Name)
	assert.Equal(t, "🌿 Drugstore & Affordable Moisturizers", got.Category)
	assert.Equal(t, "🌿 Drugstore & Affordable Moisturizers-CeraVe Moisturizing Cream", got.ID)
}

func TestResolve_MappedButNotInCatalog(t *testing.T) {
	t.Parallel()

	products := Flatten(Sections())

	got := Resolve("3274870002222", products)
	require.NotNil(t, got)
	assert.Equal(t, "Cicaplast Baume B5+", got.Name)
	assert.Equal(t, "Unknown category", got.Category)
	assert.Equal(t, "unknown-Cicaplast Baume B5+", got.ID)
}

func TestResolve_UnmappedCode(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Resolve("0000000000000", Flatten(Sections())))
}

func TestResolve_EveryMappedBarcodeYieldsAProduct(t *testing.T) {
	t.Parallel()

	products := Flatten(Sections())
	for code := range barcodes {
		got := Resolve(code, products)
		require.NotNil(t, got, "code %s", code)
		assert.NotEmpty(t, got.ID)
		assert.NotEmpty(t, got.Name)
		assert.NotEmpty(t, got.Category)
	}
}

func TestProduct_SuitsSkinType(t *testing.T) {
	t.Parallel()

	declared := entity.Product{SkinTypes: []entity.SkinType{entity.SkinTypeDry}}
	undeclared := entity.Product{}

	assert.True(t, declared.SuitsSkinType(entity.SkinTypeDry))
	assert.False(t, declared.SuitsSkinType(entity.SkinTypeOily))
	assert.True(t, declared.SuitsSkinType(""))
	assert.True(t, undeclared.SuitsSkinType(entity.SkinTypeOily))
}
