package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedInstallsDefaultsOnce(t *testing.T) {
	uc := NewCategoryUseCase(newMemCategoryRepo())
	ctx := context.Background()

	require.NoError(t, uc.Seed(ctx))

	categories, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 8)

	names := make(map[string]string)
	for _, category := range categories {
		names[category.Name] = category.NameSwahili
	}
	assert.Equal(t, "Mifereji ya Maji", names["Plumbing"])
	assert.Equal(t, "Umeme", names["Electrical"])

	// A second boot must not duplicate the set.
	require.NoError(t, uc.Seed(ctx))
	again, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 8)
}
