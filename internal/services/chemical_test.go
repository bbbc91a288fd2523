package services

import (
	"context"
	"testing"

	"lab-system/internal/dto"
	"lab-system/internal/memstore"
	"lab-system/internal/repositories"
	apperrors "lab-system/pkg/errors"
	"lab-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChemicalServiceForTest() ChemicalServiceInterface {
	return NewChemicalService(repositories.NewChemicalRepository(memstore.NewSequence()), zap.NewNop())
}

func TestChemicalPartialUpdateKeepsUnsentFields(t *testing.T) {
	svc := newChemicalServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateChemical(ctx, dto.CreateChemicalDTO{
		Code:       "C-001",
		Name:       "Acetonitrile",
		Category:   "solvent",
		Quantity:   null.Float64From(2.5),
		Unit:       null.StringFrom("L"),
		ExpiryDate: null.StringFrom("2025-01-31"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateChemical(ctx, created.ID, dto.UpdateChemicalDTO{
		Quantity: utils.Float64Ptr(1.0),
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, updated.Quantity.Float64, 1e-9)
	assert.Equal(t, "L", updated.Unit.String)
	assert.Equal(t, "2025-01-31", updated.ExpiryDate.String)
	assert.Equal(t, "Acetonitrile", updated.Name)
}

func TestChemicalCodeUniqueness(t *testing.T) {
	svc := newChemicalServiceForTest()
	ctx := context.Background()

	first, err := svc.CreateChemical(ctx, dto.CreateChemicalDTO{Code: "C-001", Name: "Acetone", Category: "solvent"})
	require.NoError(t, err)
	second, err := svc.CreateChemical(ctx, dto.CreateChemicalDTO{Code: "C-002", Name: "Methanol", Category: "solvent"})
	require.NoError(t, err)

	_, err = svc.UpdateChemical(ctx, second.ID, dto.UpdateChemicalDTO{Code: utils.StringPtr("C-001")})
	assert.ErrorIs(t, err, apperrors.ErrCodeTaken)

	// Re-sending its own code is not a conflict.
	_, err = svc.UpdateChemical(ctx, first.ID, dto.UpdateChemicalDTO{Code: utils.StringPtr("C-001")})
	assert.NoError(t, err)
}

func TestChemicalCategoryFilter(t *testing.T) {
	svc := newChemicalServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateChemical(ctx, dto.CreateChemicalDTO{Code: "C-001", Name: "Acetone", Category: "solvent"})
	require.NoError(t, err)
	_, err = svc.CreateChemical(ctx, dto.CreateChemicalDTO{Code: "C-002", Name: "NaCl", Category: "salt"})
	require.NoError(t, err)

	solvents, err := svc.GetChemicals(ctx, "solvent")
	require.NoError(t, err)
	require.Len(t, solvents, 1)
	assert.Equal(t, "Acetone", solvents[0].Name)

	all, err := svc.GetChemicals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
