package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/infrastructure/persistence/models"
	"titledesk/internal/shared/errors"
)

func TestCountyRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountyRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.CountyModel{ID: 2, Name: "Williamson", Number: "246"}).Error)
	require.NoError(t, db.Create(&models.CountyModel{ID: 1, Name: "Travis", Number: "227"}).Error)

	counties, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, counties, 2)
	// Ordered by name.
	assert.Equal(t, "Travis", counties[0].Name)
	assert.Equal(t, "Williamson", counties[1].Name)
}

func TestCountyRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountyRepository(db)

	_, err := repo.FindByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCountyRepository_FindRule_CityMatching(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountyRepository(db)
	ctx := context.Background()

	city := uint(7)
	require.NoError(t, db.Create(&models.ProcessingRuleModel{
		CountyID:   1,
		CityID:     nil,
		WorkRounds: "2",
		WorksType:  "TITLE",
		CheckCount: 1,
	}).Error)
	require.NoError(t, db.Create(&models.ProcessingRuleModel{
		CountyID:       1,
		CityID:         &city,
		CityName:       "Pflugerville",
		WorkRounds:     "many",
		DropWorkRounds: "1",
		WorksType:      "TITLE_AND_RENEWAL",
		CheckCount:     2,
		FedexAddress:   `{"PersonName":"Clerk","Street":"100 Main St","City":"Pflugerville","StateCode":"TX","PostalCode":"78660","CountryCode":"US"}`,
	}).Error)

	t.Run("nil city matches the county-level row only", func(t *testing.T) {
		rule, err := repo.FindRule(ctx, 1, nil)
		require.NoError(t, err)
		require.NotNil(t, rule)
		assert.Nil(t, rule.CityID)
		assert.Equal(t, 2, rule.WorkRounds.Count())
		assert.Nil(t, rule.FedexAddress)
	})

	t.Run("city override with unlimited rounds and address", func(t *testing.T) {
		rule, err := repo.FindRule(ctx, 1, &city)
		require.NoError(t, err)
		require.NotNil(t, rule)
		assert.True(t, rule.WorkRounds.IsUnlimited())
		require.NotNil(t, rule.FedexAddress)
		assert.Equal(t, "Pflugerville", rule.FedexAddress.City)
	})

	t.Run("missing configuration is not an error", func(t *testing.T) {
		rule, err := repo.FindRule(ctx, 42, nil)
		require.NoError(t, err)
		assert.Nil(t, rule)
	})
}

func TestCountyRepository_ListRules(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountyRepository(db)
	ctx := context.Background()

	city := uint(7)
	require.NoError(t, db.Create(&models.ProcessingRuleModel{CountyID: 1, WorkRounds: "2", WorksType: "TITLE"}).Error)
	require.NoError(t, db.Create(&models.ProcessingRuleModel{CountyID: 1, CityID: &city, WorkRounds: "1", WorksType: "TITLE"}).Error)
	require.NoError(t, db.Create(&models.ProcessingRuleModel{CountyID: 2, WorkRounds: "3", WorksType: "RENEWAL"}).Error)

	rules, err := repo.ListRules(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}
