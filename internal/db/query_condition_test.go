package db

import (
	"testing"

	"github.com/PayRam/go-chinook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestApplyQueryConditions(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)

	query, err := ApplyQueryConditions(db.Model(&models.Artist{}), Contains("Name", "Led"), Equals("ArtistId", uint(22)))
	require.NoError(t, err)

	var artists []models.Artist
	stmt := query.Find(&artists).Statement
	assert.Equal(t, "SELECT * FROM `artists` WHERE Name LIKE ? AND ArtistId = ?", stmt.SQL.String())
	assert.Equal(t, []interface{}{"%Led%", uint(22)}, stmt.Vars)
}

func TestApplyQueryConditionsRejectsOperator(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)

	query, err := ApplyQueryConditions(db, QueryCondition{Field: "Name", Operator: "; DROP", Value: 1})
	assert.Nil(t, query)
	assert.ErrorContains(t, err, "unsupported operator")
}
