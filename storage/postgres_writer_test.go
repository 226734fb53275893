package storage

import (
	"bytes"
	"strings"
	"testing"

	"autoria-scraper/models"
	"autoria-scraper/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ RecordSink = (*CSVWriter)(nil)
	_ RecordSink = (*PostgresWriter)(nil)
)

func TestListingArgs_MatchInsertColumns(t *testing.T) {
	run := models.NewRun(models.SearchCriteria{Brand: "Audi", Model: "Q5", Region: "Київ"})
	record := models.ListingRecord{Title: "Audi  Q5", PhoneNumber: "(067) 123 45 67", Description: "Line one\n  Line two"}

	args := listingArgs(run, 3, record)

	assert.Equal(t, strings.Count(insertListing, "$"), len(args), "one value per placeholder")
	assert.Equal(t, []interface{}{
		run.ID, 3, "Audi  Q5", "(067) 123 45 67", "Line one\n  Line two",
		"Audi", "Q5", "Київ", run.StartedAt,
	}, args)
}

func TestPostgresWriter_SaveNothingSkipsDatabase(t *testing.T) {
	w := &PostgresWriter{logger: utils.NewLogger(&bytes.Buffer{})}

	require.NoError(t, w.Save(models.NewRun(models.SearchCriteria{}), nil))
}
