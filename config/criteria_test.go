package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria_Example(t *testing.T) {
	args := strings.Fields("Легкові, Audi, Q5, Київ, 2018, 2018, 0, 40000, 2")

	c, err := ParseCriteria(args)

	require.NoError(t, err)
	assert.Equal(t, "Легкові", c.TransportType)
	assert.Equal(t, "Audi", c.Brand)
	assert.Equal(t, "Q5", c.Model)
	assert.Equal(t, "Київ", c.Region)
	assert.Equal(t, "2018", c.YearFrom)
	assert.Equal(t, "2018", c.YearTo)
	assert.Equal(t, "0", c.PriceFrom)
	assert.Equal(t, "40000", c.PriceTo)
	assert.Equal(t, 2, c.Quantity)
}

// Multi-word values survive the join and only commas separate fields
func TestParseCriteria_TrimsAndKeepsInnerSpaces(t *testing.T) {
	args := []string{"  Легкові ,Mercedes-Benz,", "E", "Class ,", "Львів,2010,  2015 ,1000,9000,   10  "}

	c, err := ParseCriteria(args)

	require.NoError(t, err)
	assert.Equal(t, "Легкові", c.TransportType)
	assert.Equal(t, "Mercedes-Benz", c.Brand)
	assert.Equal(t, "E Class", c.Model)
	assert.Equal(t, "Львів", c.Region)
	assert.Equal(t, "2015", c.YearTo)
	assert.Equal(t, 10, c.Quantity)
}

func TestParseCriteria_WrongFieldCount(t *testing.T) {
	cases := map[string][]string{
		"empty":     nil,
		"too few":   {"Легкові, Audi, Q5, Київ, 2018, 2018, 0, 40000"},
		"too many":  {"Легкові, Audi, Q5, Київ, 2018, 2018, 0, 40000, 2, extra"},
		"no commas": {"Легкові", "Audi", "Q5", "Київ", "2018", "2018", "0", "40000", "2"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCriteria(args)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCriteria)
		})
	}
}

func TestParseCriteria_BadQuantity(t *testing.T) {
	for _, q := range []string{"two", "-1", "1.5", ""} {
		_, err := ParseCriteria([]string{"a,b,c,d,e,f,g,h," + q})
		assert.ErrorIs(t, err, ErrInvalidCriteria, "quantity %q", q)
	}
}

func TestParseCriteria_ZeroQuantity(t *testing.T) {
	c, err := ParseCriteria([]string{"a,b,c,d,e,f,g,h,0"})

	require.NoError(t, err)
	assert.Equal(t, 0, c.Quantity)
}

func TestUsageNamesExample(t *testing.T) {
	assert.Contains(t, Usage, "Легкові, Audi, Q5, Київ, 2018, 2018, 0, 40000, 2")
	assert.Contains(t, Usage, "<quantity of records>")
}
