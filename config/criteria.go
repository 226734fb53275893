package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"autoria-scraper/models"
)

// criteriaFields is the number of comma-separated fields expected on the command line
const criteriaFields = 9

// ErrInvalidCriteria is returned for any malformed command line
var ErrInvalidCriteria = errors.New("invalid search criteria")

// Usage names the expected fields and gives an example invocation
const Usage = "The data is incorrect. Please enter the correct information\n" +
	"Such as: <transport type>, <brand>, <model>, <region>, <year from>, <year to>, " +
	"<price from>, <price to>, <quantity of records>\n" +
	"Example: Легкові, Audi, Q5, Київ, 2018, 2018, 0, 40000, 2"

// ParseCriteria joins the raw arguments, splits them on commas and maps the nine
// trimmed fields onto SearchCriteria
func ParseCriteria(args []string) (models.SearchCriteria, error) {
	input := strings.Join(args, " ")
	parts := strings.Split(input, ",")
	if len(parts) != criteriaFields {
		return models.SearchCriteria{}, fmt.Errorf("%w: expected %d fields, got %d",
			ErrInvalidCriteria, criteriaFields, len(parts))
	}

	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}

	quantity, err := strconv.Atoi(fields[8])
	if err != nil {
		return models.SearchCriteria{}, fmt.Errorf("%w: quantity %q is not a number", ErrInvalidCriteria, fields[8])
	}
	if quantity < 0 {
		return models.SearchCriteria{}, fmt.Errorf("%w: quantity %d is negative", ErrInvalidCriteria, quantity)
	}

	return models.SearchCriteria{
		TransportType: fields[0],
		Brand:         fields[1],
		Model:         fields[2],
		Region:        fields[3],
		YearFrom:      fields[4],
		YearTo:        fields[5],
		PriceFrom:     fields[6],
		PriceTo:       fields[7],
		Quantity:      quantity,
	}, nil
}
