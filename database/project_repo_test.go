package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestYearsFromValues(t *testing.T) {
	values := []interface{}{
		primitive.NewDateTimeFromTime(time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)),
		primitive.NewDateTimeFromTime(time.Date(2021, time.March, 1, 12, 30, 0, 0, time.UTC)),
		primitive.NewDateTimeFromTime(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)),
		primitive.NewDateTimeFromTime(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, []int{2024, 2023, 2021}, yearsFromValues(values))
}

func TestYearsFromValues_IgnoresNonDates(t *testing.T) {
	values := []interface{}{
		"2023-06-15",
		primitive.NewDateTimeFromTime(time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, []int{2022}, yearsFromValues(values))
}

func TestYearsFromValues_Empty(t *testing.T) {
	assert.Empty(t, yearsFromValues(nil))
}

func TestObjectIDsFromValues(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	values := []interface{}{a, "not-an-id", b}

	assert.Equal(t, []primitive.ObjectID{a, b}, objectIDsFromValues(values))
}
