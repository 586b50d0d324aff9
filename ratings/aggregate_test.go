package ratings

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregateCountsAndCategories(t *testing.T) {
	assert := assert.New(t)

	date := NewDate(2023, time.January, 15)
	byDate := Aggregate([]Record{
		{Date: date, Category: "TV Episode"},
		{Date: date, Category: "Movie"},
	})

	assert.Len(byDate, 1)
	agg := byDate[date]
	assert.Equal(2, agg.Count)
	assert.Equal(map[string]bool{"TV Episode": true, "Movie": true}, agg.Categories)
	assert.Equal([]string{"Movie", "TV Episode"}, agg.CategoryNames())
}

func TestAggregateOrderIndependent(t *testing.T) {
	assert := assert.New(t)

	records := []Record{
		{Date: NewDate(2023, time.January, 15), Category: "Movie"},
		{Date: NewDate(2023, time.January, 15), Category: "TV Episode"},
		{Date: NewDate(2023, time.January, 16), Category: "Movie"},
		{Date: NewDate(2024, time.March, 2), Category: "Short"},
		{Date: NewDate(2023, time.January, 15), Category: "Movie"},
	}

	want := Aggregate(records)

	shuffled := make([]Record, len(records))
	copy(shuffled, records)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(want, Aggregate(shuffled))
	}
}

func TestYearsDescending(t *testing.T) {
	assert := assert.New(t)

	byDate := Aggregate([]Record{
		{Date: NewDate(2021, time.June, 1), Category: "Movie"},
		{Date: NewDate(2024, time.March, 2), Category: "Movie"},
		{Date: NewDate(2021, time.June, 30), Category: "Movie"},
		{Date: NewDate(2019, time.December, 31), Category: "Movie"},
	})

	assert.Equal([]int{2024, 2021, 2019}, Years(byDate))
}

func TestYearsEmpty(t *testing.T) {
	assert.Empty(t, Years(nil))
}

func TestMaxDailyCount(t *testing.T) {
	assert := assert.New(t)

	byDate := Aggregate([]Record{
		{Date: NewDate(2023, time.January, 15), Category: "Movie"},
		{Date: NewDate(2023, time.January, 15), Category: "Movie"},
		{Date: NewDate(2023, time.January, 15), Category: "TV Episode"},
		{Date: NewDate(2024, time.March, 2), Category: "Short"},
	})

	assert.Equal(3, MaxDailyCount(byDate))
	assert.Equal(1, MaxDailyCount(nil))
}
