package format

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

var now = time.Date(2024, 3, 27, 12, 0, 0, 0, time.UTC)

func Test_FormatDate(t *testing.T) {
	assert.Equal(t, "Mar 5, 2024", FormatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func Test_DaysSince_ShouldRoundPartialDaysUp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, DaysSince(now, now))
	assert.Equal(1, DaysSince(now.Add(-time.Hour), now))
	assert.Equal(2, DaysSince(now.Add(-25*time.Hour), now))
	assert.Equal(1, DaysSince(now.Add(time.Hour), now))
}

func Test_TimeAgo(t *testing.T) {
	assert := assert.New(t)
	daysAgo := func(days int) time.Time { return now.Add(-time.Duration(days) * day) }

	assert.Equal("Today", TimeAgo(now, now))
	assert.Equal("Yesterday", TimeAgo(daysAgo(1), now))
	assert.Equal("3 days ago", TimeAgo(daysAgo(3), now))
	assert.Equal("2 weeks ago", TimeAgo(daysAgo(14), now))
	assert.Equal("4 weeks ago", TimeAgo(daysAgo(29), now))
	assert.Equal("2 months ago", TimeAgo(daysAgo(60), now))
	assert.Equal("1 years ago", TimeAgo(daysAgo(400), now))
}

func Test_FormatSalary_WhenCurrencyInvalid_ShouldPrefixCode(t *testing.T) {
	assert.Equal(t, "credits 1,000 - credits 2,000", FormatSalary(1000, 2000, "credits"))
}

func Test_FormatSalary_ShouldPrefixSymbolAndGroupThousands(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("$120,000 - $160,000", FormatSalary(120000, 160000, "USD"))
	assert.Equal("€120,000 - €160,000", FormatSalary(120000, 160000, "EUR"))
}
