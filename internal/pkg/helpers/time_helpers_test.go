package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-06-15", FormatDate(&d))
	assert.Equal(t, "", FormatDate(nil))
}
