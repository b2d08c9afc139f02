package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zemenlab/go-ethiopic/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required by the API contract.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DefaultPort", config.DefaultPort},
		{"ErrCodeInvalidInput", config.ErrCodeInvalidInput},
		{"ErrCodeInvalidDate", config.ErrCodeInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestErrorCodes_Distinct guards the two-kind error taxonomy: an input-shape
// failure must never be reported under the calendar-validity code.
func TestErrorCodes_Distinct(t *testing.T) {
	assert.NotEqual(t, config.ErrCodeInvalidInput, config.ErrCodeInvalidDate)
}

// TestRoutes_Versioned checks that every conversion route lives under the
// versioned prefix.
func TestRoutes_Versioned(t *testing.T) {
	routes := []string{
		config.RouteEthiopicToGregorian,
		config.RouteGregorianToEthiopic,
		config.RouteValidateEthiopic,
		config.RouteValidateGregorian,
		config.RouteDayOfWeek,
		config.RouteToday,
	}
	for _, r := range routes {
		assert.True(t, strings.HasPrefix(r, "/v1/"), "route %s must be versioned", r)
	}
}

// TestTimeouts ensures operational constraints are reasonable.
func TestTimeouts(t *testing.T) {
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second, "ServerReadTimeout must be positive")
	assert.GreaterOrEqual(t, config.ServerIdleTimeout, config.ServerReadTimeout)
}

// TestWeekdayNames verifies the JDN weekday convention: index 0 is Monday.
func TestWeekdayNames(t *testing.T) {
	assert.Equal(t, "Monday", config.WeekdayNames[0])
	assert.Equal(t, "Sunday", config.WeekdayNames[6])
	for i, name := range config.WeekdayNames {
		assert.NotEmpty(t, name, "weekday %d must have a name", i)
	}
}
