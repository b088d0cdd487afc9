package config

import (
	"time"
)

var appLocation *time.Location

// InitializeTimezone sets up the application timezone. The due-date windows
// and the daily dispatch hour are computed in this location.
func InitializeTimezone() error {
	tzName := getEnv("APP_TIMEZONE", "America/Sao_Paulo")

	location, err := time.LoadLocation(tzName)
	if err != nil {
		location, err = time.LoadLocation("America/Sao_Paulo")
		if err != nil {
			return err
		}
	}

	appLocation = location
	return nil
}

// GetLocation returns the application timezone location
func GetLocation() *time.Location {
	if appLocation != nil {
		return appLocation
	}
	return time.Local
}

// GetCurrentTime returns current time in the application timezone
func GetCurrentTime() time.Time {
	return time.Now().In(GetLocation())
}
