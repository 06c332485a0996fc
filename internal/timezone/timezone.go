package timezone

import "time"

// DefaultTimezone is the shop's zone. Every schedule instant the API
// accepts or renders is interpreted here unless configured otherwise.
const DefaultTimezone = "America/Sao_Paulo"

// Location resolves tz, falling back to the default zone when the name is
// empty or unknown.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
