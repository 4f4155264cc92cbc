package domain

// UserProfile holds the single-user settings row. There is always exactly one
// profile with ID "default", seeded by migration.
type UserProfile struct {
	ID          string
	Name        string
	Country     string // lowercase country key for crisis resources, "" for all
	CheckInHour int    // preferred daily check-in hour, 0-23
}

// DefaultProfileID is the fixed primary key of the singleton profile row.
const DefaultProfileID = "default"
