package db_models

import "time"

// Account is a registered user. The username is the identity; the password is
// only kept as a salted bcrypt hash.
type Account struct {
	Username     string `gorm:"primaryKey;size:64"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time

	TripPlans []TripPlan `gorm:"foreignKey:Username;references:Username"`
}
