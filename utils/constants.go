// File: utils/constants.go
package utils

import "time"

// BookingSessionTTL is how long an unconfirmed booking session survives in Redis.
const BookingSessionTTL = 30 * time.Minute
