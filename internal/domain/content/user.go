package content

import "time"

// UserUpsert describes a login. Nil fields are left untouched on an existing row.
type UserUpsert struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}
