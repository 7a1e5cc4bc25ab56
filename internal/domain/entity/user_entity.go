package entity

import (
	"time"
)

// User is the aggregate root for user accounts.
// The password is only ever held as a derived Credential.
type User struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	FavoriteColor string     `json:"favorite_color"`
	DateAdded     time.Time  `json:"date_added"`
	Password      Credential `json:"-"`
}

func (u User) String() string {
	return "<Name " + u.Name + ">"
}
