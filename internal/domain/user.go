package domain

import "time"

// User is an account record. Passwords are stored and compared in
// plaintext: the original store holds them that way and compatibility with
// its records is required.
type User struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"password"`
	JoinedDate    time.Time `json:"joinedDate"`
	Streak        int       `json:"streak"`
	LongestStreak int       `json:"longestStreak"`
	TotalSessions int       `json:"totalSessions"`
}

func NewUser(name, email, password string, now time.Time) User {
	return User{
		Name:       name,
		Email:      email,
		Password:   password,
		JoinedDate: now,
	}
}
