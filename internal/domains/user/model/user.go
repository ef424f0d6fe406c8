package model

// User is the campus account record. The credential is stored and compared
// as plaintext, matching the upstream system of record the frontend already
// talks to.
type User struct {
	ID       string  `json:"user_id"`
	Password string  `json:"password"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
}
