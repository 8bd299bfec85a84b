package domain

// Identity is the decoded session identity carried by a verified
// token and attached to the request context for downstream use.
type Identity struct {
	UserID int64  `json:"id"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
}
