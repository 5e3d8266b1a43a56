package schema

// User is owned by the authentication service. This API reads user
// records to resolve ownership and applies profile edits on behalf of
// the owner; it never creates or authenticates users.
type User struct {
	ID       int64  `json:"id" gorm:"primary_key"`
	Username string `json:"username" gorm:"not null;unique_index"`
	Email    string `json:"email" gorm:"not null;unique_index"`
	Password string `json:"-" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
