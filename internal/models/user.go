package models

// User пользователь, сохраненный на клиенте под ключом "user"
type User struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	ID       int64  `json:"id"`
}

// Valid проверяет, что у пользователя есть идентификатор
func (u *User) Valid() bool {
	return u != nil && u.ID > 0
}
