package models

// ConfirmMail событие очереди: письмо с кодом подтверждения регистрации.
type ConfirmMail struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Code     string `json:"code"`
}

// ResetMail событие очереди: письмо с кодом восстановления пароля.
type ResetMail struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Code     string `json:"code"`
}
