package models

// MailMessage is the payload accepted by the mail service on POST /mail.
type MailMessage struct {
	Sender  string `json:"sender" validate:"required,email"`
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// ErrorReport is the payload accepted by the mail service on POST /error.
// The mail service forwards reports to the operators of the application.
type ErrorReport struct {
	Message string `json:"message"`
	Level   string `json:"level"`
	Info    string `json:"info"`
}
