package email

// Message is one outbound transactional email.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender delivers transactional email. The SMTP implementation is the only
// production one; tests substitute fakes.
type Sender interface {
	Send(msg *Message) error
}
