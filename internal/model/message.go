package model

import "time"

// Attachment is one message attachment; PDF text extraction happens at the
// mailbox boundary before the body reaches the pipeline.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is one confirmation message as delivered by the mailbox connector.
type Message struct {
	Sender      string
	Subject     string
	Body        string
	Folder      string
	Received    time.Time
	Attachments []Attachment
}

// Text returns the searchable content of the message, subject first. Several
// sources put the arrival date or confirmation number only in the subject.
func (m Message) Text() string {
	if m.Subject == "" {
		return m.Body
	}
	return m.Subject + "\n" + m.Body
}
