package entities

import "time"

type MessageType string

const (
	MessageInfo    MessageType = "info"
	MessageSuccess MessageType = "success"
	MessageWarning MessageType = "warning"
	MessageError   MessageType = "error"
)

type MessageLink struct {
	Text string `json:"text"`
	Url  string `json:"url"`
}

type Message struct {
	ID        string       `gorm:"primaryKey" json:"id"`
	Title     string       `json:"title" validate:"required"`
	Content   string       `json:"content" validate:"required"`
	Type      MessageType  `json:"type" validate:"required"`
	Timestamp time.Time    `gorm:"index" json:"timestamp"`
	Read      bool         `json:"read"`
	Link      *MessageLink `gorm:"serializer:json;type:text" json:"link,omitempty"`
}

func NewMessage(title, content string, messageType MessageType, link *MessageLink) Message {
	return Message{
		Title:   title,
		Content: content,
		Type:    messageType,
		Link:    link,
	}
}

type MessagePatch struct {
	Title   *string      `json:"title"`
	Content *string      `json:"content"`
	Type    *MessageType `json:"type"`
	Read    *bool        `json:"read"`
	Link    *MessageLink `json:"link"`
}

func (p MessagePatch) Apply(m *Message) {
	setIfPresent(&m.Title, p.Title)
	setIfPresent(&m.Content, p.Content)
	setIfPresent(&m.Type, p.Type)
	setIfPresent(&m.Read, p.Read)
	if p.Link != nil {
		link := *p.Link
		m.Link = &link
	}
}
