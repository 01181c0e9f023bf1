package model

import "time"

// ResourceMessage is the path segment messages live under.
const ResourceMessage = "messages"

var _ = DeclareMapping(ResourceMessage, map[string]string{
	"subject":  "subject",
	"body":     "body",
	"snippet":  "snippet",
	"threadID": "thread_id",
	"from":     "array:from",
	"to":       "array:to",
	"cc":       "array:cc",
	"bcc":      "array:bcc",
	"date":     "date:date",
	"unread":   "bool:unread",
	"object":   "const:object:message",
})

// Message is a single mail message within a thread.
type Message struct {
	Base
}

// NewMessage constructs a message model. namespace may be a namespace id or
// a *Namespace.
func NewMessage(client Client, id string, namespace any) *Message {
	return &Message{Base: *New(client, ResourceMessage, id, namespace)}
}

func (m *Message) Subject() string { return m.GetString("subject") }
func (m *Message) Body() string { return m.GetString("body") }
func (m *Message) Snippet() string { return m.GetString("snippet") }
func (m *Message) ThreadID() string { return m.GetString("threadID") }
func (m *Message) From() []any { return m.GetSlice("from") }
func (m *Message) To() []any { return m.GetSlice("to") }
func (m *Message) Date() time.Time { return m.GetTime("date") }
func (m *Message) Unread() bool { return m.GetBool("unread") }
