package model

import "time"

// ResourceThread is the path segment threads live under.
const ResourceThread = "threads"

var _ = DeclareMapping(ResourceThread, map[string]string{
	"subject":              "subject",
	"snippet":              "snippet",
	"participants":         "array:participants",
	"messageIDs":           "array:message_ids",
	"draftIDs":             "array:draft_ids",
	"tags":                 "array:tags",
	"unread":               "bool:unread",
	"lastMessageTimestamp": "date:last_message_timestamp",
	"object":               "const:object:thread",
})

// Thread is a conversation: an ordered set of messages sharing a subject.
type Thread struct {
	Base
}

// NewThread constructs a thread model. namespace may be a namespace id or a
// *Namespace.
func NewThread(client Client, id string, namespace any) *Thread {
	return &Thread{Base: *New(client, ResourceThread, id, namespace)}
}

func (t *Thread) Subject() string { return t.GetString("subject") }
func (t *Thread) Snippet() string { return t.GetString("snippet") }
func (t *Thread) Participants() []any { return t.GetSlice("participants") }
func (t *Thread) MessageIDs() []any { return t.GetSlice("messageIDs") }
func (t *Thread) Tags() []any { return t.GetSlice("tags") }
func (t *Thread) Unread() bool { return t.GetBool("unread") }
func (t *Thread) LastMessageTime() time.Time { return t.GetTime("lastMessageTimestamp") }
