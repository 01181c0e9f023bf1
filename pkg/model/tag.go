package model

// ResourceTag is the path segment tags live under.
const ResourceTag = "tags"

var _ = DeclareMapping(ResourceTag, map[string]string{
	"name":   "name",
	"object": "const:object:tag",
})

// Tag is a label applied to threads (inbox, archive, custom labels).
type Tag struct {
	Base
}

// NewTag constructs a tag model. namespace may be a namespace id or a
// *Namespace.
func NewTag(client Client, id string, namespace any) *Tag {
	return &Tag{Base: *New(client, ResourceTag, id, namespace)}
}

func (t *Tag) Name() string { return t.GetString("name") }
