package person

import "context"

// PersonRepository loads people for ticket generation.
type PersonRepository interface {
	Save(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, personID string) (*Person, error)
	// ListWithTag returns the people belonging to orgID who carry the named
	// tag, whether the tag is scoped to that org or global.
	ListWithTag(ctx context.Context, tagName, orgID string, limit int) ([]*Person, error)
	// LinkToOrg makes the person a member of the org (idempotent).
	LinkToOrg(ctx context.Context, personID, orgID, role string) error
}

// TagRepository stores tags and taggings. Attach and Detach are idempotent:
// attaching an existing tagging or detaching a missing one is a no-op.
type TagRepository interface {
	// GetOrCreatePreferringOrg resolves a tag by name, preferring one scoped
	// to orgID over a global tag of the same name, creating an org-scoped tag
	// when neither exists.
	GetOrCreatePreferringOrg(ctx context.Context, name, orgID string) (*Tag, error)
	// GetPreferringOrg is the lookup-only variant; returns a not-found error
	// when no org-scoped or global tag matches.
	GetPreferringOrg(ctx context.Context, name, orgID string) (*Tag, error)
	Attach(ctx context.Context, personID, tagID string) error
	Detach(ctx context.Context, personID, tagID string) error
	IsAttached(ctx context.Context, personID, tagID string) (bool, error)
}
