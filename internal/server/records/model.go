package records

import "time"

// Record is a catalog item owned by exactly one user. Tags keep their given
// order (duplicates are the store's caller's business); Images is the
// ordered list of opaque display URIs. OwnerID never changes after creation
// and UpdatedAt never decreases.
type Record struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Patch is an explicit partial update: nil fields keep the stored value.
// A non-nil empty slice replaces the stored slice with an empty one.
type Patch struct {
	Title       *string
	Description *string
	Tags        []string
	Images      []string
}

func (r *Record) applyPatch(p Patch) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Tags != nil {
		r.Tags = p.Tags
	}
	if p.Images != nil {
		r.Images = p.Images
	}
}

func (r *Record) clone() *Record {
	out := *r
	out.Tags = append([]string(nil), r.Tags...)
	out.Images = append([]string(nil), r.Images...)
	return &out
}
