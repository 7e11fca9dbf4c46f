package records

import (
	"context"
	"strings"
)

// Search narrows the owner's records by a free-text query and a conjunctive
// tag filter. With both empty it returns List unmodified; otherwise it is a
// stable filter, so the updatedAt-descending order of List is preserved.
//
// The text predicate is a case-insensitive substring match against the
// title, the description, or any single tag. The tag filter requires every
// requested tag to be present verbatim (case-sensitive).
func (s *Service) Search(ctx context.Context, ownerID, query string, tags []string) ([]*Record, error) {

	list, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if query == "" && len(tags) == 0 {
		return list, nil
	}

	needle := strings.ToLower(query)

	out := make([]*Record, 0, len(list))
	for _, record := range list {
		if matchesQuery(record, needle) && matchesTags(record, tags) {
			out = append(out, record)
		}
	}

	return out, nil
}

func matchesQuery(record *Record, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(record.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(record.Description), needle) {
		return true
	}
	for _, tag := range record.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesTags(record *Record, filter []string) bool {
	for _, want := range filter {
		found := false
		for _, tag := range record.Tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
