// Package records implements the multi-tenant record store and its query
// engine. Every operation is scoped to the calling owner; a record that is
// absent and a record owned by someone else are indistinguishable to the
// caller.
package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avelichko/garagevault/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the caller-supplied fields of a new record.
type CreateInput struct {
	Title       string
	Description string
	Tags        []string
	Images      []string
}

// Create validates the input and persists a new record owned by ownerID.
// The repository assigns id and timestamps.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (*Record, error) {

	if strings.TrimSpace(input.Title) == "" {
		return nil, common.ErrorEmptyTitle
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, common.ErrorEmptyDescription
	}

	record := &Record{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		Images:      input.Images,
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if record.Images == nil {
		record.Images = []string{}
	}

	record, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("error creating record: %w", err)
	}

	return record, nil
}

// Get returns the record if it exists and belongs to ownerID.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*Record, error) {
	return s.ownedRecord(ctx, ownerID, id)
}

// Update merges the patch over the record after the ownership check.
// Fields absent from the patch keep their stored values; updatedAt is
// refreshed by the repository.
func (s *Service) Update(ctx context.Context, ownerID, id string, patch Patch) (*Record, error) {

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, common.ErrorEmptyTitle
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return nil, common.ErrorEmptyDescription
	}

	if _, err := s.ownedRecord(ctx, ownerID, id); err != nil {
		return nil, err
	}

	record, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating record: %w", err)
	}

	return record, nil
}

// Delete removes the record after the ownership check. Deletion is terminal;
// the freed id is never reallocated. A missing or foreign record reports
// common.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {

	if _, err := s.ownedRecord(ctx, ownerID, id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting record: %w", err)
	}
	if !deleted {
		return common.ErrorNotFound
	}

	return nil
}

// List returns all of the owner's records, most recently updated first.
func (s *Service) List(ctx context.Context, ownerID string) ([]*Record, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return list, nil
}

// ownedRecord loads a record and verifies ownership. Absence and ownership
// mismatch map to the same not-found signal so record existence never leaks
// across tenants.
func (s *Service) ownedRecord(ctx context.Context, ownerID, id string) (*Record, error) {

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading record: %w", err)
	}

	if record.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}

	return record, nil
}
