package service

import (
	"context"

	"github.com/pathfinderai/pathfinder/internal/career/domain"
	"github.com/pathfinderai/pathfinder/internal/career/store"
)

// ProfileService reads and writes the academic-details blob tied to a user.
type ProfileService struct {
	Store store.Store
}

// SaveDetails overwrites the user's academic details wholesale; there is no
// partial merge.
func (s *ProfileService) SaveDetails(ctx context.Context, userID int64, details domain.AcademicDetails) error {
	return s.Store.Users().UpdateAcademicDetails(ctx, userID, details)
}

// LoadDetails returns the saved details, or the zero structure when the
// user has not submitted any yet.
func (s *ProfileService) LoadDetails(ctx context.Context, userID int64) (domain.AcademicDetails, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.AcademicDetails{}, err
	}

	if user.AcademicDetails == nil {
		return domain.AcademicDetails{}, nil
	}
	return *user.AcademicDetails, nil
}
