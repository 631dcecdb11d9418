package app

import (
	"context"
	"errors"
	"strings"

	"fitdiary/internal/domain"
)

// ProfileUpdate carries the settings fields to change; nil fields are kept.
type ProfileUpdate struct {
	Name          *string
	Tagline       *string
	TrainingYears *float64
	Notifications *bool
}

// ProfileService encapsulates the settings-tab profile use cases.
type ProfileService struct {
	profile *Record[domain.Profile]
}

// NewProfileService creates a ProfileService over the profile record.
func NewProfileService(profile *Record[domain.Profile]) *ProfileService {
	return &ProfileService{profile: profile}
}

// Get returns the current profile.
func (s *ProfileService) Get() domain.Profile {
	return s.profile.Get()
}

// Update applies the non-nil fields of u.
func (s *ProfileService) Update(ctx context.Context, u ProfileUpdate) (domain.Profile, error) {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return domain.Profile{}, errors.New("name must not be empty")
	}
	return s.profile.Update(ctx, func(p domain.Profile) (domain.Profile, error) {
		if u.Name != nil {
			p.Name = strings.TrimSpace(*u.Name)
		}
		if u.Tagline != nil {
			p.Tagline = strings.TrimSpace(*u.Tagline)
		}
		if u.TrainingYears != nil {
			p.TrainingYears = *u.TrainingYears
		}
		if u.Notifications != nil {
			p.Notifications = *u.Notifications
		}
		return p, nil
	})
}

// SetAvatar stores an encoded image as the avatar. An empty dataURL clears it.
func (s *ProfileService) SetAvatar(ctx context.Context, dataURL string) (domain.Profile, error) {
	return s.profile.Update(ctx, func(p domain.Profile) (domain.Profile, error) {
		p.Avatar = dataURL
		return p, nil
	})
}

// TargetsUpdate carries the targets to change; nil fields are kept.
type TargetsUpdate struct {
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
	WaterML  *float64
}

// TargetsService encapsulates the daily-target use cases.
type TargetsService struct {
	targets *Record[domain.DailyTargets]
}

// NewTargetsService creates a TargetsService over the targets record.
func NewTargetsService(targets *Record[domain.DailyTargets]) *TargetsService {
	return &TargetsService{targets: targets}
}

// Get returns the current targets.
func (s *TargetsService) Get() domain.DailyTargets {
	return s.targets.Get()
}

// Update applies the non-nil fields of u. Stored diary values are untouched;
// rings pick up the new denominators on their next read.
func (s *TargetsService) Update(ctx context.Context, u TargetsUpdate) (domain.DailyTargets, error) {
	return s.targets.Update(ctx, func(t domain.DailyTargets) (domain.DailyTargets, error) {
		if u.ProteinG != nil {
			t.ProteinG = *u.ProteinG
		}
		if u.CarbsG != nil {
			t.CarbsG = *u.CarbsG
		}
		if u.FatG != nil {
			t.FatG = *u.FatG
		}
		if u.WaterML != nil {
			t.WaterML = *u.WaterML
		}
		return t, nil
	})
}
