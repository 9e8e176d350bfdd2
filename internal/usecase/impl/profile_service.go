package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"munch/internal/domain/entity"
	domainerrors "munch/internal/domain/errors"
	"munch/internal/domain/repository"
	"munch/internal/usecase"
	"munch/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// summarySentinel is reported for the name fields of an empty directory.
const summarySentinel = "N/A"

// activityStatusActive is the only status the tracker ever reports.
const activityStatusActive = "Active"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:     params.UserRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

// Get retrieves a profile by email.
func (srv *profileService) Get(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Update replaces name, address, phone and birth date. Email and password
// stay untouched.
func (srv *profileService) Update(ctx context.Context, email string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating profile", slog.String("email", email))

	if input.Phone != "" && !util.IsPhoneNumberValid(input.Phone) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("phone must match +7 (XXX) XXX-XX-XX"), "invalid phone number")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile update")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	user.Name = input.Name
	user.Address = input.Address
	user.Phone = input.Phone
	user.BirthDate = input.BirthDate

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// Delete removes the profile and its activity record.
func (srv *profileService) Delete(ctx context.Context, email string) error {
	srv.logger.Info("Deleting profile", slog.String("email", email))

	if err := srv.userRepo.Delete(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile delete")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	if err := srv.activityRepo.Delete(ctx, email); err != nil {
		return errors.Wrap(err, "failed to delete activity record")
	}

	return nil
}

// Summary computes the directory statistics on demand. Oldest means the
// minimum birth date, youngest the maximum; ties keep the earlier
// registered user. The average age is rounded to one decimal place.
func (srv *profileService) Summary(ctx context.Context) (*usecase.ProfileSummary, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	if len(users) == 0 {
		return &usecase.ProfileSummary{
			TotalUsers:       0,
			OldestUserName:   summarySentinel,
			YoungestUserName: summarySentinel,
			AverageAge:       0,
		}, nil
	}

	now := time.Now()
	oldest, youngest := users[0], users[0]
	var ageSum int
	for _, user := range users {
		if user.BirthDate.Before(oldest.BirthDate) {
			oldest = user
		}
		if user.BirthDate.After(youngest.BirthDate) {
			youngest = user
		}
		ageSum += user.Age(now)
	}

	average := float64(ageSum) / float64(len(users))

	return &usecase.ProfileSummary{
		TotalUsers:       len(users),
		OldestUserName:   oldest.Name,
		YoungestUserName: youngest.Name,
		AverageAge:       math.Round(average*10) / 10,
	}, nil
}

// RecordLogin upserts the last-seen timestamp for a known user.
func (srv *profileService) RecordLogin(ctx context.Context, email string) error {
	if _, err := srv.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "record login")
		}

		return errors.Wrap(err, "failed to find user")
	}

	activity := &entity.Activity{Email: email, LastLogin: time.Now()}
	if err := srv.activityRepo.Upsert(ctx, email, activity); err != nil {
		return errors.Wrap(err, "failed to record login activity")
	}

	return nil
}

// GetActivity reads the last recorded login for a known user.
func (srv *profileService) GetActivity(ctx context.Context, email string) (*usecase.ActivityOutput, error) {
	if _, err := srv.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "activity lookup")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	activity, err := srv.activityRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound.WithDetails("no login activity recorded"), "activity lookup")
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	return &usecase.ActivityOutput{
		LastLogin: activity.LastLogin,
		Status:    activityStatusActive,
	}, nil
}
