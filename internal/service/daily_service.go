package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/letters"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/datemath"
	"github.com/limbo/planner/pkg/entity"
)

// Repositories is the full set of stores behind the planner, whichever
// backend provides them.
type Repositories struct {
	Users     repository.UsersRepositoryI
	Tasks     repository.OwnedRepositoryI[entity.Task]
	Goals     repository.OwnedRepositoryI[entity.Goal]
	Events    repository.OwnedRepositoryI[entity.Event]
	Reminders repository.OwnedRepositoryI[entity.Reminder]
	Gallery   repository.OwnedRepositoryI[entity.GalleryItem]
}

type Calendar struct {
	// First day of the letter rotation
	LetterAnchor time.Time
	// Day the relationship started; its month and day are the anniversary
	RelationshipAnchor time.Time
	Location           *time.Location
	Now                func() time.Time
}

// Today is the calendar date of the current instant in the configured location.
func (c Calendar) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return datemath.Civil(now(), c.Location)
}

type DailyService struct {
	repos   Repositories
	letters *letters.Table
	cal     Calendar
}

func NewDailyService(repos Repositories, table *letters.Table, cal Calendar) *DailyService {
	return &DailyService{
		repos:   repos,
		letters: table,
		cal:     cal,
	}
}

func (ds *DailyService) DailyLetter(ctx context.Context) entity.DailyLetter {
	return ds.letters.On(ds.cal.Today(), ds.cal.LetterAnchor)
}

func (ds *DailyService) Stats(ctx context.Context, uid int64) (*entity.Stats, error) {
	if uid <= 0 {
		return nil, errorvalues.ErrUnauthorized
	}
	today := ds.cal.Today()
	stats := entity.Stats{
		DaysTogether:    datemath.DaysElapsed(today, ds.cal.RelationshipAnchor),
		NextAnniversary: ds.nextAnniversary(today).Format(datemath.DateLayout),
	}
	var err error
	if stats.TasksCount, err = ds.repos.Tasks.CountByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("counting tasks error: %w", err)
	}
	if stats.GoalsCount, err = ds.repos.Goals.CountByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("counting goals error: %w", err)
	}
	if stats.GalleryCount, err = ds.repos.Gallery.CountByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("counting gallery error: %w", err)
	}
	return &stats, nil
}

func (ds *DailyService) nextAnniversary(today time.Time) time.Time {
	_, month, day := ds.cal.RelationshipAnchor.Date()
	return datemath.NextOccurrence(today, month, day)
}

// Dashboard gathers everything the planner page shows for uid.
func (ds *DailyService) Dashboard(ctx context.Context, uid int64) (*entity.Dashboard, error) {
	if uid <= 0 {
		return nil, errorvalues.ErrUnauthorized
	}
	user, err := ds.repos.Users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUnauthorized
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	today := ds.cal.Today()
	letter := ds.letters.On(today, ds.cal.LetterAnchor)
	dash := entity.Dashboard{
		Username:     user.Name,
		Theme:        user.Theme,
		DailyLetter:  letter,
		CurrentDay:   letter.Day,
		DaysTogether: datemath.DaysElapsed(today, ds.cal.RelationshipAnchor),
	}
	if dash.Tasks, err = ds.repos.Tasks.ListByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("listing tasks error: %w", err)
	}
	if dash.Goals, err = ds.repos.Goals.ListByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("listing goals error: %w", err)
	}
	if dash.Events, err = ds.repos.Events.ListByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("listing events error: %w", err)
	}
	if dash.Reminders, err = ds.repos.Reminders.ListByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("listing reminders error: %w", err)
	}
	if dash.Gallery, err = ds.repos.Gallery.ListByUser(ctx, uid); err != nil {
		return nil, fmt.Errorf("listing gallery error: %w", err)
	}
	return &dash, nil
}
