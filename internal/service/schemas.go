package service

import (
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/datemath"
	"github.com/limbo/planner/pkg/entity"
)

type (
	TasksService     = ResourceService[entity.Task, CreateTaskRequest, UpdateTaskRequest]
	GoalsService     = ResourceService[entity.Goal, CreateGoalRequest, UpdateGoalRequest]
	EventsService    = ResourceService[entity.Event, CreateEventRequest, NoUpdate]
	RemindersService = ResourceService[entity.Reminder, CreateReminderRequest, UpdateReminderRequest]
	GalleryService   = ResourceService[entity.GalleryItem, CreateGalleryItemRequest, NoUpdate]
)

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

var TaskSchema = Schema[entity.Task, CreateTaskRequest, UpdateTaskRequest]{
	Name: "tasks",
	Build: func(uid int64, req *CreateTaskRequest) (*entity.Task, error) {
		return &entity.Task{
			UserID:    uid,
			Text:      req.Text,
			Category:  orDefault(req.Category, entity.DefaultCategory),
			Completed: req.Completed,
		}, nil
	},
	Apply: func(t *entity.Task, req *UpdateTaskRequest) error {
		if req.Text != nil {
			t.Text = *req.Text
		}
		if req.Category != nil {
			t.Category = *req.Category
		}
		if req.Completed != nil {
			t.Completed = *req.Completed
		}
		return nil
	},
}

var GoalSchema = Schema[entity.Goal, CreateGoalRequest, UpdateGoalRequest]{
	Name: "goals",
	Build: func(uid int64, req *CreateGoalRequest) (*entity.Goal, error) {
		return &entity.Goal{
			UserID:   uid,
			Text:     req.Text,
			Progress: req.Progress,
		}, nil
	},
	Apply: func(g *entity.Goal, req *UpdateGoalRequest) error {
		if req.Text != nil {
			g.Text = *req.Text
		}
		if req.Progress != nil {
			g.Progress = *req.Progress
		}
		return nil
	},
}

var EventSchema = Schema[entity.Event, CreateEventRequest, NoUpdate]{
	Name: "events",
	Build: func(uid int64, req *CreateEventRequest) (*entity.Event, error) {
		date, err := datemath.ParseDate(req.Date)
		if err != nil {
			return nil, errorvalues.NewValidationError("date", "must match format YYYY-MM-DD")
		}
		clock, err := datemath.ParseClock(req.Time)
		if err != nil {
			return nil, errorvalues.NewValidationError("time", "must match format HH:MM")
		}
		return &entity.Event{
			UserID:   uid,
			Title:    req.Title,
			Date:     date.Format(datemath.DateLayout),
			Time:     clock,
			Category: orDefault(req.Category, entity.DefaultCategory),
		}, nil
	},
}

var ReminderSchema = Schema[entity.Reminder, CreateReminderRequest, UpdateReminderRequest]{
	Name: "reminders",
	Build: func(uid int64, req *CreateReminderRequest) (*entity.Reminder, error) {
		clock, err := datemath.ParseClock(req.Time)
		if err != nil {
			return nil, errorvalues.NewValidationError("time", "must match format HH:MM")
		}
		active := true
		if req.Active != nil {
			active = *req.Active
		}
		return &entity.Reminder{
			UserID: uid,
			Title:  req.Title,
			Time:   clock,
			Active: active,
		}, nil
	},
	Apply: func(r *entity.Reminder, req *UpdateReminderRequest) error {
		if req.Time != nil {
			clock, err := datemath.ParseClock(*req.Time)
			if err != nil {
				return errorvalues.NewValidationError("time", "must match format HH:MM")
			}
			r.Time = clock
		}
		if req.Title != nil {
			r.Title = *req.Title
		}
		if req.Active != nil {
			r.Active = *req.Active
		}
		return nil
	},
}

var GallerySchema = Schema[entity.GalleryItem, CreateGalleryItemRequest, NoUpdate]{
	Name: "gallery",
	Build: func(uid int64, req *CreateGalleryItemRequest) (*entity.GalleryItem, error) {
		return &entity.GalleryItem{
			UserID:    uid,
			Caption:   req.Caption,
			Category:  req.Category,
			ImageData: req.ImageData,
		}, nil
	},
}

func NewTasksService(repo repository.OwnedRepositoryI[entity.Task]) *TasksService {
	return NewResourceService(repo, TaskSchema)
}

func NewGoalsService(repo repository.OwnedRepositoryI[entity.Goal]) *GoalsService {
	return NewResourceService(repo, GoalSchema)
}

func NewEventsService(repo repository.OwnedRepositoryI[entity.Event]) *EventsService {
	return NewResourceService(repo, EventSchema)
}

func NewRemindersService(repo repository.OwnedRepositoryI[entity.Reminder]) *RemindersService {
	return NewResourceService(repo, ReminderSchema)
}

func NewGalleryService(repo repository.OwnedRepositoryI[entity.GalleryItem]) *GalleryService {
	return NewResourceService(repo, GallerySchema)
}

