package entity

import (
	"time"
)

const (
	DefaultCategory = "pessoal"
	DefaultTheme    = "hello-kitty"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"username" gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Theme        string    `json:"theme" gorm:"not null;default:hello-kitty"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations exist so the embedded store declares foreign keys; they are
	// never loaded.
	Tasks     []Task        `json:"-" gorm:"foreignKey:UserID"`
	Goals     []Goal        `json:"-" gorm:"foreignKey:UserID"`
	Events    []Event       `json:"-" gorm:"foreignKey:UserID"`
	Reminders []Reminder    `json:"-" gorm:"foreignKey:UserID"`
	Gallery   []GalleryItem `json:"-" gorm:"foreignKey:UserID"`
}

type Task struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"-" gorm:"index;not null"`
	Text      string    `json:"text" gorm:"not null"`
	Category  string    `json:"category" gorm:"not null"`
	Completed bool      `json:"completed" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Goal progress is not range checked.
type Goal struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"-" gorm:"index;not null"`
	Text      string    `json:"text" gorm:"not null"`
	Progress  int       `json:"progress" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Event keeps Date as YYYY-MM-DD and Time as HH:MM.
type Event struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"-" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Date      string    `json:"date" gorm:"column:event_date;not null"`
	Time      string    `json:"time" gorm:"column:event_time;not null"`
	Category  string    `json:"category" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Reminder struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"-" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Time      string    `json:"time" gorm:"column:remind_at;not null"`
	Active    bool      `json:"active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryItem stores the already encoded image as is.
type GalleryItem struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"-" gorm:"index;not null"`
	Caption   string    `json:"caption" gorm:"not null"`
	Category  string    `json:"category" gorm:"not null"`
	ImageData string    `json:"image_data" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type DailyLetter struct {
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Reference string `json:"reference"`
	Icon      string `json:"icon"`
}

type Stats struct {
	DaysTogether    int    `json:"days_together"`
	TasksCount      int    `json:"tasks_count"`
	GoalsCount      int    `json:"goals_count"`
	GalleryCount    int    `json:"gallery_count"`
	NextAnniversary string `json:"next_anniversary"`
}

type Dashboard struct {
	Username     string         `json:"username"`
	Theme        string         `json:"theme"`
	Tasks        []*Task        `json:"tasks"`
	Goals        []*Goal        `json:"goals"`
	Events       []*Event       `json:"events"`
	Reminders    []*Reminder    `json:"reminders"`
	Gallery      []*GalleryItem `json:"gallery"`
	DailyLetter  DailyLetter    `json:"daily_letter"`
	CurrentDay   int            `json:"current_day"`
	DaysTogether int            `json:"days_together"`
}
