package models

import (
	"time"
)

type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Location  string    `json:"location,omitempty" db:"location"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Job struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Company      string    `json:"company" db:"company"`
	Location     string    `json:"location" db:"location"`
	JobType      string    `json:"jobType" db:"job_type"`
	SalaryRange  string    `json:"salaryRange" db:"salary_range"`
	Description  string    `json:"description" db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	PostedDate   time.Time `json:"postedDate" db:"posted_date"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	ApplyLink    string    `json:"applyLink,omitempty" db:"apply_link"`
}

type Course struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Category        string    `json:"category" db:"category"`
	Level           string    `json:"level" db:"level"`
	Duration        string    `json:"duration" db:"duration"`
	Description     string    `json:"description" db:"description"`
	Instructor      string    `json:"instructor" db:"instructor"`
	Price           float64   `json:"price" db:"price"`
	IsFree          bool      `json:"isFree" db:"is_free"`
	EnrollmentCount int       `json:"enrollmentCount" db:"enrollment_count"`
	Rating          float64   `json:"rating" db:"rating"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type SuccessStory struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Title      string    `json:"title" db:"title"`
	Story      string    `json:"story" db:"story"`
	ImageURL   string    `json:"imageUrl,omitempty" db:"image_url"`
	Category   string    `json:"category" db:"category"`
	DatePosted time.Time `json:"datePosted" db:"date_posted"`
	IsApproved bool      `json:"isApproved" db:"is_approved"`
}

type Mentor struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Expertise      string    `json:"expertise" db:"expertise"`
	Bio            string    `json:"bio" db:"bio"`
	LinkedInURL    string    `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	AvailableSlots int       `json:"availableSlots" db:"available_slots"`
	Rating         float64   `json:"rating" db:"rating"`
	TotalMentees   int       `json:"totalMentees" db:"total_mentees"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// CommunityPost carries the stored row. AuthorName is filled by the query and is
// always "Anonymous"; posts are not linked to a visible identity.
type CommunityPost struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId,omitempty" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Category   string    `json:"category" db:"category"`
	Likes      int       `json:"likes" db:"likes"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	AuthorName string    `json:"authorName" db:"author_name"`
}

type LegalRight struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Category     string    `json:"category" db:"category"`
	Description  string    `json:"description" db:"description"`
	Country      string    `json:"country" db:"country"`
	LawReference string    `json:"lawReference" db:"law_reference"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Table initialization outcomes.
const (
	TableCreated = "created"
	TableExists  = "exists"
	TableFailed  = "failed"
)

type TableStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type TablesReport struct {
	Count   int      `json:"countTables"`
	Names   []string `json:"tables"`
	Missing []string `json:"missing"`
}

type NewUser struct {
	Email    string
	Name     string
	Phone    string
	Location string
}

type NewJob struct {
	Title        string
	Company      string
	Location     string
	JobType      string
	SalaryRange  string
	Description  string
	Requirements string
	ApplyLink    string
}

type NewCourse struct {
	Title       string
	Category    string
	Level       string
	Duration    string
	Description string
	Instructor  string
	Price       float64
	IsFree      bool
}

type NewStory struct {
	Name     string
	Title    string
	Story    string
	Category string
	ImageURL string
}

type NewPost struct {
	UserID   int64
	Title    string
	Content  string
	Category string
}

// ContactMessage is a contact form submission. It is not stored; it is
// published as an event for whoever handles support.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
