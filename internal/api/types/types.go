// Package types holds the data transfer objects exchanged with the mentorbridge
// platform API. These are transient values mirrored from the backend; the dashboard
// keeps no local copies and imposes no cross-entity invariants.
package types

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// AUTHENTICATION & ACCOUNTS
// =============================================================================

// AccessTokenDetails represents the response from the platform login and token refresh endpoints
type AccessTokenDetails struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	AccountID   string `json:"account_id"`
	Role        string `json:"role"` // institution | professional | beginner
}

// AccountInfo represents the user's account information stored in cookies
type AccountInfo struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
}

// UserProfile is the current user's profile. It is read and written wholesale;
// there is no partial caching.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// =============================================================================
// EVENTS
// =============================================================================

// Event lifecycle statuses, set by the backend and passed through opaquely
const (
	EventStatusUpcoming = "upcoming"
	EventStatusOngoing  = "ongoing"
	EventStatusEnded    = "ended"
)

type Event struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	IsVirtual   bool      `json:"is_virtual"`
	IsFeatured  bool      `json:"is_featured"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventFilters selects events on list endpoints. Nil/empty fields are omitted from
// the query string entirely, never sent as empty values.
type EventFilters struct {
	Status     string
	IsVirtual  *bool
	IsFeatured *bool
	Search     string
}

// Attendee statuses mirror the application state machine: pending -> accepted|rejected
const (
	AttendeeStatusPending  = "pending"
	AttendeeStatusAccepted = "accepted"
	AttendeeStatusRejected = "rejected"
)

type Attendee struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"event_id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

// =============================================================================
// JOB APPLICATIONS
// =============================================================================

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type JobApplication struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplicationFilters selects job applications on list endpoints
type ApplicationFilters struct {
	JobID  string
	Status string
	Search string
}

// =============================================================================
// BOOKINGS
// =============================================================================

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID             uuid.UUID `json:"id"`
	MentorID       uuid.UUID `json:"mentor_id"`
	StudentID      uuid.UUID `json:"student_id"`
	Topic          string    `json:"topic"`
	Status         string    `json:"status"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	DurationMins   int       `json:"duration_mins"`
	AmountCents    int64     `json:"amount_cents"`
	CurrencyCode   string    `json:"currency_code"`
	MeetingLink    string    `json:"meeting_link,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

// BookingFilters selects bookings on list endpoints
type BookingFilters struct {
	Status string
	From   *time.Time
	To     *time.Time
}

// =============================================================================
// EXAMS
// =============================================================================

type Exam struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	DurationMins int       `json:"duration_mins"`
	QuestionsURL string    `json:"questions_url,omitempty"` // PDF uploaded by the professional
	AnswersURL   string    `json:"answers_url,omitempty"`   // PDF uploaded by the professional
	ScheduledAt  time.Time `json:"scheduled_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type ExamStatistics struct {
	ExamID       uuid.UUID `json:"exam_id"`
	Participants int       `json:"participants"`
	AverageScore float64   `json:"average_score"`
	HighestScore float64   `json:"highest_score"`
	LowestScore  float64   `json:"lowest_score"`
	PassRate     float64   `json:"pass_rate"`
}

type ExamResult struct {
	ID          uuid.UUID `json:"id"`
	ExamID      uuid.UUID `json:"exam_id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Score       float64   `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// =============================================================================
// CHAT
// =============================================================================

type Conversation struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	MediaURL       string    `json:"media_url,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}

// =============================================================================
// EARNINGS & DASHBOARD
// =============================================================================

type EarningsSummary struct {
	TotalCents     int64  `json:"total_cents"`
	PendingCents   int64  `json:"pending_cents"`
	WithdrawnCents int64  `json:"withdrawn_cents"`
	CurrencyCode   string `json:"currency_code"`
}

type Transaction struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"booking_id"`
	AmountCents  int64     `json:"amount_cents"`
	CurrencyCode string    `json:"currency_code"`
	Kind         string    `json:"kind"` // payout | refund | fee
	CreatedAt    time.Time `json:"created_at"`
}

// Overview is the professional dashboard's headline figures
type Overview struct {
	ActiveCourses      int   `json:"active_courses"`
	ActiveStudents     int   `json:"active_students"`
	UpcomingBookings   int   `json:"upcoming_bookings"`
	UnreadMessages     int   `json:"unread_messages"`
	MonthEarningsCents int64 `json:"month_earnings_cents"`
}

type Course struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Students  int       `json:"students"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type Student struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CourseID   uuid.UUID `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type Mentorship struct {
	ID        uuid.UUID `json:"id"`
	MenteeID  uuid.UUID `json:"mentee_id"`
	Name      string    `json:"name"`
	Goal      string    `json:"goal"`
	StartedAt time.Time `json:"started_at"`
}

// ExamOverview is a dashboard row summarizing one of the professional's exams
type ExamOverview struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Participants int       `json:"participants"`
	AverageScore float64   `json:"average_score"`
}

// Finances is the dashboard's financial summary panel
type Finances struct {
	BalanceCents       int64         `json:"balance_cents"`
	MonthRevenueCents  int64         `json:"month_revenue_cents"`
	PendingPayoutCents int64         `json:"pending_payout_cents"`
	CurrencyCode       string        `json:"currency_code"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

type AnalyticsPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Analytics struct {
	DataType string           `json:"data_type"`
	Points   []AnalyticsPoint `json:"points"`
}

// Bool returns a pointer to v, for use in filter structs with optional boolean keys
func Bool(v bool) *bool {
	return &v
}

// Time returns a pointer to v, for use in filter structs with optional time bounds
func Time(v time.Time) *time.Time {
	return &v
}
