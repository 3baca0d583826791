package user

import (
	"fmt"
	"net/url"
	"time"
)

// Role distinguishes students from teachers. Teachers may publish tasks and
// review submissions; everything else is student-facing.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRole converts a stored role string, defaulting unknown values to student.
func ParseRole(s string) Role {
	if s == string(RoleTeacher) {
		return RoleTeacher
	}
	return RoleStudent
}

func (r Role) String() string { return string(r) }

// User represents the user aggregate root. Identity is issued by an external
// provider; the subject ID is the stable external key. The embedded sync
// quota fields track how many stat syncs the user has performed on the
// current business date.
type User struct {
	id               uint
	subjectID        string
	email            string
	fullName         string
	avatarURL        string
	enrollmentNumber string
	branch           string
	academicYear     string
	semester         int
	role             Role
	hidden           bool
	syncCount        int
	lastSyncDate     string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewUser creates a user on first sync from the identity provider.
func NewUser(subjectID, email, fullName, avatarURL, branch, academicYear string, semester int, enrollmentNumber string) (*User, error) {
	if subjectID == "" {
		return nil, fmt.Errorf("subject ID is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	if avatarURL == "" {
		avatarURL = defaultAvatarURL(fullName)
	}

	now := time.Now().UTC()
	return &User{
		subjectID:        subjectID,
		email:            email,
		fullName:         fullName,
		avatarURL:        avatarURL,
		enrollmentNumber: enrollmentNumber,
		branch:           branch,
		academicYear:     academicYear,
		semester:         semester,
		role:             RoleStudent,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, subjectID, email, fullName, avatarURL, enrollmentNumber, branch, academicYear string, semester int, role Role, hidden bool, syncCount int, lastSyncDate string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if subjectID == "" {
		return nil, fmt.Errorf("subject ID is required")
	}

	return &User{
		id:               id,
		subjectID:        subjectID,
		email:            email,
		fullName:         fullName,
		avatarURL:        avatarURL,
		enrollmentNumber: enrollmentNumber,
		branch:           branch,
		academicYear:     academicYear,
		semester:         semester,
		role:             role,
		hidden:           hidden,
		syncCount:        syncCount,
		lastSyncDate:     lastSyncDate,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (u *User) ID() uint                 { return u.id }
func (u *User) SubjectID() string        { return u.subjectID }
func (u *User) Email() string            { return u.email }
func (u *User) FullName() string         { return u.fullName }
func (u *User) AvatarURL() string        { return u.avatarURL }
func (u *User) EnrollmentNumber() string { return u.enrollmentNumber }
func (u *User) Branch() string           { return u.branch }
func (u *User) AcademicYear() string     { return u.academicYear }
func (u *User) Semester() int            { return u.semester }
func (u *User) Role() Role               { return u.role }
func (u *User) Hidden() bool             { return u.hidden }
func (u *User) SyncCount() int           { return u.syncCount }
func (u *User) LastSyncDate() string     { return u.lastSyncDate }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

// SetID sets the ID after the user row has been created.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsTeacher reports whether the user may publish tasks.
func (u *User) IsTeacher() bool {
	return u.role == RoleTeacher
}

// UpdateProfile updates the academic attributes a user may edit.
func (u *User) UpdateProfile(enrollmentNumber, branch string, semester int) {
	u.enrollmentNumber = enrollmentNumber
	u.branch = branch
	u.semester = semester
	u.updatedAt = time.Now().UTC()
}

// SetHidden toggles exclusion from the public leaderboard.
func (u *User) SetHidden(hidden bool) {
	u.hidden = hidden
	u.updatedAt = time.Now().UTC()
}

// RemainingSyncs returns how many syncs the user has left for the given
// business date under the given daily limit.
func (u *User) RemainingSyncs(today string, limit int) int {
	if u.lastSyncDate != today {
		return limit
	}
	remaining := limit - u.syncCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func defaultAvatarURL(fullName string) string {
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(fullName)
}
