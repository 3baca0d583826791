package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("sub-1", "a@campus.edu", "Asha Verma", "", "CSE", "2025", 5, "EN123")
	assert.NoError(t, err)
	assert.Equal(t, RoleStudent, u.Role())
	assert.False(t, u.Hidden())
	assert.Contains(t, u.AvatarURL(), "dicebear", "default avatar is derived from the name")

	_, err = NewUser("", "a@campus.edu", "Asha Verma", "", "", "", 0, "")
	assert.Error(t, err)

	_, err = NewUser("sub-1", "", "Asha Verma", "", "", "", 0, "")
	assert.Error(t, err)
}

func TestRemainingSyncs(t *testing.T) {
	u, err := ReconstructUser(1, "sub-1", "a@campus.edu", "Asha Verma", "x", "EN123",
		"CSE", "2025", 5, RoleStudent, false, 3, "2026-09-01", time.Now(), time.Now())
	assert.NoError(t, err)

	// Counter applies on the stored date only.
	assert.Equal(t, 2, u.RemainingSyncs("2026-09-01", 5))
	// A new date means a fresh allowance.
	assert.Equal(t, 5, u.RemainingSyncs("2026-09-02", 5))
}

func TestRemainingSyncsNeverNegative(t *testing.T) {
	u, err := ReconstructUser(1, "sub-1", "a@campus.edu", "Asha Verma", "x", "",
		"", "", 0, RoleStudent, false, 9, "2026-09-01", time.Now(), time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, u.RemainingSyncs("2026-09-01", 5))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleTeacher, ParseRole("teacher"))
	assert.Equal(t, RoleStudent, ParseRole("student"))
	assert.Equal(t, RoleStudent, ParseRole("admin"), "unknown roles default to student")
}

func TestSetID(t *testing.T) {
	u, err := NewUser("sub-1", "a@campus.edu", "Asha Verma", "", "", "", 0, "")
	assert.NoError(t, err)

	assert.NoError(t, u.SetID(42))
	assert.Error(t, u.SetID(43), "ID can only be set once")
	assert.Equal(t, uint(42), u.ID())
}
