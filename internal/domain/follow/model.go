package follow

import (
	"fmt"
	"time"
)

// Follow links a member to a team they track on the calendar.
type Follow struct {
	MemberUID string
	TeamID    string
	CreatedAt time.Time
}

func (f Follow) Validate() error {
	if f.MemberUID == "" {
		return fmt.Errorf("follow member uid is required")
	}
	if f.TeamID == "" {
		return fmt.Errorf("follow team id is required")
	}

	return nil
}
