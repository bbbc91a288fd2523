package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Subtask is an owned value object: it only exists inside its parent Task and
// is replaced wholesale on task updates. Approval of a subtask does not feed
// back into the parent's progress or status.
type Subtask struct {
	Title         string      `json:"title"`
	Completed     bool        `json:"completed"`
	Approved      bool        `json:"approved"`
	ApprovedBy    null.String `json:"approvedBy"`
	ApprovalNotes null.String `json:"approvalNotes"`
}

type Task struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`

	Description null.String `json:"description"`
	AssignedTo  null.String `json:"assignedTo"`
	Priority    null.String `json:"priority"`
	DueDate     null.String `json:"dueDate"`

	Subtasks []Subtask `json:"subtasks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
