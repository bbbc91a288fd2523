package dto

import "github.com/aarondl/null/v8"

type SubtaskDTO struct {
	Title         string      `json:"title" validate:"required,max=255"`
	Completed     bool        `json:"completed"`
	Approved      bool        `json:"approved"`
	ApprovedBy    null.String `json:"approvedBy"`
	ApprovalNotes null.String `json:"approvalNotes"`
}

type CreateTaskDTO struct {
	Title string `json:"title" validate:"required,max=255"`

	Status   string `json:"status" validate:"omitempty,taskstatus"`
	Progress int    `json:"progress" validate:"gte=0,lte=100"`

	Description null.String `json:"description"`
	AssignedTo  null.String `json:"assignedTo"`
	Priority    null.String `json:"priority"`
	DueDate     null.String `json:"dueDate" validate:"omitempty,labdate"`

	Subtasks []SubtaskDTO `json:"subtasks" validate:"omitempty,dive"`
}

type UpdateTaskDTO struct {
	Title *string `json:"title,omitempty" validate:"omitempty,max=255"`

	Status   *string `json:"status,omitempty" validate:"omitempty,taskstatus"`
	Progress *int    `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`

	Description *string `json:"description,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty" validate:"omitempty,labdate"`

	// A non-nil slice replaces the subtask list wholesale.
	Subtasks *[]SubtaskDTO `json:"subtasks,omitempty" validate:"omitempty,dive"`
}

// ApproveSubtasksDTO marks the subtasks at the given positions as approved.
type ApproveSubtasksDTO struct {
	Indexes       []int       `json:"indexes" validate:"required,min=1,dive,gte=0"`
	ApprovedBy    string      `json:"approvedBy" validate:"required,max=255"`
	ApprovalNotes null.String `json:"approvalNotes"`
}
