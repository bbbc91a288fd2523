package services

import (
	"context"
	"net/http"
	"testing"

	"lab-system/internal/dto"
	"lab-system/internal/memstore"
	"lab-system/internal/repositories"
	"lab-system/pkg/constants"
	apperrors "lab-system/pkg/errors"
	"lab-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTaskServiceForTest() TaskServiceInterface {
	return NewTaskService(repositories.NewTaskRepository(memstore.NewSequence()), zap.NewNop())
}

func TestCreateTaskDefaultsToPending(t *testing.T) {
	svc := newTaskServiceForTest()

	created, err := svc.CreateTask(context.Background(), dto.CreateTaskDTO{Title: "สอบเทียบเครื่องชั่งประจำเดือน"})
	require.NoError(t, err)
	assert.Equal(t, constants.TaskStatusPending, created.Status)
	assert.Equal(t, 0, created.Progress)
	assert.Empty(t, created.Subtasks)
}

func TestApproveSubtasks(t *testing.T) {
	svc := newTaskServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, dto.CreateTaskDTO{
		Title:    "เตรียมตัวอย่าง",
		Status:   constants.TaskStatusInProgress,
		Progress: 40,
		Subtasks: []dto.SubtaskDTO{
			{Title: "ชั่งสาร", Completed: true},
			{Title: "กรองตัวอย่าง"},
			{Title: "บันทึกผล"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.ApproveSubtasks(ctx, created.ID, dto.ApproveSubtasksDTO{
		Indexes:       []int{0, 2},
		ApprovedBy:    "หัวหน้าแผนก QA",
		ApprovalNotes: null.StringFrom("ตรวจแล้ว"),
	})
	require.NoError(t, err)

	assert.True(t, updated.Subtasks[0].Approved)
	assert.False(t, updated.Subtasks[1].Approved)
	assert.True(t, updated.Subtasks[2].Approved)
	assert.Equal(t, "หัวหน้าแผนก QA", updated.Subtasks[0].ApprovedBy.String)

	// Approval never touches the parent's own fields.
	assert.Equal(t, constants.TaskStatusInProgress, updated.Status)
	assert.Equal(t, 40, updated.Progress)
}

func TestApproveSubtasksIndexOutOfRange(t *testing.T) {
	svc := newTaskServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, dto.CreateTaskDTO{
		Title:    "เตรียมตัวอย่าง",
		Subtasks: []dto.SubtaskDTO{{Title: "ชั่งสาร"}},
	})
	require.NoError(t, err)

	_, err = svc.ApproveSubtasks(ctx, created.ID, dto.ApproveSubtasksDTO{Indexes: []int{1}, ApprovedBy: "QA"})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	// Nothing was approved on the failed call.
	found, err := svc.FindTask(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.Subtasks[0].Approved)
}

func TestApproveSubtasksMissingTask(t *testing.T) {
	svc := newTaskServiceForTest()

	_, err := svc.ApproveSubtasks(context.Background(), 42, dto.ApproveSubtasksDTO{Indexes: []int{0}, ApprovedBy: "QA"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTaskReplacesSubtasksWholesale(t *testing.T) {
	svc := newTaskServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, dto.CreateTaskDTO{
		Title:    "เตรียมตัวอย่าง",
		Subtasks: []dto.SubtaskDTO{{Title: "ชั่งสาร"}, {Title: "กรองตัวอย่าง"}},
	})
	require.NoError(t, err)

	replacement := []dto.SubtaskDTO{{Title: "ตรวจสอบซ้ำ", Completed: true}}
	updated, err := svc.UpdateTask(ctx, created.ID, dto.UpdateTaskDTO{
		Subtasks: &replacement,
		Progress: utils.IntPtr(80),
	})
	require.NoError(t, err)
	require.Len(t, updated.Subtasks, 1)
	assert.Equal(t, "ตรวจสอบซ้ำ", updated.Subtasks[0].Title)
	assert.Equal(t, 80, updated.Progress)
}

func TestGetTasksStatusFilter(t *testing.T) {
	svc := newTaskServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, dto.CreateTaskDTO{Title: "A"})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, dto.CreateTaskDTO{Title: "B", Status: constants.TaskStatusCompleted})
	require.NoError(t, err)

	completed, err := svc.GetTasks(ctx, constants.TaskStatusCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	_, err = svc.GetTasks(ctx, "bogus")
	assert.Error(t, err)
}
