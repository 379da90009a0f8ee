package workflow_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stepflow-io/stepflow/pkg/automation"
	"github.com/stepflow-io/stepflow/pkg/models"
	"github.com/stepflow-io/stepflow/pkg/testutil"
	"github.com/stepflow-io/stepflow/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDispatcher struct {
	result automation.Result
	calls  []string
}

func (d *stubDispatcher) Dispatch(_ context.Context, actionID string, _ map[string]string) automation.Result {
	d.calls = append(d.calls, actionID)

	return d.result
}

func newTestExecutor(dispatcher workflow.Dispatcher) *workflow.Executor {
	return workflow.NewExecutor(dispatcher, slog.New(slog.DiscardHandler))
}

func TestExecute_HappyPath(t *testing.T) {
	t.Parallel()

	graph := testutil.Chain(
		testutil.CreateTestNode(models.KindStart, testutil.WithID("s")),
		testutil.CreateTestNode(models.KindTask, testutil.WithID("t"), testutil.WithConfig(testutil.SubmittedTaskConfig())),
		testutil.CreateTestNode(models.KindApproval, testutil.WithID("a")),
		testutil.CreateTestNode(models.KindEnd, testutil.WithID("e")),
	)

	executor := newTestExecutor(&stubDispatcher{})
	trace := executor.Execute(context.Background(), workflow.Order(graph), workflow.Options{})

	require.True(t, trace.OK)
	require.Len(t, trace.Steps, 4)
	assert.Nil(t, trace.PendingTask)
	assert.Nil(t, trace.ApprovalReview)

	messages := make([]string, len(trace.Steps))
	for i, step := range trace.Steps {
		assert.Equal(t, i+1, step.Order)
		assert.Equal(t, models.NodeStatusCompleted, step.Status)

		messages[i] = step.Message
	}

	assert.Equal(t, []string{
		"Workflow started.",
		"Task completed by employee.",
		"Approval validation passed.",
		"Workflow completed.",
	}, messages)
}

func TestExecute_SuspendsOnUnsubmittedTask(t *testing.T) {
	t.Parallel()

	graph := testutil.Chain(
		testutil.CreateTestNode(models.KindStart, testutil.WithID("s")),
		testutil.CreateTestNode(models.KindTask, testutil.WithID("t"), testutil.WithLabel("Onboarding Form")),
		testutil.CreateTestNode(models.KindEnd, testutil.WithID("e")),
	)

	executor := newTestExecutor(&stubDispatcher{})
	trace := executor.Execute(context.Background(), workflow.Order(graph), workflow.Options{})

	require.True(t, trace.OK)
	require.Len(t, trace.Steps, 2)
	assert.Equal(t, models.NodeStatusInProgress, trace.Steps[1].Status)
	assert.Equal(t, "Waiting for employee to complete the task.", trace.Steps[1].Message)

	require.NotNil(t, trace.PendingTask)
	assert.Equal(t, "t", trace.PendingTask.NodeID)
	assert.Equal(t, "Onboarding Form", trace.PendingTask.NodeLabel)
}

func TestExecute_SuspendsOnApprovalIssues(t *testing.T) {
	t.Parallel()

	taskCfg := &models.TaskConfig{
		Title: "Onboarding Form",
		Form:  models.TaskFormData{FullName: "Ada Lovelace"},
	}

	graph := testutil.Chain(
		testutil.CreateTestNode(models.KindStart, testutil.WithID("s")),
		testutil.CreateTestNode(models.KindTask, testutil.WithID("t"), testutil.WithConfig(taskCfg)),
		testutil.CreateTestNode(models.KindApproval, testutil.WithID("a"), testutil.WithLabel("Manager Approval")),
		testutil.CreateTestNode(models.KindEnd, testutil.WithID("e")),
	)

	executor := newTestExecutor(&stubDispatcher{})
	trace := executor.Execute(context.Background(), workflow.Order(graph), workflow.Options{})

	require.False(t, trace.OK)
	require.Len(t, trace.Steps, 3)
	assert.Equal(t, "Approval required.", trace.Steps[2].Message)
	assert.Equal(t, models.NodeStatusInProgress, trace.Steps[2].Status)

	require.NotNil(t, trace.ApprovalReview)
	assert.Equal(t, "a", trace.ApprovalReview.NodeID)
	assert.Equal(t, trace.Errors, trace.ApprovalReview.Issues)
	assert.Contains(t, trace.Errors, "Missing required field: email")
	assert.Equal(t, "Ada Lovelace", trace.ApprovalReview.Payload.Form.FullName)
}

func TestExecute_AutoApproveBypassesRules(t *testing.T) {
	t.Parallel()

	taskCfg := &models.TaskConfig{
		Form: models.TaskFormData{FullName: "Ada Lovelace"},
	}

	graph := testutil.Chain(
		testutil.CreateTestNode(models.KindStart, testutil.WithID("s")),
		testutil.CreateTestNode(models.KindTask, testutil.WithID("t"), testutil.WithConfig(taskCfg)),
		testutil.CreateTestNode(models.KindApproval, testutil.WithID("a")),
		testutil.CreateTestNode(models.KindEnd, testutil.WithID("e")),
	)

	executor := newTestExecutor(&stubDispatcher{})
	trace := executor.Execute(context.Background(), workflow.Order(graph), workflow.Options{
		AutoApproveNodeID: "a",
	})

	require.True(t, trace.OK)
	require.Len(t, trace.Steps, 4)
	assert.Equal(t, "Manually approved by manager.", trace.Steps[2].Message)
	assert.Nil(t, trace.ApprovalReview)
}

func TestExecute_AutomatedSuccess(t *testing.T) {
	t.Parallel()

	dispatcher := &stubDispatcher{result: automation.Result{OK: true, Message: "Email sent to ada@example.com (mocked)"}}

	graph := testutil.Chain(
		testutil.CreateTestNode(models.KindStart, testutil.WithID("s")),
		testutil.CreateTestNode(models.KindAutomated, testutil.WithID("auto"), testutil.WithConfig(&models.AutomatedConfig{
			ActionID: "send_email",
			Params:   map[string]string{"to": "ada@example.com", "subject": "Welcome"},
		})),
		testutil.CreateTestNode(models.KindEnd, testutil.WithID("e")),
	)

	executor := newTestExecutor(dispatcher)
	trace := executor.Execute(context.Background(), workflow.Order(graph), workflow.Options{})

	require.True(t, trace.OK)
	assert.Equal(t, []string{"send_email"}, dispatcher.calls)
	assert.Equal(t, "Email sent to ada@example.com (mocked)", trace.Steps[1].Message)
}

func TestExecute_AutomatedFailureHaltsRun(t *testing.T) {
	t.Parallel()

	dispatcher := &stubDispatcher{result: automation.Result{OK: false, Message: "Missing email 'to' or 'subject'."}}

	graph := testutil.Chain(
		testutil.CreateTestNode(models.KindStart, testutil.WithID("s")),
		testutil.CreateTestNode(models.KindAutomated, testutil.WithID("auto")),
		testutil.CreateTestNode(models.KindEnd, testutil.WithID("e")),
	)

	executor := newTestExecutor(dispatcher)
	trace := executor.Execute(context.Background(), workflow.Order(graph), workflow.Options{})

	require.False(t, trace.OK)
	require.Len(t, trace.Steps, 2)
	assert.Equal(t, models.NodeStatusError, trace.Steps[1].Status)
	assert.Equal(t, []string{"Missing email 'to' or 'subject'."}, trace.Errors)
	assert.Nil(t, trace.PendingTask)
	assert.Nil(t, trace.ApprovalReview)
}

func TestExecute_StepLabelPrefersConfigTitle(t *testing.T) {
	t.Parallel()

	graph := testutil.Chain(
		testutil.CreateTestNode(models.KindStart, testutil.WithID("s"), testutil.WithLabel("Start"), testutil.WithConfig(&models.StartConfig{Title: "Kickoff"})),
		testutil.CreateTestNode(models.KindEnd, testutil.WithID("e"), testutil.WithLabel("End"), testutil.WithConfig(&models.EndConfig{EndMessage: "Done"})),
	)

	executor := newTestExecutor(&stubDispatcher{})
	trace := executor.Execute(context.Background(), workflow.Order(graph), workflow.Options{})

	require.Len(t, trace.Steps, 2)
	assert.Equal(t, "Kickoff", trace.Steps[0].NodeLabel)
	assert.Equal(t, "End", trace.Steps[1].NodeLabel)
}
