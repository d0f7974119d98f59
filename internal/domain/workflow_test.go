package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "loxcheck.dev/pkg/loxcheck/internal/adapter/mocks"
	controllermocks "loxcheck.dev/pkg/loxcheck/internal/controller/mocks"
	"loxcheck.dev/pkg/loxcheck/internal/domain"
	domainmocks "loxcheck.dev/pkg/loxcheck/internal/domain/mocks"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

type workflowMocks struct {
	fs           *adaptermocks.MockSourceFSAdapter
	reports      *adaptermocks.MockReportStore
	ui           *controllermocks.MockUI
	finder       *domainmocks.MockScriptFinder
	orchestrator *domainmocks.MockOrchestrator
}

func newWorkflowUnderTest(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		fs:           adaptermocks.NewMockSourceFSAdapter(t),
		reports:      adaptermocks.NewMockReportStore(t),
		ui:           controllermocks.NewMockUI(t),
		finder:       domainmocks.NewMockScriptFinder(t),
		orchestrator: domainmocks.NewMockOrchestrator(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.reports, mocks.ui, mocks.finder, mocks.orchestrator)

	return wf, mocks
}

func TestWorkflow_Run_TalliesVerdicts(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	roots := []m.Path{"suite"}
	scripts := []m.Path{"suite/a.lox", "suite/b.lox", "suite/c.lox"}

	mocks.finder.EXPECT().Find(mock.Anything, roots, []string(nil)).
		Return(domain.DiscoveryResult{Scripts: scripts}, nil)

	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("suite/a.lox")).
		Return(m.Verdict{Script: "suite/a.lox", Passed: true}, nil)
	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("suite/b.lox")).
		Return(m.Verdict{Script: "suite/b.lox", Passed: false}, nil)
	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("suite/c.lox")).
		Return(m.Verdict{Script: "suite/c.lox", Passed: true}, nil)

	var displayed []m.Path

	mocks.ui.EXPECT().DisplayVerdict(mock.Anything, mock.Anything).
		Run(func(_ context.Context, verdict m.Verdict) {
			displayed = append(displayed, verdict.Script)
		}).Times(3)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, m.Tally{Total: 3, Passed: 2, Failed: 1}, mock.Anything).Once()

	tally, err := wf.Run(context.Background(), domain.RunArgs{Paths: roots})
	require.NoError(t, err)

	assert.Equal(t, m.Tally{Total: 3, Passed: 2, Failed: 1}, tally)
	assert.Equal(t, scripts, displayed)
	mocks.reports.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Run_NoPaths(t *testing.T) {
	wf, _ := newWorkflowUnderTest(t)

	_, err := wf.Run(context.Background(), domain.RunArgs{})

	var usageErr *domain.UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestWorkflow_Run_EmptyDiscovery(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.finder.EXPECT().Find(mock.Anything, mock.Anything, mock.Anything).Return(domain.DiscoveryResult{}, nil)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, m.Tally{}, mock.Anything).Once()

	tally, err := wf.Run(context.Background(), domain.RunArgs{Paths: []m.Path{"empty"}})
	require.NoError(t, err)
	assert.Equal(t, m.Tally{}, tally)
}

func TestWorkflow_Run_DiscoveryFailuresAreReported(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	failure := &domain.DiscoveryError{Path: "missing", Err: errors.New("no such file or directory")}

	mocks.finder.EXPECT().Find(mock.Anything, mock.Anything, mock.Anything).Return(domain.DiscoveryResult{
		Scripts:  []m.Path{"ok.lox"},
		Failures: []*domain.DiscoveryError{failure},
	}, nil)
	mocks.ui.EXPECT().DisplayDiscoveryError(mock.Anything, failure).Once()
	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("ok.lox")).
		Return(m.Verdict{Script: "ok.lox", Passed: true}, nil)
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, mock.Anything).Once()

	tally, err := wf.Run(context.Background(), domain.RunArgs{Paths: []m.Path{"missing", "ok.lox"}})
	require.NoError(t, err)

	// Unreadable roots are reported but never counted.
	assert.Equal(t, m.Tally{Total: 1, Passed: 1}, tally)
}

func TestWorkflow_Run_InvalidExclude(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.finder.EXPECT().Find(mock.Anything, mock.Anything, []string{"("}).
		Return(domain.DiscoveryResult{}, errors.New(`invalid exclude pattern "("`))

	_, err := wf.Run(context.Background(), domain.RunArgs{Paths: []m.Path{"."}, Exclude: []string{"("}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discover scripts")
}

func TestWorkflow_Run_StopsOnCancellation(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.finder.EXPECT().Find(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DiscoveryResult{Scripts: []m.Path{"a.lox", "b.lox"}}, nil)
	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("a.lox")).
		Return(m.Verdict{Script: "a.lox"}, nil)
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything, mock.Anything).Once()
	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("b.lox")).
		Return(m.Verdict{}, context.Canceled)

	tally, err := wf.Run(context.Background(), domain.RunArgs{Paths: []m.Path{"."}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, m.Tally{Total: 1, Failed: 1}, tally)
	mocks.ui.AssertNotCalled(t, "DisplaySummary", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Run_SavesReport(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.finder.EXPECT().Find(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DiscoveryResult{Scripts: []m.Path{"a.lox", "b.lox"}}, nil)
	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("a.lox")).
		Return(m.Verdict{Script: "a.lox", Passed: true}, nil)
	mocks.orchestrator.EXPECT().RunScript(mock.Anything, m.Path("b.lox")).
		Return(m.Verdict{
			Script: "b.lox",
			Result: m.ExecutionResult{ExitCode: 70},
			Diagnostics: []m.Diagnostic{
				{Kind: m.LineMismatch, Line: 0, Expected: "1", Actual: "2"},
				{Kind: m.LengthMismatch, Expected: "1", Actual: "2"},
			},
		}, nil)
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything, mock.Anything).Times(2)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, mock.Anything).Once()

	var saved m.RunReport

	mocks.reports.EXPECT().SaveReport(mock.Anything, m.Path("out/report.yaml"), mock.Anything).
		Run(func(_ context.Context, _ m.Path, report m.RunReport) {
			saved = report
		}).Return(nil)

	_, err := wf.Run(context.Background(), domain.RunArgs{
		Paths:       []m.Path{"."},
		Report:      "out/report.yaml",
		Interpreter: "jlox",
	})
	require.NoError(t, err)

	assert.Equal(t, "jlox", saved.Interpreter)
	assert.Equal(t, 2, saved.Total)
	assert.Equal(t, 1, saved.Failed)
	require.Len(t, saved.Scripts, 2)
	assert.Equal(t, "b.lox", saved.Scripts[1].Path)
	assert.Equal(t, 70, saved.Scripts[1].ExitCode)
	assert.Equal(t, []string{
		`line 0: expected "1", got "2"`,
		"expected 1 lines, got 2",
	}, saved.Scripts[1].Diagnostics)
}

func TestWorkflow_Run_ReportFailure(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.finder.EXPECT().Find(mock.Anything, mock.Anything, mock.Anything).Return(domain.DiscoveryResult{}, nil)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, mock.Anything).Once()
	mocks.reports.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("read-only"))

	_, err := wf.Run(context.Background(), domain.RunArgs{Paths: []m.Path{"."}, Report: "r.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save report")
}

func TestWorkflow_List(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.finder.EXPECT().Find(mock.Anything, []m.Path{"suite"}, []string{"skip"}).
		Return(domain.DiscoveryResult{Scripts: []m.Path{"suite/a.lox", "suite/bad.lox", "suite/gone.lox"}}, nil)
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("suite/a.lox")).
		Return([]byte("print 1; // expect: 1\nx; // expect runtime error: Boom.\n"), nil)
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("suite/bad.lox")).
		Return([]byte("class Error {}\n"), nil)
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("suite/gone.lox")).
		Return(nil, errors.New("removed"))

	var listed []m.Script

	mocks.ui.EXPECT().DisplayScripts(mock.Anything, mock.Anything).
		Run(func(_ context.Context, scripts []m.Script) {
			listed = scripts
		}).Once()

	err := wf.List(context.Background(), domain.ListArgs{Paths: []m.Path{"suite"}, Exclude: []string{"skip"}})
	require.NoError(t, err)

	require.Len(t, listed, 3)
	assert.NoError(t, listed[0].Err)
	assert.Equal(t, []string{"1"}, listed[0].Expectation.ExpectedLines)
	assert.Equal(t, "Boom", listed[0].Expectation.RuntimeError)

	var malformed *domain.MalformedExpectationError
	assert.True(t, errors.As(listed[1].Err, &malformed))
	assert.Error(t, listed[2].Err)
}
