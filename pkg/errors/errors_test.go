package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestJobError_ClassMatching(t *testing.T) {
	cause := stderrors.New("boom")

	input := Input("read employees", cause)
	if !stderrors.Is(input, ErrInput) {
		t.Error("input error should match ErrInput")
	}
	if stderrors.Is(input, ErrPersistence) {
		t.Error("input error should not match ErrPersistence")
	}

	persistence := Persistence("upsert rates", cause)
	if !stderrors.Is(persistence, ErrPersistence) {
		t.Error("persistence error should match ErrPersistence")
	}
	if stderrors.Is(persistence, ErrInput) {
		t.Error("persistence error should not match ErrInput")
	}
}

func TestJobError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Persistence("connect database", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}

	var jobErr *JobError
	if !stderrors.As(err, &jobErr) {
		t.Fatal("errors.As should find the JobError")
	}
	if jobErr.Stage != "connect database" {
		t.Errorf("Stage = %q, want %q", jobErr.Stage, "connect database")
	}
}

func TestJobError_ClassSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("run failed: %w", Input("read timesheets", stderrors.New("no such file")))

	if !stderrors.Is(err, ErrInput) {
		t.Error("class should survive further wrapping")
	}
	if IsRetriable(err) {
		t.Error("input errors are not retriable")
	}
}

func TestIsRetriable(t *testing.T) {
	if !IsRetriable(Persistence("upsert rates", stderrors.New("timeout"))) {
		t.Error("persistence errors are retriable")
	}
	if IsRetriable(Input("read employees", stderrors.New("bad row"))) {
		t.Error("input errors are not retriable")
	}
	if IsRetriable(stderrors.New("unclassified")) {
		t.Error("unclassified errors are not retriable")
	}
}

func TestInputf(t *testing.T) {
	err := Inputf("read employees", "line %d: bad salary", 7)
	want := "input: read employees: line 7: bad salary"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
