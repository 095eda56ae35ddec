package measure

import (
	"testing"
)

func TestRunnerDefaultsToSuccess(t *testing.T) {
	runner := NewRunner("test_measure", nil)
	result := runner.Result()

	if result.Measure != "test_measure" {
		t.Errorf("expected measure name 'test_measure', got %q", result.Measure)
	}
	if result.Outcome != OutcomeSuccess {
		t.Errorf("expected Success outcome by default, got %s", result.Outcome)
	}
	if result.StartedAt.IsZero() || result.FinishedAt.IsZero() {
		t.Error("expected start and finish timestamps to be set")
	}
}

func TestRunnerPreservesMessageOrder(t *testing.T) {
	runner := NewRunner("test_measure", nil)

	runner.RegisterInfo("first %d", 1)
	runner.RegisterInfo("second %d", 2)
	runner.RegisterInfo("third %d", 3)

	result := runner.Result()
	want := []string{"first 1", "second 2", "third 3"}
	if len(result.Info) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(result.Info))
	}
	for i, msg := range want {
		if result.Info[i] != msg {
			t.Errorf("message %d = %q, want %q", i, result.Info[i], msg)
		}
	}
}

func TestRunnerConditions(t *testing.T) {
	runner := NewRunner("test_measure", nil)

	runner.RegisterInitialCondition("started with %d objects", 2)
	runner.RegisterFinalCondition("ended with %d objects", 5)

	result := runner.Result()
	if result.InitialCondition != "started with 2 objects" {
		t.Errorf("unexpected initial condition: %q", result.InitialCondition)
	}
	if result.FinalCondition != "ended with 5 objects" {
		t.Errorf("unexpected final condition: %q", result.FinalCondition)
	}
}

func TestRunnerErrorSetsFailure(t *testing.T) {
	runner := NewRunner("test_measure", nil)

	runner.RegisterError("something broke: %s", "detail")

	result := runner.Result()
	if result.Outcome != OutcomeFailure {
		t.Errorf("expected Failure outcome, got %s", result.Outcome)
	}
	if len(result.Errors) != 1 || result.Errors[0] != "something broke: detail" {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
}

func TestRunnerNotApplicable(t *testing.T) {
	t.Run("marks a clean run", func(t *testing.T) {
		runner := NewRunner("test_measure", nil)
		runner.RegisterAsNotApplicable("nothing to do")

		if runner.Result().Outcome != OutcomeNotApplicable {
			t.Errorf("expected NotApplicable, got %s", runner.Result().Outcome)
		}
	})

	t.Run("does not mask a failure", func(t *testing.T) {
		runner := NewRunner("test_measure", nil)
		runner.RegisterError("broken")
		runner.RegisterAsNotApplicable("nothing to do")

		if runner.Result().Outcome != OutcomeFailure {
			t.Errorf("failed run must stay failed, got %s", runner.Result().Outcome)
		}
	})
}

func TestRunnerCounts(t *testing.T) {
	runner := NewRunner("test_measure", nil)

	runner.RecordInitialCount(4)
	runner.RecordRemoved(4)
	runner.RecordCreated(CreatedRecord{Name: "rec1", Category: "Construction"})
	runner.RecordCreated(CreatedRecord{Name: "rec2", Category: "Salvage"})

	result := runner.Result()
	if result.InitialRecordCount != 4 {
		t.Errorf("expected initial count 4, got %d", result.InitialRecordCount)
	}
	if result.RecordsRemoved != 4 {
		t.Errorf("expected removed 4, got %d", result.RecordsRemoved)
	}
	if len(result.RecordsCreated) != 2 {
		t.Errorf("expected 2 created records, got %d", len(result.RecordsCreated))
	}
}

func TestRegistry(t *testing.T) {
	// The lifecycle measure self-registers at init
	m, err := Get("add_lifecycle_costs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != "add_lifecycle_costs" {
		t.Errorf("unexpected measure name: %s", m.Name())
	}

	if _, err := Get("no_such_measure"); err == nil {
		t.Error("expected an error for an unknown measure")
	}
	if _, err := Get(""); err == nil {
		t.Error("expected an error for an empty measure name")
	}

	names := Names()
	found := false
	for _, name := range names {
		if name == "add_lifecycle_costs" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() should include add_lifecycle_costs: %v", names)
	}
}
