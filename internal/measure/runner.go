package measure

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Outcome is the three-state result of a measure run. NotApplicable is
// distinct from both Success and Failure: the run completed but had nothing
// to do.
type Outcome string

const (
	// OutcomeSuccess means the measure mutated the model and finished
	OutcomeSuccess Outcome = "Success"
	// OutcomeNotApplicable means nothing was requested and nothing changed
	OutcomeNotApplicable Outcome = "NotApplicable"
	// OutcomeFailure means the run aborted with no mutation
	OutcomeFailure Outcome = "Failure"
)

// CreatedRecord summarizes one cost record a run created, for reporting
type CreatedRecord struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	CostPerM2         float64 `json:"costPerM2"`
	RepeatPeriodYears int     `json:"repeatPeriodYears"`
	YearsFromStart    int     `json:"yearsFromStart"`
}

// RunResult accumulates everything a run reported
type RunResult struct {
	Measure            string          `json:"measure"`
	Outcome            Outcome         `json:"outcome"`
	InitialCondition   string          `json:"initialCondition,omitempty"`
	FinalCondition     string          `json:"finalCondition,omitempty"`
	Info               []string        `json:"info,omitempty"`
	Errors             []string        `json:"errors,omitempty"`
	InitialRecordCount int             `json:"initialRecordCount"`
	RecordsRemoved     int             `json:"recordsRemoved"`
	RecordsCreated     []CreatedRecord `json:"recordsCreated,omitempty"`
	StartedAt          time.Time       `json:"startedAt"`
	FinishedAt         time.Time       `json:"finishedAt"`
}

// Runner is the reporting facility handed to a measure. Every registered
// message is kept in order on the result and mirrored to the structured log.
type Runner struct {
	log    *zap.Logger
	result RunResult
}

// NewRunner creates a runner for one measure invocation. A nil logger
// disables log mirroring.
func NewRunner(measureName string, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		log: log.With(zap.String("measure", measureName)),
		result: RunResult{
			Measure:   measureName,
			Outcome:   OutcomeSuccess,
			StartedAt: time.Now(),
		},
	}
}

// RegisterInfo reports an informational message
func (r *Runner) RegisterInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.result.Info = append(r.result.Info, msg)
	r.log.Info(msg, zap.String("kind", "info"))
}

// RegisterInitialCondition reports the model state before mutation
func (r *Runner) RegisterInitialCondition(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.result.InitialCondition = msg
	r.log.Info(msg, zap.String("kind", "initial_condition"))
}

// RegisterFinalCondition reports the model state after mutation
func (r *Runner) RegisterFinalCondition(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.result.FinalCondition = msg
	r.log.Info(msg, zap.String("kind", "final_condition"))
}

// RegisterError reports a fatal error and marks the run as failed
func (r *Runner) RegisterError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.result.Errors = append(r.result.Errors, msg)
	r.result.Outcome = OutcomeFailure
	r.log.Error(msg, zap.String("kind", "error"))
}

// RegisterAsNotApplicable marks the run as a no-op with an explanatory message
func (r *Runner) RegisterAsNotApplicable(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.result.Info = append(r.result.Info, msg)
	// A failed run stays failed
	if r.result.Outcome != OutcomeFailure {
		r.result.Outcome = OutcomeNotApplicable
	}
	r.log.Info(msg, zap.String("kind", "not_applicable"))
}

// RecordInitialCount notes how many cost records existed before the run
func (r *Runner) RecordInitialCount(n int) {
	r.result.InitialRecordCount = n
}

// RecordRemoved notes how many cost records the run deleted
func (r *Runner) RecordRemoved(n int) {
	r.result.RecordsRemoved = n
}

// RecordCreated notes one cost record the run created
func (r *Runner) RecordCreated(rec CreatedRecord) {
	r.result.RecordsCreated = append(r.result.RecordsCreated, rec)
}

// Result finalizes and returns the accumulated run result
func (r *Runner) Result() *RunResult {
	if r.result.FinishedAt.IsZero() {
		r.result.FinishedAt = time.Now()
	}
	return &r.result
}
