package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Judgement lines of the verification transcript
const (
	HealthyJudgement   = "Seeding appears successful (Basic counts > 0)."
	UnhealthyJudgement = "Seeding might have failed or data is missing."
	countsHeader       = "--- Database Counts ---"
)

type KindCount struct {
	Kind  entity.Kind
	Count int64
}

// VerificationReport is the outcome of one audit. Err is set when a read
// failed; the transcript then ends with the failure line.
type VerificationReport struct {
	Driver  string
	Counts  []KindCount
	Healthy bool
	Err     error
	Lines   []string
}

// Count returns the audited count of kind
func (r *VerificationReport) Count(kind entity.Kind) (int64, bool) {
	for _, c := range r.Counts {
		if c.Kind == kind {
			return c.Count, true
		}
	}
	return 0, false
}

// Transcript is the console text, one line per entry
func (r *VerificationReport) Transcript() string {
	if len(r.Lines) == 0 {
		return ""
	}
	return strings.Join(r.Lines, "\n") + "\n"
}

func (r *VerificationReport) logf(format string, args ...interface{}) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

func (r *VerificationReport) fail(err error) {
	r.Err = err
	r.Healthy = false
	r.logf("Verification failed: %s", err.Error())
}

// FailedReport is the transcript of a run that could not reach the store at all
func FailedReport(err error) *VerificationReport {
	report := &VerificationReport{}
	report.fail(err)
	return report
}

type VerifyUsecase interface {
	// Verify counts every kind. Store errors end up in the report, never returned.
	Verify(ctx context.Context) *VerificationReport
	// Persist hands the transcript to every sink and joins their errors
	Persist(ctx context.Context, report *VerificationReport) error
}

type verifyUsecase struct {
	store repository.Store
	log   *logrus.Logger
	sinks []repository.ReportSink
}

func NewVerifyUsecase(store repository.Store, log *logrus.Logger, sinks ...repository.ReportSink) VerifyUsecase {
	return &verifyUsecase{
		store: store,
		log:   log,
		sinks: sinks,
	}
}

func (u *verifyUsecase) Verify(ctx context.Context) *VerificationReport {
	report := &VerificationReport{Driver: u.store.Driver()}
	report.logf("Connected to %s for verification", report.Driver)

	report.logf("")
	report.logf(countsHeader)
	for _, kind := range entity.AuditedKinds {
		n, err := u.store.Count(ctx, kind)
		if err != nil {
			u.log.Warnf("Failed to count %s: %+v", kind, err)
			report.fail(fmt.Errorf("count %s: %w", kind.Label(), err))
			return report
		}
		report.Counts = append(report.Counts, KindCount{Kind: kind, Count: n})
		report.logf("%s: %d", kind.Label(), n)
	}

	report.Healthy = isHealthy(report)
	report.logf("")
	if report.Healthy {
		report.logf(HealthyJudgement)
	} else {
		report.logf(UnhealthyJudgement)
	}
	return report
}

// isHealthy is a sanity check only: users, doctors and appointments all exist.
// References between kinds are not checked.
func isHealthy(report *VerificationReport) bool {
	for _, kind := range []entity.Kind{entity.KindUser, entity.KindDoctor, entity.KindAppointment} {
		n, ok := report.Count(kind)
		if !ok || n == 0 {
			return false
		}
	}
	return true
}

func (u *verifyUsecase) Persist(ctx context.Context, report *VerificationReport) error {
	return PersistReport(ctx, u.log, report, u.sinks...)
}

// PersistReport writes the transcript to every sink, continuing past failures
func PersistReport(ctx context.Context, log *logrus.Logger, report *VerificationReport, sinks ...repository.ReportSink) error {
	content := []byte(report.Transcript())

	var errs []error
	for _, sink := range sinks {
		if err := sink.Save(ctx, content); err != nil {
			log.Warnf("Failed to save verification report to %s: %+v", sink.Name(), err)
			errs = append(errs, err)
			continue
		}
		log.WithField("sink", sink.Name()).Info("Verification report saved")
	}
	return errors.Join(errs...)
}
