package service

import (
	"context"
	"io"
	"log/slog"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo"
)

// notifierRecorder captures emitted events in order so tests can assert
// on the notification contract without a real sink.
type notifierRecorder struct {
	events []recordedEvent
}

type recordedEvent struct {
	RecipientId string
	Kind        string
	Message     string
}

func (r *notifierRecorder) Notify(_ context.Context, recipientId string, kind string, message string) {
	r.events = append(r.events, recordedEvent{RecipientId: recipientId, Kind: kind, Message: message})
}

func (r *notifierRecorder) reset() {
	r.events = nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJobFixture() (*JobService, *notifierRecorder, *repo.Repositories) {
	repos := repo.NewMemoryRepositories()
	recorder := &notifierRecorder{}

	return NewJobService(repos, recorder, nil), recorder, repos
}

func postJob(ctx context.Context, svc *JobService, employerId string) (*entity.JobOutputModel, error) {
	return svc.CreateJob(ctx, &entity.CreateJobInput{
		Title:       "Test Cleaning Job",
		Description: "A job used by the tests",
		Pay:         500,
		Community:   "Cancún",
		Schedule:    "2025-10-01",
		EmployerId:  employerId,
	})
}
