package services

import (
	"context"
	"testing"
	"time"

	"github.com/medxhealth/medx/internal/models"
	"github.com/medxhealth/medx/internal/repositories/memory"
	"github.com/medxhealth/medx/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type appFixture struct {
	svc  ApplicationService
	apps *memory.ApplicationRepo
	jobs *memory.JobRepo

	hospital Actor
	job      *models.Job
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	apps := memory.NewApplicationRepo()
	jobs := memory.NewJobRepo()

	hospital := Actor{
		UserID:     primitive.NewObjectID(),
		Role:       models.RoleHospital,
		HospitalID: primitive.NewObjectID(),
	}
	job := &models.Job{
		Title:           "ICU Nurse",
		Description:     "Night shift ICU nurse, 2+ years experience",
		Type:            models.JobFullTime,
		Location:        "NY",
		SalaryRange:     "$70k-$90k",
		HospitalID:      hospital.HospitalID,
		CreatedByUserID: hospital.UserID,
		IsActive:        true,
	}
	require.NoError(t, jobs.Insert(context.Background(), job))

	return &appFixture{
		svc:      NewApplicationService(apps, jobs),
		apps:     apps,
		jobs:     jobs,
		hospital: hospital,
		job:      job,
	}
}

func validSubmitInput(jobID string) SubmitApplicationInput {
	return SubmitApplicationInput{
		JobID:         jobID,
		ApplicantName: "Jamie Park",
		Email:         "jamie@example.com",
		Phone:         "5559876543",
		ResumePath:    "/uploads/1700000000-jamie.pdf",
	}
}

func TestSubmitApplication(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validSubmitInput(f.job.ID.Hex()))
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, app.Status)
	assert.Equal(t, f.job.ID, app.JobID)
	assert.False(t, app.AppliedAt.IsZero())
}

func TestSubmitValidation(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*SubmitApplicationInput)
	}{
		{"short name", func(in *SubmitApplicationInput) { in.ApplicantName = "J" }},
		{"bad email", func(in *SubmitApplicationInput) { in.Email = "nope" }},
		{"short phone", func(in *SubmitApplicationInput) { in.Phone = "555" }},
		{"missing resume", func(in *SubmitApplicationInput) { in.ResumePath = "" }},
		{"missing job id", func(in *SubmitApplicationInput) { in.JobID = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSubmitInput(f.job.ID.Hex())
			tc.mutate(&in)
			_, err := f.svc.Submit(ctx, in)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestSubmitAgainstMissingOrInactiveJob(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, validSubmitInput(primitive.NewObjectID().Hex()))
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	require.NoError(t, f.jobs.Update(ctx, f.job.ID, models.JobUpdate{IsActive: boolPtr(false)}))
	_, err = f.svc.Submit(ctx, validSubmitInput(f.job.ID.Hex()))
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	// neither attempt may leave a record behind
	all, err := f.apps.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListScopedToHospital(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	// a second hospital with its own job and application
	otherHospital := primitive.NewObjectID()
	otherJob := &models.Job{Title: "Radiologist", HospitalID: otherHospital, IsActive: true}
	require.NoError(t, f.jobs.Insert(ctx, otherJob))

	first, err := f.svc.Submit(ctx, validSubmitInput(f.job.ID.Hex()))
	require.NoError(t, err)

	in := validSubmitInput(otherJob.ID.Hex())
	in.ApplicantName = "Robin Cho"
	_, err = f.svc.Submit(ctx, in)
	require.NoError(t, err)

	// hospital sees only applications against its own jobs
	mine, err := f.svc.List(ctx, f.hospital, "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, "ICU Nurse", mine[0].JobTitle)

	// admin sees everything
	admin := Actor{UserID: primitive.NewObjectID(), Role: models.RoleAdmin}
	all, err := f.svc.List(ctx, admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// explicit filter on a foreign job is forbidden
	_, err = f.svc.List(ctx, f.hospital, otherJob.ID.Hex())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestListNewestFirst(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	old := &models.Application{
		JobID:         f.job.ID,
		ApplicantName: "Early Bird",
		Email:         "early@example.com",
		Phone:         "5550000001",
		ResumePath:    "/uploads/early.pdf",
		AppliedAt:     time.Now().UTC().Add(-time.Hour),
		Status:        models.StatusApplied,
	}
	require.NoError(t, f.apps.Insert(ctx, old))

	recent, err := f.svc.Submit(ctx, validSubmitInput(f.job.ID.Hex()))
	require.NoError(t, err)

	list, err := f.svc.List(ctx, f.hospital, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, recent.ID, list[0].ID)
	assert.Equal(t, old.ID, list[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, validSubmitInput(f.job.ID.Hex()))
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, f.hospital, app.ID.Hex(), models.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, updated.Status)

	// transitions are unconstrained
	updated, err = f.svc.UpdateStatus(ctx, f.hospital, app.ID.Hex(), models.StatusApplied)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, updated.Status)

	_, err = f.svc.UpdateStatus(ctx, f.hospital, app.ID.Hex(), "archived")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	stranger := Actor{UserID: primitive.NewObjectID(), Role: models.RoleHospital, HospitalID: primitive.NewObjectID()}
	_, err = f.svc.UpdateStatus(ctx, stranger, app.ID.Hex(), models.StatusRejected)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	admin := Actor{UserID: primitive.NewObjectID(), Role: models.RoleAdmin}
	updated, err = f.svc.UpdateStatus(ctx, admin, app.ID.Hex(), models.StatusHired)
	require.NoError(t, err)
	assert.Equal(t, models.StatusHired, updated.Status)

	_, err = f.svc.UpdateStatus(ctx, admin, primitive.NewObjectID().Hex(), models.StatusHired)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func boolPtr(b bool) *bool { return &b }
