package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/medxhealth/medx/internal/models"
	"github.com/medxhealth/medx/internal/repositories/memory"
	"github.com/medxhealth/medx/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newJobFixture(t *testing.T) (JobService, *memory.JobRepo, *memory.HospitalRepo, Actor) {
	t.Helper()
	jobs := memory.NewJobRepo()
	hospitals := memory.NewHospitalRepo()

	h := &models.Hospital{Name: "City General", Address: "12 Main Street, NY"}
	require.NoError(t, hospitals.Insert(context.Background(), h))

	actor := Actor{
		UserID:     primitive.NewObjectID(),
		Role:       models.RoleHospital,
		HospitalID: h.ID,
	}
	return NewJobService(jobs, hospitals, nil), jobs, hospitals, actor
}

func validJobInput() CreateJobInput {
	return CreateJobInput{
		Title:       "ICU Nurse",
		Description: "Night shift ICU nurse, 2+ years experience",
		Type:        models.JobFullTime,
		Location:    "NY",
		SalaryRange: "$70k-$90k",
	}
}

func TestCreateJob(t *testing.T) {
	svc, _, _, actor := newJobFixture(t)

	job, err := svc.Create(context.Background(), actor, validJobInput())
	require.NoError(t, err)
	assert.True(t, job.IsActive)
	assert.Equal(t, actor.HospitalID, job.HospitalID)
	assert.Equal(t, actor.UserID, job.CreatedByUserID)
	assert.False(t, job.ID.IsZero())
}

func TestCreateJobValidation(t *testing.T) {
	svc, _, _, actor := newJobFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateJobInput)
	}{
		{"short title", func(in *CreateJobInput) { in.Title = "ab" }},
		{"short description", func(in *CreateJobInput) { in.Description = "too short" }},
		{"bad type", func(in *CreateJobInput) { in.Type = "Freelance" }},
		{"short location", func(in *CreateJobInput) { in.Location = "N" }},
		{"empty salary", func(in *CreateJobInput) { in.SalaryRange = "  " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validJobInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, actor, in)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	svc, _, _, owner := newJobFixture(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, owner, validJobInput())
	require.NoError(t, err)

	title := "Senior ICU Nurse"

	// another hospital may not touch it
	stranger := Actor{UserID: primitive.NewObjectID(), Role: models.RoleHospital, HospitalID: primitive.NewObjectID()}
	_, err = svc.Update(ctx, stranger, job.ID.Hex(), models.JobUpdate{Title: &title})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	err = svc.Delete(ctx, stranger, job.ID.Hex())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	// admin may
	admin := Actor{UserID: primitive.NewObjectID(), Role: models.RoleAdmin}
	updated, err := svc.Update(ctx, admin, job.ID.Hex(), models.JobUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Senior ICU Nurse", updated.Title)

	// and so may the owner
	inactive := false
	updated, err = svc.Update(ctx, owner, job.ID.Hex(), models.JobUpdate{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Senior ICU Nurse", updated.Title, "partial update must not clobber other fields")
}

func TestUpdateJobValidation(t *testing.T) {
	svc, _, _, owner := newJobFixture(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, owner, validJobInput())
	require.NoError(t, err)

	short := "ab"
	_, err = svc.Update(ctx, owner, job.ID.Hex(), models.JobUpdate{Title: &short})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestJobNotFound(t *testing.T) {
	svc, _, _, owner := newJobFixture(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, primitive.NewObjectID().Hex())
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = svc.Get(ctx, "not-a-hex-id")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	title := "Anything"
	_, err = svc.Update(ctx, owner, primitive.NewObjectID().Hex(), models.JobUpdate{Title: &title})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	err = svc.Delete(ctx, owner, primitive.NewObjectID().Hex())
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestListPagination(t *testing.T) {
	svc, _, _, owner := newJobFixture(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		in := validJobInput()
		in.Title = fmt.Sprintf("ICU Nurse %02d", i)
		_, err := svc.Create(ctx, owner, in)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, list.Jobs, 10)
	assert.Equal(t, 2, list.Pagination.Page)
	assert.Equal(t, 10, list.Pagination.Limit)
	assert.Equal(t, int64(25), list.Pagination.Total)
	assert.Equal(t, int64(3), list.Pagination.Pages)

	last, err := svc.List(ctx, 3, 10)
	require.NoError(t, err)
	assert.Len(t, last.Jobs, 5)

	// out-of-range inputs fall back to defaults
	defaults, err := svc.List(ctx, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.Pagination.Page)
	assert.Equal(t, 10, defaults.Pagination.Limit)
}

func TestListExcludesInactive(t *testing.T) {
	svc, _, _, owner := newJobFixture(t)
	ctx := context.Background()

	active, err := svc.Create(ctx, owner, validJobInput())
	require.NoError(t, err)

	in := validJobInput()
	in.Title = "Hidden Posting"
	hidden, err := svc.Create(ctx, owner, in)
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, owner, hidden.ID.Hex(), models.JobUpdate{IsActive: &inactive})
	require.NoError(t, err)

	list, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Jobs, 1)
	assert.Equal(t, active.ID, list.Jobs[0].ID)
	assert.Equal(t, int64(1), list.Pagination.Total)

	// the inactive posting stays reachable by direct id
	detail, err := svc.Get(ctx, hidden.ID.Hex())
	require.NoError(t, err)
	assert.False(t, detail.IsActive)
}

func TestListJoinsHospitalSummary(t *testing.T) {
	svc, _, _, owner := newJobFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, validJobInput())
	require.NoError(t, err)

	list, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Jobs, 1)
	require.NotNil(t, list.Jobs[0].Hospital)
	assert.Equal(t, "City General", list.Jobs[0].Hospital.Name)
	assert.Equal(t, "12 Main Street, NY", list.Jobs[0].Hospital.Address)
}
