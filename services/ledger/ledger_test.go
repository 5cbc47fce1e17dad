package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/errs"
	"coursehub/models"
	"coursehub/testutil"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestEnrollFreeCourseOnFreeTier(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil, WithClock(func() time.Time { return fixedNow }))
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")

	e, err := l.Enroll(context.Background(), user, course.ID)
	require.NoError(t, err)

	assert.NotZero(t, e.ID)
	assert.Equal(t, user.ID, e.UserID)
	assert.Equal(t, course.ID, e.CourseID)
	assert.Equal(t, models.EnrollmentActive, e.Status)
	assert.Equal(t, 0, e.Progress)
	assert.True(t, e.EnrolledAt.Equal(fixedNow))
}

func TestEnrollPaidCourseOnFreeTierRequiresPayment(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Bootcamp", 49, "8 weeks")

	_, err := l.Enroll(context.Background(), user, course.ID)
	assert.ErrorIs(t, err, errs.ErrPaymentRequired)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnrollPaidCourseWithPaidTierOrUnlimited(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	course := testutil.CreateCourse(t, db, "Bootcamp", 49, "8 weeks")

	standard := testutil.CreateUser(t, db, "std", models.TierStandard, false)
	_, err := l.Enroll(context.Background(), standard, course.ID)
	assert.NoError(t, err)

	unlimited := testutil.CreateUser(t, db, "unl", models.TierFree, true)
	_, err = l.Enroll(context.Background(), unlimited, course.ID)
	assert.NoError(t, err)
}

func TestEnrollMissingCourse(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierPremium, false)

	_, err := l.Enroll(context.Background(), user, 404)
	assert.ErrorIs(t, err, errs.ErrCourseNotFound)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestEnrollTwiceConflicts(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")

	_, err := l.Enroll(context.Background(), user, course.ID)
	require.NoError(t, err)

	_, err = l.Enroll(context.Background(), user, course.ID)
	assert.ErrorIs(t, err, errs.ErrAlreadyEnrolled)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))

	_, err = l.Create(context.Background(), user.ID, course.ID)
	assert.ErrorIs(t, err, errs.ErrAlreadyEnrolled)
}

func TestConcurrentCreateKeepsPairUnique(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")

	// Separate ledgers do not share a lock, so only the transaction and the unique
	// index stand between the writers.
	ledgers := []*Ledger{New(db, nil), New(db, nil), New(db, nil)}

	const attempts = 24
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(l *Ledger) {
			defer wg.Done()
			_, err := l.Create(context.Background(), user.ID, course.ID)
			results <- err
		}(ledgers[i%len(ledgers)])
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrAlreadyEnrolled)
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListByUserJoinsCourseAndIsStable(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	alice := testutil.CreateUser(t, db, "alice", models.TierPremium, false)
	bob := testutil.CreateUser(t, db, "bob", models.TierPremium, false)
	c1 := testutil.CreateCourse(t, db, "One", 10, "1 week")
	c2 := testutil.CreateCourse(t, db, "Two", 0, "3 hours")

	for _, c := range []*models.Course{c1, c2} {
		_, err := l.Create(context.Background(), alice.ID, c.ID)
		require.NoError(t, err)
	}
	_, err := l.Create(context.Background(), bob.ID, c1.ID)
	require.NoError(t, err)

	first, err := l.ListByUser(context.Background(), alice.ID)
	require.NoError(t, err)
	second, err := l.ListByUser(context.Background(), alice.ID)
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.ElementsMatch(t, first, second)
	for _, e := range first {
		assert.Equal(t, alice.ID, e.UserID)
		require.NotNil(t, e.Course)
		require.NotNil(t, e.Course.Instructor)
		require.NotNil(t, e.Course.Category)
		assert.Equal(t, e.CourseID, e.Course.ID)
	}

	empty, err := l.ListByUser(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateProgressBounds(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")
	e, err := l.Create(context.Background(), user.ID, course.ID)
	require.NoError(t, err)

	for _, bad := range []int{-1, 101, 120, -100} {
		_, err := l.UpdateProgress(context.Background(), user.ID, e.ID, bad)
		assert.ErrorIs(t, err, errs.ErrInvalidProgress, "progress %d", bad)
	}

	for _, ok := range []int{0, 1, 55, 99, 100} {
		updated, err := l.UpdateProgress(context.Background(), user.ID, e.ID, ok)
		require.NoError(t, err, "progress %d", ok)
		assert.Equal(t, ok, updated.Progress)
	}
}

func TestUpdateProgressPersistsAndAllowsDecrease(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil, WithClock(func() time.Time { return fixedNow }))
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")
	e, err := l.Create(context.Background(), user.ID, course.ID)
	require.NoError(t, err)

	updated, err := l.UpdateProgress(context.Background(), user.ID, e.ID, 55)
	require.NoError(t, err)
	assert.Equal(t, 55, updated.Progress)
	assert.Equal(t, models.EnrollmentActive, updated.Status)

	updated, err = l.UpdateProgress(context.Background(), user.ID, e.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	updated, err = l.UpdateProgress(context.Background(), user.ID, e.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Progress)
	assert.Equal(t, models.EnrollmentActive, updated.Status)
	assert.Nil(t, updated.CompletedAt)

	stored, err := l.Get(context.Background(), user.ID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, stored.Progress)
	assert.Equal(t, models.EnrollmentActive, stored.Status)
	assert.Nil(t, stored.CompletedAt)
}

func TestUpdateProgressKeepsCancelledStatus(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")
	e, err := l.Create(context.Background(), user.ID, course.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(e).Update("status", models.EnrollmentCancelled).Error)

	updated, err := l.UpdateProgress(context.Background(), user.ID, e.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCancelled, updated.Status)
}

func TestUpdateProgressNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	alice := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	bob := testutil.CreateUser(t, db, "bob", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")
	e, err := l.Create(context.Background(), alice.ID, course.ID)
	require.NoError(t, err)

	_, err = l.UpdateProgress(context.Background(), alice.ID, 9999, 10)
	assert.ErrorIs(t, err, errs.ErrEnrollmentAbsent)

	_, err = l.UpdateProgress(context.Background(), bob.ID, e.ID, 10)
	assert.ErrorIs(t, err, errs.ErrEnrollmentAbsent)
}

func TestCompleteStepAdvancesToStepThreshold(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")
	e, err := l.Create(context.Background(), user.ID, course.ID)
	require.NoError(t, err)

	updated, err := l.CompleteStep(context.Background(), user.ID, e.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Progress)

	updated, err = l.CompleteStep(context.Background(), user.ID, e.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)

	// Re-completing an earlier step never lowers progress.
	updated, err = l.CompleteStep(context.Background(), user.ID, e.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)

	updated, err = l.CompleteStep(context.Background(), user.ID, e.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, models.EnrollmentCompleted, updated.Status)

	_, err = l.CompleteStep(context.Background(), user.ID, e.ID, 77)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestFindByUserCourse(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	course := testutil.CreateCourse(t, db, "Intro", 0, "2 weeks")

	_, err := l.FindByUserCourse(context.Background(), user.ID, course.ID)
	assert.ErrorIs(t, err, errs.ErrNotEnrolled)

	created, err := l.Create(context.Background(), user.ID, course.ID)
	require.NoError(t, err)

	found, err := l.FindByUserCourse(context.Background(), user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestReconcileStatuses(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db, nil)
	user := testutil.CreateUser(t, db, "alice", models.TierFree, false)
	var ids []uint
	for _, title := range []string{"A", "B", "C", "D"} {
		ids = append(ids, testutil.CreateCourse(t, db, title, 0, "1 week").ID)
	}

	rows := []models.Enrollment{
		{UserID: user.ID, CourseID: ids[0], Status: models.EnrollmentActive, Progress: 100, EnrolledAt: fixedNow},
		{UserID: user.ID, CourseID: ids[1], Status: models.EnrollmentCompleted, Progress: 40, EnrolledAt: fixedNow},
		{UserID: user.ID, CourseID: ids[2], Status: models.EnrollmentCancelled, Progress: 100, EnrolledAt: fixedNow},
		{UserID: user.ID, CourseID: ids[3], Status: models.EnrollmentActive, Progress: 20, EnrolledAt: fixedNow},
	}
	require.NoError(t, db.Create(&rows).Error)

	changed, err := l.ReconcileStatuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	var got []models.Enrollment
	require.NoError(t, db.Order("course_id").Find(&got).Error)
	assert.Equal(t, models.EnrollmentCompleted, got[0].Status)
	assert.NotNil(t, got[0].CompletedAt)
	assert.Equal(t, models.EnrollmentActive, got[1].Status)
	assert.Equal(t, models.EnrollmentCancelled, got[2].Status)
	assert.Equal(t, models.EnrollmentActive, got[3].Status)
}
