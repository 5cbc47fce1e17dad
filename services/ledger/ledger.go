// Package ledger owns enrollment records: creating them under the access policy, listing
// them for a user and moving their progress.
package ledger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/errs"
	"coursehub/models"
	"coursehub/services/access"
	"coursehub/services/learning"
	"coursehub/services/locks"
)

type Ledger struct {
	db     *gorm.DB
	locker locks.Locker
	now    func() time.Time
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for enrolledAt/completedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func New(db *gorm.DB, locker locks.Locker, opts ...Option) *Ledger {
	if locker == nil {
		locker = locks.NewLocal()
	}
	l := &Ledger{db: db, locker: locker, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enroll runs the access policy for user and courseID and creates the enrollment on approval.
func (l *Ledger) Enroll(ctx context.Context, user *models.User, courseID uint) (*models.Enrollment, error) {
	var course *models.Course
	var found models.Course
	err := l.db.WithContext(ctx).First(&found, courseID).Error
	switch {
	case err == nil:
		course = &found
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.Wrap(errs.KindInternal, "ledger.Enroll", "failed to load course", err)
	}

	enrolled, err := l.exists(l.db.WithContext(ctx), user.ID, courseID)
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, "ledger.Enroll", "failed to check enrollment", err)
	}

	decision := access.CanEnroll(user, course, enrolled)
	if !decision.Allowed {
		zap.L().Info("enrollment denied",
			zap.Uint("userId", user.ID),
			zap.Uint("courseId", courseID),
			zap.String("reason", string(decision.Reason)))
		return nil, decision.Err()
	}

	return l.Create(ctx, user.ID, courseID)
}

// Create inserts an active enrollment with zero progress. The pair lock, the in-transaction
// re-check and the unique index together keep (userID, courseID) unique.
func (l *Ledger) Create(ctx context.Context, userID, courseID uint) (*models.Enrollment, error) {
	unlock, err := l.locker.Lock(ctx, locks.EnrollmentKey(userID, courseID))
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, "ledger.Create", "failed to acquire enrollment lock", err)
	}
	defer unlock()

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     models.EnrollmentActive,
		Progress:   models.MinProgress,
		EnrolledAt: l.now(),
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := l.exists(tx, userID, courseID)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrAlreadyEnrolled
		}
		return tx.Create(&enrollment).Error
	})
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrAlreadyEnrolled), errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, errs.ErrAlreadyEnrolled
	default:
		return nil, errs.Wrap(errs.KindInternal, "ledger.Create", "failed to create enrollment", err)
	}

	zap.L().Info("enrollment created",
		zap.Uint("enrollmentId", enrollment.ID),
		zap.Uint("userId", userID),
		zap.Uint("courseId", courseID))
	return &enrollment, nil
}

// ListByUser returns every enrollment of userID joined with its course, instructor and category.
func (l *Ledger) ListByUser(ctx context.Context, userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := l.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Course").
		Preload("Course.Instructor").
		Preload("Course.Category").
		Order("enrolled_at desc, id desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, "ledger.ListByUser", "failed to fetch enrollments", err)
	}
	return enrollments, nil
}

// Get returns the enrollment with its course if it belongs to userID.
func (l *Ledger) Get(ctx context.Context, userID, enrollmentID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := l.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", enrollmentID, userID).
		Preload("Course").
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrEnrollmentAbsent
		}
		return nil, errs.Wrap(errs.KindInternal, "ledger.Get", "failed to fetch enrollment", err)
	}
	return &enrollment, nil
}

// FindByUserCourse returns userID's enrollment in courseID, or ErrNotEnrolled.
func (l *Ledger) FindByUserCourse(ctx context.Context, userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := l.db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotEnrolled
		}
		return nil, errs.Wrap(errs.KindInternal, "ledger.FindByUserCourse", "failed to fetch enrollment", err)
	}
	return &enrollment, nil
}

// UpdateProgress sets progress on one of userID's enrollments. Progress may go down;
// status follows models.Enrollment.ApplyProgress.
func (l *Ledger) UpdateProgress(ctx context.Context, userID, enrollmentID uint, progress int) (*models.Enrollment, error) {
	if progress < models.MinProgress || progress > models.MaxProgress {
		return nil, errs.ErrInvalidProgress
	}

	enrollment, err := l.Get(ctx, userID, enrollmentID)
	if err != nil {
		return nil, err
	}
	return l.save(ctx, enrollment, progress)
}

// CompleteStep marks a curriculum step as done by raising progress to that step's
// threshold. Progress never goes down here.
func (l *Ledger) CompleteStep(ctx context.Context, userID, enrollmentID, stepID uint) (*models.Enrollment, error) {
	enrollment, err := l.Get(ctx, userID, enrollmentID)
	if err != nil {
		return nil, err
	}

	position, total, ok := learning.Locate(learning.ForCourse(enrollment.Course), stepID)
	if !ok {
		return nil, errs.New(errs.KindNotFound, "ledger.CompleteStep", "Step not found")
	}

	progress := enrollment.Progress
	if threshold := learning.Threshold(position, total); threshold > progress {
		progress = threshold
	}
	return l.save(ctx, enrollment, progress)
}

// ReconcileStatuses brings rows written before the status rule existed in line with it.
// It returns the number of rows changed.
func (l *Ledger) ReconcileStatuses(ctx context.Context) (int64, error) {
	now := l.now()
	db := l.db.WithContext(ctx)

	completed := db.Model(&models.Enrollment{}).
		Where("progress >= ? AND status = ?", models.MaxProgress, models.EnrollmentActive).
		Updates(map[string]interface{}{"status": models.EnrollmentCompleted, "completed_at": now})
	if completed.Error != nil {
		return 0, errs.Wrap(errs.KindInternal, "ledger.ReconcileStatuses", "failed to complete enrollments", completed.Error)
	}

	reopened := db.Model(&models.Enrollment{}).
		Where("progress < ? AND status = ?", models.MaxProgress, models.EnrollmentCompleted).
		Updates(map[string]interface{}{"status": models.EnrollmentActive, "completed_at": nil})
	if reopened.Error != nil {
		return completed.RowsAffected, errs.Wrap(errs.KindInternal, "ledger.ReconcileStatuses", "failed to reopen enrollments", reopened.Error)
	}

	return completed.RowsAffected + reopened.RowsAffected, nil
}

func (l *Ledger) save(ctx context.Context, enrollment *models.Enrollment, progress int) (*models.Enrollment, error) {
	enrollment.ApplyProgress(progress, l.now())

	err := l.db.WithContext(ctx).Model(enrollment).
		Select("progress", "status", "completed_at", "updated_at").
		Updates(enrollment).Error
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, "ledger.save", "failed to update progress", err)
	}
	return enrollment, nil
}

func (l *Ledger) exists(db *gorm.DB, userID, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}
