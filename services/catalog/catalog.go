// Package catalog reads categories, instructors, courses and testimonials.
package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/errs"
	"coursehub/models"
)

var (
	ErrCategoryNotFound   = errs.New(errs.KindNotFound, "catalog", "Category not found")
	ErrInstructorNotFound = errs.New(errs.KindNotFound, "catalog", "Instructor not found")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, errs.Wrap(errs.KindInternal, "catalog.Categories", "failed to fetch categories", err)
	}
	return categories, nil
}

func (s *Store) Category(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFoundOr(err, ErrCategoryNotFound, "catalog.Category")
	}
	return &category, nil
}

// Courses lists the catalog, restricted to one category when categoryID is non-zero.
func (s *Store) Courses(ctx context.Context, categoryID uint) ([]models.Course, error) {
	query := s.db.WithContext(ctx).Order("id")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, errs.Wrap(errs.KindInternal, "catalog.Courses", "failed to fetch courses", err)
	}
	return courses, nil
}

// Course returns a course joined with its instructor and category.
func (s *Store) Course(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.WithContext(ctx).
		Preload("Instructor").
		Preload("Category").
		First(&course, id).Error
	if err != nil {
		return nil, notFoundOr(err, errs.ErrCourseNotFound, "catalog.Course")
	}
	return &course, nil
}

func (s *Store) Instructors(ctx context.Context) ([]models.Instructor, error) {
	var instructors []models.Instructor
	if err := s.db.WithContext(ctx).Order("id").Find(&instructors).Error; err != nil {
		return nil, errs.Wrap(errs.KindInternal, "catalog.Instructors", "failed to fetch instructors", err)
	}
	return instructors, nil
}

func (s *Store) Instructor(ctx context.Context, id uint) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := s.db.WithContext(ctx).First(&instructor, id).Error; err != nil {
		return nil, notFoundOr(err, ErrInstructorNotFound, "catalog.Instructor")
	}
	return &instructor, nil
}

func (s *Store) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.WithContext(ctx).Order("id").Find(&testimonials).Error; err != nil {
		return nil, errs.Wrap(errs.KindInternal, "catalog.Testimonials", "failed to fetch testimonials", err)
	}
	return testimonials, nil
}

// RefreshCourseCounts sets each category's courseCount to the number of courses that
// reference it. Returns the number of categories whose count changed.
func (s *Store) RefreshCourseCounts(ctx context.Context) (int, error) {
	type row struct {
		CategoryID uint
		Total      int
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&models.Course{}).
		Select("category_id, count(*) as total").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return 0, errs.Wrap(errs.KindInternal, "catalog.RefreshCourseCounts", "failed to count courses", err)
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Total
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, c := range categories {
		total := counts[c.ID]
		if c.CourseCount == total {
			continue
		}
		if err := s.db.WithContext(ctx).Model(&models.Category{}).
			Where("id = ?", c.ID).
			Update("course_count", total).Error; err != nil {
			return changed, errs.Wrap(errs.KindInternal, "catalog.RefreshCourseCounts", "failed to update category", err)
		}
		changed++
		zap.L().Debug("category course count refreshed",
			zap.Uint("categoryId", c.ID),
			zap.Int("from", c.CourseCount),
			zap.Int("to", total))
	}
	return changed, nil
}

func notFoundOr(err error, notFound *errs.Error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return errs.Wrap(errs.KindInternal, op, "failed to fetch record", err)
}
