package marketingController

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub/errs"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	marketingValidator "coursehub/validators/marketing"
)

var ErrAlreadyOnWaitlist = errs.New(errs.KindConflict, "waitlist", "Email is already on the waitlist")

type Handler struct {
	db     *gorm.DB
	mailer *utils.Mailer
}

func New(db *gorm.DB, mailer *utils.Mailer) *Handler {
	return &Handler{db: db, mailer: mailer}
}

func (h *Handler) JoinWaitlist(c *fiber.Ctx) error {
	reqData := c.Locals("validatedWaitlist").(*marketingValidator.WaitlistRequest)
	db := h.db.WithContext(c.UserContext())

	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	// Check if email already exists
	var count int64
	if err := db.Model(&models.Waitlist{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return middleware.ErrorResponse(c, errs.Wrap(errs.KindInternal, "waitlist", "failed to check waitlist", err))
	}
	if count > 0 {
		return middleware.ErrorResponse(c, ErrAlreadyOnWaitlist)
	}

	entry := models.Waitlist{
		Name:     strings.TrimSpace(reqData.Name),
		Email:    email,
		CourseID: reqData.CourseID,
	}
	if interest := strings.TrimSpace(reqData.Interest); interest != "" {
		entry.Interest = &interest
	}

	if err := db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, ErrAlreadyOnWaitlist)
		}
		return middleware.ErrorResponse(c, errs.Wrap(errs.KindInternal, "waitlist", "failed to add to waitlist", err))
	}

	h.mailer.SendWaitlistEmail(entry.Email, entry.Name)
	return middleware.JsonResponse(c, fiber.StatusCreated, entry)
}

func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContact").(*marketingValidator.ContactRequest)

	submission := models.ContactSubmission{
		Name:    strings.TrimSpace(reqData.Name),
		Email:   strings.TrimSpace(reqData.Email),
		Subject: strings.TrimSpace(reqData.Subject),
		Message: reqData.Message,
	}
	if err := h.db.WithContext(c.UserContext()).Create(&submission).Error; err != nil {
		return middleware.ErrorResponse(c, errs.Wrap(errs.KindInternal, "contact", "failed to submit contact form", err))
	}

	h.mailer.SendContactReceivedEmail(submission.Email, submission.Name, submission.Subject)
	return middleware.JsonResponse(c, fiber.StatusCreated, submission)
}
