package handlers

import (
	"errors"
	"strconv"

	"macrolog/domain"
	"macrolog/internal/api/presenters"
	"macrolog/pkg/diary"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DiaryHandler interface {
		UpsertEntry(c *fiber.Ctx) error
		GetDayLog(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		GetRecentFoods(c *fiber.Ctx) error
	}

	diaryHandler struct {
		diaryService diary.DiaryService
		validator    *validator.Validate
	}
)

func NewDiaryHandler(diaryService diary.DiaryService, validator *validator.Validate) DiaryHandler {
	return &diaryHandler{
		diaryService: diaryService,
		validator:    validator,
	}
}

func (h *diaryHandler) UpsertEntry(c *fiber.Ctx) error {
	req := new(domain.UpsertEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertEntry, err)
	}

	res, err := h.diaryService.UpsertEntry(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpsertEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUpsertEntry)
}

func (h *diaryHandler) GetDayLog(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, domain.ErrParseDate)
	}

	res, err := h.diaryService.GetDayLog(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *diaryHandler) DeleteEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	if err := h.diaryService.DeleteEntry(c.Context(), entryID); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *diaryHandler) GetRecentFoods(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultRecentFoodsLimit)))
	if err != nil || limit < 1 {
		limit = domain.DefaultRecentFoodsLimit
	}

	foods, err := h.diaryService.GetRecentFoods(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecentFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetRecentFoods)
}
