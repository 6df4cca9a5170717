package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/school/classes/dto"
	"pesantrenku_backend/internals/features/school/classes/service"
	helper "pesantrenku_backend/internals/helpers"
)

type checkConflictRequest struct {
	UstadID        uuid.UUID       `json:"ustad_id" validate:"required"`
	Schedule       dto.ScheduleDTO `json:"schedule" validate:"required"`
	ExcludeClassID *uuid.UUID      `json:"exclude_class_id"`
}

// POST /api/a/classes/check-conflict
// Pre-check advisory untuk wizard (klien men-debounce panggilan ini).
// Hasilnya TIDAK mengikat: pengecekan otoritatif tetap dijalankan ulang
// di dalam transaksi create/update.
func (ctrl *ClassController) CheckConflict(c *fiber.Ctx) error {
	var req checkConflictRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationJSON(c, err)
	}
	if err := validateScheduleTimes(&req.Schedule); err != nil {
		return helper.FromFiberError(c, err)
	}

	res, err := service.CheckScheduleConflict(ctrl.DB, req.UstadID, service.ProposedSchedule{
		Days:      req.Schedule.Days,
		StartTime: req.Schedule.StartTime,
		EndTime:   req.Schedule.EndTime,
	}, req.ExcludeClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa bentrok jadwal")
	}

	return helper.JsonOK(c, "Pengecekan selesai", res)
}
