package handler

import (
	"context"
	"errors"
	"time"

	"arena_manager/collection"
	"arena_manager/constants"
	"arena_manager/coordinator"
	"arena_manager/gateway"
	"arena_manager/helper"
	"arena_manager/logger"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

func GetArenas(c *fiber.Ctx) error {
	filterInput := new(model.FilterArena)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gwc := sessionGateway(c)
	arenas, err := gwc.Arenas(c.UserContext())
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}
		// đọc lỗi thì trang vẫn sống với danh sách rỗng
		logger.L().Error("load arenas failed", zap.Error(err))
		return utils.DegradedListResponse(c, constants.CAN_NOT_GET_ARENA)
	}

	visible := collection.Filter(arenas, helper.ArenaPredicates(filterInput)...)
	visible = helper.SortArenas(visible, filterInput.SortBy)

	limit, page := pageParams(filterInput.Pagination, 20)
	totalCount := int64(len(visible))
	rows := collection.Paginate(visible, limit, page)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetArenaById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	gwc := sessionGateway(c)
	arena, err := gwc.Arena(c.UserContext(), id)
	if err != nil {
		return respondGatewayError(c, err, constants.ARENA_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, arena)
}

// EditArena gộp input vào bản ghi hiện tại rồi PATCH sang gateway.
// Sân con chưa có id được cấp max+1; features/rules bỏ trùng khi thêm.
func EditArena(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(*model.EditArenaInput)

	gwc := sessionGateway(c)
	arena, err := gwc.Arena(c.UserContext(), id)
	if err != nil {
		return respondGatewayError(c, err, constants.ARENA_NOT_FOUND)
	}

	if err := copier.CopyWithOption(arena, input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.SubArenas != nil {
		arena.SubArenas = helper.AssignSubArenaIDs(input.SubArenas)
	}
	if input.Features != nil {
		arena.Features = helper.AppendUnique(nil, input.Features...)
	}
	if input.Rules != nil {
		arena.Rules = helper.AppendUnique(nil, input.Rules...)
	}

	updated, err := gwc.UpdateArena(c.UserContext(), id, arena)
	if err != nil {
		return respondGatewayError(c, err, constants.UPDATE_FAILED)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func UpdateArenaStatus(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(*model.UpdateArenaStatusInput)

	gwc := sessionGateway(c)
	coord := coordinator.New(collection.NewStore[model.Arena](), gwc.Arenas, logger.L())
	if _, err := coord.Refresh(c.UserContext()); err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_ARENA)
	}

	rows, err := coord.Update(c.UserContext(),
		func(ctx context.Context) error { return gwc.UpdateArenaStatus(ctx, id, input.Status) },
		func(a model.Arena) bool { return a.ID == id },
		func(a *model.Arena) {
			a.Status = input.Status
			a.UpdatedAt = time.Now()
		},
	)
	if err != nil {
		return respondGatewayError(c, err, constants.UPDATE_FAILED)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rows": rows})
}

// DeleteArena chỉ gỡ bản ghi khỏi danh sách khi backend xác nhận xoá;
// lỗi thì danh sách giữ nguyên và message của backend hiện cho người dùng.
func DeleteArena(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	gwc := sessionGateway(c)
	coord := coordinator.New(collection.NewStore[model.Arena](), gwc.Arenas, logger.L())
	if _, err := coord.Refresh(c.UserContext()); err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_ARENA)
	}

	err := coord.Delete(c.UserContext(),
		func(ctx context.Context) error { return gwc.DeleteArena(ctx, id) },
		func(a model.Arena) bool { return a.ID == id },
	)
	if err != nil {
		return respondGatewayError(c, err, constants.DELETE_FAILED)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rows": coord.Store().Items()})
}
