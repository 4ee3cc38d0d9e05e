package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-rooms-api/filter"
	"hotel-rooms-api/models"
	"hotel-rooms-api/services"
	"hotel-rooms-api/utils"
)

const (
	msgCreateRoomFields = "Name, roomType, and price are required"
	msgUpdateRoomFields = "At least one field to update is required"
	msgInvalidRoomType  = "roomType must be a valid identifier"
	msgEmptyName        = "name must not be empty"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// roomPayload is shared by create and patch; nil means the field was absent.
type roomPayload struct {
	Name     *string  `json:"name"`
	RoomType *string  `json:"roomType"`
	Price    *float64 `json:"price"`
}

// toUpdate validates the fields that are present.
func (p roomPayload) toUpdate() (models.RoomUpdate, error) {
	var u models.RoomUpdate
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return u, utils.NewValidationError(msgEmptyName)
		}
		u.Name = &name
	}
	if p.RoomType != nil {
		id, ok := models.CanonicalID(strings.TrimSpace(*p.RoomType))
		if !ok {
			return u, utils.NewValidationError(msgInvalidRoomType)
		}
		u.RoomTypeID = &id
	}
	u.Price = p.Price
	return u, nil
}

// CreateRoom (POST /api/v1/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, utils.BindError(err))
		return
	}
	if payload.Name == nil || payload.RoomType == nil || payload.Price == nil {
		utils.JSONError(c, http.StatusBadRequest, msgCreateRoomFields)
		return
	}

	update, err := payload.toUpdate()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var room models.Room
	update.Apply(&room)

	if err := ctrl.RoomSvc.Create(c.Request.Context(), &room); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRooms (GET /api/v1/rooms?search=&roomType=&minPrice=&maxPrice=)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var params filter.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, utils.BindError(err))
		return
	}

	rooms, err := ctrl.RoomSvc.List(c.Request.Context(), params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByID (GET /api/v1/rooms/:id)
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	room, err := ctrl.RoomSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoom (PATCH /api/v1/rooms/:id)
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	var payload roomPayload
	// an empty body is the same as {}
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, utils.BindError(err))
		return
	}

	update, err := payload.toUpdate()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if update.IsEmpty() {
		utils.JSONError(c, http.StatusBadRequest, msgUpdateRoomFields)
		return
	}

	res, err := ctrl.RoomSvc.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteRoom (DELETE /api/v1/rooms/:id)
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	res, err := ctrl.RoomSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
