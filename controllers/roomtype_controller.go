package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"hotel-rooms-api/models"
	"hotel-rooms-api/services"
	"hotel-rooms-api/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// The credentials travel in the same body and were consumed by the auth
// middleware, so only name is read here.
type roomTypePayload struct {
	Name string `json:"name"`
}

// CreateRoomType (POST /api/v1/room-types)
func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		utils.RespondError(c, utils.BindError(err))
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name is required")
		return
	}

	rt := models.RoomType{Name: name}
	if err := ctrl.RoomTypeSvc.Create(c.Request.Context(), &rt); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// GetRoomTypes (GET /api/v1/room-types)
func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomTypeSvc.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}
