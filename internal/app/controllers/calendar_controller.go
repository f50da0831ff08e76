package controllers

import (
	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/services/container"
)

// CalendarController 处理日历相关的请求
type CalendarController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCalendarController 创建一个新的日历控制器
func NewCalendarController(ctx *gin.Context, container *container.ServiceContainer) *CalendarController {
	return &CalendarController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCalendarFunc 返回一个处理日历请求的Gin处理函数
func HandleCalendarFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCalendarController(ctx, container)

		switch method {
		case "getSystems":
			controller.GetSystems()
		case "getCalendarUsers":
			controller.GetCalendarUsers()
		case "getUserAppointments":
			controller.GetUserAppointments()
		case "getUserAppointment":
			controller.GetUserAppointment()
		case "addAppointment":
			controller.AddAppointment()
		case "modifyAppointment":
			controller.ModifyAppointment()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 GetSystems 获取使用日历的系统
// @Summary      List calendar systems
// @Tags         Calendar
// @Produce      json,xml
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse{data=[]contracts.SystemView}
// @Failure      500  {object}  ErrorResponse "Calendar database not configured"
// @Router       /calendar/systems [get]
func (c *CalendarController) GetSystems() {
	query[[]contracts.SystemView](c.Ctx, c.Container, &contracts.SystemListGetQuery{})
}

// 2 GetCalendarUsers 获取系统的日历用户
// @Summary      List calendar users
// @Tags         Calendar
// @Produce      json,xml
// @Security     BearerAuth
// @Param        system path int true "System number"
// @Success      200  {object}  SuccessResponse{data=[]contracts.CalendarUserView}
// @Failure      404  {object}  ErrorResponse
// @Router       /calendar/systems/{system}/users [get]
func (c *CalendarController) GetCalendarUsers() {
	var q contracts.CalendarUserListGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[[]contracts.CalendarUserView](c.Ctx, c.Container, &q)
}

// 3 GetUserAppointments 获取用户的约会
// @Summary      User appointments
// @Description  Appointments of the user from the date, ordered by date and time
// @Tags         Calendar
// @Produce      json,xml
// @Security     BearerAuth
// @Param        system path int true "System number"
// @Param        initials path string true "User initials"
// @Param        from_date query string false "From date (YYYY-MM-DD), default today"
// @Success      200  {object}  SuccessResponse{data=[]contracts.AppointmentView}
// @Failure      404  {object}  ErrorResponse
// @Router       /calendar/systems/{system}/users/{initials}/appointments [get]
func (c *CalendarController) GetUserAppointments() {
	var q contracts.CalendarUserAppointmentsGetQuery
	if !bindURI(c.Ctx, &q) || !bindQuery(c.Ctx, &q) {
		return
	}
	query[[]contracts.AppointmentView](c.Ctx, c.Container, &q)
}

// 4 GetUserAppointment 获取用户的约会
// @Summary      User appointment
// @Tags         Calendar
// @Produce      json,xml
// @Security     BearerAuth
// @Param        system path int true "System number"
// @Param        initials path string true "User initials"
// @Param        appointment path int true "Appointment id"
// @Success      200  {object}  SuccessResponse{data=contracts.AppointmentView}
// @Failure      404  {object}  ErrorResponse
// @Router       /calendar/systems/{system}/users/{initials}/appointments/{appointment} [get]
func (c *CalendarController) GetUserAppointment() {
	var q contracts.CalendarUserAppointmentGetQuery
	if !bindURI(c.Ctx, &q) {
		return
	}
	query[*contracts.AppointmentView](c.Ctx, c.Container, &q)
}

// 5 AddAppointment 添加约会
// @Summary      Add appointment
// @Tags         Calendar
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        system path int true "System number"
// @Param        request body contracts.AppointmentData true "Appointment"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      400  {object}  ErrorResponse
// @Router       /calendar/systems/{system}/appointments [post]
func (c *CalendarController) AddAppointment() {
	var command contracts.AppointmentAddCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}

// 6 ModifyAppointment 修改约会
// @Summary      Modify appointment
// @Description  Replaces the appointment and its participants
// @Tags         Calendar
// @Accept       json
// @Produce      json,xml
// @Security     BearerAuth
// @Param        system path int true "System number"
// @Param        appointment path int true "Appointment id"
// @Param        request body contracts.AppointmentModifyCommand true "Appointment"
// @Success      200  {object}  SuccessResponse{data=contracts.ServiceReceipt}
// @Failure      404  {object}  ErrorResponse
// @Router       /calendar/systems/{system}/appointments/{appointment} [put]
func (c *CalendarController) ModifyAppointment() {
	var command contracts.AppointmentModifyCommand
	if !bindCommand(c.Ctx, &command) {
		return
	}
	execute[*contracts.ServiceReceipt](c.Ctx, c.Container, &command)
}
