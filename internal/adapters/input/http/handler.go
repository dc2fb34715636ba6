package http

import (
	"golang-tictactoe/internal/domain"
	"golang-tictactoe/internal/ports/input"
	"golang-tictactoe/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	commands  input.CommandService
	records   input.GameRecordService
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(commands input.CommandService, records input.GameRecordService) *HTTPHandler {
	return &HTTPHandler{
		commands:  commands,
		records:   records,
		validator: validator.New(),
	}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports whether the game record storage is reachable
// @Tags HEALTH
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.records.HealthCheck(); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// SlashCommand godoc
// @Summary Slash command
// @Description Applies a chat command to the channel's game
// @Tags GAME
// @Accept application/x-www-form-urlencoded
// @Produce json
// @param channel_id formData string true "channel id"
// @param channel_name formData string true "channel name"
// @param user_id formData string true "user id"
// @param user_name formData string true "user name"
// @param command formData string true "trigger, eg /ttt"
// @param text formData string true "eg start, put 1 2, status"
// @Success 200 {object} SlashCommandResponse
// @Router /slack/command [post]
func (hdl *HTTPHandler) SlashCommand(c *fiber.Ctx) error {
	params := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})

	response := hdl.commands.Process(params)
	if response == nil {
		// dropped requests are acknowledged without a message
		return c.SendStatus(fiber.StatusOK)
	}

	responseType := ResponseTypeEphemeral
	if response.IsPublic() {
		responseType = ResponseTypeInChannel
	}
	return c.Status(fiber.StatusOK).JSON(SlashCommandResponse{
		ResponseType: responseType,
		Text:         response.Text,
	})
}

// SlashCommandPing godoc
// @Summary Slash command liveness
// @Tags GAME
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /slack/command [get]
func (hdl *HTTPHandler) SlashCommandPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: "tic-tac-toe"})
}

// GetRecords godoc
// @Summary List finished games
// @Description Archived game results with filtering and pagination
// @Tags RECORD
// @Produce json
// @param channel_id query string false "channel id"
// @param player query string false "user in either seat"
// @param outcome query string false "win, draw or concede"
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "finished_at, moves or channel_id"
// @param asc query bool false "asc"
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Router /v1/api/records [get]
func (hdl *HTTPHandler) GetRecords(c *fiber.Ctx) error {
	condition := QueryGameRecordRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	// Convert HTTP query request to domain query request
	domainCondition := domain.QueryGameRecordRequest{
		ChannelID: condition.ChannelID,
		Player:    condition.Player,
		Outcome:   condition.Outcome,
		Limit:     condition.Limit,
		Page:      condition.Page,
		OrderBy:   condition.OrderBy,
		Asc:       condition.Asc,
	}
	result, err := hdl.records.GetRecords(domainCondition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := result.Records
	if data == nil {
		data = make([]domain.GameRecordResponse, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}

// GetHistory godoc
// @Summary Channel history
// @Description Finished sessions kept in memory for a channel, oldest first
// @Tags GAME
// @Produce json
// @param channel path string true "channel id"
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Router /v1/api/channels/{channel}/history [get]
func (hdl *HTTPHandler) GetHistory(c *fiber.Ctx) error {
	var request HistoryRequest
	if err := c.ParamsParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	data := lo.Map(hdl.commands.History(request.ChannelID), func(summary domain.SessionSummary, _ int) SessionSummaryResponse {
		return SessionSummaryResponse{
			ID:         summary.ID,
			ChannelID:  summary.ChannelID,
			Player1:    summary.Player1,
			Player2:    summary.Player2,
			Winner:     summary.Winner,
			Outcome:    string(summary.Outcome),
			Board:      summary.Board,
			CreatedAt:  summary.CreatedAt,
			FinishedAt: summary.FinishedAt,
		}
	})
	total := int64(len(data))
	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:    Success,
		Data:      data,
		TotalItem: &total,
	})
}
