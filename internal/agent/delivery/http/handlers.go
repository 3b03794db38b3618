package http

import (
	"github.com/gin-gonic/gin"

	"learning-activity-agent/internal/middleware"
	"learning-activity-agent/pkg/response"
)

// Chat godoc
// @Summary     Run one agent turn
// @Description Classifies the prompt, resolves any activity it names and dispatches it to the matching handler.
// @Description Handler failures are reported inside data.result.error with a 200 status.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       Authorization header string  false "Bearer token forwarded to the Activity service"
// @Param       body          body   chatReq true  "User turn"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.agent.RunAgent(ctx, req.toInput(middleware.GetToken(c)))
	if err != nil {
		status, ok := h.mapError(err)
		if !ok {
			h.l.Errorf(ctx, "agent.RunAgent: %v", err)
			response.InternalError(c, err)
			return
		}
		response.ErrorWithStatus(c, status, err, nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}
