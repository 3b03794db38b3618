package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingSessionID = errors.New("session id is required")

func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processListSessionsReq(c *gin.Context) (listSessionsReq, error) {
	var req listSessionsReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

// processAddMessageReq binds the message body and the session id URI param.
func (h *handler) processAddMessageReq(c *gin.Context) (addMessageReq, error) {
	var req addMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	return req, nil
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	return req, nil
}
