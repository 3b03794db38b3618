package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"learning-activity-agent/pkg/response"
)

// CreateSession godoc
// @Summary     Start a new session
// @Description Creates a fresh session which becomes the user's current one.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq true "Session owner"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/conversations/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	session, err := h.store.CreateSession(ctx, req.UserID, req.Name)
	if err != nil {
		h.fail(c, "store.CreateSession", err)
		return
	}
	response.OK(c, newSessionResp(session))
}

// ListSessions godoc
// @Summary     List a user's sessions
// @Tags        Conversation
// @Produce     json
// @Param       user_id query string true "User ID"
// @Success     200 {object} listSessionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/conversations/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListSessionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessions, err := h.store.ListSessions(ctx, req.UserID)
	if err != nil {
		h.fail(c, "store.ListSessions", err)
		return
	}
	out := listSessionsResp{Sessions: make([]sessionResp, 0, len(sessions))}
	for _, s := range sessions {
		out.Sessions = append(out.Sessions, newSessionResp(s))
	}
	response.OK(c, out)
}

// History godoc
// @Summary     Session history
// @Description Returns every message of the session in append order.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/sessions/{id}/messages [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	msgs, err := h.store.GetHistory(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, "store.GetHistory", err)
		return
	}
	response.OK(c, newHistoryResp(msgs))
}

// AddMessage godoc
// @Summary     Append a message
// @Description Appends a message to the session. With embed=true the content is embedded for semantic search.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Session ID"
// @Param       body body addMessageReq true "Message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/sessions/{id}/messages [POST]
func (h *handler) AddMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var vec []float64
	if req.Embed {
		// A failed embedding still stores the message, just without a vector.
		if vec, err = h.embed(ctx, req.Content); err != nil {
			h.l.Warnf(ctx, "conversation.AddMessage: embed: %v", err)
			vec = nil
		}
	}

	msg, err := h.store.AddMessage(ctx, req.toInput(vec))
	if err != nil {
		h.fail(c, "store.AddMessage", err)
		return
	}
	response.OK(c, newMessageResp(msg))
}

// Search godoc
// @Summary     Substring search
// @Description Case-insensitive substring search over the session's messages.
// @Tags        Conversation
// @Produce     json
// @Param       id path  string true "Session ID"
// @Param       q  query string true "Search term"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/sessions/{id}/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	msgs, err := h.store.FuzzySearch(ctx, req.SessionID, req.Query)
	if err != nil {
		h.fail(c, "store.FuzzySearch", err)
		return
	}
	response.OK(c, newHistoryResp(msgs))
}

// SemanticSearch godoc
// @Summary     Semantic search
// @Description Ranks embedded messages of the session by cosine similarity to the query.
// @Tags        Conversation
// @Produce     json
// @Param       id    path  string true  "Session ID"
// @Param       q     query string true  "Query text"
// @Param       top_k query int    false "Number of results (default 5)"
// @Success     200 {object} semanticResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Embedding provider unavailable"
// @Router      /api/v1/conversations/sessions/{id}/semantic [GET]
func (h *handler) SemanticSearch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	vec, err := h.embed(ctx, req.Query)
	if err != nil {
		h.fail(c, "embed", err)
		return
	}

	hits, err := h.store.SemanticSearch(ctx, req.SessionID, vec, req.topK())
	if err != nil {
		h.fail(c, "store.SemanticSearch", err)
		return
	}
	out := semanticResp{Results: make([]scoredMessageResp, 0, len(hits))}
	for _, hit := range hits {
		out.Results = append(out.Results, scoredMessageResp{Message: newMessageResp(hit.Message), Score: hit.Score})
	}
	response.OK(c, out)
}

func (h *handler) embed(ctx context.Context, text string) ([]float64, error) {
	if h.embedder == nil {
		return nil, errEmbeddingUnavailable
	}
	vecs, err := h.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil, errEmptyEmbedding
	}
	return vecs[0], nil
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	status, ok := h.mapError(err)
	if !ok {
		h.l.Errorf(c.Request.Context(), "conversation.%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, err, nil)
}
