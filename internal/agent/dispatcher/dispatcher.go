package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"learning-activity-agent/internal/agent"
	"learning-activity-agent/internal/conversation"
	"learning-activity-agent/internal/router"
)

// turn is the immutable per-stage state of one pipeline run.
type turn struct {
	req     agent.Request
	prompt  string
	session conversation.Session
	class   router.Classification
	depth   int
	seen    map[string]struct{} // prompts already run in this turn
}

func (t *turn) token() string {
	if t.req.Token != "" {
		return t.req.Token
	}
	s, _ := t.req.Details["token"].(string)
	return s
}

// RunAgent runs one turn. The only error it returns is agent.ErrMissingUserID.
func (d *Dispatcher) RunAgent(ctx context.Context, req agent.Request) (agent.Response, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return agent.Response{}, agent.ErrMissingUserID
	}

	session, err := d.deps.Store.GetOrCreateSession(ctx, req.UserID)
	if err != nil {
		d.l.Errorf(ctx, "%s: session: %v", LogPrefixRunAgent, err)
		return agent.Response{
			Intent: string(router.IntentUnknown),
			Result: map[string]any{KeyError: err.Error()},
			Error:  err.Error(),
		}, nil
	}

	t := &turn{
		req:     req,
		prompt:  req.Prompt,
		session: session,
		seen:    map[string]struct{}{normalizePrompt(req.Prompt): {}},
	}
	result := d.run(ctx, t, d.recentHistory(ctx, session.ID))
	d.record(ctx, t, result)

	resp := agent.Response{
		SessionID:     session.ID,
		Intent:        string(t.class.Intent),
		Confidence:    t.class.Confidence,
		CorrectedText: t.class.CorrectedText,
		Result:        result,
	}
	if e, ok := result[KeyError].(string); ok {
		resp.Error = e
	}
	d.l.Infof(ctx, "%s: user=%s session=%s intent=%s", LogPrefixRunAgent, req.UserID, session.ID, resp.Intent)
	return resp, nil
}

// run classifies t.prompt and dispatches it. t.class is set on return.
func (d *Dispatcher) run(ctx context.Context, t *turn, history []string) map[string]any {
	class, err := d.deps.Router.Classify(ctx, t.prompt, history)
	if err != nil {
		d.l.Warnf(ctx, "%s: classification failed: %v", LogPrefixRunAgent, err)
		t.class = router.Classification{Intent: router.IntentUnknown, Operation: router.IntentUnknown.Operation()}
		return map[string]any{KeyError: MsgUnknownIntent}
	}
	if class.CorrectedText != "" {
		t.prompt = class.CorrectedText
		t.seen[normalizePrompt(class.CorrectedText)] = struct{}{}
	}
	t.class = class

	if t.depth > 0 && mutatingIntents[class.Intent] {
		d.l.Warnf(ctx, "%s: follow-up refused %s at depth %d", LogPrefixRunAgent, class.Intent, t.depth)
		return errorResult(MsgFollowUpRefused, class.Intent.Operation())
	}

	h, ok := d.handlers[class.Intent]
	if !ok {
		h = d.handleUnknown
	}
	return d.safeCall(ctx, h, t)
}

// safeCall turns a handler panic into an error result so one bad turn never
// takes the conversation down.
func (d *Dispatcher) safeCall(ctx context.Context, h handlerFunc, t *turn) (result map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "%s: handler %s panicked: %v", LogPrefixRunAgent, t.class.Intent, r)
			result = errorResult(MsgHandlerFailed)
		}
	}()
	return h(ctx, t)
}

// mutatingIntents are never run from a follow-up, whose prompt is catalog text
// rather than something the user typed.
var mutatingIntents = map[router.Intent]bool{
	router.IntentCreateActivity:   true,
	router.IntentGenerateActivity: true,
	router.IntentEditActivity:     true,
	router.IntentDeleteActivity:   true,
}

// followUp re-runs the pipeline with prompt as a nested turn. ok is false
// when the depth limit or the echo guard stops it.
func (d *Dispatcher) followUp(ctx context.Context, parent *turn, prompt string) (map[string]any, bool) {
	key := normalizePrompt(prompt)
	if key == "" || parent.depth >= d.cfg.MaxFollowUpDepth {
		return nil, false
	}
	if _, dup := parent.seen[key]; dup {
		return nil, false
	}
	parent.seen[key] = struct{}{}

	// The caller's details belong to the parent utterance only.
	child := &turn{
		req:     agent.Request{UserID: parent.req.UserID, Token: parent.token(), Prompt: prompt},
		prompt:  prompt,
		session: parent.session,
		depth:   parent.depth + 1,
		seen:    parent.seen,
	}
	result := d.run(ctx, child, nil)
	return map[string]any{
		"prompt": prompt,
		"intent": string(child.class.Intent),
		"result": result,
	}, true
}

func (d *Dispatcher) recentHistory(ctx context.Context, sessionID string) []string {
	msgs, err := d.deps.Store.GetHistory(ctx, sessionID)
	if err != nil {
		d.l.Warnf(ctx, "%s: history: %v", LogPrefixRunAgent, err)
		return nil
	}
	if len(msgs) > d.cfg.HistoryWindow {
		msgs = msgs[len(msgs)-d.cfg.HistoryWindow:]
	}
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return out
}

// record appends the user utterance and the assistant reply.
func (d *Dispatcher) record(ctx context.Context, t *turn, result map[string]any) {
	intent := string(t.class.Intent)
	if _, err := d.deps.Store.AddMessage(ctx, conversation.AddMessageInput{
		SessionID: t.session.ID,
		Role:      conversation.RoleUser,
		Content:   t.req.Prompt,
		Intent:    intent,
	}); err != nil {
		d.l.Errorf(ctx, "%s: record user message: %v", LogPrefixRunAgent, err)
		return
	}
	if _, err := d.deps.Store.AddMessage(ctx, conversation.AddMessageInput{
		SessionID: t.session.ID,
		Role:      conversation.RoleAssistant,
		Content:   resultText(result),
		Intent:    intent,
	}); err != nil {
		d.l.Errorf(ctx, "%s: record assistant message: %v", LogPrefixRunAgent, err)
	}
}

func resultText(result map[string]any) string {
	if s, ok := result[KeyMessage].(string); ok && s != "" {
		return s
	}
	if s, ok := result[KeyError].(string); ok && s != "" {
		return s
	}
	return "Done."
}

func normalizePrompt(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func errorResult(format string, args ...any) map[string]any {
	return map[string]any{KeyError: fmt.Sprintf(format, args...)}
}
