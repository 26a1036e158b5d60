package muusdk

import "context"

// AskAssistant sends a question to the AI assistant. Calls are throttled
// client-side; when the limiter is saturated the call waits (honoring ctx)
// rather than failing.
func (c *Client) AskAssistant(ctx context.Context, req AssistantChatRequest) (*AssistantChatResponse, error) {
	if err := c.assistantLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp AssistantChatResponse
	if err := c.post(ctx, "/assistant/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
