package claude

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/devicedigihelp/backend/internal/genai"
)

// maxTokens is generous for a short quick-start guide plus follow-ups.
const maxTokens = 4096

type Client struct {
	client *anthropic.Client
	model  string
}

func NewClient(apiKey, model string, opts ...anthropic.ClientOption) *Client {
	return &Client{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

// buildMessage constructs the single user message: an optional image block
// followed by the text prompt.
func buildMessage(req *genai.Request) anthropic.Message {
	var blocks []anthropic.MessageContent
	if len(req.Image) > 0 {
		blocks = append(blocks, anthropic.NewImageMessageContent(
			anthropic.NewMessageContentSource(
				anthropic.MessagesContentSourceTypeBase64,
				req.ImageMIME,
				req.Image,
			)))
	}
	if req.Text != "" {
		blocks = append(blocks, anthropic.NewTextMessageContent(req.Text))
	}
	return anthropic.Message{Role: anthropic.RoleUser, Content: blocks}
}

func (c *Client) Generate(ctx context.Context, req *genai.Request) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		System:    req.System,
		MaxTokens: maxTokens,
		Messages:  []anthropic.Message{buildMessage(req)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call claude: %w", err)
	}

	if string(resp.StopReason) == "refusal" {
		return "", fmt.Errorf("%w: claude refused the request", genai.ErrBlocked)
	}

	var text string
	for _, block := range resp.Content {
		text += block.GetText()
	}
	if text == "" {
		return "", genai.ErrNoText
	}
	return text, nil
}
