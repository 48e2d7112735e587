package llmprovider

import (
	"context"

	"event-approval/pkg/qwen"
)

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var system *qwen.Content
	if req.SystemInstruction != nil {
		c := toQwenContent(*req.SystemInstruction)
		system = &c
	}
	msgs := make([]qwen.Content, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = toQwenContent(m)
	}

	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: system,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONOutput,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: classify(ctx, err)}
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return &Response{
		Content:      Message{Role: resp.Content.Role, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *QwenAdapter) Name() string {
	return "qwen"
}

func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

func toQwenContent(m Message) qwen.Content {
	parts := make([]qwen.Part, len(m.Parts))
	for i, p := range m.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return qwen.Content{Role: m.Role, Parts: parts}
}
