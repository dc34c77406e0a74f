package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/resumeforge/backend/internal/config"
	"github.com/resumeforge/backend/internal/model/chat"
	"github.com/resumeforge/backend/internal/model/resume"
)

// Service wraps the Ark-backed chat model behind the suggestion-engine
// contract used by the turn processor.
type Service struct {
	cfg   config.AIConfig
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt/model chain from configuration.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile suggestion chain: %w", err)
	}

	return &Service{cfg: cfg, chain: runnable}, nil
}

// Suggest sends the pending transcript and current document to the model
// and returns its raw text reply. The trailing transcript turn must be the
// user utterance being processed.
func (s *Service) Suggest(ctx context.Context, transcript []chat.Turn, doc resume.Document) (string, error) {
	if len(transcript) == 0 {
		return "", fmt.Errorf("transcript must contain the pending user turn")
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode current document: %w", err)
	}

	input := map[string]any{
		"system":  buildSystemPrompt(string(docJSON)),
		"history": s.buildHistoryMessages(transcript[:len(transcript)-1]),
		"query":   transcript[len(transcript)-1].Text(),
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run suggestion chain: %w", err)
	}

	log.Printf("[ai] generated suggestion, length=%d", len(response.Content))
	return response.Content, nil
}

func (s *Service) buildHistoryMessages(turns []chat.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if limit := s.cfg.HistoryLimit; limit > 0 && len(turns) > limit {
		startIdx = len(turns) - limit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(turn.Text()))
		case chat.RoleModel:
			history = append(history, schema.AssistantMessage(turn.Text(), nil))
		}
	}

	return history
}
