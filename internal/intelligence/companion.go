package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/llm"
)

// CompanionReply is a single assistant message shown to the user.
type CompanionReply struct {
	Text   string
	Source string // "llm" or "deterministic"
}

// ConversationTurn is one message in a chat history.
type ConversationTurn struct {
	Role    string // "User" or "Assistant"
	Content string
}

// Conversation holds multi-turn chat state for a single session.
type Conversation struct {
	Turns []ConversationTurn
}

// GreetingContext carries the session state used to personalize a greeting.
type GreetingContext struct {
	Name         string
	TimeOfDay    string // "morning", "afternoon", "evening", "night"
	LastMood     *domain.MoodLevel
	DaysSince    int // days since the last check-in, 0 when unknown
	DueReminders int
}

// CompanionService generates supportive conversational text. Every method
// degrades to the local analyzer when the language model is unreachable, so
// callers always get a usable reply.
type CompanionService interface {
	// Reply answers one chat message, appending both turns to conv.
	Reply(ctx context.Context, conv *Conversation, message string) (*CompanionReply, error)

	// Greeting opens a session with a personalized welcome.
	Greeting(ctx context.Context, gc GreetingContext) (*CompanionReply, error)

	// Reflect offers a short reflection on a journal entry.
	Reflect(ctx context.Context, entry string) (*CompanionReply, error)
}

type companionService struct {
	client   llm.LLMClient
	analyzer *analysis.Analyzer
}

// NewCompanionService creates a CompanionService backed by an LLM client,
// with the analyzer as its deterministic fallback.
func NewCompanionService(client llm.LLMClient, analyzer *analysis.Analyzer) CompanionService {
	return &companionService{client: client, analyzer: analyzer}
}

func (s *companionService) Reply(ctx context.Context, conv *Conversation, message string) (*CompanionReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is empty")
	}

	reply := s.resolveChat(ctx, conv, message)

	if conv != nil {
		conv.Turns = append(conv.Turns,
			ConversationTurn{Role: "User", Content: message},
			ConversationTurn{Role: "Assistant", Content: reply.Text},
		)
	}

	return reply, nil
}

func (s *companionService) Greeting(ctx context.Context, gc GreetingContext) (*CompanionReply, error) {
	text, err := s.generate(ctx, llm.TaskGreeting, greetingSystemPrompt, buildGreetingUserPrompt(gc))
	if err != nil {
		return &CompanionReply{Text: DeterministicGreeting(gc), Source: "deterministic"}, nil
	}
	return &CompanionReply{Text: text, Source: "llm"}, nil
}

func (s *companionService) Reflect(ctx context.Context, entry string) (*CompanionReply, error) {
	if strings.TrimSpace(entry) == "" {
		return nil, fmt.Errorf("entry is empty")
	}

	text, err := s.generate(ctx, llm.TaskReflect, reflectSystemPrompt, entry)
	if err != nil {
		return &CompanionReply{Text: s.deterministicReflection(entry), Source: "deterministic"}, nil
	}
	return &CompanionReply{Text: text, Source: "llm"}, nil
}

func (s *companionService) resolveChat(ctx context.Context, conv *Conversation, message string) *CompanionReply {
	text, err := s.generate(ctx, llm.TaskChat, chatSystemPrompt, buildChatUserPrompt(conv, message))
	if err != nil {
		return &CompanionReply{Text: s.analyzer.Respond(message), Source: "deterministic"}
	}
	return &CompanionReply{Text: text, Source: "llm"}
}

func (s *companionService) generate(ctx context.Context, task llm.TaskType, systemPrompt, userPrompt string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return "", fmt.Errorf("llm generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("llm returned an empty response")
	}
	return text, nil
}

// deterministicReflection pairs an empathic response with a follow-up prompt,
// mirroring what the chat loop does without a model.
func (s *companionService) deterministicReflection(entry string) string {
	return s.analyzer.Respond(entry) + " " + s.analyzer.SuggestPrompt(entry)
}
