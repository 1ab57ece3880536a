package copywriter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemMessage = `
Draft a short sale announcement for the real estate listing described after
the line LISTING. The description has one "key: value" pair per line.

Mention the address, the district, the number of rooms and the price. Keep it
to two sentences, plain text, no exclamation marks, no emoji, no comments of
your own.

LISTING`

type Copywriter struct {
	openAIApiKey  string
	languageModel string
}

func NewCopywriter(openaiApiKey, languageModel string) *Copywriter {
	return &Copywriter{openAIApiKey: openaiApiKey, languageModel: languageModel}
}

// NewAnnouncementCompletion asks the language model for announcement copy
// built from the listing brief.
func (c *Copywriter) NewAnnouncementCompletion(brief string) (*string, error) {
	client := openai.NewClient(option.WithAPIKey(c.openAIApiKey))
	ctx := context.Background()

	question := systemMessage + "\n" + brief

	slog.Info("Sending a message to ChatGPT")

	// Prepare prompt
	prompt := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(question),
	}
	params := openai.ChatCompletionNewParams{
		Messages: prompt,
		Model:    c.languageModel,
	}

	// Ask OpenAI
	completion, err := client.Chat.Completions.New(ctx, params)

	// Check for errors
	if err != nil {
		var e *openai.Error
		if errors.As(err, &e) {
			switch e.StatusCode {
			case http.StatusTooManyRequests:
				return nil, errors.New("OpenAI API error: 429 Too many requests")
			case http.StatusForbidden:
				return nil, errors.New("OpenAI API error: 403 Forbidden")
			default:
				return nil, errors.New("OpenAI API error: unknown error")
			}
		}
		slog.Error("Failed to create completion", "question", question, "error", err)
		return nil, fmt.Errorf("failed to create completion: %w", err)
	}

	if len(completion.Choices) > 0 {
		return &completion.Choices[0].Message.Content, nil
	}

	return nil, errors.New("got empty choices from the OpenAI API")
}
