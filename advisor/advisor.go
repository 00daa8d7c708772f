// Package advisor asks a Gemini model for a short comment on the month's
// cashback summary. It is a purely additive convenience: nothing else in the
// application depends on it.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nkiseleva/moneta"
	"google.golang.org/genai"
)

// defaultModel is the model used when the caller does not pick one.
const defaultModel = "gemini-2.5-flash"

const promptHeader = "Ты — личный финансовый помощник. Ниже суммы кэшбэка по категориям за месяц.\n" +
	"Дай короткий совет (не больше трёх предложений), в каких категориях стоило бы тратить выгоднее.\n\n"

// Advisor holds the chat with the advice model.
type Advisor struct {
	ModelName string
	chat      *genai.Chat
}

// New returns an advisor on the default model.
func New() *Advisor { return &Advisor{ModelName: defaultModel} }

// Start opens the chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, nil, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Advise sends the summary for the given month and returns the model's note.
func (a *Advisor) Advise(ctx context.Context, summary *moneta.CashbackSummary, year int, month time.Month) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("advisor is not started")
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	fmt.Fprintf(&b, "Месяц: %d-%02d\n", year, month)
	for _, category := range summary.Categories() {
		fmt.Fprintf(&b, "- %s: %s\n", category, summary.Total(category).String())
	}

	resp, err := a.chat.Send(ctx, &genai.Part{Text: b.String()})
	if err != nil {
		return "", fmt.Errorf("advice request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.ModelName)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
