package memory

import (
	"context"
	"time"

	"github.com/vanihq/vani/internal/language"
)

// TurnRecord is one persisted user or assistant turn of the transcript log.
type TurnRecord struct {
	ID        string            `json:"id"`
	SessionID string            `json:"session_id"`
	Speaker   string            `json:"speaker"`
	Text      string            `json:"text"`
	Language  language.Language `json:"language"`
	Intent    string            `json:"intent"`
	CreatedAt time.Time         `json:"created_at"`
}

// Store persists the transcript across turns. It is a write-behind log: the
// dispatcher's bounded context store remains the working memory, and store
// failures never fail a turn.
type Store interface {
	SaveTurn(ctx context.Context, record TurnRecord) error
	RecentTranscript(ctx context.Context, sessionID string, limit int) ([]TurnRecord, error)
	Close() error
}

func languageFromString(tag string) language.Language {
	if lang, ok := language.Parse(tag); ok {
		return lang
	}
	return language.English
}
