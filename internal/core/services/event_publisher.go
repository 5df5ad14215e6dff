package services

import (
	"context"
	"log/slog"

	"github.com/meridianpress/ledger/internal/core/domain"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/middleware"
)

// logTransitionPublisher is the default audit collaborator stub: it logs each
// transition event through the request-scoped structured logger. Embedding
// systems replace it with a real notification/audit dispatcher.
type logTransitionPublisher struct{}

// NewLogTransitionPublisher creates the slog-backed transition publisher.
func NewLogTransitionPublisher() portssvc.TransitionPublisher {
	return &logTransitionPublisher{}
}

var _ portssvc.TransitionPublisher = (*logTransitionPublisher)(nil)

func (p *logTransitionPublisher) PublishTransition(ctx context.Context, event domain.TransitionEvent) {
	middleware.GetLoggerFromCtx(ctx).Info("Entry status transition",
		slog.String("entry_id", event.EntryID),
		slog.String("company_id", event.CompanyID),
		slog.String("from_status", string(event.FromStatus)),
		slog.String("to_status", string(event.ToStatus)),
		slog.String("actor", event.Actor),
		slog.Time("timestamp", event.Timestamp),
	)
}
