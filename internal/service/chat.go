package service

import (
	"context"
	"time"

	"core/internal/model"

	"go.uber.org/zap"
)

// ChatService runs the per-utterance pipeline: parse, filter, rank, format.
// Every code path yields a definite reply string; the service itself never
// returns an error for a chat turn.
type ChatService struct {
	catalog   *Catalog
	parser    *IntentParser
	filter    *FilterEngine
	formatter *ResponseFormatter
	state     *SearchStateStore
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	catalog *Catalog,
	parser *IntentParser,
	filter *FilterEngine,
	formatter *ResponseFormatter,
	state *SearchStateStore,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		catalog:   catalog,
		parser:    parser,
		filter:    filter,
		formatter: formatter,
		state:     state,
		logger:    logger,
	}
}

// ChatEventCallback receives streaming chat events
type ChatEventCallback func(event string, data any) error

// Respond handles one user utterance and produces the assistant's reply.
func (s *ChatService) Respond(ctx context.Context, sessionID, message string) *model.ChatResponse {
	start := time.Now()
	resp := &model.ChatResponse{SessionID: sessionID}

	hotels, status := s.catalog.Snapshot()
	switch status {
	case CatalogLoading:
		resp.Reply = s.formatter.LoadingReply()
		resp.Took = time.Since(start).Milliseconds()
		return resp
	case CatalogUnavailable:
		resp.Reply = s.formatter.UnavailableReply()
		resp.Took = time.Since(start).Milliseconds()
		return resp
	}

	parsed := s.parser.Parse(message)
	resp.Intent = parsed

	// The sink is overwritten whenever at least one structured constraint was
	// extracted, regardless of how many hotels end up matching.
	if !parsed.Intent.Conversational() && parsed.Criteria.HasConstraints() {
		s.state.Update(sessionID, model.StateUpdateFromCriteria(parsed.Criteria))
	}

	switch {
	case parsed.Intent.Conversational():
		resp.Reply = s.formatter.CannedReply(parsed.Intent)

	case len(hotels) == 0:
		resp.Reply = s.formatter.NoMatchesReply()

	case !parsed.Criteria.HasConstraints():
		if parsed.Intent == model.IntentBrowse {
			resp.Reply, resp.Results = s.formatter.FeaturedReply(s.featuredFallback(hotels))
		} else {
			resp.Reply = s.formatter.UnsureReply()
		}

	default:
		matches := s.filter.Apply(hotels, parsed.Criteria)
		if len(matches) == 0 {
			resp.Reply = s.formatter.NoMatchesReply()
		} else {
			resp.MatchCount = len(matches)
			resp.Reply, resp.Results = s.formatter.MatchesReply(len(matches), matches)
		}
	}

	resp.Took = time.Since(start).Milliseconds()
	s.logger.Debug("chat turn",
		zap.String("session_id", sessionID),
		zap.String("intent", string(parsed.Intent)),
		zap.Int("matches", resp.MatchCount),
	)
	return resp
}

// RespondStream runs the same pipeline while emitting progress events for the
// SSE surface. The only errors returned are the callback's own.
func (s *ChatService) RespondStream(ctx context.Context, sessionID, message string, callback ChatEventCallback) (*model.ChatResponse, error) {
	if err := callback("typing", map[string]any{"status": "Looking for hotels..."}); err != nil {
		return nil, err
	}

	resp := s.Respond(ctx, sessionID, message)

	if resp.Intent != nil {
		if err := callback("intent", resp.Intent); err != nil {
			return nil, err
		}
	}
	if len(resp.Results) > 0 {
		if err := callback("results", resp.Results); err != nil {
			return nil, err
		}
	}
	if err := callback("reply", map[string]any{"reply": resp.Reply}); err != nil {
		return nil, err
	}
	return resp, nil
}

// featuredFallback selects the promotional listing for a general-browse
// request: hotels marked featured, or the head of the collection when none
// are.
func (s *ChatService) featuredFallback(hotels []model.Hotel) []model.Hotel {
	featured := make([]model.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.Featured {
			featured = append(featured, h)
		}
	}
	if len(featured) == 0 {
		return hotels
	}
	return featured
}
