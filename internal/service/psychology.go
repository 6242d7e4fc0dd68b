package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/psychohealer/psychohealer/internal/filter"
	"github.com/psychohealer/psychohealer/internal/generator"
	"github.com/psychohealer/psychohealer/internal/model"
	"github.com/psychohealer/psychohealer/internal/router"
	"github.com/psychohealer/psychohealer/internal/store"
	"github.com/psychohealer/psychohealer/internal/video"
	"github.com/psychohealer/psychohealer/pkg/logger"
	"github.com/psychohealer/psychohealer/pkg/metrics"
)

// Fixed response texts for the degraded paths.
const (
	// unavailableMessage is returned when the selected backend has no
	// configured credentials.
	unavailableMessage = "Model not available."

	// apologyMessage is returned when the backend call itself fails.
	apologyMessage = "I apologize, but I'm having technical difficulties. Please try again in a moment. If you're experiencing a mental health crisis, please contact a crisis hotline immediately."
)

const (
	filterModel  = "filter"
	filterReason = "Non-psychology query filtered"
	errorModel   = "error"
	errorReason  = "Error occurred"
)

// PsychologyService runs the full pipeline: relevance filter, model router,
// response generation with conversation context, video recommendation and
// the conversation-store update.
type PsychologyService struct {
	router       *router.Router
	generator    *generator.Generator
	recommender  *video.Recommender
	store        store.Store
	pool         *Pool
	callTimeout  time.Duration
	defaultModel string
	logger       *logger.Logger
}

// New creates the pipeline service.
func New(
	r *router.Router,
	g *generator.Generator,
	v *video.Recommender,
	st store.Store,
	pool *Pool,
	callTimeout time.Duration,
	defaultModel string,
	log *logger.Logger,
) *PsychologyService {
	return &PsychologyService{
		router:       r,
		generator:    g,
		recommender:  v,
		store:        st,
		pool:         pool,
		callTimeout:  callTimeout,
		defaultModel: defaultModel,
		logger:       log,
	}
}

// Respond handles one chat query end to end. The returned channel resolves
// when the conversation-store write has completed; callers that do not care
// about write durability may ignore it. On the refusal and error paths the
// channel is already closed and nothing is written.
func (s *PsychologyService) Respond(ctx context.Context, query, userID string) (*model.ChatResponse, <-chan error) {
	res := filter.Classify(query)
	if !res.InScope {
		metrics.FilterDecisionsTotal.WithLabelValues("out_of_scope").Inc()
		s.logger.Info("query filtered",
			zap.String("user_id", userID),
			zap.String("reason", res.Reason),
		)
		return &model.ChatResponse{
			Response:             filter.RefusalMessage,
			YouTubeVideos:        []model.Video{},
			ModelUsed:            filterModel,
			ModelSelectionReason: filterReason,
			UserID:               userID,
		}, closedErrChan()
	}
	metrics.FilterDecisionsTotal.WithLabelValues("in_scope").Inc()

	decision := s.router.Select(query)

	summary, err := s.store.ContextSummary(ctx, userID)
	if err != nil {
		s.logger.Warn("context summary unavailable", zap.Error(err), zap.String("user_id", userID))
		summary = "New user - no previous history."
	}

	// Generation and video search are independent; run both on the pool and
	// wait for both before assembling the response.
	var (
		response string
		genErr   error
		videos   []model.Video
	)
	genDone := s.pool.Submit(func() {
		cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		response, genErr = s.generator.Generate(cctx, query, summary, decision.Backend)
	})
	videoDone := s.pool.Submit(func() {
		cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		videos = s.recommender.Recommend(cctx, query)
	})
	<-genDone
	<-videoDone

	if genErr != nil {
		if errors.Is(genErr, generator.ErrBackendUnavailable) {
			response = unavailableMessage
		} else {
			// Original error is debug metadata only; the user sees the
			// fixed apology.
			s.logger.Error("generation failed",
				zap.Error(genErr),
				zap.String("backend", decision.Backend),
				zap.String("user_id", userID),
			)
			return &model.ChatResponse{
				Response:             apologyMessage,
				YouTubeVideos:        []model.Video{},
				ModelUsed:            errorModel,
				ModelSelectionReason: errorReason,
				UserID:               userID,
			}, closedErrChan()
		}
	}

	if videos == nil {
		videos = []model.Video{}
	}

	persisted := s.persist(userID, query, response, model.EntryMetadata{
		ModelUsed:         decision.Backend,
		VideosRecommended: len(videos),
	})

	return &model.ChatResponse{
		Response:             response,
		YouTubeVideos:        videos,
		ModelUsed:            decision.Backend,
		ModelSelectionReason: decision.Reason,
		UserID:               userID,
	}, persisted
}

// persist dispatches the store append on the pool without making the caller
// wait. The write runs against a background context so a finished request
// does not cancel it.
func (s *PsychologyService) persist(userID, message, response string, meta model.EntryMetadata) <-chan error {
	out := make(chan error, 1)
	s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.callTimeout)
		defer cancel()

		err := s.store.Append(ctx, userID, message, response, meta)
		if err != nil {
			metrics.StoreAppendsTotal.WithLabelValues("error").Inc()
			s.logger.Error("history append failed", zap.Error(err), zap.String("user_id", userID))
		} else {
			metrics.StoreAppendsTotal.WithLabelValues("success").Inc()
		}
		out <- err
		close(out)
	})
	return out
}

// History returns a user's recent conversation entries.
func (s *PsychologyService) History(ctx context.Context, userID string, limit int) ([]model.Entry, error) {
	return s.store.History(ctx, userID, limit)
}

// Status reports the configured backends.
func (s *PsychologyService) Status() model.StatusResponse {
	return model.StatusResponse{
		Status:          "active",
		AvailableModels: s.generator.Backends(),
		DefaultModel:    s.defaultModel,
		AutoSelection:   true,
	}
}

func closedErrChan() <-chan error {
	ch := make(chan error)
	close(ch)
	return ch
}
