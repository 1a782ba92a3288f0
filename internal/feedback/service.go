package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Bakespear/Tasty-Bites/internal/ai"
	"github.com/Bakespear/Tasty-Bites/internal/storage"
)

// Record is the document persisted to the feedbacks collection.
type Record struct {
	CustomerName  string    `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	Rating        int       `json:"rating" bson:"rating"`
	Comment       string    `json:"comment" bson:"comment"`
	AIResponse    string    `json:"aiResponse" bson:"aiResponse"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// Generator is the slice of the AI client the feedback service needs.
type Generator interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Saver is the slice of the storage gateway the feedback service needs.
type Saver interface {
	Save(ctx context.Context, collection string, doc interface{}) (string, error)
}

// SubmitInput is a validated feedback submission.
type SubmitInput struct {
	CustomerName  string
	CustomerEmail string
	Rating        int
	Comment       string
}

// Service stores customer feedback together with an AI-generated
// reply. The AI call is best-effort; a canned reply stands in when the
// model is unconfigured or failing.
type Service struct {
	store   Saver
	gen     Generator
	logger  *slog.Logger
	nowFunc func() time.Time
}

func NewService(store Saver, gen Generator, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		gen:     gen,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Submit generates a reply, persists the feedback, and returns the
// reply text with the storage location used.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (string, string, error) {
	reply := ai.DefaultFeedbackReply
	if s.gen.Configured() {
		generated, err := s.gen.GenerateContent(ctx, ai.FeedbackPrompt(in.Rating, in.Comment))
		if err != nil {
			s.logger.Warn("ai reply generation failed, using default",
				slog.String("error", err.Error()))
		} else {
			reply = generated
		}
	}

	record := Record{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Rating:        in.Rating,
		Comment:       in.Comment,
		AIResponse:    reply,
		CreatedAt:     s.nowFunc().UTC(),
	}

	location, err := s.store.Save(ctx, storage.CollectionFeedbacks, record)
	if err != nil {
		return "", "", fmt.Errorf("save feedback: %w", err)
	}

	s.logger.Info("feedback saved", slog.String("stored", location))
	return reply, location, nil
}
