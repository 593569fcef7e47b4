package leads

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
	"github.com/Guidoll2/fontaneriabarcelona/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSpamDetected marks a honeypot hit. Handlers must answer with a generic
// rejection that does not hint at the mechanism.
var ErrSpamDetected = errors.New("spam detected")

// Notifier sends the internal owner notification for a new lead.
type Notifier interface {
	SendQuoteNotification(ctx context.Context, lead QuoteLead) error
	SendChlorinatorNotification(ctx context.Context, lead ChlorinatorLead) error
}

type Service struct {
	repo     Repository
	spam     validation.SpamPolicy
	notifier Notifier
	location *time.Location
	log      *slog.Logger
}

// NewService wires the lead pipeline. repo and notifier may be nil when the
// corresponding integration is not configured; both are best-effort and
// never fail a submission that already passed validation.
func NewService(repo Repository, notifier Notifier, location *time.Location, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		spam:     validation.NewSpamPolicy(),
		notifier: notifier,
		location: location,
		log:      log,
	}
}

// CreateQuote accepts a validated quote submission, persists it when a
// database is configured and notifies the owner. Persistence and
// notification failures are logged and swallowed so a transient integration
// problem never loses the lead acknowledgment.
func (s *Service) CreateQuote(ctx context.Context, req QuoteRequest, meta Meta) (QuoteLead, error) {
	if s.spam.IsSpam(req.Fax) {
		return QuoteLead{}, ErrSpamDetected
	}

	lead := QuoteLead{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Service:   strings.TrimSpace(req.Service),
		Zone:      strings.TrimSpace(req.Zone),
		Message:   strings.TrimSpace(req.Message),
		Locale:    string(i18n.Parse(req.Locale)),
		CreatedAt: time.Now().In(s.location),
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}

	if s.repo != nil {
		if err := s.repo.CreateQuote(ctx, lead); err != nil {
			s.log.Warn("quote create: persistence failed",
				slog.String("lead_id", lead.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.notifyAsync(lead.ID, func(ctx context.Context) error {
		return s.notifier.SendQuoteNotification(ctx, lead)
	})

	return lead, nil
}

// CreateChlorinator accepts a chlorinator-landing submission. Same policy as
// quotes: integrations are best-effort.
func (s *Service) CreateChlorinator(ctx context.Context, req ChlorinatorRequest, meta Meta) (ChlorinatorLead, error) {
	if s.spam.IsSpam(req.Fax) {
		return ChlorinatorLead{}, ErrSpamDetected
	}

	poolSize := strings.TrimSpace(req.PoolSize)
	if poolSize == "" {
		poolSize = "No especificado"
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = "clorador-salino"
	}

	lead := ChlorinatorLead{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		City:      strings.TrimSpace(req.City),
		PoolSize:  poolSize,
		Message:   strings.TrimSpace(req.Message),
		Source:    source,
		Locale:    string(i18n.Parse(req.Locale)),
		CreatedAt: time.Now().In(s.location),
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}

	if s.repo != nil {
		if err := s.repo.CreateChlorinator(ctx, lead); err != nil {
			s.log.Warn("chlorinator create: persistence failed",
				slog.String("lead_id", lead.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.notifyAsync(lead.ID, func(ctx context.Context) error {
		return s.notifier.SendChlorinatorNotification(ctx, lead)
	})

	return lead, nil
}

// notifyAsync dispatches the owner email off the request path. The request
// has already been acknowledged by the time this runs, so failures only log.
func (s *Service) notifyAsync(leadID string, send func(context.Context) error) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer cancel()
		if err := send(ctx); err != nil {
			s.log.Warn("lead notification failed",
				slog.String("lead_id", leadID),
				slog.String("error", err.Error()),
			)
		}
	}()
}
