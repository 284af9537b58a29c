package dispatch

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/twilioclient"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/util"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/repository"
)

//go:generate moq -out dispatch_mocks_test.go . IService IRegistry
//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	SendNow(ctx context.Context, campaignID int64) (SendResult, error)
}

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrMissingTemplate ...
var ErrMissingTemplate = errors.New("campaign has no template reference")

// ErrTemplateNotApproved ...
var ErrTemplateNotApproved = errors.New("template not approved")

// ErrNoRecipients ...
var ErrNoRecipients = errors.New("no valid recipients")

// ErrSendInProgress ...
var ErrSendInProgress = errors.New("send already in progress for this campaign")

// SendFailure is one failed recipient of a dispatch run
type SendFailure struct {
	Address string `json:"address"`
	Error   string `json:"error,omitempty"`
}

// SendResult is the outcome of one send-now run
type SendResult struct {
	Success     bool           `json:"success"`
	Campaign    model.Campaign `json:"campaign"`
	SentCount   int            `json:"sent_count"`
	FailedCount int            `json:"failed_count"`
	Failures    []SendFailure  `json:"failures"`
}

const sendGuardStripes = 32

// sendGuard is the in-process single-flight marker per campaign id.
// The conditional BeginSend update remains the authoritative gate
// across processes.
type sendGuard struct {
	stripes [sendGuardStripes]sendGuardStripe
}

type sendGuardStripe struct {
	mu       sync.Mutex
	inFlight map[int64]struct{}
}

func newSendGuard() *sendGuard {
	g := &sendGuard{}
	for i := range g.stripes {
		g.stripes[i].inFlight = map[int64]struct{}{}
	}
	return g
}

func (g *sendGuard) stripe(campaignID int64) *sendGuardStripe {
	index := util.HashFunc(strconv.FormatInt(campaignID, 10)) % sendGuardStripes
	return &g.stripes[index]
}

func (g *sendGuard) acquire(campaignID int64) bool {
	s := g.stripe(campaignID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inFlight[campaignID]; ok {
		return false
	}
	s.inFlight[campaignID] = struct{}{}
	return true
}

func (g *sendGuard) release(campaignID int64) {
	s := g.stripe(campaignID)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, campaignID)
}

// Service drives send-now dispatch runs
type Service struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	leadRepo     repository.Lead
	messageRepo  repository.Message
	registry     IRegistry
	transport    twilioclient.MessageAPI
	logger       *zap.Logger

	guard *sendGuard
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	leadRepo repository.Lead,
	messageRepo repository.Message,
	registry IRegistry,
	transport twilioclient.MessageAPI,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:     provider,
		campaignRepo: campaignRepo,
		leadRepo:     leadRepo,
		messageRepo:  messageRepo,
		registry:     registry,
		transport:    transport,
		logger:       logger.With(zap.String("component", "dispatch")),

		guard: newSendGuard(),
	}
}

// SendNow executes one dispatch run for a campaign. Precondition
// failures return before any state is mutated. Recipients are visited
// strictly in lead_ids order and one recipient's failure never aborts
// the batch.
func (s *Service) SendNow(ctx context.Context, campaignID int64) (SendResult, error) {
	if !s.guard.acquire(campaignID) {
		return SendResult{}, ErrSendInProgress
	}
	defer s.guard.release(campaignID)

	readCtx := s.provider.Readonly(ctx)

	nullCampaign, err := s.campaignRepo.GetByID(readCtx, campaignID)
	if err != nil {
		return SendResult{}, err
	}
	if !nullCampaign.Valid {
		return SendResult{}, ErrCampaignNotFound
	}
	campaign := nullCampaign.Campaign

	if campaign.Status.Normalized() == model.CampaignStatusSending {
		return SendResult{}, ErrSendInProgress
	}
	if !CanBeginSend(campaign.Status) {
		return SendResult{}, InvalidStatusError{Status: campaign.Status.Normalized()}
	}

	if campaign.TemplateContentSid == "" {
		return SendResult{}, ErrMissingTemplate
	}

	if !s.registry.IsApproved(ctx, campaign.TemplateContentSid) {
		return SendResult{}, ErrTemplateNotApproved
	}

	leads, err := s.leadRepo.GetByIDs(readCtx, campaign.LeadIDs)
	if err != nil {
		return SendResult{}, err
	}
	if len(leads) == 0 {
		return SendResult{}, ErrNoRecipients
	}

	template, err := s.registry.GetCachedTemplate(ctx, campaign.TemplateContentSid)
	if err != nil {
		return SendResult{}, err
	}

	startedAt := time.Now()
	began := false
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		ok, err := s.campaignRepo.BeginSend(ctx, campaignID, startedAt)
		if err != nil {
			return err
		}
		began = ok
		return nil
	})
	if err != nil {
		return SendResult{}, err
	}
	if !began {
		// the snapshot passed the status gate above, so the row moved
		// under us. Re-read for an accurate error.
		fresh, err := s.campaignRepo.GetByID(readCtx, campaignID)
		if err != nil {
			return SendResult{}, err
		}
		status := campaign.Status.Normalized()
		if fresh.Valid {
			status = fresh.Campaign.Status.Normalized()
		}
		if status == model.CampaignStatusSending {
			return SendResult{}, ErrSendInProgress
		}
		return SendResult{}, InvalidStatusError{Status: status}
	}

	campaign.Status = model.CampaignStatusSending
	campaign.SentAt = sql.NullTime{Valid: true, Time: startedAt}

	var failures []SendFailure
	sent := 0
	attempted := 0
	terminalWritten := false

	finish := func(status model.CampaignStatus) error {
		finishedAt := time.Now()

		// detached from the caller: the terminal write must still land
		// when the request context is already canceled
		writeCtx, cancel := context.WithTimeout(context.Background(), terminalWriteTimeout)
		defer cancel()

		err := s.provider.Transact(writeCtx, func(ctx context.Context) error {
			return s.campaignRepo.FinishSend(ctx, campaignID, status, int64(sent), finishedAt)
		})
		if err != nil {
			return err
		}
		terminalWritten = true
		campaign.Status = status
		campaign.SentCount = int64(sent)
		campaign.LastSentAt = sql.NullTime{Valid: true, Time: finishedAt}
		return nil
	}

	// the campaign must never stay stuck in sending, even when the
	// loop below panics
	defer func() {
		if terminalWritten {
			return
		}
		if err := finish(TerminalStatus(sent, attempted, campaign.TargetCount)); err != nil {
			s.logger.Error("write terminal campaign status",
				zap.Int64("campaign_id", campaignID), zap.Error(err))
		}
	}()

	for _, lead := range leads {
		attempted++

		if lead.Phone == "" {
			failures = append(failures, SendFailure{
				Address: "unknown",
				Error:   "lead has no phone number",
			})
			sendAttemptsTotal.WithLabelValues("failed").Inc()
			continue
		}

		variables := ResolveVariables(campaign, template, lead.Record())

		accepted, err := s.transport.SendContent(ctx, lead.Phone, campaign.TemplateContentSid, variables)
		if err != nil || !accepted {
			failure := SendFailure{Address: lead.Phone}
			if err != nil {
				failure.Error = err.Error()
			}
			failures = append(failures, failure)
			sendAttemptsTotal.WithLabelValues("failed").Inc()
			s.logger.Warn("campaign send failed",
				zap.Int64("campaign_id", campaignID),
				zap.String("to", lead.Phone),
				zap.Error(err),
			)
			continue
		}

		sent++
		sendAttemptsTotal.WithLabelValues("sent").Inc()
		s.recordHistory(campaign, template, lead, variables)
	}

	status := TerminalStatus(sent, attempted, campaign.TargetCount)
	if err := finish(status); err != nil {
		return SendResult{}, err
	}
	dispatchRunsTotal.WithLabelValues(string(status)).Inc()

	s.logger.Info("campaign dispatch finished",
		zap.Int64("campaign_id", campaignID),
		zap.String("status", string(status)),
		zap.Int("sent", sent),
		zap.Int("failed", len(failures)),
	)

	return SendResult{
		Success:     true,
		Campaign:    campaign,
		SentCount:   sent,
		FailedCount: len(failures),
		Failures:    failures,
	}, nil
}

const (
	terminalWriteTimeout = 10 * time.Second
	historyWriteTimeout  = 10 * time.Second
)

// recordHistory appends the outgoing message to the lead's
// conversation history. Detached from the run: a history failure is
// logged, never counted against the dispatch.
func (s *Service) recordHistory(
	campaign model.Campaign, template model.NullTemplate,
	lead model.Lead, variables map[string]string,
) {
	content := campaign.TemplateContentSid
	if template.Valid {
		content = RenderBody(template.Template.Body, variables)
	}

	message := model.Message{
		LeadPhone: lead.Phone,
		Role:      model.MessageRoleAssistant,
		Content:   content,
		Tags:      model.StringList{"campaign", campaign.Name},
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()

		err := s.provider.Transact(ctx, func(ctx context.Context) error {
			return s.messageRepo.Insert(ctx, message)
		})
		if err != nil {
			s.logger.Warn("record conversation history",
				zap.String("to", lead.Phone), zap.Error(err))
		}
	}()
}
