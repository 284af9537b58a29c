package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/twilioclient"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/repository"
)

type serviceTest struct {
	provider  *repository.ProviderMock
	campaigns *repository.CampaignMock
	leads     *repository.LeadMock
	messages  *repository.MessageMock
	registry  *IRegistryMock
	transport *twilioclient.MessageAPIMock

	mut            sync.Mutex
	insertedMsgs   []model.Message
	historyWritten chan struct{}

	service *Service
}

func newServiceTest() *serviceTest {
	s := &serviceTest{
		provider:  &repository.ProviderMock{},
		campaigns: &repository.CampaignMock{},
		leads:     &repository.LeadMock{},
		messages:  &repository.MessageMock{},
		registry:  &IRegistryMock{},
		transport: &twilioclient.MessageAPIMock{},

		historyWritten: make(chan struct{}, 16),
	}

	s.provider.ReadonlyFunc = func(ctx context.Context) context.Context {
		return ctx
	}
	s.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	s.messages.InsertFunc = func(ctx context.Context, message model.Message) error {
		s.mut.Lock()
		s.insertedMsgs = append(s.insertedMsgs, message)
		s.mut.Unlock()
		s.historyWritten <- struct{}{}
		return nil
	}

	s.service = NewService(
		s.provider, s.campaigns, s.leads, s.messages,
		s.registry, s.transport, zap.NewNop(),
	)
	return s
}

func (s *serviceTest) stubCampaign(campaign model.Campaign) {
	s.campaigns.GetByIDFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: campaign}, nil
	}
}

func (s *serviceTest) stubApproved(template model.NullTemplate) {
	s.registry.IsApprovedFunc = func(ctx context.Context, contentSid string) bool {
		return true
	}
	s.registry.GetCachedTemplateFunc = func(ctx context.Context, contentSid string) (model.NullTemplate, error) {
		return template, nil
	}
}

func (s *serviceTest) stubLeads(leads []model.Lead) {
	s.leads.GetByIDsFunc = func(ctx context.Context, ids []string) ([]model.Lead, error) {
		return leads, nil
	}
}

func (s *serviceTest) stubSendLifecycle() {
	s.campaigns.BeginSendFunc = func(ctx context.Context, campaignID int64, now time.Time) (bool, error) {
		return true, nil
	}
	s.campaigns.FinishSendFunc = func(
		ctx context.Context, campaignID int64,
		status model.CampaignStatus, sentCount int64, now time.Time,
	) error {
		return nil
	}
}

func (s *serviceTest) waitHistory(t *testing.T, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		select {
		case <-s.historyWritten:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for history write")
		}
	}
}

func sampleCampaign() model.Campaign {
	return model.Campaign{
		ID:                 11,
		Name:               "launch",
		Status:             model.CampaignStatusDraft,
		TemplateContentSid: "HX1",
		LeadIDs:            model.StringList{"L1", "L2"},
		TargetCount:        2,
	}
}

func sampleTemplate() model.NullTemplate {
	return model.NullTemplate{
		Valid: true,
		Template: model.Template{
			ContentSid: "HX1",
			Status:     "approved",
			Body:       "Hi {{1}}",
		},
	}
}

func TestService__SendNow__Campaign_Not_Found(t *testing.T) {
	s := newServiceTest()
	s.campaigns.GetByIDFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, ErrCampaignNotFound, err)
	assert.Equal(t, 0, len(s.campaigns.BeginSendCalls()))
	assert.Equal(t, 0, len(s.campaigns.FinishSendCalls()))
}

func TestService__SendNow__Missing_Template(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.TemplateContentSid = ""
	s.stubCampaign(campaign)

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, ErrMissingTemplate, err)
	assert.Equal(t, 0, len(s.registry.IsApprovedCalls()))
	assert.Equal(t, 0, len(s.campaigns.BeginSendCalls()))
}

func TestService__SendNow__Template_Not_Approved(t *testing.T) {
	s := newServiceTest()
	s.stubCampaign(sampleCampaign())
	s.registry.IsApprovedFunc = func(ctx context.Context, contentSid string) bool {
		return false
	}

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, ErrTemplateNotApproved, err)
	assert.Equal(t, 0, len(s.transport.SendContentCalls()))
	assert.Equal(t, 0, len(s.campaigns.BeginSendCalls()))
	assert.Equal(t, 0, len(s.campaigns.FinishSendCalls()))
}

func TestService__SendNow__No_Recipients(t *testing.T) {
	s := newServiceTest()
	s.stubCampaign(sampleCampaign())
	s.registry.IsApprovedFunc = func(ctx context.Context, contentSid string) bool {
		return true
	}
	s.stubLeads(nil)

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, ErrNoRecipients, err)
	assert.Equal(t, 0, len(s.campaigns.BeginSendCalls()))
}

func TestService__SendNow__Rejected_While_Sending(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.Status = model.CampaignStatusSending
	s.stubCampaign(campaign)

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, ErrSendInProgress, err)
	assert.Equal(t, 0, len(s.campaigns.BeginSendCalls()))
	assert.Equal(t, 0, len(s.transport.SendContentCalls()))
	assert.Equal(t, 0, len(s.campaigns.FinishSendCalls()))
}

func TestService__SendNow__Rejected_Terminal_Status(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.Status = "Completed"
	s.stubCampaign(campaign)

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, InvalidStatusError{Status: model.CampaignStatusCompleted}, err)
	assert.Equal(t, 0, len(s.campaigns.BeginSendCalls()))
}

func TestService__SendNow__Begin_Race_Reports_Fresh_Status(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	reads := 0
	s.campaigns.GetByIDFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		reads++
		if reads > 1 {
			raced := campaign
			raced.Status = model.CampaignStatusSending
			return model.NullCampaign{Valid: true, Campaign: raced}, nil
		}
		return model.NullCampaign{Valid: true, Campaign: campaign}, nil
	}
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{{ID: "L1", Phone: "+8491"}})
	s.campaigns.BeginSendFunc = func(ctx context.Context, campaignID int64, now time.Time) (bool, error) {
		return false, nil
	}

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, ErrSendInProgress, err)
	assert.Equal(t, 2, reads)
	assert.Equal(t, 0, len(s.campaigns.FinishSendCalls()))
}

func TestService__SendNow__Begin_Race_To_Terminal_Status(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	reads := 0
	s.campaigns.GetByIDFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		reads++
		if reads > 1 {
			raced := campaign
			raced.Status = model.CampaignStatusCompleted
			return model.NullCampaign{Valid: true, Campaign: raced}, nil
		}
		return model.NullCampaign{Valid: true, Campaign: campaign}, nil
	}
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{{ID: "L1", Phone: "+8491"}})
	s.campaigns.BeginSendFunc = func(ctx context.Context, campaignID int64, now time.Time) (bool, error) {
		return false, nil
	}

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, InvalidStatusError{Status: model.CampaignStatusCompleted}, err)
}

func TestService__SendNow__All_Sent_Completes_Campaign(t *testing.T) {
	s := newServiceTest()
	s.stubCampaign(sampleCampaign())
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{
		{ID: "L1", Phone: "+8491", Name: "Bo"},
		{ID: "L2", Phone: "+8492", Name: "Cy"},
	})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return true, nil
	}

	result, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Success)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 0, result.FailedCount)
	assert.Equal(t, model.CampaignStatusCompleted, result.Campaign.Status)
	assert.Equal(t, int64(2), result.Campaign.SentCount)

	sendCalls := s.transport.SendContentCalls()
	assert.Equal(t, 2, len(sendCalls))
	assert.Equal(t, "+8491", sendCalls[0].To)
	assert.Equal(t, "HX1", sendCalls[0].ContentSid)
	assert.Equal(t, map[string]string{"1": ""}, sendCalls[0].Variables)
	assert.Equal(t, "+8492", sendCalls[1].To)

	finishCalls := s.campaigns.FinishSendCalls()
	assert.Equal(t, 1, len(finishCalls))
	assert.Equal(t, model.CampaignStatusCompleted, finishCalls[0].Status)
	assert.Equal(t, int64(2), finishCalls[0].SentCount)
}

func TestService__SendNow__Bound_Variables_Per_Recipient(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.VariableBindings = model.JSONMap{"1": "name"}
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{
		{ID: "L1", Phone: "+8491", Name: "Bo"},
		{ID: "L2", Phone: "+8492", Name: "Cy"},
	})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return true, nil
	}

	result, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusCompleted, result.Campaign.Status)

	sendCalls := s.transport.SendContentCalls()
	assert.Equal(t, 2, len(sendCalls))
	assert.Equal(t, map[string]string{"1": "Bo"}, sendCalls[0].Variables)
	assert.Equal(t, map[string]string{"1": "Cy"}, sendCalls[1].Variables)
}

func TestService__SendNow__Partial_Failure_Continues(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1", "L2", "L3"}
	campaign.TargetCount = 3
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{
		{ID: "L1", Phone: "+8491"},
		{ID: "L2", Phone: "+8492"},
		{ID: "L3", Phone: "+8493"},
	})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		if to == "+8492" {
			return false, errors.New("carrier rejected")
		}
		return true, nil
	}

	result, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, []SendFailure{
		{Address: "+8492", Error: "carrier rejected"},
	}, result.Failures)
	assert.Equal(t, model.CampaignStatusActive, result.Campaign.Status)
	assert.Equal(t, 3, len(s.transport.SendContentCalls()))
}

func TestService__SendNow__Lead_Without_Phone(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.TargetCount = 0
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{
		{ID: "L1", Name: "Bo"},
		{ID: "L2", Phone: "+8492"},
	})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return true, nil
	}

	result, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, []SendFailure{
		{Address: "unknown", Error: "lead has no phone number"},
	}, result.Failures)
	assert.Equal(t, model.CampaignStatusActive, result.Campaign.Status)
	assert.Equal(t, 1, len(s.transport.SendContentCalls()))
}

func TestService__SendNow__Rejected_Without_Error(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1"}
	campaign.TargetCount = 1
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{{ID: "L1", Phone: "+8491"}})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return false, nil
	}

	result, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, result.SentCount)
	assert.Equal(t, []SendFailure{{Address: "+8491"}}, result.Failures)
	assert.Equal(t, model.CampaignStatusActive, result.Campaign.Status)
}

func TestService__SendNow__Target_Reached_By_Subset(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1", "L2", "L3"}
	campaign.TargetCount = 2
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{
		{ID: "L1", Phone: "+8491"},
		{ID: "L2", Phone: "+8492"},
		{ID: "L3", Phone: "+8493"},
	})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return to != "+8493", nil
	}

	result, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, model.CampaignStatusCompleted, result.Campaign.Status)
}

func TestService__SendNow__Records_History(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1"}
	campaign.TargetCount = 1
	campaign.VariableBindings = model.JSONMap{"1": "name"}
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{{ID: "L1", Phone: "+8491", Name: "Bo"}})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return true, nil
	}

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)

	s.waitHistory(t, 1)

	s.mut.Lock()
	defer s.mut.Unlock()
	assert.Equal(t, 1, len(s.insertedMsgs))
	assert.Equal(t, "+8491", s.insertedMsgs[0].LeadPhone)
	assert.Equal(t, model.MessageRoleAssistant, s.insertedMsgs[0].Role)
	assert.Equal(t, "Hi Bo", s.insertedMsgs[0].Content)
	assert.Equal(t, model.StringList{"campaign", "launch"}, s.insertedMsgs[0].Tags)
}

func TestService__SendNow__History_Failure_Does_Not_Affect_Result(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1"}
	campaign.TargetCount = 1
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{{ID: "L1", Phone: "+8491"}})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return true, nil
	}
	s.messages.InsertFunc = func(ctx context.Context, message model.Message) error {
		defer func() { s.historyWritten <- struct{}{} }()
		return errors.New("history store down")
	}

	result, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, model.CampaignStatusCompleted, result.Campaign.Status)

	s.waitHistory(t, 1)
}

func TestService__SendNow__Second_Call_Rejected_While_First_Running(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1"}
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{{ID: "L1", Phone: "+8491"}})
	s.stubSendLifecycle()

	entered := make(chan struct{})
	release := make(chan struct{})
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		close(entered)
		<-release
		return true, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := s.service.SendNow(newContext(), 11)
		done <- err
	}()

	<-entered
	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, ErrSendInProgress, err)

	close(release)
	assert.Equal(t, nil, <-done)
	assert.Equal(t, 1, len(s.transport.SendContentCalls()))
}

func TestService__SendNow__Panic_In_Loop_Still_Writes_Terminal_Status(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1", "L2"}
	campaign.TargetCount = 2
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{
		{ID: "L1", Phone: "+8491"},
		{ID: "L2", Phone: "+8492"},
	})
	s.stubSendLifecycle()
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		if to == "+8492" {
			panic("transport blew up")
		}
		return true, nil
	}

	assert.Panics(t, func() {
		_, _ = s.service.SendNow(newContext(), 11)
	})

	finishCalls := s.campaigns.FinishSendCalls()
	assert.Equal(t, 1, len(finishCalls))
	assert.Equal(t, model.CampaignStatusActive, finishCalls[0].Status)
	assert.Equal(t, int64(1), finishCalls[0].SentCount)
}

func TestService__SendNow__Canceled_Context_Still_Writes_Terminal_Status(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{
		{ID: "L1", Phone: "+8491"},
		{ID: "L2", Phone: "+8492"},
	})
	s.campaigns.BeginSendFunc = func(ctx context.Context, campaignID int64, now time.Time) (bool, error) {
		return true, nil
	}

	var finishCtxErr error
	s.campaigns.FinishSendFunc = func(
		ctx context.Context, campaignID int64,
		status model.CampaignStatus, sentCount int64, now time.Time,
	) error {
		finishCtxErr = ctx.Err()
		return nil
	}

	ctx, cancel := context.WithCancel(newContext())
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		cancel()
		return false, ctx.Err()
	}

	result, err := s.service.SendNow(ctx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, result.SentCount)
	assert.Equal(t, 2, result.FailedCount)
	assert.Equal(t, model.CampaignStatusActive, result.Campaign.Status)

	finishCalls := s.campaigns.FinishSendCalls()
	assert.Equal(t, 1, len(finishCalls))
	assert.Equal(t, model.CampaignStatusActive, finishCalls[0].Status)
	assert.Equal(t, nil, finishCtxErr)
}

func TestService__SendNow__Finish_Error_Propagated(t *testing.T) {
	s := newServiceTest()
	campaign := sampleCampaign()
	campaign.LeadIDs = model.StringList{"L1"}
	campaign.TargetCount = 1
	s.stubCampaign(campaign)
	s.stubApproved(sampleTemplate())
	s.stubLeads([]model.Lead{{ID: "L1", Phone: "+8491"}})
	s.campaigns.BeginSendFunc = func(ctx context.Context, campaignID int64, now time.Time) (bool, error) {
		return true, nil
	}
	s.campaigns.FinishSendFunc = func(
		ctx context.Context, campaignID int64,
		status model.CampaignStatus, sentCount int64, now time.Time,
	) error {
		return errors.New("db down")
	}
	s.transport.SendContentFunc = func(
		ctx context.Context, to string, contentSid string, variables map[string]string,
	) (bool, error) {
		return true, nil
	}

	_, err := s.service.SendNow(newContext(), 11)
	assert.Equal(t, errors.New("db down"), err)
}
