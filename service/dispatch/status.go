package dispatch

import (
	"fmt"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
)

// CanBeginSend reports whether a campaign status allows starting a
// send-now run
func CanBeginSend(status model.CampaignStatus) bool {
	switch status.Normalized() {
	case model.CampaignStatusDraft, model.CampaignStatusScheduled, model.CampaignStatusPaused:
		return true
	default:
		return false
	}
}

// TerminalStatus resolves the status a finished run ends in. A run
// completes the campaign when its successes reach the target count;
// with no meaningful target, when every attempted recipient succeeded.
// Anything less leaves the campaign active with unfulfilled targets.
func TerminalStatus(successes int, attempted int, targetCount int64) model.CampaignStatus {
	if targetCount > 0 {
		if int64(successes) >= targetCount {
			return model.CampaignStatusCompleted
		}
		return model.CampaignStatusActive
	}

	if successes >= attempted {
		return model.CampaignStatusCompleted
	}
	return model.CampaignStatusActive
}

// InvalidStatusError reports a send-now attempt against a campaign
// whose status does not allow it
type InvalidStatusError struct {
	Status model.CampaignStatus
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("campaign cannot be sent in status: %s", e.Status)
}
