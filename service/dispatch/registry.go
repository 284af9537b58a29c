package dispatch

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/coocood/freecache"
	"go.uber.org/zap"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/twilioclient"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/repository"
)

// IRegistry answers whether a template is currently usable for
// sending and supplies its placeholder metadata
type IRegistry interface {
	// GetApprovalStatus queries the external approval authority. The
	// bool is false when the authority could not be reached; callers
	// must not treat that as a rejection.
	GetApprovalStatus(ctx context.Context, contentSid string) (string, bool)

	// GetCachedTemplate returns the last synced local record, the
	// fallback source of truth when the authority is unreachable or
	// uncredentialed.
	GetCachedTemplate(ctx context.Context, contentSid string) (model.NullTemplate, error)

	// IsApproved is the hard gate: live status approved, or cached
	// status approved when the live one is unobtainable.
	IsApproved(ctx context.Context, contentSid string) bool

	// Refresh pulls the authority's current status into the local
	// record. Runs outside the dispatch path.
	Refresh(ctx context.Context, contentSid string) (model.Template, error)
}

const (
	statusCacheSize       = 512 * 1024
	defaultStatusCacheTTL = 60 * time.Second
)

// Registry ...
type Registry struct {
	provider     repository.Provider
	templateRepo repository.Template
	contentAPI   twilioclient.ContentAPI
	logger       *zap.Logger

	statusCache *freecache.Cache
	statusTTL   time.Duration
}

var _ IRegistry = &Registry{}

// NewRegistry ...
func NewRegistry(
	provider repository.Provider,
	templateRepo repository.Template,
	contentAPI twilioclient.ContentAPI,
	statusTTL time.Duration,
	logger *zap.Logger,
) *Registry {
	if statusTTL <= 0 {
		statusTTL = defaultStatusCacheTTL
	}
	return &Registry{
		provider:     provider,
		templateRepo: templateRepo,
		contentAPI:   contentAPI,
		logger:       logger.With(zap.String("component", "template_registry")),

		statusCache: freecache.NewCache(statusCacheSize),
		statusTTL:   statusTTL,
	}
}

// GetApprovalStatus ...
func (r *Registry) GetApprovalStatus(ctx context.Context, contentSid string) (string, bool) {
	cacheKey := []byte("approval:" + contentSid)
	if data, err := r.statusCache.Get(cacheKey); err == nil {
		return string(data), true
	}

	status, err := r.contentAPI.FetchApprovalStatus(ctx, contentSid)
	if err != nil {
		if !errors.Is(err, twilioclient.ErrNotConfigured) {
			r.logger.Warn("approval authority unavailable",
				zap.String("content_sid", contentSid), zap.Error(err))
		}
		return "", false
	}

	_ = r.statusCache.Set(cacheKey, []byte(status.Status), int(r.statusTTL.Seconds()))
	return status.Status, true
}

// GetCachedTemplate ...
func (r *Registry) GetCachedTemplate(ctx context.Context, contentSid string) (model.NullTemplate, error) {
	return r.templateRepo.GetBySid(r.provider.Readonly(ctx), contentSid)
}

// IsApproved ...
func (r *Registry) IsApproved(ctx context.Context, contentSid string) bool {
	if status, ok := r.GetApprovalStatus(ctx, contentSid); ok {
		return model.NormalizeStatus(status) == model.TemplateStatusApproved
	}

	cached, err := r.GetCachedTemplate(ctx, contentSid)
	if err != nil {
		r.logger.Warn("read cached template",
			zap.String("content_sid", contentSid), zap.Error(err))
		return false
	}
	return cached.Valid && cached.Template.Approved()
}

// Refresh ...
func (r *Registry) Refresh(ctx context.Context, contentSid string) (model.Template, error) {
	status, err := r.contentAPI.FetchApprovalStatus(ctx, contentSid)
	if err != nil {
		return model.Template{}, err
	}

	cached, err := r.GetCachedTemplate(ctx, contentSid)
	if err != nil {
		return model.Template{}, err
	}

	template := cached.Template
	template.ContentSid = contentSid
	template.Status = status.Status
	if template.FriendlyName == "" {
		template.FriendlyName = status.Name
	}

	err = r.provider.Transact(ctx, func(ctx context.Context) error {
		if cached.Valid {
			return r.templateRepo.UpdateStatus(ctx, contentSid, status.Status)
		}
		return r.templateRepo.Upsert(ctx, template)
	})
	if err != nil {
		return model.Template{}, err
	}

	_ = r.statusCache.Set([]byte("approval:"+contentSid), []byte(status.Status), int(r.statusTTL.Seconds()))
	return template, nil
}

var placeholderRegexp = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractPlaceholders returns the distinct {{key}} placeholders of a
// template body in first-seen order, case-sensitive
func ExtractPlaceholders(body string) []string {
	matches := placeholderRegexp.FindAllStringSubmatch(body, -1)

	seen := make(map[string]struct{}, len(matches))
	var keys []string
	for _, match := range matches {
		key := match[1]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
