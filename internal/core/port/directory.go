package port

import (
	"context"

	"adbooks/internal/core/domain"
)

// Directory resolves orgs and campaigns through the platform's internal
// API. Visibility and ownership enforcement live behind this port, not
// in this service.
type Directory interface {
	// FetchOrgs returns the subset of the requested orgs that exist and
	// are visible under the requester's scope. Invisible or unknown ids
	// are silently dropped from the result.
	FetchOrgs(ctx context.Context, requester domain.Requester, orgIDs []string) ([]domain.Org, error)

	// FetchCampaign returns the campaign with the given id, or nil when
	// it does not exist or is not visible to the requester.
	FetchCampaign(ctx context.Context, requester domain.Requester, campaignID string) (*domain.Campaign, error)
}
