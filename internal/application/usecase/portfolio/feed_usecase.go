package portfolio

import (
	"context"
	"fmt"

	"github.com/gorilla/feeds"

	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/internal/renderer"
)

const feedLimit = 20

// FeedUseCase exposes recently published portfolios as an RSS feed with
// absolute share links.
type FeedUseCase struct {
	repo          portfolio.Repository
	publicBaseURL string
}

func NewFeedUseCase(repo portfolio.Repository, publicBaseURL string) *FeedUseCase {
	return &FeedUseCase{repo: repo, publicBaseURL: publicBaseURL}
}

func (uc *FeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	records, err := uc.repo.ListRecent(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       "Folio Forge — latest portfolios",
		Link:        &feeds.Link{Href: uc.publicBaseURL},
		Description: "Recently published portfolio pages",
	}

	for _, rec := range records {
		name := rec.Profile.PersonalInfo.Name
		if name == "" {
			name = renderer.PlaceholderName
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          rec.ShareID.String(),
			Title:       fmt.Sprintf("%s — %s", name, rec.SelectedTheme),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/p/%s", uc.publicBaseURL, rec.ShareID)},
			Description: rec.Profile.Summary,
			Created:     rec.CreatedAt,
			Updated:     rec.UpdatedAt,
		})
	}

	return feed, nil
}
