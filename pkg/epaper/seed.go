package epaper

import (
	"context"
	"time"
)

// SeedDemoEditions loads the three demonstration editions into the
// repository: a published daily, a draft weekly and an editorial awaiting
// approval with a schedule set for tomorrow. Used by the server when demo
// seeding is enabled and by tests that want a populated repository.
func SeedDemoEditions(ctx context.Context, repo Repository, now time.Time) error {
	tomorrow := now.Add(24 * time.Hour)

	editions := []Edition{
		{
			ID:    "edition-1",
			Title: "Daily News - April 23, 2024",
			Pages: []Page{
				{
					ID:         "page-1-1",
					PageNumber: 1,
					Sections: []Section{
						{
							ID: "sec-1-1", Type: "main-news", Title: "Top Stories",
							Blocks: []Block{
								ArticleBlock{
									ID: "art-1-1", Type: KindArticle,
									Headline:    "Local Hero Saves Cat",
									SubHeadline: "Feline rescued from tall tree.",
									Content:     "A brave citizen rescued a cat from a tree...",
									Byline:      "By Editor User", Category: "Local News", Location: "Hyderabad",
									TextAlignment: AlignLeft, FontSize: "text-base", LineSpacing: "leading-normal",
								},
							},
						},
					},
				},
				{
					ID:         "page-1-2",
					PageNumber: 2,
					Sections: []Section{
						{
							ID: "sec-1-2", Type: "sports", Title: "Cricket Highlights",
							Blocks: []Block{
								ArticleBlock{
									ID: "art-1-2", Type: KindArticle,
									Headline:    "Team Wins Championship",
									SubHeadline: "Historic victory in the finals.",
									Content:     "The local team celebrated a historic victory...",
									Byline:      "By Editor User", Category: "Sports", Location: "Chennai",
									TextAlignment: AlignLeft, FontSize: "text-base", LineSpacing: "leading-normal",
								},
								ImageBlock{
									ID: "img-1-1", Type: KindImage,
									ImageURL: "https://picsum.photos/400/250", Caption: "Winning moment",
									BlockLayout: BlockLayout{Width: "w-1/2", Height: "h-48"},
								},
							},
						},
					},
				},
			},
			Language:     LanguageEnglish,
			Status:       StatusPublished,
			CreatedBy:    "Admin User",
			LastModified: now,
		},
		{
			ID:    "edition-2",
			Title: "Sports Weekly - Draft A",
			Pages: []Page{
				{
					ID:         "page-2-1",
					PageNumber: 1,
					Sections: []Section{
						{
							ID: "sec-2-1", Type: "sports", Title: "Cricket Highlights",
							Blocks: []Block{
								ArticleBlock{
									ID: "art-2-1", Type: KindArticle,
									Headline:    "Team Wins Championship",
									SubHeadline: "Historic victory.",
									Content:     "The local team celebrated a historic victory...",
									Byline:      "By Editor User", Category: "Sports", Location: "Hyderabad",
									TextAlignment: AlignLeft, FontSize: "text-base", LineSpacing: "leading-normal",
								},
							},
						},
					},
				},
			},
			Language:     LanguageTelugu,
			Status:       StatusDraft,
			CreatedBy:    "Editor User",
			LastModified: now,
		},
		{
			ID:    "edition-3",
			Title: "Editorial - Pending Review",
			Pages: []Page{
				{
					ID:         "page-3-1",
					PageNumber: 1,
					Sections: []Section{
						{
							ID: "sec-3-1", Type: "editorial", Title: "Opinion Piece",
							Blocks: []Block{
								ArticleBlock{
									ID: "art-3-1", Type: KindArticle,
									Headline:    "Future of AI",
									SubHeadline: "Impact on daily life.",
									Content:     "Exploring the impact of artificial intelligence...",
									Byline:      "By Admin User", Category: "Technology", Location: "Bengaluru",
									TextAlignment: AlignLeft, FontSize: "text-base", LineSpacing: "leading-normal",
								},
							},
						},
					},
				},
			},
			Language:             LanguageHindi,
			ScheduledPublishDate: &tomorrow,
			Status:               StatusPendingApproval,
			CreatedBy:            "Admin User",
			LastModified:         now,
		},
	}

	for i := range editions {
		if err := repo.CreateEdition(ctx, &editions[i]); err != nil {
			return err
		}
	}
	return nil
}
