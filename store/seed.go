package store

import (
	"time"

	"github.com/toplistapp/toplist-server/cmd/models"
)

// SeedDemo loads a small demo dataset into an empty store. Counters are kept
// consistent with the seeded rows, so the engagement invariants hold from the
// first request.
func SeedDemo(s Store) {
	now := time.Now()

	john := &models.User{
		Username:    "johnsmith",
		Email:       "john@example.com",
		DisplayName: "John Smith",
		Bio:         "Film enthusiast and music lover seeking deep conversations about art that moves us.",
		Location:    "San Francisco, CA",
		AvatarColor: "#6366F1",
	}
	alex := &models.User{
		Username:    "alexmartinez",
		Email:       "alex@example.com",
		DisplayName: "Alex Martinez",
		Bio:         "Collector of stories and seeker of hidden gems in every medium.",
		Location:    "New York, NY",
		AvatarColor: "#3B82F6",
	}
	sarah := &models.User{
		Username:    "sarahchen",
		Email:       "sarah@example.com",
		DisplayName: "Sarah Chen",
		Bio:         "Bookworm and indie film collector. Always looking for hidden gems and meaningful stories.",
		Location:    "Los Angeles, CA",
		AvatarColor: "#EC4899",
	}
	s.CreateUser(john)
	s.CreateUser(alex)
	s.CreateUser(sarah)

	items := []*models.MediaItem{
		{UserID: john.ID, Title: "Bohemian Rhapsody", Creator: "Queen", MediaType: "song", Position: 1,
			Story: "The perfect blend of opera and rock that changed my perspective on music boundaries."},
		{UserID: john.ID, Title: "The Midnight Library", Creator: "Matt Haig", MediaType: "book", Position: 2,
			Story: "A beautiful exploration of life's infinite possibilities that helped me through a difficult period."},
		{UserID: john.ID, Title: "Spirited Away", Creator: "Hayao Miyazaki", MediaType: "movie", Position: 3,
			Story: "Miyazaki's masterpiece taught me that growing up doesn't mean losing your sense of wonder."},
		{UserID: alex.ID, Title: "Spirited Away", Creator: "Hayao Miyazaki", MediaType: "movie", Position: 1,
			Story: "Everything I love about storytelling: reality and fantasy blended into something magical."},
		{UserID: alex.ID, Title: "Breaking Bad", Creator: "Vince Gilligan", MediaType: "show", Position: 2,
			Story: "A masterclass in character development and moral complexity."},
		{UserID: sarah.ID, Title: "The Midnight Library", Creator: "Matt Haig", MediaType: "book", Position: 1,
			Story: "Haig's exploration of regret and possibility felt like a personal conversation about life's what-ifs."},
	}
	for _, item := range items {
		s.CreateMediaItem(item)
	}

	ghibli := &models.Community{
		Name:        "Studio Ghibli Fans",
		Description: "A community for those who love the magical worlds of Studio Ghibli films",
		MediaType:   "movie",
		CreatorID:   john.ID,
		MemberCount: 3,
		Color:       "#22C55E",
	}
	books := &models.Community{
		Name:        "Indie Book Club",
		Description: "Discover hidden literary gems and discuss meaningful stories",
		MediaType:   "book",
		CreatorID:   alex.ID,
		MemberCount: 2,
		Color:       "#8B5CF6",
	}
	music := &models.Community{
		Name:        "Music That Moves Us",
		Description: "Share songs that have deep emotional impact and tell the stories behind them",
		MediaType:   "song",
		CreatorID:   sarah.ID,
		MemberCount: 1,
		Color:       "#F59E0B",
	}
	s.CreateCommunity(ghibli)
	s.CreateCommunity(books)
	s.CreateCommunity(music)

	memberships := []*models.CommunityMember{
		{CommunityID: ghibli.ID, UserID: john.ID, JoinedAt: now},
		{CommunityID: ghibli.ID, UserID: alex.ID, JoinedAt: now},
		{CommunityID: ghibli.ID, UserID: sarah.ID, JoinedAt: now},
		{CommunityID: books.ID, UserID: alex.ID, JoinedAt: now},
		{CommunityID: books.ID, UserID: sarah.ID, JoinedAt: now},
		{CommunityID: music.ID, UserID: sarah.ID, JoinedAt: now},
	}
	for _, m := range memberships {
		s.CreateCommunityMember(m)
	}

	firstPos, secondPos := 1, 2
	entries := []*models.TimelineEntry{
		{UserID: john.ID, MediaItemID: &items[0].ID, Action: models.ActionAdded,
			Details:      "Added 'Bohemian Rhapsody' by Queen to position #1",
			ChangeReason: "It reminds me of road trips with my dad when I was younger.",
			NewPosition:  &firstPos, CreatedAt: now.Add(-7 * 24 * time.Hour)},
		{UserID: john.ID, MediaItemID: &items[1].ID, Action: models.ActionAdded,
			Details:     "Added 'The Midnight Library' by Matt Haig to position #2",
			NewPosition: &secondPos, CreatedAt: now.Add(-5 * 24 * time.Hour)},
	}
	for _, e := range entries {
		s.CreateTimelineEntry(e)
	}
}
