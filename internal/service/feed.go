package service

import (
	"Closetly/internal/model"
	"Closetly/internal/repo"
	"context"
	"sort"
)

// FeedScope — какие посты попадают в ленту до ранжирования.
type FeedScope string

const (
	ScopeAll     FeedScope = "all"
	ScopeFriends FeedScope = "friends"
)

// FeedMode — порядок ленты.
type FeedMode string

const (
	ModeChronological FeedMode = "chronological"
	ModeRanked        FeedMode = "ranked"
)

// Rank возвращает новый срез постов в порядке показа. Чистая функция:
// вход не мутируется, повторный вызов на том же входе даёт тот же порядок.
//
// chronological: по created_at, новые сверху; равные метки сохраняют
// исходный относительный порядок. ranked: по likes+comments_count по
// убыванию, при равном счёте новее — выше.
func Rank(posts []model.Post, mode FeedMode) []model.Post {
	out := make([]model.Post, len(posts))
	copy(out, posts)

	switch mode {
	case ModeRanked:
		sort.SliceStable(out, func(i, j int) bool {
			si := out[i].Likes + out[i].CommentsCount
			sj := out[j].Likes + out[j].CommentsCount
			if si != sj {
				return si > sj
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// FilterFriends оставляет посты, где giver или receiver входит в множество
// друзей зрителя.
func FilterFriends(posts []model.Post, friends map[string]struct{}) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := friends[p.Giver]; ok {
			out = append(out, p)
			continue
		}
		if p.Receiver != nil {
			if _, ok := friends[*p.Receiver]; ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// CountsProvider отдаёт производные счётчики поста. Реализация может ходить
// в БД напрямую или через кеш.
type CountsProvider interface {
	Counts(ctx context.Context, postID string) (likes, comments int64, err error)
}

// RepoCounts — счётчики напрямую из таблиц likes/comments.
type RepoCounts struct {
	Engagement repo.EngagementRepository
}

func (c *RepoCounts) Counts(ctx context.Context, postID string) (int64, int64, error) {
	likes, err := c.Engagement.CountLikes(ctx, postID)
	if err != nil {
		return 0, 0, err
	}
	comments, err := c.Engagement.CountComments(ctx, postID)
	if err != nil {
		return 0, 0, err
	}
	return likes, comments, nil
}

// FeedService собирает ленту: кандидаты из хранилища, счётчики через
// CountsProvider, затем scope-фильтр и ранжирование.
type FeedService struct {
	posts  repo.PostRepository
	users  repo.UserRepository
	counts CountsProvider
}

func NewFeedService(posts repo.PostRepository, users repo.UserRepository, counts CountsProvider) *FeedService {
	return &FeedService{posts: posts, users: users, counts: counts}
}

// Build возвращает ленту для зрителя. Лента друзей всегда хронологическая,
// переключатель mode на неё не действует.
func (s *FeedService) Build(ctx context.Context, viewer string, scope FeedScope, mode FeedMode) ([]model.Post, error) {
	if scope == "" {
		scope = ScopeAll
	}
	if mode == "" {
		mode = ModeChronological
	}
	switch scope {
	case ScopeAll, ScopeFriends:
	default:
		return nil, validationf("unknown feed scope %q", scope)
	}
	switch mode {
	case ModeChronological, ModeRanked:
	default:
		return nil, validationf("unknown feed mode %q", mode)
	}

	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		likes, comments, err := s.counts.Counts(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Likes = likes
		posts[i].CommentsCount = comments
	}

	if scope == ScopeFriends {
		names, err := s.users.ListFriends(ctx, viewer)
		if err != nil {
			return nil, err
		}
		set := make(map[string]struct{}, len(names))
		for _, n := range names {
			set[n] = struct{}{}
		}
		posts = FilterFriends(posts, set)
		mode = ModeChronological
	}

	return Rank(posts, mode), nil
}
