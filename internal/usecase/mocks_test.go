package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/social360/social360/internal/domain"
)

// In-memory fakes implementing the repository ports.

type mockAccountRepo struct {
	accounts map[string]domain.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: map[string]domain.Account{}}
}

func (m *mockAccountRepo) Upsert(ctx context.Context, account domain.Account) error {
	m.accounts[account.Identity] = account
	return nil
}

func (m *mockAccountRepo) Get(ctx context.Context, identity string) (domain.Account, error) {
	account, ok := m.accounts[identity]
	if !ok {
		return domain.Account{}, domain.NotFoundError{Resource: "account"}
	}
	return account, nil
}

func (m *mockAccountRepo) SearchByHandlePrefix(ctx context.Context, prefix string) ([]domain.Account, error) {
	matches := []domain.Account{}
	for _, account := range m.accounts {
		if strings.HasPrefix(strings.ToLower(account.Handle), strings.ToLower(prefix)) {
			matches = append(matches, account)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Identity < matches[j].Identity })
	return matches, nil
}

type mockGraphRepo struct {
	edges map[[2]string]bool
}

func newMockGraphRepo() *mockGraphRepo {
	return &mockGraphRepo{edges: map[[2]string]bool{}}
}

func (m *mockGraphRepo) AddEdge(ctx context.Context, follower, followee string) error {
	m.edges[[2]string{follower, followee}] = true
	return nil
}

func (m *mockGraphRepo) Following(ctx context.Context, identity string) ([]string, error) {
	out := []string{}
	for edge := range m.edges {
		if edge[0] == identity {
			out = append(out, edge[1])
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *mockGraphRepo) Followers(ctx context.Context, identity string) ([]string, error) {
	out := []string{}
	for edge := range m.edges {
		if edge[1] == identity {
			out = append(out, edge[0])
		}
	}
	sort.Strings(out)
	return out, nil
}

type mockContentRepo struct {
	updates map[int64]domain.Update
	nextID  int64
}

func newMockContentRepo() *mockContentRepo {
	return &mockContentRepo{updates: map[int64]domain.Update{}, nextID: 1}
}

func (m *mockContentRepo) Create(ctx context.Context, update domain.Update) (int64, error) {
	update.ID = m.nextID
	m.nextID++
	m.updates[update.ID] = update
	return update.ID, nil
}

func (m *mockContentRepo) CreateDerived(ctx context.Context, update domain.Update, originalID int64, kind domain.DerivedKind) (int64, error) {
	id, _ := m.Create(ctx, update)
	if original, ok := m.updates[originalID]; ok {
		switch kind {
		case domain.DerivedRepost:
			original.Reposts++
		case domain.DerivedQuote:
			original.Quotes++
		}
		m.updates[originalID] = original
	}
	return id, nil
}

func (m *mockContentRepo) Get(ctx context.Context, id int64) (domain.Update, error) {
	update, ok := m.updates[id]
	if !ok {
		return domain.Update{}, domain.NotFoundError{Resource: "update"}
	}
	return update, nil
}

func (m *mockContentRepo) SetModeration(ctx context.Context, id int64, moderated, hidden bool, reason *string) (bool, error) {
	update, ok := m.updates[id]
	if !ok {
		return false, nil
	}
	update.IsModerated = moderated
	update.IsHidden = hidden
	update.ModerationReason = reason
	m.updates[id] = update
	return true, nil
}

func (m *mockContentRepo) ListByAuthors(ctx context.Context, authors []string, offset, limit int) ([]domain.Update, error) {
	wanted := map[string]bool{}
	for _, a := range authors {
		wanted[a] = true
	}
	matches := []domain.Update{}
	for _, update := range m.updates {
		if wanted[update.Author] {
			matches = append(matches, update)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID > matches[j].ID
	})
	if offset >= len(matches) {
		return []domain.Update{}, nil
	}
	matches = matches[offset:]
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, nil
}

func (m *mockContentRepo) SearchContent(ctx context.Context, keyword string) ([]domain.Update, error) {
	matches := []domain.Update{}
	for _, update := range m.updates {
		if strings.Contains(strings.ToLower(update.Content), strings.ToLower(keyword)) {
			matches = append(matches, update)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (m *mockContentRepo) ListModerated(ctx context.Context) ([]domain.Update, error) {
	matches := []domain.Update{}
	for _, update := range m.updates {
		if update.IsModerated {
			matches = append(matches, update)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

type mockEngagementRepo struct {
	likes   map[int64]map[string]bool
	reposts map[int64]map[string]bool
}

func newMockEngagementRepo() *mockEngagementRepo {
	return &mockEngagementRepo{
		likes:   map[int64]map[string]bool{},
		reposts: map[int64]map[string]bool{},
	}
}

func (m *mockEngagementRepo) ToggleLike(ctx context.Context, updateID int64, identity string) (bool, error) {
	if m.likes[updateID] == nil {
		m.likes[updateID] = map[string]bool{}
	}
	if m.likes[updateID][identity] {
		delete(m.likes[updateID], identity)
		return false, nil
	}
	m.likes[updateID][identity] = true
	return true, nil
}

func (m *mockEngagementRepo) HasLiked(ctx context.Context, updateID int64, identity string) (bool, error) {
	return m.likes[updateID][identity], nil
}

func (m *mockEngagementRepo) HasReposted(ctx context.Context, updateID int64, identity string) (bool, error) {
	return m.reposts[updateID][identity], nil
}

type mockModerationRepo struct {
	flags         []domain.Flag
	warnings      []domain.Warning
	nextFlagID    int64
	nextWarningID int64
}

func newMockModerationRepo() *mockModerationRepo {
	return &mockModerationRepo{nextFlagID: 1, nextWarningID: 1}
}

func (m *mockModerationRepo) CreateFlag(ctx context.Context, flag domain.Flag) (int64, error) {
	flag.ID = m.nextFlagID
	m.nextFlagID++
	m.flags = append(m.flags, flag)
	return flag.ID, nil
}

func (m *mockModerationRepo) Resolve(ctx context.Context, flagID int64) (bool, error) {
	for i := range m.flags {
		if m.flags[i].ID == flagID {
			m.flags[i].IsResolved = true
			return true, nil
		}
	}
	return false, nil
}

func (m *mockModerationRepo) ListOpenFlags(ctx context.Context) ([]domain.Flag, error) {
	open := []domain.Flag{}
	for _, flag := range m.flags {
		if !flag.IsResolved {
			open = append(open, flag)
		}
	}
	return open, nil
}

func (m *mockModerationRepo) AppendWarning(ctx context.Context, warning domain.Warning) (int64, error) {
	warning.ID = m.nextWarningID
	m.nextWarningID++
	m.warnings = append(m.warnings, warning)
	return warning.ID, nil
}

func (m *mockModerationRepo) ListWarnings(ctx context.Context, identity string) ([]domain.Warning, error) {
	out := []domain.Warning{}
	for _, warning := range m.warnings {
		if warning.Identity == identity {
			out = append(out, warning)
		}
	}
	return out, nil
}

type mockInsightCache struct {
	entries map[string]domain.Insights
	hits    int
	sets    int
}

func newMockInsightCache() *mockInsightCache {
	return &mockInsightCache{entries: map[string]domain.Insights{}}
}

func (m *mockInsightCache) Get(ctx context.Context, content string) (domain.Insights, bool) {
	cached, ok := m.entries[content]
	if ok {
		m.hits++
	}
	return cached, ok
}

func (m *mockInsightCache) Set(ctx context.Context, content string, insights domain.Insights) {
	m.sets++
	m.entries[content] = insights
}
