package orchestrators

import (
	"context"
	"time"

	userStore "junglepark/internal/adapters/storage/user"
	"junglepark/internal/domain/banner"
	"junglepark/internal/domain/catalog"
	"junglepark/internal/domain/notification"
	"junglepark/internal/domain/settings"
	"junglepark/internal/domain/user"
)

// mockUserStore implements the user store interfaces for testing.
type mockUserStore struct {
	users []user.User
}

// List implements the mock user store.
// POST: returns the in-memory collection
func (m *mockUserStore) List(_ context.Context) ([]user.User, error) {
	out := make([]user.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// GetByUsername implements the mock user store.
// POST: returns ErrNotFound when no user matches
func (m *mockUserStore) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, userStore.ErrNotFound
}

// SaveAll implements the mock user store.
// POST: collection is replaced wholesale
func (m *mockUserStore) SaveAll(_ context.Context, users []user.User) error {
	m.users = users
	return nil
}

// mockMenuStore implements MenuStoreForAdmin for testing.
type mockMenuStore struct {
	items []catalog.MenuItem
}

func (m *mockMenuStore) List(_ context.Context) ([]catalog.MenuItem, error) {
	out := make([]catalog.MenuItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockMenuStore) SaveAll(_ context.Context, items []catalog.MenuItem) error {
	m.items = items
	return nil
}

// mockProgramStore implements the program store interfaces for testing.
type mockProgramStore struct {
	programs []catalog.Program
}

func (m *mockProgramStore) List(_ context.Context) ([]catalog.Program, error) {
	out := make([]catalog.Program, len(m.programs))
	copy(out, m.programs)
	return out, nil
}

func (m *mockProgramStore) SaveAll(_ context.Context, programs []catalog.Program) error {
	m.programs = programs
	return nil
}

// mockBannerStore implements the banner store interfaces for testing.
type mockBannerStore struct {
	banners []banner.Banner
}

func (m *mockBannerStore) List(_ context.Context) ([]banner.Banner, error) {
	out := make([]banner.Banner, len(m.banners))
	copy(out, m.banners)
	return out, nil
}

func (m *mockBannerStore) SaveAll(_ context.Context, banners []banner.Banner) error {
	m.banners = banners
	return nil
}

// mockSettingsStore implements SettingsStoreForSubmissions for testing.
type mockSettingsStore struct {
	value settings.Settings
}

func (m *mockSettingsStore) Get(_ context.Context) (settings.Settings, error) {
	return m.value, nil
}

// mockNotificationLog implements NotificationLogForSubmissions for testing.
type mockNotificationLog struct {
	entries []notification.Entry
}

func (m *mockNotificationLog) Append(_ context.Context, entry notification.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

var fixedTime = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

func mustHash(password string) string {
	h, err := user.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return h
}
