package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/dmitrijs2005/careadmin/internal/logging"
	"github.com/dmitrijs2005/careadmin/internal/server/files"
	"github.com/dmitrijs2005/careadmin/internal/server/i18n"
	"github.com/dmitrijs2005/careadmin/internal/server/profile"
	"github.com/dmitrijs2005/careadmin/internal/server/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingTransfer struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingTransfer) Send(ctx context.Context, _ []files.Input) error {
	b.started <- struct{}{}
	<-b.release
	return nil
}

func newController(t *testing.T, tr files.Transfer) *Controller {
	t.Helper()
	catalog, err := i18n.NewCatalog()
	require.NoError(t, err)
	v, err := session.NewValidator(catalog)
	require.NoError(t, err)
	return NewController(catalog, v, tr, "en", logging.Nop{})
}

func loggedIn(t *testing.T, c *Controller) *Workspace {
	t.Helper()
	w := c.Create(context.Background())
	w.Login(context.Background(), "a@b.c", "pw")
	return w
}

func TestController_CreateGet(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()

	w := c.Create(ctx)
	require.NotEmpty(t, w.ID())

	got, ok := c.Get(w.ID())
	require.True(t, ok)
	assert.Same(t, w, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	other := c.Create(ctx)
	assert.NotEqual(t, w.ID(), other.ID())
	assert.Equal(t, 2, c.Len())
}

func TestController_DefaultLanguageNormalized(t *testing.T) {
	catalog, err := i18n.NewCatalog()
	require.NoError(t, err)
	v, err := session.NewValidator(catalog)
	require.NoError(t, err)

	c := NewController(catalog, v, files.SimulatedTransfer{}, "klingon", logging.Nop{})
	assert.Equal(t, "en", c.Create(context.Background()).Snapshot().Language)

	c = NewController(catalog, v, files.SimulatedTransfer{}, "de", logging.Nop{})
	assert.Equal(t, "de", c.Create(context.Background()).Snapshot().Language)
}

func TestController_Evict(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	old := c.Create(ctx)
	now = now.Add(2 * time.Hour)
	fresh := c.Create(ctx)

	assert.Equal(t, 1, c.Evict(ctx, time.Hour))
	_, ok := c.Get(old.ID())
	assert.False(t, ok)
	_, ok = c.Get(fresh.ID())
	assert.True(t, ok)
}

func TestController_GetKeepsAlive(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	w := c.Create(ctx)
	now = now.Add(50 * time.Minute)
	c.Get(w.ID())
	now = now.Add(50 * time.Minute)

	assert.Equal(t, 0, c.Evict(ctx, time.Hour))
}

func TestController_RunEvictionStops(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.RunEviction(ctx, time.Millisecond, time.Hour) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("eviction loop did not stop")
	}
}

func TestWorkspace_InitialSnapshot(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	s := c.Create(context.Background()).Snapshot()

	assert.False(t, s.Authenticated())
	assert.Equal(t, session.ViewLogin, s.AuthView)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, profile.Sample(), s.Profile)
	assert.Len(t, s.Files, 3)
	assert.Equal(t, files.DefaultCategory, s.Category)
	assert.False(t, s.Busy)
}

func TestWorkspace_LanguageSurvivesLogout(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	w := loggedIn(t, c)

	assert.Equal(t, "de", w.SetLanguage("de"))
	w.Logout(context.Background())
	assert.Equal(t, "de", w.Snapshot().Language)

	assert.Equal(t, "en", w.SetLanguage("xx"))
}

func TestWorkspace_LogoutResetsViews(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()
	w := loggedIn(t, c)

	require.NoError(t, w.StartEdit())
	require.NoError(t, w.SaveProfile(ctx, map[string]string{profile.FieldName: "Changed"}))
	require.NoError(t, w.Remove(ctx, "1"))
	require.NoError(t, w.SelectCategory(files.Other))

	w.Logout(ctx)
	w.Login(ctx, "a@b.c", "pw")

	s := w.Snapshot()
	assert.Equal(t, "Dr. Sarah Johnson", s.Profile.Name)
	assert.Len(t, s.Files, 3)
	assert.Equal(t, files.DefaultCategory, s.Category)
}

func TestWorkspace_RequiresLogin(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()
	w := c.Create(ctx)

	assert.ErrorIs(t, w.StartEdit(), common.ErrUnauthenticated)
	assert.ErrorIs(t, w.UpdateProfile(map[string]string{profile.FieldName: "x"}), common.ErrUnauthenticated)
	assert.ErrorIs(t, w.SaveProfile(ctx, nil), common.ErrUnauthenticated)
	assert.ErrorIs(t, w.CancelProfile(nil), common.ErrUnauthenticated)
	assert.ErrorIs(t, w.SelectCategory(files.Other), common.ErrUnauthenticated)
	assert.ErrorIs(t, w.Remove(ctx, "1"), common.ErrUnauthenticated)
	_, err := w.Stage(ctx, []files.Input{{Name: "x"}})
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	assert.Len(t, w.Snapshot().Files, 3)
}

func TestWorkspace_Register(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()
	w := c.Create(ctx)

	w.ShowRegister()
	err := w.Register(ctx, session.RegisterForm{Password: "a", ConfirmPassword: "b"})
	assert.ErrorIs(t, err, common.ErrPasswordMismatch)
	assert.Equal(t, session.ViewRegister, w.Snapshot().AuthView)

	require.NoError(t, w.Register(ctx, session.RegisterForm{Password: "a", ConfirmPassword: "a"}))
	s := w.Snapshot()
	assert.Equal(t, session.ViewLogin, s.AuthView)
	assert.False(t, s.Authenticated())
}

func TestWorkspace_ProfileEditing(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()
	w := loggedIn(t, c)

	err := w.UpdateProfile(map[string]string{profile.FieldRoom: "x"})
	assert.ErrorIs(t, err, common.ErrNotEditing)

	require.NoError(t, w.StartEdit())
	assert.True(t, w.Snapshot().Editing)

	err = w.UpdateProfile(map[string]string{
		profile.FieldRoom:          "Wing B",
		profile.FieldNotifications: "nope",
		"bogus":                    "x",
	})
	assert.ErrorIs(t, err, common.ErrInvalidValue)
	assert.ErrorIs(t, err, common.ErrUnknownField)
	assert.Equal(t, "Wing B", w.Snapshot().Profile.Room)

	err = w.SaveProfile(ctx, map[string]string{profile.FieldNotifications: "nope"})
	assert.Error(t, err)
	assert.True(t, w.Snapshot().Editing)

	require.NoError(t, w.CancelProfile(map[string]string{profile.FieldPhone: "555"}))
	s := w.Snapshot()
	assert.False(t, s.Editing)
	assert.Equal(t, "555", s.Profile.Phone)
	assert.Equal(t, "Wing B", s.Profile.Room)
}

func TestWorkspace_StageAndRemove(t *testing.T) {
	c := newController(t, files.SimulatedTransfer{})
	ctx := context.Background()
	w := loggedIn(t, c)

	require.NoError(t, w.SelectCategory(files.LegalDocuments))
	assert.ErrorIs(t, w.SelectCategory("bogus"), common.ErrUnknownCategory)

	staged, err := w.Stage(ctx, []files.Input{{Name: "will.pdf", Size: 100, MimeType: "application/pdf"}})
	require.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, files.LegalDocuments, staged[0].Category)

	s := w.Snapshot()
	assert.Len(t, s.Files, 4)

	require.NoError(t, w.Remove(ctx, staged[0].ID))
	require.NoError(t, w.Remove(ctx, staged[0].ID))
	assert.Len(t, w.Snapshot().Files, 3)
}

func TestWorkspace_SnapshotWhileBusy(t *testing.T) {
	tr := &blockingTransfer{started: make(chan struct{}, 1), release: make(chan struct{})}
	c := newController(t, tr)
	ctx := context.Background()
	w := loggedIn(t, c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = w.Stage(ctx, []files.Input{{Name: "x"}})
	}()

	<-tr.started
	assert.True(t, w.Snapshot().Busy)
	assert.NoError(t, w.StartEdit())

	_, err := w.Stage(ctx, []files.Input{{Name: "y"}})
	assert.ErrorIs(t, err, common.ErrBusy)

	close(tr.release)
	wg.Wait()

	s := w.Snapshot()
	assert.False(t, s.Busy)
	assert.Len(t, s.Files, 4)
}
