package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/dmitrijs2005/careadmin/internal/server/files"
	"github.com/dmitrijs2005/careadmin/internal/server/profile"
	"github.com/dmitrijs2005/careadmin/internal/server/session"
)

// Snapshot is a read-only copy of a workspace, taken under its lock.
type Snapshot struct {
	ID       string
	Language string

	Status   session.Status
	AuthView session.AuthView

	Profile profile.Profile
	Editing bool

	Files    []files.Descriptor
	Category files.Category
	Busy     bool
}

func (s Snapshot) Authenticated() bool { return s.Status == session.Authenticated }

// Workspace is the state of one browser: session gate, language, profile
// editor and staged files.
type Workspace struct {
	id string
	c  *Controller

	mu       sync.Mutex
	lang     string
	gate     *session.Gate
	editor   *profile.Editor
	stager   *files.Stager
	lastSeen time.Time
}

func (w *Workspace) ID() string { return w.id }

func (w *Workspace) touch() {
	w.mu.Lock()
	w.lastSeen = w.c.now()
	w.mu.Unlock()
}

func (w *Workspace) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Snapshot copies the current state.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	stager := w.stager
	snap := Snapshot{
		ID:       w.id,
		Language: w.lang,
		Status:   w.gate.Status(),
		AuthView: w.gate.View(),
		Profile:  w.editor.Profile(),
		Editing:  w.editor.Editing(),
	}
	w.mu.Unlock()

	snap.Files = stager.Files()
	snap.Category = stager.Category()
	snap.Busy = stager.Busy()
	return snap
}

// SetLanguage switches the display language. Unknown codes select English.
func (w *Workspace) SetLanguage(lang string) string {
	lang = w.c.catalog.Normalize(lang)
	w.mu.Lock()
	w.lang = lang
	w.mu.Unlock()
	return lang
}

func (w *Workspace) Login(ctx context.Context, email, password string) {
	w.mu.Lock()
	changed := w.gate.Login(email, password)
	w.mu.Unlock()

	w.c.logger.Info(ctx, "login", "workspace", w.id, "email", email, "changed", changed)
}

// Logout returns to the login screen. The authenticated views are torn
// down, so the next login starts from the sample profile and file list.
func (w *Workspace) Logout(ctx context.Context) {
	w.mu.Lock()
	w.gate.Logout()
	w.editor = profile.NewEditor()
	w.stager = files.NewStager(w.c.transfer)
	w.mu.Unlock()

	w.c.logger.Info(ctx, "logout", "workspace", w.id)
}

func (w *Workspace) ShowRegister() {
	w.mu.Lock()
	w.gate.ShowRegister()
	w.mu.Unlock()
}

func (w *Workspace) ShowLogin() {
	w.mu.Lock()
	w.gate.ShowLogin()
	w.mu.Unlock()
}

// Register checks form. A mismatch returns an error wrapping
// common.ErrPasswordMismatch and changes nothing.
func (w *Workspace) Register(ctx context.Context, form session.RegisterForm) error {
	w.mu.Lock()
	err := w.gate.Register(w.c.validator, w.lang, form)
	w.mu.Unlock()

	if err != nil {
		w.c.logger.Warn(ctx, "registration rejected", "workspace", w.id, "email", form.Email, "error", err)
		return err
	}
	w.c.logger.Info(ctx, "registration", "workspace", w.id, "name", form.Name, "email", form.Email)
	return nil
}

// authed runs fn under the lock if the workspace is logged in.
func (w *Workspace) authed(fn func() error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.gate.Authenticated() {
		return common.ErrUnauthenticated
	}
	return fn()
}

func (w *Workspace) StartEdit() error {
	return w.authed(func() error {
		w.editor.StartEdit()
		return nil
	})
}

// UpdateProfile applies values, keyed by field path, in form order. Every
// valid value is applied even if others fail.
func (w *Workspace) UpdateProfile(values map[string]string) error {
	return w.authed(func() error {
		return w.applyLocked(values)
	})
}

func (w *Workspace) applyLocked(values map[string]string) error {
	var errs []error
	for _, path := range profile.Fields() {
		v, ok := values[path]
		if !ok {
			continue
		}
		if err := w.editor.UpdateField(path, v); err != nil {
			errs = append(errs, err)
		}
	}
	for path := range values {
		if !isField(path) {
			errs = append(errs, w.editor.UpdateField(path, values[path]))
		}
	}
	return errors.Join(errs...)
}

func isField(path string) bool {
	for _, f := range profile.Fields() {
		if f == path {
			return true
		}
	}
	return false
}

// SaveProfile applies values and leaves edit mode. On error the editor stays
// in edit mode.
func (w *Workspace) SaveProfile(ctx context.Context, values map[string]string) error {
	err := w.authed(func() error {
		if err := w.applyLocked(values); err != nil {
			return err
		}
		w.editor.Save()
		return nil
	})
	if err != nil {
		return err
	}
	w.c.logger.Info(ctx, "profile saved", "workspace", w.id)
	return nil
}

// CancelProfile leaves edit mode. Values typed so far are kept, exactly as
// with save.
func (w *Workspace) CancelProfile(values map[string]string) error {
	return w.authed(func() error {
		if err := w.applyLocked(values); err != nil {
			return err
		}
		w.editor.Cancel()
		return nil
	})
}

func (w *Workspace) currentStager() (*files.Stager, error) {
	var s *files.Stager
	err := w.authed(func() error {
		s = w.stager
		return nil
	})
	return s, err
}

func (w *Workspace) SelectCategory(c files.Category) error {
	s, err := w.currentStager()
	if err != nil {
		return err
	}
	return s.SelectCategory(c)
}

// Stage runs a simulated upload. The workspace lock is not held while the
// transfer is in flight.
func (w *Workspace) Stage(ctx context.Context, inputs []files.Input) ([]files.Descriptor, error) {
	s, err := w.currentStager()
	if err != nil {
		return nil, err
	}

	staged, err := s.Stage(ctx, inputs)
	if err != nil {
		w.c.logger.Warn(ctx, "upload failed", "workspace", w.id, "files", len(inputs), "error", err)
		return nil, err
	}

	for _, d := range staged {
		w.c.logger.Info(ctx, "file staged", "workspace", w.id, "id", d.ID, "name", d.Name,
			"size", d.Size, "category", string(d.Category))
	}
	return staged, nil
}

// Remove drops a staged file; unknown ids are a no-op.
func (w *Workspace) Remove(ctx context.Context, id string) error {
	s, err := w.currentStager()
	if err != nil {
		return err
	}
	if s.Remove(id) {
		w.c.logger.Info(ctx, "file removed", "workspace", w.id, "id", id)
	}
	return nil
}
