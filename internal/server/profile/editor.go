package profile

import "github.com/dmitrijs2005/careadmin/internal/common"

// Editor owns one profile record and its edit mode. Leaving edit mode, by
// save or by cancel, keeps whatever was typed; there is no snapshot to
// revert to. Not safe for concurrent use.
type Editor struct {
	profile Profile
	editing bool
}

func NewEditor() *Editor {
	return &Editor{profile: Sample()}
}

// Profile returns a copy of the current record.
func (e *Editor) Profile() Profile { return e.profile }

func (e *Editor) Editing() bool { return e.editing }

func (e *Editor) StartEdit() { e.editing = true }

// UpdateField changes one field. Only accepted while editing.
func (e *Editor) UpdateField(path, value string) error {
	if !e.editing {
		return common.ErrNotEditing
	}
	return e.profile.Set(path, value)
}

// Save leaves edit mode.
func (e *Editor) Save() { e.editing = false }

// Cancel leaves edit mode without restoring earlier values.
func (e *Editor) Cancel() { e.editing = false }
