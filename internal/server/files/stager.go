// Package files implements the document staging table: picking a category,
// running a simulated upload and removing staged entries.
package files

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/google/uuid"
)

// Descriptor is one row of the staged-file table.
type Descriptor struct {
	ID       string
	Name     string
	Size     int64
	MimeType string
	Category Category
	StagedAt time.Time
}

// Samples returns the rows every file view starts with.
func Samples() []Descriptor {
	return []Descriptor{
		{
			ID:       "1",
			Name:     "medical_history_john_doe.pdf",
			Size:     2048576,
			MimeType: "application/pdf",
			Category: MedicalRecords,
			StagedAt: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:       "2",
			Name:     "insurance_card_front.jpg",
			Size:     1024000,
			MimeType: "image/jpeg",
			Category: InsuranceDocuments,
			StagedAt: time.Date(2024, time.January, 14, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:       "3",
			Name:     "emergency_contact_form.pdf",
			Size:     512000,
			MimeType: "application/pdf",
			Category: EmergencyContacts,
			StagedAt: time.Date(2024, time.January, 13, 9, 15, 0, 0, time.UTC),
		},
	}
}

// Stager holds the staged-file list of one workspace.
//
// The mutex only guards the fields; a transfer runs unlocked so readers see
// Busy() == true while it is in flight.
type Stager struct {
	mu       sync.Mutex
	files    []Descriptor
	category Category
	busy     bool

	transfer Transfer
	now      func() time.Time
	newID    func() string
}

// NewStager returns a stager preloaded with the sample rows.
func NewStager(transfer Transfer) *Stager {
	return &Stager{
		files:    Samples(),
		category: DefaultCategory,
		transfer: transfer,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Files returns a copy of the staged rows in display order.
func (s *Stager) Files() []Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Descriptor(nil), s.files...)
}

func (s *Stager) Category() Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

func (s *Stager) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SelectCategory changes the category used by the next Stage call.
func (s *Stager) SelectCategory(c Category) error {
	if _, err := ParseCategory(string(c)); err != nil {
		return err
	}
	s.mu.Lock()
	s.category = c
	s.mu.Unlock()
	return nil
}

// Stage runs the transfer for inputs and appends one row per input, all
// tagged with the category selected when the call began. Only one Stage may
// run at a time; a concurrent call gets common.ErrBusy.
func (s *Stager) Stage(ctx context.Context, inputs []Input) ([]Descriptor, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, common.ErrBusy
	}
	s.busy = true
	category := s.category
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	if err := s.transfer.Send(ctx, inputs); err != nil {
		return nil, fmt.Errorf("transfer: %w", err)
	}

	staged := make([]Descriptor, 0, len(inputs))
	for _, in := range inputs {
		staged = append(staged, Descriptor{
			ID:       s.newID(),
			Name:     in.Name,
			Size:     in.Size,
			MimeType: in.MimeType,
			Category: category,
			StagedAt: s.now(),
		})
	}

	s.mu.Lock()
	s.files = append(s.files, staged...)
	s.mu.Unlock()

	return staged, nil
}

// Remove drops the row with id. Unknown ids are ignored. It reports whether
// a row was removed.
func (s *Stager) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.files {
		if f.ID == id {
			s.files = append(s.files[:i:i], s.files[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the row with id.
func (s *Stager) Find(id string) (Descriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		if f.ID == id {
			return f, true
		}
	}
	return Descriptor{}, false
}
