// Package profile implements the staff profile record and its editor.
package profile

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/careadmin/internal/common"
)

type EmergencyContact struct {
	Name         string
	Phone        string
	Relationship string
}

type MedicalInfo struct {
	Allergies   string
	Medications string
	Conditions  string
}

type Preferences struct {
	Language      string
	Notifications bool
}

// Profile is the record shown on the profile page.
type Profile struct {
	Name             string
	Email            string
	Phone            string
	Address          string
	DateOfBirth      string
	Room             string
	EmergencyContact EmergencyContact
	MedicalInfo      MedicalInfo
	Preferences      Preferences
}

// Sample returns the record every profile view starts with.
func Sample() Profile {
	return Profile{
		Name:        "Dr. Sarah Johnson",
		Email:       "sarah.johnson@elderlycare.com",
		Phone:       "+1 (555) 123-4567",
		Address:     "123 Care Lane, Healthcare City, HC 12345",
		DateOfBirth: "1965-03-15",
		Room:        "Staff Office 205",
		EmergencyContact: EmergencyContact{
			Name:         "John Johnson",
			Phone:        "+1 (555) 987-6543",
			Relationship: "Spouse",
		},
		MedicalInfo: MedicalInfo{
			Allergies:   "None reported",
			Medications: "None",
			Conditions:  "None",
		},
		Preferences: Preferences{
			Language:      "English",
			Notifications: true,
		},
	}
}

// Field paths accepted by Editor.UpdateField.
const (
	FieldName                     = "name"
	FieldEmail                    = "email"
	FieldPhone                    = "phone"
	FieldAddress                  = "address"
	FieldDateOfBirth              = "dateOfBirth"
	FieldRoom                     = "room"
	FieldEmergencyContactName     = "emergencyContact.name"
	FieldEmergencyContactPhone    = "emergencyContact.phone"
	FieldEmergencyContactRelation = "emergencyContact.relationship"
	FieldAllergies                = "medicalInfo.allergies"
	FieldMedications              = "medicalInfo.medications"
	FieldConditions               = "medicalInfo.conditions"
	FieldLanguage                 = "preferences.language"
	FieldNotifications            = "preferences.notifications"
)

var textFields = map[string]func(p *Profile) *string{
	FieldName:                     func(p *Profile) *string { return &p.Name },
	FieldEmail:                    func(p *Profile) *string { return &p.Email },
	FieldPhone:                    func(p *Profile) *string { return &p.Phone },
	FieldAddress:                  func(p *Profile) *string { return &p.Address },
	FieldDateOfBirth:              func(p *Profile) *string { return &p.DateOfBirth },
	FieldRoom:                     func(p *Profile) *string { return &p.Room },
	FieldEmergencyContactName:     func(p *Profile) *string { return &p.EmergencyContact.Name },
	FieldEmergencyContactPhone:    func(p *Profile) *string { return &p.EmergencyContact.Phone },
	FieldEmergencyContactRelation: func(p *Profile) *string { return &p.EmergencyContact.Relationship },
	FieldAllergies:                func(p *Profile) *string { return &p.MedicalInfo.Allergies },
	FieldMedications:              func(p *Profile) *string { return &p.MedicalInfo.Medications },
	FieldConditions:               func(p *Profile) *string { return &p.MedicalInfo.Conditions },
	FieldLanguage:                 func(p *Profile) *string { return &p.Preferences.Language },
}

// Fields lists every editable path in form order.
func Fields() []string {
	return []string{
		FieldName, FieldEmail, FieldPhone, FieldAddress, FieldDateOfBirth, FieldRoom,
		FieldEmergencyContactName, FieldEmergencyContactPhone, FieldEmergencyContactRelation,
		FieldAllergies, FieldMedications, FieldConditions,
		FieldLanguage, FieldNotifications,
	}
}

// Set writes value into the field named by path.
func (p *Profile) Set(path, value string) error {
	if path == FieldNotifications {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", common.ErrInvalidValue, path, value)
		}
		p.Preferences.Notifications = b
		return nil
	}

	get, ok := textFields[path]
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownField, path)
	}
	*get(p) = value
	return nil
}
