package files

import (
	"fmt"

	"github.com/dmitrijs2005/careadmin/internal/common"
)

// Category is the document class a staged file is filed under. The value
// doubles as the display-table key of its label.
type Category string

const (
	MedicalRecords          Category = "medicalRecords"
	IdentificationDocuments Category = "identificationDocuments"
	InsuranceDocuments      Category = "insuranceDocuments"
	LegalDocuments          Category = "legalDocuments"
	EmergencyContacts       Category = "emergencyContacts"
	Other                   Category = "other"
)

// DefaultCategory is preselected when the file view is created.
const DefaultCategory = MedicalRecords

// Categories lists every category in selector order.
func Categories() []Category {
	return []Category{
		MedicalRecords,
		IdentificationDocuments,
		InsuranceDocuments,
		LegalDocuments,
		EmergencyContacts,
		Other,
	}
}

// ParseCategory validates s against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownCategory, s)
}
