package i18n

// table is the static display-string table, keyed by language and then by
// identifier. Placeholders use the {0}, {1} form of universal-translator.
var table = map[string]map[string]string{
	"en": {
		// Navigation
		"dashboard":  "Dashboard",
		"profile":    "Profile",
		"files":      "Files",
		"logout":     "Logout",
		"navigation": "Navigation",

		// Auth
		"login":              "Login",
		"register":           "Register",
		"email":              "Email",
		"password":           "Password",
		"confirmPassword":    "Confirm Password",
		"signIn":             "Sign In",
		"signUp":             "Sign Up",
		"forgotPassword":     "Forgot Password?",
		"alreadyHaveAccount": "Already have an account?",
		"dontHaveAccount":    "Don't have an account?",
		"or":                 "or",

		// Dashboard
		"welcomeBack":          "Welcome Back",
		"dashboardSubtitle":    "Overview of your care facility operations",
		"totalResidents":       "Total Residents",
		"activeAlerts":         "Active Alerts",
		"staffOnDuty":          "Staff on Duty",
		"upcomingAppointments": "Upcoming Appointments",
		"recentActivity":       "Recent Activity",
		"todaysSchedule":       "Today's Schedule",

		// Profile
		"profileSubtitle":     "Manage your personal information and preferences",
		"personalInformation": "Personal Information",
		"contactInformation":  "Contact Information",
		"emergencyContact":    "Emergency Contact",
		"medicalInformation":  "Medical Information",
		"preferences":         "Preferences",
		"language":            "Language",
		"relationship":        "Relationship",
		"allergies":           "Allergies",
		"medications":         "Current Medications",
		"conditions":          "Medical Conditions",
		"notifications":       "Notifications",
		"activeStaffMember":   "Active Staff Member",

		// Common
		"save":        "Save",
		"cancel":      "Cancel",
		"edit":        "Edit",
		"delete":      "Delete",
		"search":      "Search",
		"filter":      "Filter",
		"name":        "Name",
		"phone":       "Phone",
		"address":     "Address",
		"dateOfBirth": "Date of Birth",
		"room":        "Room",
		"status":      "Status",

		// Elderly House System
		"elderlyHouseSystem": "Elderly House System",
		"careManagement":     "Care Management",

		// File Management
		"fileManagement":    "File Management",
		"filesSubtitle":     "Upload and manage required documents and files",
		"uploadFiles":       "Upload Files",
		"fileCategory":      "File Category",
		"category":          "Category",
		"dragDropFiles":     "Drag and drop files here, or click to browse",
		"supportedFormats":  "Supported formats: PDF, DOC, DOCX, JPG, PNG (Max 10MB)",
		"fileName":          "File Name",
		"fileSize":          "File Size",
		"fileType":          "File Type",
		"uploadDate":        "Upload Date",
		"actions":           "Actions",
		"download":          "Download",
		"view":              "View",
		"uploadedFiles":     "Uploaded Files",
		"filesCount":        "{0} files",
		"noFilesUploaded":   "No files uploaded yet",
		"selectFiles":       "Select Files",
		"uploading":         "Uploading...",
		"uploadSuccess":     "Files uploaded successfully",
		"uploadSuccessBody": "{0} file(s) uploaded successfully",
		"uploadError":       "Error uploading files",
		"uploadErrorBody":   "Please try again",
		"removeFile":        "Remove File",
		"remove":            "Remove",
		"removeConfirm":     "Are you sure you want to remove \"{0}\"? This action cannot be undone.",
		"fileRemoved":       "File has been removed successfully",

		// File Categories
		"medicalRecords":          "Medical Records",
		"identificationDocuments": "ID Documents",
		"insuranceDocuments":      "Insurance Documents",
		"legalDocuments":          "Legal Documents",
		"emergencyContacts":       "Emergency Contacts",
		"other":                   "Other",

		// Errors
		"notFound":            "404",
		"notFoundMessage":     "Oops! Page not found",
		"returnHome":          "Return to Home",
		"passwordsDoNotMatch": "Passwords do not match",
		"ok":                  "OK",
	},
	"de": {
		// Navigation
		"dashboard":  "Dashboard",
		"profile":    "Profil",
		"files":      "Dateien",
		"logout":     "Abmelden",
		"navigation": "Navigation",

		// Auth
		"login":              "Anmelden",
		"register":           "Registrieren",
		"email":              "E-Mail",
		"password":           "Passwort",
		"confirmPassword":    "Passwort bestätigen",
		"signIn":             "Anmelden",
		"signUp":             "Registrieren",
		"forgotPassword":     "Passwort vergessen?",
		"alreadyHaveAccount": "Haben Sie bereits ein Konto?",
		"dontHaveAccount":    "Haben Sie noch kein Konto?",
		"or":                 "oder",

		// Dashboard
		"welcomeBack":          "Willkommen zurück",
		"dashboardSubtitle":    "Überblick über den Betrieb Ihrer Pflegeeinrichtung",
		"totalResidents":       "Bewohner gesamt",
		"activeAlerts":         "Aktive Alarme",
		"staffOnDuty":          "Personal im Dienst",
		"upcomingAppointments": "Kommende Termine",
		"recentActivity":       "Letzte Aktivitäten",
		"todaysSchedule":       "Heutiger Zeitplan",

		// Profile
		"profileSubtitle":     "Verwalten Sie Ihre persönlichen Daten und Einstellungen",
		"personalInformation": "Persönliche Informationen",
		"contactInformation":  "Kontaktinformationen",
		"emergencyContact":    "Notfallkontakt",
		"medicalInformation":  "Medizinische Informationen",
		"preferences":         "Einstellungen",
		"language":            "Sprache",
		"relationship":        "Beziehung",
		"allergies":           "Allergien",
		"medications":         "Aktuelle Medikamente",
		"conditions":          "Erkrankungen",
		"notifications":       "Benachrichtigungen",
		"activeStaffMember":   "Aktives Personalmitglied",

		// Common
		"save":        "Speichern",
		"cancel":      "Abbrechen",
		"edit":        "Bearbeiten",
		"delete":      "Löschen",
		"search":      "Suchen",
		"filter":      "Filter",
		"name":        "Name",
		"phone":       "Telefon",
		"address":     "Adresse",
		"dateOfBirth": "Geburtsdatum",
		"room":        "Zimmer",
		"status":      "Status",

		// Elderly House System
		"elderlyHouseSystem": "Seniorenheim-System",
		"careManagement":     "Pflegeverwaltung",

		// File Management
		"fileManagement":    "Dateiverwaltung",
		"filesSubtitle":     "Erforderliche Dokumente und Dateien hochladen und verwalten",
		"uploadFiles":       "Dateien hochladen",
		"fileCategory":      "Dateikategorie",
		"category":          "Kategorie",
		"dragDropFiles":     "Dateien hier hineinziehen oder klicken zum Durchsuchen",
		"supportedFormats":  "Unterstützte Formate: PDF, DOC, DOCX, JPG, PNG (Max 10MB)",
		"fileName":          "Dateiname",
		"fileSize":          "Dateigröße",
		"fileType":          "Dateityp",
		"uploadDate":        "Upload-Datum",
		"actions":           "Aktionen",
		"download":          "Herunterladen",
		"view":              "Anzeigen",
		"uploadedFiles":     "Hochgeladene Dateien",
		"filesCount":        "{0} Dateien",
		"noFilesUploaded":   "Noch keine Dateien hochgeladen",
		"selectFiles":       "Dateien auswählen",
		"uploading":         "Wird hochgeladen...",
		"uploadSuccess":     "Dateien erfolgreich hochgeladen",
		"uploadSuccessBody": "{0} Datei(en) erfolgreich hochgeladen",
		"uploadError":       "Fehler beim Hochladen der Dateien",
		"uploadErrorBody":   "Bitte versuchen Sie es erneut",
		"removeFile":        "Datei entfernen",
		"remove":            "Entfernen",
		"removeConfirm":     "Möchten Sie \"{0}\" wirklich entfernen? Dies kann nicht rückgängig gemacht werden.",
		"fileRemoved":       "Datei wurde erfolgreich entfernt",

		// File Categories
		"medicalRecords":          "Medizinische Unterlagen",
		"identificationDocuments": "Ausweisdokumente",
		"insuranceDocuments":      "Versicherungsunterlagen",
		"legalDocuments":          "Rechtsdokumente",
		"emergencyContacts":       "Notfallkontakte",
		"other":                   "Sonstige",

		// Errors
		"notFound":            "404",
		"notFoundMessage":     "Hoppla! Seite nicht gefunden",
		"returnHome":          "Zur Startseite",
		"passwordsDoNotMatch": "Passwörter stimmen nicht überein",
		"ok":                  "OK",
	},
}
