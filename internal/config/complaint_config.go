package config

const (
	// Complaint field limits
	TitleMaxLength       = 100
	DescriptionMaxLength = 1000

	// Storage
	DefaultDatabaseName  = "complaint_db"
	ComplaintsCollection = "complaints"

	// Notifications
	EventsChannel       = "complaints:events"
	DispatcherQueueSize = 64
	SenderDisplayName   = "Complaint System"

	// Mail transport defaults
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 465
)
