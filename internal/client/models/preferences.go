package models

// EmailPreferences mirrors the backend's notification settings.
type EmailPreferences struct {
	ReceiveNotifications   bool   `json:"receive_notifications"`
	ReceiveWeeklyReports   bool   `json:"receive_weekly_reports"`
	ReceiveMonthlyReports  bool   `json:"receive_monthly_reports"`
	ReceiveSystemAlerts    bool   `json:"receive_system_alerts"`
	ReceiveMarketingEmails bool   `json:"receive_marketing_emails"`
	NotificationFrequency  string `json:"notification_frequency"`
}

// SystemPreferences mirrors the backend's UI/system settings.
type SystemPreferences struct {
	DefaultDashboardTab  string `json:"default_dashboard_tab"`
	Theme                string `json:"theme"`
	Language             string `json:"language"`
	Timezone             string `json:"timezone"`
	BrowserNotifications bool   `json:"browser_notifications"`
	SoundNotifications   bool   `json:"sound_notifications"`
	AutoRefreshInterval  int    `json:"auto_refresh_interval"`
}
