package utils

import (
	"fmt"
	"net/smtp"

	"emotale/config"
)

// SendPatientInviteEmail notifies a patient that their therapist set up an
// account for them. Best-effort: callers log failures and move on.
func SendPatientInviteEmail(cfg *config.Config, email, patientName, therapistName string) error {
	if cfg.SMTP.Host == "" || cfg.SMTP.SenderEmail == "" {
		// SMTP is optional; skip silently when unconfigured.
		return nil
	}

	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	to := []string{email}
	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s <%s>\r\n"+
			"Subject: Your Emotale practice space is ready\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"<p>Hi %s,</p><p>%s has set up a practice space for you on Emotale. "+
			"You can start practicing emotional-skills stories whenever you are ready.</p>\r\n",
		email, cfg.SMTP.SenderName, cfg.SMTP.SenderEmail, patientName, therapistName))

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	if err := smtp.SendMail(addr, auth, cfg.SMTP.SenderEmail, to, msg); err != nil {
		return fmt.Errorf("failed to send patient invite email: %v", err)
	}
	return nil
}
