package services

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/rutamk/dsr-final/config"
	"github.com/rutamk/dsr-final/internal/models"
)

var ErrMailNotConfigured = errors.New("mail credentials not configured")

type Attachment struct {
	Filename string
	Content  []byte
}

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer(cfg config.Config) *Mailer {
	port, err := strconv.Atoi(cfg.MailPort)
	if err != nil {
		port = 587
	}
	return &Mailer{
		host:     cfg.MailHost,
		port:     port,
		username: cfg.MailUsername,
		password: cfg.MailPassword,
		from:     cfg.MailFrom,
	}
}

// Send delivers one mail synchronously; the calling request waits on the
// SMTP round-trip.
func (m *Mailer) Send(to string, cc []string, subject, body string, att *Attachment) error {
	if m.host == "" || m.username == "" || m.password == "" {
		return ErrMailNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	if len(cc) > 0 {
		msg.SetHeader("Cc", cc...)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if att != nil {
		msg.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(att.Content)
			return err
		}))
	}

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}

const mailFooter = "To log in to the DSR system, please use the above credentials and link:\n\n" +
	"Login Link: https://dsr-final.vercel.app\n\n" +
	"For any queries, please contact the admin at systems.dsr@gmail.com.\n\n" +
	"Best regards,\nVidyalankar Institute Of Technology.\n\n" +
	"This is an auto-generated email. Please do not reply to this email."

func scopeBlock(user models.User) string {
	var b strings.Builder
	for _, dept := range user.Departments {
		for _, lab := range dept.Labs {
			names := make([]string, 0, len(lab.Sections))
			for _, sec := range lab.Sections {
				names = append(names, sec.Name)
			}
			b.WriteString("Lab: " + lab.Name + "\nSections: " + strings.Join(names, ", ") + "\n\n")
		}
	}
	return b.String()
}

func deptNames(user models.User) string {
	names := make([]string, 0, len(user.Departments))
	for _, dept := range user.Departments {
		names = append(names, dept.Name)
	}
	return strings.Join(names, ", ")
}

// accountMailBody echoes the submitted password once, as the account mails
// of the old system did. Admin accounts have no scope block.
func accountMailBody(user models.User, password, lede string) string {
	body := "Hello " + user.FullName + ",\n\n" + lede + "\n\n" +
		"Here are your account details:\n\n" +
		"Full Name: " + user.FullName + "\n" +
		"Email: " + user.Email + "\n" +
		"Password: " + password + "\n" +
		"Role: " + user.Role + "\n"
	if user.Role != models.RoleAdmin {
		body += "Department: " + deptNames(user) + "\n\nLabs and Sections:\n" + scopeBlock(user) + "\n"
	}
	return body + mailFooter
}

func WelcomeMailBody(user models.User, password string) string {
	return accountMailBody(user, password, "Your account has been successfully created.")
}

func UpdateMailBody(user models.User, password string) string {
	return accountMailBody(user, password, "Your account has been successfully updated.")
}
