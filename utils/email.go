package utils

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"log"
	"makkanya_dashboard/config"
	"makkanya_dashboard/constants"

	"gopkg.in/gomail.v2"
)

var ErrMailDisabled = errors.New("smtp is not configured")

// ExportMailData fills the export mail body.
type ExportMailData struct {
	FileName string
	Date     string
	Note     string
	Sheets   []string
}

var exportMailTemplate = template.Must(template.New("export").Parse(`<p>Halo,</p>
<p>Terlampir export data dashboard Makkanya Express tanggal {{.Date}} ({{.FileName}}).</p>
{{if .Note}}<p>{{.Note}}</p>{{end}}
<ul>{{range .Sheets}}<li>{{.}}</li>{{end}}</ul>
<p>Makkanya Express Analytics</p>`))

// MailSender is satisfied by *gomail.Dialer.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// NewMailSender is replaced in tests.
var NewMailSender = func(s config.Settings) MailSender {
	return gomail.NewDialer(s.SMTPHost, s.SMTPPort, s.SMTPUsername, s.SMTPPassword)
}

// BuildExportMessage renders the export mail with the workbook attached.
func BuildExportMessage(from string, to []string, subject string, data ExportMailData, workbook []byte) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := exportMailTemplate.Execute(&body, data); err != nil {
		return nil, err
	}
	if subject == "" {
		subject = "Makkanya Express - Data Export " + data.Date
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())
	m.Attach(data.FileName,
		gomail.SetHeader(map[string][]string{"Content-Type": {constants.EXPORT_CONTENT_TYPE}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(workbook)
			return err
		}),
	)
	return m, nil
}

// SendExportEmail mails the workbook to every recipient.
func SendExportEmail(s config.Settings, to []string, subject string, data ExportMailData, workbook []byte) error {
	if !s.MailEnabled() {
		return ErrMailDisabled
	}
	m, err := BuildExportMessage(s.SMTPFrom, to, subject, data, workbook)
	if err != nil {
		log.Printf("[MAIL] render export mail: %v", err)
		return err
	}
	if err := NewMailSender(s).DialAndSend(m); err != nil {
		log.Printf("[MAIL] send export to %v: %v", to, err)
		return err
	}
	log.Printf("[MAIL] export %s sent to %d recipient(s)", data.FileName, len(to))
	return nil
}
