package notification

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer"
)

const subjectFormat = "Product updated: %s"

var textBody = texttemplate.Must(texttemplate.New("text").Parse(`Product updated

ID: {{.ID}}
Name: {{.Name}}
Description: {{.Description}}
Updated at: {{.UpdatedAt}}
`))

// htmlBody is rendered by html/template, which escapes every interpolated
// field, so payload content cannot inject markup into the email.
var htmlBody = htmltemplate.Must(htmltemplate.New("html").Parse(`<h1>Product updated</h1>
<ul>
	<li><strong>ID:</strong> {{.ID}}</li>
	<li><strong>Name:</strong> {{.Name}}</li>
	<li><strong>Description:</strong> {{.Description}}</li>
	<li><strong>Updated at:</strong> {{.UpdatedAt}}</li>
</ul>
`))

// BuildEmail renders the notification into a ready-to-send email addressed
// to the notification's recipient. The sender address is left empty so the
// provider fills in its configured default.
func BuildEmail(u *Update) (*mailer.Email, error) {
	var text bytes.Buffer
	if err := textBody.Execute(&text, u); err != nil {
		return nil, errors.Join(mailer.ErrRenderFailed, err)
	}

	var html bytes.Buffer
	if err := htmlBody.Execute(&html, u); err != nil {
		return nil, errors.Join(mailer.ErrRenderFailed, err)
	}

	return &mailer.Email{
		To:      []string{u.RecipientEmail},
		Subject: fmt.Sprintf(subjectFormat, u.Name),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
