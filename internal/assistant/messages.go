// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"errors"
	"sort"
	"strings"

	"github.com/pdiddy/project-ascent/internal/model"
	"github.com/pdiddy/project-ascent/internal/validate"
)

// GenericFailure is shown when an error carries no usable message.
const GenericFailure = "An unexpected error occurred. Please try again."

// Notice is the user-facing summary of a failed submission.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserMessage maps err to the notification shown to the student. It
// switches on the error type and kind, never on message text.
func UserMessage(err error) Notice {
	var verr *validate.Error
	if errors.As(err, &verr) {
		return Notice{Title: "Invalid input", Description: fieldMessages(verr)}
	}

	const title = "Generation Failed"
	switch model.KindOf(err) {
	case model.KindAuth:
		return Notice{Title: title, Description: "Configuration error. Please contact support."}
	case model.KindQuota:
		return Notice{Title: title, Description: "Service temporarily unavailable. Please try again in a few minutes."}
	case model.KindRateLimited:
		return Notice{Title: title, Description: "Too many requests. Please wait a moment and try again."}
	}

	desc := GenericFailure
	var me *model.Error
	switch {
	case errors.As(err, &me) && me.Message != "":
		desc = me.Message
	case err != nil && strings.TrimSpace(err.Error()) != "":
		desc = err.Error()
	}
	return Notice{Title: title, Description: desc}
}

func fieldMessages(verr *validate.Error) string {
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var msgs []string
	for _, f := range fields {
		msgs = append(msgs, verr.Fields[f]...)
	}
	return strings.Join(msgs, " ")
}
