package cli

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/pkg/logger"
	"github.com/dmitrymomot/signin/pkg/sanitizer"
)

// receipt is what the CLI prints for an accepted submit. The password never
// leaves the process unmasked.
type receipt struct {
	FormID   string `json:"form_id,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// newPrintSink returns a SubmitSink writing one JSON line per payload to w.
func newPrintSink(w io.Writer, formID string, log *slog.Logger) signin.SubmitSink {
	enc := json.NewEncoder(w)
	return func(p signin.Payload) {
		log.Info("sign-in accepted", slog.Any("payload", p))
		if err := enc.Encode(receipt{
			FormID:   formID,
			Email:    p.Email,
			Password: sanitizer.MaskSecret(p.Password),
			Remember: p.Remember,
		}); err != nil {
			log.Error("failed to write payload", logger.Error(err))
		}
	}
}
