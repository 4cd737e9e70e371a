package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signin"
)

const (
	FormElementID   = "signin-form"
	SubmitElementID = "signin-submit"
)

// ErrorElementID returns the id of the element that shows the error of f.
func ErrorElementID(f signin.Field) string {
	return f.String() + "-error"
}

// FormParams is the data the page and form views render.
type FormParams struct {
	State     signin.State
	ActionURL string
	StreamURL string
	FieldURL  func(signin.Field) string
}

type FieldErrorParams struct {
	Field   signin.Field
	Message string
}

type SubmitButtonParams struct {
	Disabled bool
}

// Views renders the sign-in form. Nil views fall back to DefaultViews.
// FieldError and SubmitButton must render a root element with the ids from
// ErrorElementID and SubmitElementID so streamed patches find their target.
type Views struct {
	Page         func(FormParams) templ.Component
	Form         func(FormParams) templ.Component
	FieldError   func(FieldErrorParams) templ.Component
	SubmitButton func(SubmitButtonParams) templ.Component
}

func DefaultViews() Views {
	v := Views{
		FieldError:   defaultFieldError,
		SubmitButton: defaultSubmitButton,
	}
	v.Form = func(p FormParams) templ.Component { return defaultForm(v, p) }
	v.Page = func(p FormParams) templ.Component { return defaultPage(v, p) }
	return v
}

func (v Views) withDefaults() Views {
	def := DefaultViews()
	if v.FieldError == nil {
		v.FieldError = def.FieldError
	}
	if v.SubmitButton == nil {
		v.SubmitButton = def.SubmitButton
	}
	if v.Form == nil {
		v.Form = func(p FormParams) templ.Component { return defaultForm(v, p) }
	}
	if v.Page == nil {
		v.Page = func(p FormParams) templ.Component { return defaultPage(v, p) }
	}
	return v
}

// statePatches are the elements refreshed on every state change.
func (v Views) statePatches(st signin.State) []templ.Component {
	return []templ.Component{
		v.FieldError(FieldErrorParams{Field: signin.Email, Message: st.ErrorMessage(signin.Email)}),
		v.FieldError(FieldErrorParams{Field: signin.Password, Message: st.ErrorMessage(signin.Password)}),
		v.SubmitButton(SubmitButtonParams{Disabled: !st.Submittable}),
	}
}

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

func defaultPage(v Views, p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!doctype html><html lang="en"><head><meta charset="utf-8"><title>Sign in</title><script type="module" src="%s"></script></head><body><main><h1>Sign in</h1>`, datastarScript); err != nil {
			return err
		}
		if err := v.Form(p).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<nav><a href="#">Forgot password?</a> <a href="#">Don't have an account? Sign Up</a></nav></main></body></html>`)
		return err
	})
}

func defaultForm(v Views, p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(map[string]any{
			signin.Email.String():    p.State.Values.Email,
			signin.Password.String(): "",
			signin.Remember.String(): p.State.Values.Remember,
		})
		if err != nil {
			return err
		}

		checked := ""
		if p.State.Values.Remember {
			checked = " checked"
		}

		if _, err := fmt.Fprintf(w,
			`<form id="%s" method="post" action="%s" novalidate data-signals="%s" data-on-load="@get('%s')" data-on-submit="@post('%s')">`,
			FormElementID, templ.EscapeString(p.ActionURL), templ.EscapeString(string(signals)),
			templ.EscapeString(p.StreamURL), templ.EscapeString(p.ActionURL),
		); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<label for="email">Email Address</label><input id="email" name="email" type="email" autocomplete="email" autofocus required value="%s" data-bind-email data-on-input__debounce.300ms="@post('%s')">`,
			templ.EscapeString(p.State.Values.Email), templ.EscapeString(p.FieldURL(signin.Email)),
		); err != nil {
			return err
		}
		if err := v.FieldError(FieldErrorParams{Field: signin.Email, Message: p.State.ErrorMessage(signin.Email)}).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<label for="password">Password</label><input id="password" name="password" type="password" autocomplete="current-password" required data-bind-password data-on-input__debounce.300ms="@post('%s')">`,
			templ.EscapeString(p.FieldURL(signin.Password)),
		); err != nil {
			return err
		}
		if err := v.FieldError(FieldErrorParams{Field: signin.Password, Message: p.State.ErrorMessage(signin.Password)}).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<label><input type="hidden" name="remember" value="false"><input id="remember" name="remember" type="checkbox" value="true"%s data-bind-remember data-on-change="@post('%s')"> Remember me</label>`,
			checked, templ.EscapeString(p.FieldURL(signin.Remember)),
		); err != nil {
			return err
		}

		if err := v.SubmitButton(SubmitButtonParams{Disabled: !p.State.Submittable}).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</form>`)
		return err
	})
}

func defaultFieldError(p FieldErrorParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s" class="field-error" role="alert">%s</p>`,
			ErrorElementID(p.Field), templ.EscapeString(p.Message))
		return err
	})
}

func defaultSubmitButton(p SubmitButtonParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		disabled := ""
		if p.Disabled {
			disabled = " disabled"
		}
		_, err := fmt.Fprintf(w, `<button id="%s" type="submit"%s>Sign In</button>`, SubmitElementID, disabled)
		return err
	})
}
