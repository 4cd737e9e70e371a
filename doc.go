// Package signin implements the validation and submission gate of a sign-in
// form with an email address, a password and a remember-me toggle.
//
// An Engine owns the form values, evaluates a static RuleSet per field and
// decides whether the form may be submitted. Renderers never mutate state
// directly: they call SetValue on every input event and TrySubmit on the
// submit gesture, then display the returned State or the snapshots published
// through Subscribe.
//
//	e, err := signin.New(
//		signin.WithMode(signin.ModeChange),
//		signin.WithSink(func(p signin.Payload) { /* authenticate */ }),
//	)
//	if err != nil {
//		return err
//	}
//	e.SetValue(signin.Email, signin.Text("a@b.com"))
//	e.SetValue(signin.Password, signin.Text("abcdef"))
//	if _, err := e.TrySubmit(); signin.IsValidationFailure(err) {
//		// show e.State().Errors
//	}
//
// Validation failures are ordinary values. Email must be present and well
// formed; password must be present and at least DefaultMinPasswordLength
// characters long; remember has no rules. State.Submittable is derived from
// the error mapping on every snapshot.
//
// The HTTP renderer lives in modules/web and the terminal renderer in
// modules/prompt.
package signin
