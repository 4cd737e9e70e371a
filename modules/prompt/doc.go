// Package prompt renders a sign-in form in the terminal.
//
// The Renderer asks for every field through a PromptDriver, forwards each
// answer to the Engine with SetValue and then calls TrySubmit. When the submit
// is rejected the failing fields are shown with their error messages and asked
// again. In change mode every answer is checked while typing, so survey
// refuses an invalid answer with the message the engine produced.
//
//	r, err := prompt.New(engine)
//	if err != nil {
//		return err
//	}
//	payload, err := r.Run(ctx)
package prompt
