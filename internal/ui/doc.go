// Package ui provides the Bubble Tea front end for the account editor.
//
// # Overview
//
// The Model wraps the profile engine and renders its state as a four-field
// form (name, email, password, avatar path). All asynchronous work — the
// profile fetch on start, the save, the avatar file encode, and the delayed
// exit after a successful save — runs as tea.Cmd functions whose results
// re-enter the single-threaded update loop as typed messages and are applied
// through the engine's transition methods.
//
// # Message Flow
//
//	Init            → fetchCmd              → fetchDoneMsg
//	ctrl+s          → saveCmd(frozen draft) → saveDoneMsg
//	enter on avatar → encodeAvatarCmd(gen)  → avatarEncodedMsg
//	save success    → goHomeCmd (1.5s tick) → goHomeMsg → tea.Quit
//
// The engine owns every guard: a save keypress while a save or encode is in
// flight is a no-op (the disabled-control behavior), a stale avatar encode
// is dropped by its generation, and messages arriving after the model has
// entered its leaving phase change nothing.
//
// # Key Bindings
//
//   - tab / shift+tab: move between fields
//   - enter (avatar field): read and embed the image at the typed path
//   - ctrl+s: validate and save
//   - ctrl+p: toggle password visibility
//   - esc: cancel without saving
//   - ctrl+c: quit
//
// Bindings are declared with bubbles/key and rendered in the footer with
// bubbles/help.
//
// # Rendering
//
// View draws a lipgloss-framed form centered in the terminal, with the
// current phase in the header (loading/saving spinners from
// bubbles/spinner) and the latest notice below the frame. Data-URL avatars
// are summarized as a byte count rather than echoed.
package ui
