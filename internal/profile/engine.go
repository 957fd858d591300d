package profile

import (
	"errors"
	"fmt"

	"github.com/quillhq/quill/internal/blogapi"
	"github.com/quillhq/quill/internal/session"
)

// Phase is the engine's top-level state.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseUnauthorized        // no token at mount; nothing else may run
	PhaseFetching            // initial GET in flight, placeholder visible
	PhaseReady               // editable; saves may be attempted
	PhaseSaving              // PUT in flight, save control disabled
	PhaseLeaving             // save succeeded, waiting out the notice delay
)

// OpState is the lifecycle of one asynchronous operation.
type OpState int

const (
	OpIdle OpState = iota
	OpInFlight
	OpSucceeded
	OpFailed
)

// Level classifies a notice for display.
type Level int

const (
	LevelNone Level = iota
	LevelInfo
	LevelSuccess
	LevelError
)

// Notice is a user-visible message produced by a transition. The zero value
// means "nothing to show".
type Notice struct {
	Level Level
	Text  string
}

// Notice texts matching the web client's wording.
const (
	noticeFetchFailed    = "Failed to load user information. Please try again."
	noticeSaveFailed     = "Failed to update account. Please try again."
	noticeSaved          = "Account updated successfully!"
	noticeEmptyName      = "Name cannot be empty"
	noticeEmptyEmail     = "Email cannot be empty"
	noticeBadEmail       = "Please enter a valid email address"
	noticeAvatarTooBig   = "Image size should be less than 5MB"
	noticeAvatarGeneric  = "Failed to load image. Please try again."
	noticeEncodeInFlight = "Still loading the previous image"
)

// Engine reconciles the server profile, the edited draft, and the session
// mirror across the fetch, save, and avatar-encode operations. It performs
// no I/O itself apart from the injected session store; network and file
// operations live in the caller, which feeds results back through the
// Apply* methods.
type Engine struct {
	sessions session.Store
	cached   session.Entry

	phase  Phase
	server Profile
	draft  Draft

	fetchOp  OpState
	saveOp   OpState
	encodeOp OpState

	// encodeGen invalidates late avatar-encode completions: only the result
	// carrying the current generation may touch the draft.
	encodeGen int
}

// NewEngine builds an engine over the given session store.
func NewEngine(sessions session.Store) *Engine {
	return &Engine{sessions: sessions}
}

// Mount reads the session cache and seeds placeholder state so the form can
// render before the network answers. It returns false when no auth token is
// present, in which case the engine is terminal and no fetch may be issued.
func (e *Engine) Mount() (bool, error) {
	if e.phase != PhaseUninitialized {
		return false, fmt.Errorf("mount called twice")
	}

	entry, err := e.sessions.Load()
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	if !entry.LoggedIn() {
		e.phase = PhaseUnauthorized
		return false, nil
	}

	e.cached = entry
	// The placeholder email stays empty even when the cache carries one; the
	// form only ever shows an email the server confirmed.
	e.server = Profile{
		Avatar: entry.ProfilePicture,
		Name:   entry.Username,
	}
	if e.server.Avatar == "" {
		e.server.Avatar = DefaultAvatarURL
	}
	e.draft = draftFrom(e.server)
	e.phase = PhaseFetching
	e.fetchOp = OpInFlight
	return true, nil
}

// ApplyFetch installs the fetch result. On success both the server profile
// and the draft are reinitialized from the response, replacing the
// placeholder; on failure the placeholder stays and the user may still edit
// and save. Either way the engine ends up Ready.
func (e *Engine) ApplyFetch(p *blogapi.Profile, err error) Notice {
	if e.phase != PhaseFetching {
		return Notice{}
	}

	e.phase = PhaseReady
	if err != nil {
		e.fetchOp = OpFailed
		return Notice{Level: LevelError, Text: errorText(err, noticeFetchFailed)}
	}

	e.fetchOp = OpSucceeded
	incoming := Profile{
		Avatar: p.ProfilePicture,
		Name:   p.Name,
		Email:  p.Email,
	}
	// Keep the placeholder values for fields the server left blank.
	if incoming.Avatar == "" {
		incoming.Avatar = e.server.Avatar
	}
	if incoming.Name == "" {
		incoming.Name = e.server.Name
	}
	e.server = incoming
	e.draft = draftFrom(incoming)
	return Notice{}
}

// SetName updates the draft name. Edits never touch the server profile.
func (e *Engine) SetName(name string) {
	if e.editable() {
		e.draft.Name = name
	}
}

// SetEmail updates the draft email.
func (e *Engine) SetEmail(email string) {
	if e.editable() {
		e.draft.Email = email
	}
}

// SetPassword updates the draft password. An empty value means "keep the
// current password".
func (e *Engine) SetPassword(password string) {
	if e.editable() {
		e.draft.Password = password
	}
}

// BeginAvatarEncode starts an avatar encode, returning the generation the
// eventual completion must present. A second encode while one is in flight
// is refused.
func (e *Engine) BeginAvatarEncode() (int, bool) {
	if !e.editable() || e.encodeOp == OpInFlight {
		return 0, false
	}
	e.encodeGen++
	e.encodeOp = OpInFlight
	return e.encodeGen, true
}

// ApplyAvatarEncode installs a completed encode. Results from a superseded
// generation are dropped so a late read can never overwrite a newer value.
// On success the encoded string replaces the draft avatar wholesale.
func (e *Engine) ApplyAvatarEncode(gen int, dataURL string, err error) Notice {
	if gen != e.encodeGen || e.encodeOp != OpInFlight {
		return Notice{}
	}

	if err != nil {
		e.encodeOp = OpFailed
		if errors.Is(err, ErrAvatarTooLarge) {
			return Notice{Level: LevelError, Text: noticeAvatarTooBig}
		}
		return Notice{Level: LevelError, Text: noticeAvatarGeneric}
	}

	e.encodeOp = OpSucceeded
	e.draft.Avatar = dataURL
	return Notice{}
}

// BeginSave validates the draft and, if it passes, freezes it into the
// request body and enters Saving. The returned ok is false when the save
// may not proceed; the notice then explains why (and is zero for the pure
// concurrency guards, which the UI already surfaces by disabling the
// control).
func (e *Engine) BeginSave() (blogapi.UpdateRequest, Notice, bool) {
	if e.phase != PhaseReady {
		return blogapi.UpdateRequest{}, Notice{}, false
	}
	if e.encodeOp == OpInFlight {
		return blogapi.UpdateRequest{}, Notice{Level: LevelInfo, Text: noticeEncodeInFlight}, false
	}

	if err := Validate(e.draft); err != nil {
		return blogapi.UpdateRequest{}, Notice{Level: LevelError, Text: validationText(err)}, false
	}

	req := blogapi.UpdateRequest{
		Name:           e.draft.Name,
		Email:          e.draft.Email,
		ProfilePicture: e.draft.Avatar,
		Password:       e.draft.Password, // omitted from the wire when empty
	}
	e.phase = PhaseSaving
	e.saveOp = OpInFlight
	return req, Notice{}, true
}

// ApplySave installs the save result. Success advances the server profile,
// the draft, and the session mirror together and reports that the caller
// should schedule the delayed navigate-home; failure leaves the draft and
// server profile exactly as they were and returns to Ready for a retry.
func (e *Engine) ApplySave(p *blogapi.Profile, err error) (Notice, bool) {
	if e.phase != PhaseSaving {
		return Notice{}, false
	}

	if err != nil {
		e.saveOp = OpFailed
		e.phase = PhaseReady
		return Notice{Level: LevelError, Text: errorText(err, noticeSaveFailed)}, false
	}

	e.saveOp = OpSucceeded
	e.server = Profile{
		Avatar: p.ProfilePicture,
		Name:   p.Name,
		Email:  p.Email,
	}
	e.draft = draftFrom(e.server)

	e.cached.Username = p.Name
	e.cached.ProfilePicture = p.ProfilePicture
	e.cached.Email = p.Email
	// Best effort: the server already accepted the update, and the next
	// login rewrites this file anyway.
	_ = e.sessions.Save(e.cached)

	e.phase = PhaseLeaving
	return Notice{Level: LevelSuccess, Text: noticeSaved}, true
}

// Phase returns the engine's current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Token returns the session auth token read at mount. Empty until Mount has
// succeeded.
func (e *Engine) Token() string { return e.cached.Token }

// Server returns the last server-confirmed profile.
func (e *Engine) Server() Profile { return e.server }

// Draft returns the current working copy.
func (e *Engine) Draft() Draft { return e.draft }

// FetchState returns the fetch operation lifecycle.
func (e *Engine) FetchState() OpState { return e.fetchOp }

// SaveState returns the save operation lifecycle.
func (e *Engine) SaveState() OpState { return e.saveOp }

// EncodeState returns the avatar-encode lifecycle.
func (e *Engine) EncodeState() OpState { return e.encodeOp }

// CanSave reports whether the save control should be enabled.
func (e *Engine) CanSave() bool {
	return e.phase == PhaseReady && e.encodeOp != OpInFlight
}

func (e *Engine) editable() bool {
	return e.phase == PhaseFetching || e.phase == PhaseReady
}

// errorText prefers a server-reported message and falls back to the given
// generic text for transport-level failures.
func errorText(err error, fallback string) string {
	var apiErr *blogapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func validationText(err error) string {
	switch {
	case errors.Is(err, ErrEmptyName):
		return noticeEmptyName
	case errors.Is(err, ErrEmptyEmail):
		return noticeEmptyEmail
	case errors.Is(err, ErrMalformedEmail):
		return noticeBadEmail
	default:
		return err.Error()
	}
}
