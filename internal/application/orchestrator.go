package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/bnema/minitwitter-cli/internal/ports"
	"github.com/bnema/minitwitter-cli/internal/presentation"
)

// ErrSuperseded is returned when a response arrived after a newer request of
// the same kind, or after the session it belonged to ended. Nothing was
// applied to the screen.
var ErrSuperseded = errors.New("superseded by a newer request")

const (
	NoticeLoginRequired  = "login required"
	NoticeSessionExpired = "session expired, please log in again"
	NoticeProfileUpdated = "profile updated"
	NoticeNotPostOwner   = "you can only delete your own posts"

	ConfirmDeletePrompt = "Are you sure you want to delete this post?"

	msgTokenNotStored  = "could not store the session token"
	msgLoginFailed     = "login failed, check your credentials"
	msgRegisterFailed  = "could not create the account, try again"
	msgProfileNotSaved = "could not update the profile, try again"
)

type Options struct {
	Confirmer ports.Confirmer
	Clock     ports.Clock
	Inspector ports.TokenInspector
	Logger    *zap.Logger
	Format    presentation.Format
}

// Orchestrator owns the session and the screen bindings. All methods are safe
// for concurrent use; the mutex is released around every API call.
type Orchestrator struct {
	api       ports.MiniTwitterAPI
	tokens    ports.TokenStore
	confirmer ports.Confirmer
	clock     ports.Clock
	inspector ports.TokenInspector
	logger    *zap.Logger
	format    presentation.Format

	mu      sync.Mutex
	session *domain.Session
	seq     sequencer
	screen  Screen
	// unconfirmed is the sign-in whose token is persisted but whose profile
	// fetch has not come back yet.
	unconfirmed *ticket
}

func NewOrchestrator(api ports.MiniTwitterAPI, tokens ports.TokenStore, opts Options) *Orchestrator {
	if opts.Confirmer == nil {
		opts.Confirmer = declineAll{}
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Inspector == nil {
		opts.Inspector = neverExpired{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Format == (presentation.Format{}) {
		opts.Format = presentation.DefaultFormat()
	} else if opts.Format.Layout == "" {
		opts.Format.Layout = presentation.DefaultTimeLayout
	}

	return &Orchestrator{
		api:       api,
		tokens:    tokens,
		confirmer: opts.Confirmer,
		clock:     opts.Clock,
		inspector: opts.Inspector,
		logger:    opts.Logger,
		format:    opts.Format,
		screen:    newScreen(),
	}
}

func (o *Orchestrator) Snapshot() Screen {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.screen.clone()
}

func (o *Orchestrator) Session() (domain.Session, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.session.Active() {
		return domain.Session{}, false
	}

	return *o.session, true
}

func (o *Orchestrator) DismissNotice() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.screen.Notice = ""
}

// Startup restores a persisted session. The stored token is validated with a
// profile fetch; any failure discards it and leaves the Login view active.
func (o *Orchestrator) Startup(ctx context.Context) error {
	o.mu.Lock()
	t := o.seq.issue(workflowSession)

	token, err := o.tokens.Load(ctx)
	if err != nil {
		o.resetToLoginLocked()
		o.mu.Unlock()
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil
		}

		return fmt.Errorf("load token: %w", err)
	}

	if o.inspector.Expired(token, o.clock.Now()) {
		o.logger.Info("stored token expired locally")
		clearErr := o.tokens.Clear(context.WithoutCancel(ctx))
		o.resetToLoginLocked()
		o.screen.Notice = NoticeSessionExpired
		o.mu.Unlock()
		if clearErr != nil {
			return fmt.Errorf("clear expired token: %w", clearErr)
		}

		return nil
	}

	o.screen.State = domain.StateAuthenticating
	o.mu.Unlock()

	user, err := o.api.GetProfile(ctx, token)

	o.mu.Lock()
	if !o.seq.newest(t) {
		o.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		o.logger.Info("stored token rejected", zap.String("kind", domain.KindOf(err).String()), zap.Error(err))
		clearErr := o.tokens.Clear(context.WithoutCancel(ctx))
		o.resetToLoginLocked()
		if errors.Is(err, domain.ErrUnauthorized) {
			o.screen.Notice = NoticeSessionExpired
		} else {
			o.screen.Notice = domain.Message(err)
		}
		o.mu.Unlock()

		return fmt.Errorf("validate stored session: %w", errors.Join(err, clearErr))
	}

	o.establishLocked(domain.Session{User: user, Token: token})
	o.mu.Unlock()

	return o.afterSignIn(ctx)
}

func (o *Orchestrator) Login(ctx context.Context, credentials domain.Credentials) error {
	credentials.Email = strings.TrimSpace(credentials.Email)

	o.mu.Lock()
	o.screen.LoginError = ""
	if err := credentials.Validate(); err != nil {
		o.screen.LoginError = domain.Message(err)
		o.mu.Unlock()
		return err
	}
	t := o.seq.issue(workflowSession)
	o.screen.State = domain.StateAuthenticating
	o.mu.Unlock()

	result, err := o.api.Login(ctx, credentials)

	return o.completeAuth(ctx, t, domain.FormLogin, result, err)
}

func (o *Orchestrator) Register(ctx context.Context, registration domain.Registration) error {
	registration.Username = strings.TrimSpace(registration.Username)
	registration.Email = strings.TrimSpace(registration.Email)

	o.mu.Lock()
	o.screen.RegisterError = ""
	if err := registration.Validate(); err != nil {
		o.screen.RegisterError = domain.Message(err)
		o.mu.Unlock()
		return err
	}
	t := o.seq.issue(workflowSession)
	o.screen.State = domain.StateAuthenticating
	o.mu.Unlock()

	result, err := o.api.Register(ctx, registration)

	return o.completeAuth(ctx, t, domain.FormRegister, result, err)
}

// completeAuth persists the issued token and validates it with a profile
// fetch. The token only stays persisted once the profile is known.
func (o *Orchestrator) completeAuth(ctx context.Context, t ticket, form domain.Form, result domain.AuthResult, authErr error) error {
	o.mu.Lock()
	if !o.seq.newest(t) {
		o.mu.Unlock()
		return ErrSuperseded
	}
	if authErr != nil {
		o.settleStateLocked()
		o.setFormErrorLocked(form, userMessage(authErr, form))
		o.mu.Unlock()
		return fmt.Errorf("sign in: %w", authErr)
	}
	if err := o.tokens.Save(ctx, result.Token); err != nil {
		o.settleStateLocked()
		o.setFormErrorLocked(form, msgTokenNotStored)
		o.mu.Unlock()
		return fmt.Errorf("store token: %w", err)
	}
	o.unconfirmed = &t
	o.mu.Unlock()

	user, err := o.api.GetProfile(ctx, result.Token)

	o.mu.Lock()
	if !o.seq.newest(t) {
		restoreErr := o.restoreTokenLocked(ctx, t)
		o.mu.Unlock()
		if restoreErr != nil {
			return errors.Join(ErrSuperseded, restoreErr)
		}
		return ErrSuperseded
	}
	o.unconfirmed = nil
	if err != nil {
		clearErr := o.tokens.Clear(context.WithoutCancel(ctx))
		o.resetToLoginLocked()
		if form == domain.FormRegister {
			o.showLocked(domain.ViewRegister)
		}
		o.setFormErrorLocked(form, userMessage(err, form))
		o.mu.Unlock()

		return fmt.Errorf("load profile after %s: %w", form, errors.Join(err, clearErr))
	}

	o.establishLocked(domain.Session{User: user, Token: result.Token})
	o.mu.Unlock()

	return o.afterSignIn(ctx)
}

// afterSignIn loads the feed and shows it. A failed feed load is not a failed
// sign-in unless the server rejected the token.
func (o *Orchestrator) afterSignIn(ctx context.Context) error {
	if err := o.enterFeed(ctx); err != nil && errors.Is(err, domain.ErrUnauthorized) {
		return err
	}

	return nil
}

// settleStateLocked leaves Authenticating after a failed sign-in, falling back
// to whatever session is still active.
func (o *Orchestrator) settleStateLocked() {
	if o.session.Active() {
		o.screen.State = domain.StateAuthenticated
		return
	}
	o.screen.State = domain.StateAnonymous
}

// restoreTokenLocked undoes the save of a superseded sign-in when no newer
// sign-in has persisted a token since: the store goes back to the active
// session's token, or is cleared when there is none.
func (o *Orchestrator) restoreTokenLocked(ctx context.Context, t ticket) error {
	if o.unconfirmed == nil || *o.unconfirmed != t {
		return nil
	}
	o.unconfirmed = nil

	ctx = context.WithoutCancel(ctx)
	if o.session.Active() {
		return o.tokens.Save(ctx, o.session.Token)
	}

	return o.tokens.Clear(ctx)
}

func (o *Orchestrator) Logout(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq.issue(workflowSession)
	o.unconfirmed = nil
	err := o.tokens.Clear(context.WithoutCancel(ctx))
	o.resetToLoginLocked()
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	return nil
}

func (o *Orchestrator) Navigate(ctx context.Context, view domain.View) error {
	switch view {
	case domain.ViewLogin, domain.ViewRegister:
		o.mu.Lock()
		defer o.mu.Unlock()
		o.screen.LoginError = ""
		o.screen.RegisterError = ""
		o.showLocked(view)
		return nil
	case domain.ViewFeed:
		if err := o.requireSession(); err != nil {
			return err
		}
		return o.enterFeed(ctx)
	case domain.ViewProfile:
		if err := o.requireSession(); err != nil {
			return err
		}
		return o.enterProfile(ctx)
	default:
		return fmt.Errorf("navigate: unknown view %d", view)
	}
}

func (o *Orchestrator) enterFeed(ctx context.Context) error {
	err := o.loadFeed(ctx)
	if errors.Is(err, ErrSuperseded) {
		err = nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.session.Active() {
		if err == nil {
			err = domain.ErrNoSession
		}
		return err
	}
	o.showLocked(domain.ViewFeed)
	if err != nil {
		o.screen.Notice = domain.Message(err)
	}

	return err
}

func (o *Orchestrator) enterProfile(ctx context.Context) error {
	profileErr := ignoreSuperseded(o.loadProfile(ctx))
	if errors.Is(profileErr, domain.ErrUnauthorized) {
		return profileErr
	}
	postsErr := ignoreSuperseded(o.loadOwnPosts(ctx))

	o.mu.Lock()
	defer o.mu.Unlock()

	err := errors.Join(profileErr, postsErr)
	if !o.session.Active() {
		if err == nil {
			err = domain.ErrNoSession
		}
		return err
	}
	o.showLocked(domain.ViewProfile)
	if err != nil {
		o.screen.Notice = domain.Message(err)
	}

	return err
}

func (o *Orchestrator) loadFeed(ctx context.Context) error {
	o.mu.Lock()
	if !o.session.Active() {
		o.mu.Unlock()
		return domain.ErrNoSession
	}
	token := o.session.Token
	t := o.seq.issue(workflowFeed)
	o.mu.Unlock()

	posts, err := o.api.ListPosts(ctx, token)

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.seq.current(t) {
		return ErrSuperseded
	}
	if err != nil {
		return o.failLocked(ctx, t, "load feed", err)
	}
	o.screen.Feed = presentation.RenderPosts(domain.SortNewestFirst(posts), o.session.User.ID, o.format)

	return nil
}

func (o *Orchestrator) loadOwnPosts(ctx context.Context) error {
	o.mu.Lock()
	if !o.session.Active() {
		o.mu.Unlock()
		return domain.ErrNoSession
	}
	token := o.session.Token
	t := o.seq.issue(workflowOwnPosts)
	o.mu.Unlock()

	posts, err := o.api.ListOwnPosts(ctx, token)

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.seq.current(t) {
		return ErrSuperseded
	}
	if err != nil {
		return o.failLocked(ctx, t, "load own posts", err)
	}
	viewer := o.session.User.ID
	own := domain.FilterByAuthor(domain.SortNewestFirst(posts), viewer)
	o.screen.OwnPosts = presentation.RenderPosts(own, viewer, o.format)

	return nil
}

func (o *Orchestrator) loadProfile(ctx context.Context) error {
	o.mu.Lock()
	if !o.session.Active() {
		o.mu.Unlock()
		return domain.ErrNoSession
	}
	token := o.session.Token
	t := o.seq.issue(workflowProfile)
	o.mu.Unlock()

	user, err := o.api.GetProfile(ctx, token)

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.seq.current(t) {
		return ErrSuperseded
	}
	if err != nil {
		return o.failLocked(ctx, t, "load profile", err)
	}
	o.applyUserLocked(user)

	return nil
}

// SetComposeContent mirrors the compose input and its live counter.
func (o *Orchestrator) SetComposeContent(content string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.screen.Compose = Compose{
		Content: content,
		Counter: presentation.CharCount(domain.ContentLength(content), domain.MaxPostLength),
	}
}

// CreatePost publishes the current compose content. On failure the input is
// left as typed.
func (o *Orchestrator) CreatePost(ctx context.Context) error {
	o.mu.Lock()
	content := o.screen.Compose.Content
	if err := domain.ValidatePostContent(content); err != nil {
		o.screen.Notice = domain.Message(err)
		o.mu.Unlock()
		return err
	}
	if err := o.requireSessionLocked(); err != nil {
		o.mu.Unlock()
		return err
	}
	token := o.session.Token
	t := o.seq.issue(workflowCompose)
	o.mu.Unlock()

	post, err := o.api.CreatePost(ctx, token, strings.TrimSpace(content))

	o.mu.Lock()
	if !o.seq.current(t) {
		o.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		err = o.failLocked(ctx, t, "publish", err)
		o.noticeUnlessSignedOutLocked(err)
		o.mu.Unlock()
		return err
	}
	o.screen.Compose = emptyCompose()
	o.screen.Notice = ""
	o.mu.Unlock()

	o.logger.Debug("post created", zap.String("post_id", string(post.ID)))

	return o.reloadAfterWrite(ctx, false)
}

// DeletePost asks for confirmation first and reports whether the post was
// deleted. A declined confirmation is not an error.
func (o *Orchestrator) DeletePost(ctx context.Context, id domain.PostID) (bool, error) {
	o.mu.Lock()
	if err := o.requireSessionLocked(); err != nil {
		o.mu.Unlock()
		return false, err
	}
	if card, ok := o.findCardLocked(id); ok && !card.Deletable {
		o.screen.Notice = NoticeNotPostOwner
		o.mu.Unlock()
		return false, &domain.ValidationError{Form: domain.FormPost, Message: NoticeNotPostOwner}
	}
	o.mu.Unlock()

	confirmed, err := o.confirmer.Confirm(ctx, ConfirmDeletePrompt)
	if err != nil {
		return false, fmt.Errorf("confirm delete: %w", err)
	}
	if !confirmed {
		return false, nil
	}

	o.mu.Lock()
	if err := o.requireSessionLocked(); err != nil {
		o.mu.Unlock()
		return false, err
	}
	token := o.session.Token
	t := o.seq.issue(workflowDelete)
	o.mu.Unlock()

	err = o.api.DeletePost(ctx, token, id)

	o.mu.Lock()
	if !o.seq.current(t) {
		o.mu.Unlock()
		return false, ErrSuperseded
	}
	if err != nil {
		err = o.failLocked(ctx, t, "remove post", err)
		o.noticeUnlessSignedOutLocked(err)
		o.mu.Unlock()
		return false, err
	}
	profileActive := o.screen.ActiveView() == domain.ViewProfile
	o.mu.Unlock()

	return true, o.reloadAfterWrite(ctx, profileActive)
}

// reloadAfterWrite refreshes the lists after a successful write. Only a
// rejected session is reported; other read failures degrade silently.
func (o *Orchestrator) reloadAfterWrite(ctx context.Context, ownPosts bool) error {
	if err := o.loadFeed(ctx); errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	if !ownPosts {
		return nil
	}
	if err := o.loadOwnPosts(ctx); errors.Is(err, domain.ErrUnauthorized) {
		return err
	}

	return nil
}

func (o *Orchestrator) BeginEditProfile() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireSessionLocked(); err != nil {
		return err
	}
	o.screen.Edit = EditForm{
		Visible:  true,
		Username: o.session.User.Username,
		Email:    o.session.User.Email,
	}

	return nil
}

func (o *Orchestrator) CancelEditProfile() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.screen.Edit = EditForm{}
}

func (o *Orchestrator) SubmitProfile(ctx context.Context, update domain.ProfileUpdate) error {
	update.Username = strings.TrimSpace(update.Username)
	update.Email = strings.TrimSpace(update.Email)

	o.mu.Lock()
	if err := update.Validate(); err != nil {
		o.screen.Notice = domain.Message(err)
		o.mu.Unlock()
		return err
	}
	if err := o.requireSessionLocked(); err != nil {
		o.mu.Unlock()
		return err
	}
	o.screen.Edit.Username = update.Username
	o.screen.Edit.Email = update.Email
	token := o.session.Token
	t := o.seq.issue(workflowProfile)
	o.mu.Unlock()

	user, err := o.api.UpdateProfile(ctx, token, update)

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.seq.current(t) {
		return ErrSuperseded
	}
	if err != nil {
		err = o.failLocked(ctx, t, "save profile", err)
		if o.session.Active() {
			o.screen.Notice = userMessage(err, domain.FormProfile)
		}
		return err
	}
	o.applyUserLocked(user)
	o.screen.Edit = EditForm{}
	o.screen.Notice = NoticeProfileUpdated

	return nil
}

func (o *Orchestrator) requireSession() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.requireSessionLocked()
}

func (o *Orchestrator) requireSessionLocked() error {
	if o.session.Active() {
		return nil
	}
	o.showLocked(domain.ViewLogin)
	o.screen.Notice = NoticeLoginRequired

	return domain.ErrNoSession
}

// failLocked wraps err for op. An authorization failure for the current
// session tears it down.
func (o *Orchestrator) failLocked(ctx context.Context, t ticket, op string, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		if o.seq.sameEpoch(t) {
			o.teardownLocked(ctx, t)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	o.logger.Warn(op+" failed",
		zap.String("workflow", t.workflow.String()),
		zap.String("kind", domain.KindOf(err).String()),
		zap.Error(err),
	)

	return fmt.Errorf("%s: %w", op, err)
}

func (o *Orchestrator) teardownLocked(ctx context.Context, t ticket) {
	o.screen.State = domain.StateSessionExpiring
	o.logger.Info("session rejected by server", zap.String("workflow", t.workflow.String()))

	if err := o.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		o.logger.Error("clear rejected token", zap.Error(err))
	}
	o.resetToLoginLocked()
	o.screen.Notice = NoticeSessionExpired
}

func (o *Orchestrator) noticeUnlessSignedOutLocked(err error) {
	if o.session.Active() {
		o.screen.Notice = domain.Message(err)
	}
}

func (o *Orchestrator) establishLocked(session domain.Session) {
	o.seq.bumpEpoch()
	o.session = &session
	o.screen.State = domain.StateAuthenticated
	o.screen.Nav = navFor(true)
	o.screen.Viewer = session.User
	o.screen.Profile = session.User
	o.screen.LoginError = ""
	o.screen.RegisterError = ""
	o.screen.Notice = ""
	o.screen.Edit = EditForm{}
	o.screen.Compose = emptyCompose()
}

// resetToLoginLocked drops the in-memory session and every session-bound
// binding. The persisted token is the caller's concern.
func (o *Orchestrator) resetToLoginLocked() {
	o.seq.bumpEpoch()
	o.session = nil

	fresh := newScreen()
	fresh.LoginError = o.screen.LoginError
	fresh.RegisterError = o.screen.RegisterError
	o.screen = fresh
}

func (o *Orchestrator) applyUserLocked(user domain.User) {
	if user.ID == "" {
		user.ID = o.session.User.ID
	}
	o.session.User = user
	o.screen.Viewer = user
	o.screen.Profile = user
}

func (o *Orchestrator) setFormErrorLocked(form domain.Form, message string) {
	switch form {
	case domain.FormRegister:
		o.screen.RegisterError = message
	default:
		o.screen.LoginError = message
	}
}

func (o *Orchestrator) showLocked(view domain.View) {
	o.screen.Views = presentation.ShowView(view, domain.AllViews())
}

func (o *Orchestrator) findCardLocked(id domain.PostID) (presentation.PostCard, bool) {
	for _, list := range []presentation.PostList{o.screen.Feed, o.screen.OwnPosts} {
		for _, card := range list.Cards {
			if card.ID == id {
				return card, true
			}
		}
	}

	return presentation.PostCard{}, false
}

// userMessage falls back to a per-form hint when the error carries no text.
func userMessage(err error, form domain.Form) string {
	if message := strings.TrimSpace(domain.Message(err)); message != "" {
		return message
	}

	switch form {
	case domain.FormRegister:
		return msgRegisterFailed
	case domain.FormProfile:
		return msgProfileNotSaved
	default:
		return msgLoginFailed
	}
}

func ignoreSuperseded(err error) error {
	if errors.Is(err, ErrSuperseded) {
		return nil
	}

	return err
}

type declineAll struct{}

func (declineAll) Confirm(context.Context, string) (bool, error) {
	return false, nil
}

type neverExpired struct{}

func (neverExpired) Expired(string, time.Time) bool {
	return false
}
