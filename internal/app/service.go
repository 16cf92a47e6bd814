package app

import (
	"context"
	"io"
	"time"

	"folio/api/internal/account"
	"folio/api/internal/auth"
	"folio/api/internal/content"
	"folio/api/internal/logger"
	"folio/api/internal/search"
	"folio/api/internal/store"
	"folio/api/internal/util"
)

// dataStore is the slice of the Postgres store the app layer uses.
type dataStore interface {
	GetUserByID(ctx context.Context, id string) (store.User, error)
	GetUserByUsername(ctx context.Context, username string) (store.User, error)

	FetchByOwner(ctx context.Context, ownerID string) (content.Document, error)
	FetchByPublicName(ctx context.Context, username string) (content.Document, error)
	Replace(ctx context.Context, ownerID string, doc content.Document) error

	InsertInquiry(ctx context.Context, inquiry store.Inquiry) error
	ListInquiries(ctx context.Context, ownerID string) ([]store.Inquiry, error)
	DeleteInquiry(ctx context.Context, ownerID, inquiryID string) error

	Ping(ctx context.Context) error
}

// sessionStore holds refresh tokens. Redis when configured, the
// refresh_sessions table otherwise.
type sessionStore interface {
	SaveRefreshSession(ctx context.Context, tokenHash, ownerID string, expiresAt time.Time) error
	LookupRefreshSession(ctx context.Context, tokenHash string) (string, error)
	RevokeRefreshSession(ctx context.Context, tokenHash string) error
}

type searcher interface {
	Search(q search.Query) search.Response
	IndexPortfolio(rec search.PortfolioRecord)
}

type emailer interface {
	IsConfigured() bool
	SendInquiryNotification(to, ownerName string, inquiry store.Inquiry) error
}

type uploader interface {
	Store(ctx context.Context, ownerID, filename string, body io.Reader, size int64) (string, error)
}

// Service wires the domain packages together for the HTTP layer.
type Service struct {
	store    dataStore
	sessions sessionStore
	accounts *account.Service
	search   searcher
	email    emailer
	uploads  uploader

	tokenSecret []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

type Options struct {
	Store       dataStore
	Sessions    sessionStore
	Accounts    *account.Service
	Search      searcher
	Email       emailer
	Uploads     uploader
	TokenSecret string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
}

func NewService(opts Options) *Service {
	return &Service{
		store:       opts.Store,
		sessions:    opts.Sessions,
		accounts:    opts.Accounts,
		search:      opts.Search,
		email:       opts.Email,
		uploads:     opts.Uploads,
		tokenSecret: []byte(opts.TokenSecret),
		accessTTL:   opts.AccessTTL,
		refreshTTL:  opts.RefreshTTL,
	}
}

// Session is an authenticated caller resolved from a bearer token.
type Session struct {
	OwnerID  string
	Username string
}

// AuthPayload is returned by register, login, and refresh.
type AuthPayload struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	OwnerID      string    `json:"ownerId"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Register creates an owner, seeds the default document, and opens a session.
func (s *Service) Register(ctx context.Context, req account.RegisterRequest) (AuthPayload, error) {
	user, err := s.accounts.Register(ctx, req)
	if err != nil {
		return AuthPayload{}, err
	}
	s.indexOwner(ctx, user)
	return s.createSession(ctx, user)
}

// Login authenticates an owner and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (AuthPayload, error) {
	user, err := s.accounts.Login(ctx, email, password)
	if err != nil {
		return AuthPayload{}, err
	}
	return s.createSession(ctx, user)
}

func (s *Service) createSession(ctx context.Context, user store.User) (AuthPayload, error) {
	token, err := auth.IssueToken(s.tokenSecret, user.ID, user.Username, s.accessTTL)
	if err != nil {
		return AuthPayload{}, err
	}
	refresh := auth.NewRefreshToken()
	expiresAt := time.Now().Add(s.refreshTTL)
	if err := s.sessions.SaveRefreshSession(ctx, auth.HashToken(refresh), user.ID, expiresAt); err != nil {
		return AuthPayload{}, err
	}
	return AuthPayload{
		Token:        token,
		RefreshToken: refresh,
		OwnerID:      user.ID,
		Username:     user.Username,
		Name:         user.Name,
		ExpiresAt:    time.Now().Add(s.accessTTL),
	}, nil
}

// SessionFromToken resolves a bearer token into a session.
func (s *Service) SessionFromToken(token string) (Session, error) {
	claims, err := auth.ParseToken(s.tokenSecret, token)
	if err != nil {
		return Session{}, err
	}
	return Session{OwnerID: claims.Subject, Username: claims.Username}, nil
}

// Refresh rotates a refresh token and issues a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (AuthPayload, error) {
	hash := auth.HashToken(refreshToken)
	ownerID, err := s.sessions.LookupRefreshSession(ctx, hash)
	if err != nil {
		return AuthPayload{}, err
	}
	user, err := s.store.GetUserByID(ctx, ownerID)
	if err != nil {
		return AuthPayload{}, err
	}
	if err := s.sessions.RevokeRefreshSession(ctx, hash); err != nil {
		return AuthPayload{}, err
	}
	return s.createSession(ctx, user)
}

// Logout revokes a refresh token. Best-effort: an unknown token is fine.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessions.RevokeRefreshSession(ctx, auth.HashToken(refreshToken))
}

// Content returns the caller's own document for editing.
func (s *Service) Content(ctx context.Context, ownerID string) (content.Document, error) {
	return s.store.FetchByOwner(ctx, ownerID)
}

// SaveContent replaces the caller's whole document and refreshes the
// portfolio search index.
func (s *Service) SaveContent(ctx context.Context, session Session, doc content.Document) (content.Document, error) {
	if err := s.store.Replace(ctx, session.OwnerID, doc); err != nil {
		return nil, err
	}
	if user, err := s.store.GetUserByID(ctx, session.OwnerID); err == nil {
		s.indexDocument(user, doc)
	}
	return doc, nil
}

// Portfolio returns a public portfolio by username, bumping its view counter.
func (s *Service) Portfolio(ctx context.Context, username string) (content.Document, error) {
	return s.store.FetchByPublicName(ctx, username)
}

// SearchPortfolios runs a public portfolio search.
func (s *Service) SearchPortfolios(q search.Query) search.Response {
	if s.search == nil {
		return search.Response{Results: []search.Result{}, Query: q.Text}
	}
	return s.search.Search(q)
}

// SubmitInquiry routes a visitor inquiry to its target owner and notifies
// the owner by email when SMTP is configured.
func (s *Service) SubmitInquiry(ctx context.Context, inquiry store.Inquiry) (store.Inquiry, error) {
	inquiry.ID = util.NewID("inq")
	inquiry.CreatedAt = time.Now().UTC()
	if err := s.store.InsertInquiry(ctx, inquiry); err != nil {
		return store.Inquiry{}, err
	}
	s.notifyInquiry(ctx, inquiry)
	return inquiry, nil
}

func (s *Service) notifyInquiry(ctx context.Context, inquiry store.Inquiry) {
	if s.email == nil || !s.email.IsConfigured() {
		return
	}
	owner, err := s.store.GetUserByID(ctx, inquiry.OwnerID)
	if err != nil {
		logger.Sugar.Warnf("inquiry notification: owner %s lookup: %v", inquiry.OwnerID, err)
		return
	}
	go func() {
		if err := s.email.SendInquiryNotification(owner.Email, owner.Name, inquiry); err != nil {
			logger.Sugar.Warnf("inquiry notification for %s: %v", owner.Email, err)
		}
	}()
}

// Inquiries lists the caller's inquiries, newest first.
func (s *Service) Inquiries(ctx context.Context, ownerID string) ([]store.Inquiry, error) {
	return s.store.ListInquiries(ctx, ownerID)
}

// DeleteInquiry removes one of the caller's inquiries.
func (s *Service) DeleteInquiry(ctx context.Context, ownerID, inquiryID string) error {
	return s.store.DeleteInquiry(ctx, ownerID, inquiryID)
}

// Upload stores a media file and returns its public URL.
func (s *Service) Upload(ctx context.Context, ownerID, filename string, body io.Reader, size int64) (string, error) {
	if s.uploads == nil {
		return "", domainError(503, "UPLOAD_UNAVAILABLE", "Upload service not configured", nil)
	}
	return s.uploads.Store(ctx, ownerID, filename, body, size)
}

func (s *Service) indexOwner(ctx context.Context, user store.User) {
	doc, err := s.store.FetchByOwner(ctx, user.ID)
	if err != nil {
		doc = content.Default()
	}
	s.indexDocument(user, doc)
}

func (s *Service) indexDocument(user store.User, doc content.Document) {
	if s.search == nil {
		return
	}
	s.search.IndexPortfolio(search.NewPortfolioRecord(user.ID, user.Username, user.Name, doc))
}
