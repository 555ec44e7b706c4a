package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/notify"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passkeeper/internal/server/sessions"
)

// Registration is the input of AccountService.Register.
type Registration struct {
	Email          string
	DisplayName    string
	Password       string
	MasterPassword string
}

// AccountService implements the account flows: registration, login with
// the account password, master password verification, password changes and
// recovery, and session revocation.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      SecretHasher
	tokens      *auth.TokenIssuer
	revocations sessions.RevocationStore
	notifier    notify.Notifier
	logger      logging.Logger
	now         func() time.Time

	// dispatch runs notification work off the request path so that the
	// response does not depend on whether an account exists.
	dispatch          func(func())
	backgroundTimeout time.Duration
	wg                sync.WaitGroup

	// dummyHash is verified against when no account matches, so unknown
	// emails cost the same as wrong passwords.
	dummyHash string
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher SecretHasher, tokens *auth.TokenIssuer,
	revocations sessions.RevocationStore, notifier notify.Notifier, logger logging.Logger) (*AccountService, error) {
	filler, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, err
	}
	dummy, err := hasher.Hash(filler)
	if err != nil {
		return nil, err
	}

	s := &AccountService{
		db:                db,
		repomanager:       m,
		hasher:            hasher,
		tokens:            tokens,
		revocations:       revocations,
		notifier:          notifier,
		logger:            logger.With("module", "accounts"),
		now:               func() time.Time { return time.Now().UTC() },
		backgroundTimeout: defaultBackgroundTimeout,
		dummyHash:         dummy,
	}
	s.dispatch = s.goTracked
	return s, nil
}

const defaultBackgroundTimeout = 30 * time.Second

func (s *AccountService) goTracked(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

// background hands fn to the dispatcher with a context that outlives the
// request but not backgroundTimeout.
func (s *AccountService) background(ctx context.Context, fn func(ctx context.Context)) {
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.backgroundTimeout)
	s.dispatch(func() {
		defer cancel()
		fn(bg)
	})
}

// Wait blocks until background notification work has finished.
func (s *AccountService) Wait() {
	s.wg.Wait()
}

// Register creates an account. The two passwords are hashed independently
// and must differ. When the email is already registered the owner is told
// about the attempt in the background and common.ErrEmailTaken is returned;
// callers facing the network must not reveal that to the requester.
func (s *AccountService) Register(ctx context.Context, r Registration) (*models.Account, error) {
	email := models.NormalizeEmail(r.Email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if r.Password == "" || r.MasterPassword == "" {
		return nil, fmt.Errorf("%w: both passwords are required", common.ErrValidation)
	}
	if r.Password == r.MasterPassword {
		return nil, fmt.Errorf("%w: master password must differ from account password", common.ErrValidation)
	}

	accountHash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return nil, err
	}
	masterHash, err := s.hasher.Hash(r.MasterPassword)
	if err != nil {
		return nil, err
	}

	a, err := s.repomanager.Accounts(s.db).Create(ctx, &models.Account{
		Email:             email,
		DisplayName:       strings.TrimSpace(r.DisplayName),
		AccountSecretHash: accountHash,
		MasterSecretHash:  masterHash,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			s.background(ctx, func(ctx context.Context) {
				if err := s.notifier.SendRegistrationAttempt(ctx, email); err != nil {
					s.logger.Warn(ctx, "registration attempt notice failed", "error", err)
				}
			})
		}
		return nil, err
	}

	s.logger.Info(ctx, "account registered", "account_id", a.ID)
	return a, nil
}

// Login checks the account password and returns a new session token.
// Unknown emails and wrong passwords both yield common.ErrorUnauthorized.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Accounts(s.db)

	a, err := repo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !s.hasher.Verify(password, a.AccountSecretHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.IssueSessionToken(a.ID)
	if err != nil {
		return "", common.ErrorInternal
	}
	if err := repo.Touch(ctx, a.ID, s.now()); err != nil {
		s.logger.Warn(ctx, "failed to update last access", "account_id", a.ID, "error", err)
	}
	return token, nil
}

// VerifyMaster checks the master password of accountID.
func (s *AccountService) VerifyMaster(ctx context.Context, accountID, masterPassword string) error {
	a, err := s.getAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(masterPassword, a.MasterSecretHash) {
		s.logger.Warn(ctx, "master password rejected", "account_id", accountID)
		return common.ErrorUnauthorized
	}
	return nil
}

// ChangePassword replaces the account password after verifying the current one.
func (s *AccountService) ChangePassword(ctx context.Context, accountID, current, next string) error {
	a, err := s.getAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(current, a.AccountSecretHash) {
		return common.ErrorUnauthorized
	}
	hash, err := s.hashReplacement(next, a.MasterSecretHash)
	if err != nil {
		return err
	}
	if err := s.repomanager.Accounts(s.db).UpdateAccountSecret(ctx, a.ID, hash); err != nil {
		return err
	}
	s.logger.Info(ctx, "account password changed", "account_id", a.ID)
	return nil
}

// ChangeMasterPassword replaces the master password after verifying the
// current one.
func (s *AccountService) ChangeMasterPassword(ctx context.Context, accountID, current, next string) error {
	a, err := s.getAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(current, a.MasterSecretHash) {
		return common.ErrorUnauthorized
	}
	hash, err := s.hashReplacement(next, a.AccountSecretHash)
	if err != nil {
		return err
	}
	if err := s.repomanager.Accounts(s.db).UpdateMasterSecret(ctx, a.ID, hash); err != nil {
		return err
	}
	s.logger.Info(ctx, "master password changed", "account_id", a.ID)
	return nil
}

// RequestRecovery accepts a recovery request for email and returns at once.
// The account lookup, token issue and delivery run in the background, so
// the caller sees the same result and latency whether or not the account
// exists. A delivery failure is logged and the token stays issued.
func (s *AccountService) RequestRecovery(ctx context.Context, email string) error {
	email = models.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	s.background(ctx, func(ctx context.Context) {
		s.issueRecovery(ctx, email)
	})
	return nil
}

func (s *AccountService) issueRecovery(ctx context.Context, email string) {
	repo := s.repomanager.Accounts(s.db)

	a, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "recovery lookup failed", "error", err)
		}
		return
	}

	token, err := s.tokens.IssueRecoveryToken()
	if err != nil {
		s.logger.Error(ctx, "recovery token issue failed", "account_id", a.ID, "error", err)
		return
	}
	if err := repo.SetRecoveryToken(ctx, a.ID, token.Value, token.ExpiresAt); err != nil {
		s.logger.Error(ctx, "recovery token store failed", "account_id", a.ID, "error", err)
		return
	}

	if err := s.notifier.SendRecoveryToken(ctx, a.Email, token.Value, token.ExpiresAt); err != nil {
		s.logger.Warn(ctx, "recovery token delivery failed", "account_id", a.ID, "error", err)
	}
}

// ResetPassword sets a new account password using a recovery token. The
// token is consumed by the same statement that writes the new hash, so two
// concurrent resets cannot both succeed. An expired token is cleared.
func (s *AccountService) ResetPassword(ctx context.Context, token, next string) error {
	if token == "" {
		return common.ErrInvalidToken
	}
	if next == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	repo := s.repomanager.Accounts(s.db)

	a, err := repo.GetByRecoveryToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		return common.ErrorInternal
	}

	now := s.now()
	if !a.RecoveryTokenValid(token, now) {
		if err := repo.ClearRecoveryToken(ctx, a.ID); err != nil {
			s.logger.Warn(ctx, "failed to clear expired recovery token", "account_id", a.ID, "error", err)
		}
		return common.ErrTokenExpired
	}

	hash, err := s.hashReplacement(next, a.MasterSecretHash)
	if err != nil {
		return err
	}
	id, err := repo.ConsumeRecoveryToken(ctx, token, hash, now)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		return common.ErrorInternal
	}
	s.logger.Info(ctx, "account password reset", "account_id", id)
	return nil
}

// Authenticate verifies a session token, rejects revoked sessions and
// inactive accounts, and records the access time.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*auth.Session, error) {
	session, err := s.tokens.VerifySessionToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revocations.IsRevoked(ctx, session.TokenID)
	if err != nil {
		s.logger.Error(ctx, "revocation lookup failed", "error", err)
		return nil, common.ErrorInternal
	}
	if revoked {
		return nil, common.ErrInvalidToken
	}

	repo := s.repomanager.Accounts(s.db)
	if _, err := repo.GetByID(ctx, session.AccountID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if err := repo.Touch(ctx, session.AccountID, s.now()); err != nil {
		s.logger.Warn(ctx, "failed to update last access", "account_id", session.AccountID, "error", err)
	}
	return session, nil
}

// Logout revokes the session token until it would have expired anyway.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	session, err := s.tokens.VerifySessionToken(token)
	if err != nil {
		return err
	}
	if err := s.revocations.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		s.logger.Error(ctx, "session revocation failed", "error", err)
		return common.ErrorInternal
	}
	s.logger.Info(ctx, "session revoked", "account_id", session.AccountID)
	return nil
}

func (s *AccountService) getAccount(ctx context.Context, accountID string) (*models.Account, error) {
	a, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return a, nil
}

// hashReplacement hashes a new password that must not match the account's
// other secret, whose hash is other.
func (s *AccountService) hashReplacement(next, other string) (string, error) {
	if next == "" {
		return "", fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	if s.hasher.Verify(next, other) {
		return "", fmt.Errorf("%w: account and master passwords must differ", common.ErrValidation)
	}
	return s.hasher.Hash(next)
}
