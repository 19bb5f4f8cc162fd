package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	cartDomain "github.com/ridloal/storefront-bff/internal/cart/domain"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	"github.com/ridloal/storefront-bff/internal/session/domain"
	"github.com/ridloal/storefront-bff/internal/session/repository"
)

var ErrInvalidToken = errors.New("invalid session token")

type SessionService interface {
	// Resolve mengembalikan session milik token, atau session baru kalau token kosong/invalid/kadaluarsa.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	Token(s *domain.Session) (string, error)
	ReapIdleSessions(ctx context.Context)
	Stop()
}

type Options struct {
	Secret              string
	IdleTimeout         time.Duration
	ReaperSpec          string
	ExchangeRateTimeout time.Duration
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type sessionServiceImpl struct {
	repo        repository.SessionRepository
	storeClient storeapi.Client
	secret      []byte
	idleTimeout time.Duration
	rateTimeout time.Duration
	scheduler   *cron.Cron
	now         func() time.Time
}

func NewSessionService(repo repository.SessionRepository, sc storeapi.Client, opts Options) (SessionService, error) {
	secret := opts.Secret
	if secret == "" {
		logger.Warn("Session secret not set, using a random per-process key; sessions will not survive restarts")
		secret = uuid.NewString()
	}
	s := &sessionServiceImpl{
		repo:        repo,
		storeClient: sc,
		secret:      []byte(secret),
		idleTimeout: opts.IdleTimeout,
		rateTimeout: opts.ExchangeRateTimeout,
		scheduler:   cron.New(cron.WithSeconds()),
		now:         time.Now,
	}
	if err := s.initScheduler(opts.ReaperSpec); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sessionServiceImpl) initScheduler(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := s.scheduler.AddFunc(spec, func() {
		s.ReapIdleSessions(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid reaper schedule %q: %w", spec, err)
	}
	s.scheduler.Start()
	logger.Info("Session reaper scheduled", zap.String("spec", spec), zap.Duration("idle_timeout", s.idleTimeout))
	return nil
}

func (s *sessionServiceImpl) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token != "" {
		sid, err := s.parse(token)
		if err == nil {
			sess, err := s.repo.Get(ctx, sid)
			if err == nil {
				err = s.repo.Touch(ctx, sid, s.now())
			}
			if err == nil {
				return sess, nil
			}
			if !errors.Is(err, repository.ErrSessionNotFound) {
				return nil, fmt.Errorf("load session: %w", err)
			}
		}
	}
	return s.create(ctx)
}

func (s *sessionServiceImpl) create(ctx context.Context) (*domain.Session, error) {
	sess := domain.New(uuid.NewString(), s.now())
	if err := s.repo.Create(ctx, sess); err != nil {
		logger.Error("Session: failed to store new session", err)
		return nil, fmt.Errorf("create session: %w", err)
	}
	logger.Info("Session created", zap.String("session_id", sess.ID))

	sess.Cart.Subscribe(func(ev cartDomain.Event) {
		logger.L().Debug("Cart changed",
			zap.String("session_id", sess.ID),
			zap.String("event", string(ev.Type)),
			zap.Int64("product_id", ev.ProductID),
			zap.Int("quantity", ev.Quantity),
			zap.Int("total", ev.Total),
		)
	})

	go s.fetchExchangeRate(sess)
	return sess, nil
}

// fetchExchangeRate jalan di background sekali per session. Gagal berarti kurs tetap nil
// dan semua harga tampil dalam USD sampai session berakhir.
func (s *sessionServiceImpl) fetchExchangeRate(sess *domain.Session) {
	ctx := context.Background()
	if s.rateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.rateTimeout)
		defer cancel()
	}

	rate, err := s.storeClient.GetExchangeRate(ctx)
	if err != nil {
		logger.Warn("Exchange rate unavailable, prices stay in USD", zap.String("session_id", sess.ID), zap.Error(err))
		return
	}
	sess.Currency.SetExchangeRate(rate)
}

func (s *sessionServiceImpl) Token(sess *domain.Session) (string, error) {
	now := s.now()
	claims := sessionClaims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.idleTimeout > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.idleTimeout))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		logger.Error("Session: failed to sign token", err)
		return "", fmt.Errorf("could not generate session token: %w", err)
	}
	return signed, nil
}

func (s *sessionServiceImpl) parse(token string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.SessionID == "" {
		return "", fmt.Errorf("%w: missing sid", ErrInvalidToken)
	}
	return claims.SessionID, nil
}

func (s *sessionServiceImpl) ReapIdleSessions(ctx context.Context) {
	if s.idleTimeout <= 0 {
		return
	}
	cutoff := s.now().Add(-s.idleTimeout)
	n, err := s.repo.DeleteIdleSince(ctx, cutoff)
	if err != nil {
		logger.Error("ReapIdleSessions: failed to delete idle sessions", err)
		return
	}
	if n > 0 {
		logger.Info("Idle sessions discarded", zap.Int("count", n), zap.Int("remaining", s.repo.Count(ctx)))
	}
}

func (s *sessionServiceImpl) Stop() {
	<-s.scheduler.Stop().Done()
}
