package service

import (
	"github.com/ridloal/storefront-bff/internal/currency/domain"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

// State: ExchangeRate nil sampai kurs berhasil di-fetch.
type State struct {
	Currency     domain.Currency     `json:"currency"`
	Symbol       string              `json:"symbol"`
	ExchangeRate domain.ExchangeRate `json:"exchangeRate"`
}

type CurrencyService interface {
	Get(sess *sessionDomain.Session) State
	Set(sess *sessionDomain.Session, code string) (State, error)
}

type currencyServiceImpl struct{}

func NewCurrencyService() CurrencyService {
	return &currencyServiceImpl{}
}

func (s *currencyServiceImpl) Get(sess *sessionDomain.Session) State {
	cur := sess.Currency.Currency()
	return State{
		Currency:     cur,
		Symbol:       cur.Symbol(),
		ExchangeRate: sess.Currency.ExchangeRate(),
	}
}

func (s *currencyServiceImpl) Set(sess *sessionDomain.Session, code string) (State, error) {
	cur, err := domain.ParseCurrency(code)
	if err != nil {
		return State{}, err
	}
	sess.Currency.SetCurrency(cur)
	return s.Get(sess), nil
}
