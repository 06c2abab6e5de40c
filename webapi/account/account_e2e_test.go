package account_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/amirasaad/pinbank/pkg/domain/account"
	"github.com/amirasaad/pinbank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountE2ETestSuite struct {
	testutils.E2ETestSuite
}

func (s *AccountE2ETestSuite) create(owner, pin string) account.Summary {
	resp := s.MakeRequest(fiber.MethodPost, "/accounts", fmt.Sprintf(`{"owner_name":%q,"pin":%q}`, owner, pin), nil)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var env testutils.Envelope[account.Summary]
	testutils.Decode(s.T(), resp, &env)
	return env.Data
}

func (s *AccountE2ETestSuite) balance(number int64) decimal.Decimal {
	resp := s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/accounts/%d", number), "", nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var env testutils.Envelope[account.Summary]
	testutils.Decode(s.T(), resp, &env)
	return env.Data.Balance
}

func (s *AccountE2ETestSuite) TestLifecycle() {
	ann := s.create("Ann", "1234")
	bob := s.create("Bob", "5678")
	s.NotEqual(ann.AccountNumber, bob.AccountNumber)

	resp := s.MakeRequest(fiber.MethodPatch, "/accounts/deposit?action=deposit&amount=12.345", "",
		testutils.Credentials(ann.AccountNumber, "1234"))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	s.True(s.balance(ann.AccountNumber).Equal(decimal.RequireFromString("12.345")), "numeric column keeps precision")

	resp = s.MakeRequest(fiber.MethodPatch, fmt.Sprintf("/accounts/transfer/%d?amount=12.345", bob.AccountNumber), "",
		testutils.Credentials(ann.AccountNumber, "1234"))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	s.True(s.balance(ann.AccountNumber).IsZero())
	s.True(s.balance(bob.AccountNumber).Equal(decimal.RequireFromString("12.345")))

	resp = s.MakeRequest(fiber.MethodDelete, "/accounts", "", testutils.Credentials(ann.AccountNumber, "1234"))
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/accounts/%d", ann.AccountNumber), "", nil)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *AccountE2ETestSuite) TestConcurrentWithdrawals() {
	ann := s.create("Ann", "1234")
	resp := s.MakeRequest(fiber.MethodPatch, "/accounts/deposit?action=deposit&amount=10", "",
		testutils.Credentials(ann.AccountNumber, "1234"))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := s.MakeRequest(fiber.MethodPatch, "/accounts/deposit?action=withdraw&amount=1", "",
				testutils.Credentials(ann.AccountNumber, "1234"))
			_ = r.Body.Close()
		}()
	}
	wg.Wait()
	s.True(s.balance(ann.AccountNumber).IsZero())
}

func TestAccountE2ETestSuite(t *testing.T) {
	suite.Run(t, new(AccountE2ETestSuite))
}
