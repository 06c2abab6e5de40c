package account

import (
	"github.com/amirasaad/pinbank/pkg/domain/account"
	accountsvc "github.com/amirasaad/pinbank/pkg/service/account"
	"github.com/amirasaad/pinbank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

const (
	headerAccountNumber = "X-User-Account-Number"
	headerPinCode       = "X-User-Pin-Code"
)

// Routes registers HTTP routes for account operations.
//
// Routes:
//   - POST   /accounts                   : Open an account.
//   - GET    /accounts/all               : List every account.
//   - GET    /accounts/:number           : Show one account.
//   - PATCH  /accounts/deposit           : Deposit or withdraw (?action=&amount=).
//   - PATCH  /accounts/transfer/:number  : Transfer to :number (?amount=).
//   - PUT    /accounts                   : Change owner name and/or PIN.
//   - DELETE /accounts                   : Close an account with a zero balance.
//
// Mutating routes identify the caller with the X-User-Account-Number and
// X-User-Pin-Code headers.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	app.Post("/accounts", CreateAccount(accountSvc))
	app.Get("/accounts/all", ListAccounts(accountSvc))
	app.Get("/accounts/:number<int>", GetAccount(accountSvc))
	app.Patch("/accounts/deposit", DepositAction(accountSvc))
	app.Patch("/accounts/transfer/:number<int>", Transfer(accountSvc))
	app.Put("/accounts", UpdateAccount(accountSvc))
	app.Delete("/accounts", CloseAccount(accountSvc))
}

// CreateAccount returns a Fiber handler that opens an account with a zero balance.
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		summary, err := accountSvc.Create(c.UserContext(), input.OwnerName, input.Pin)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", summary)
	}
}

// ListAccounts returns a Fiber handler listing every account.
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries, err := accountSvc.ListAll(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", summaries)
	}
}

// GetAccount returns a Fiber handler showing one account.
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := c.ParamsInt("number")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err, fiber.StatusBadRequest)
		}
		summary, err := accountSvc.GetByNumber(c.UserContext(), int64(number))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", summary)
	}
}

// DepositAction returns a Fiber handler that deposits into or withdraws
// from the caller's account depending on the action query parameter.
func DepositAction(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds, err := bindCredentials(c)
		if creds == nil {
			return err
		}
		query, err := bindQuery[ActionQuery](c)
		if query == nil {
			return err
		}
		amount, err := decimal.NewFromString(query.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err, fiber.StatusBadRequest)
		}
		summary, err := accountSvc.PerformAction(
			c.UserContext(),
			query.Action,
			amount,
			creds.AccountNumber,
			creds.PinCode,
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to perform action", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Action successful", summary)
	}
}

// Transfer returns a Fiber handler that moves money from the caller's
// account to the account named in the path.
func Transfer(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds, err := bindCredentials(c)
		if creds == nil {
			return err
		}
		recipient, err := c.ParamsInt("number")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err, fiber.StatusBadRequest)
		}
		query, err := bindQuery[TransferQuery](c)
		if query == nil {
			return err
		}
		amount, err := decimal.NewFromString(query.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err, fiber.StatusBadRequest)
		}
		sender, to, err := accountSvc.Transfer(
			c.UserContext(),
			int64(recipient),
			amount,
			creds.AccountNumber,
			creds.PinCode,
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", TransferResponse{
			Sender:    sender,
			Recipient: to,
		})
	}
}

// UpdateAccount returns a Fiber handler changing the caller's owner name
// and/or PIN.
func UpdateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds, err := bindCredentials(c)
		if creds == nil {
			return err
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		summary, err := accountSvc.Update(c.UserContext(), creds.AccountNumber, creds.PinCode, account.Changes{
			OwnerName: input.OwnerName,
			PinCode:   input.Pin,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", summary)
	}
}

// CloseAccount returns a Fiber handler closing the caller's account.
func CloseAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds, err := bindCredentials(c)
		if creds == nil {
			return err
		}
		if err := accountSvc.Close(c.UserContext(), creds.AccountNumber, creds.PinCode); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to close account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func bindCredentials(c *fiber.Ctx) (*Credentials, error) {
	var creds Credentials
	if err := c.ReqHeaderParser(&creds); err != nil {
		log.Debugf("Invalid credential headers: %v", err)
		return nil, common.ProblemDetailsJSON(c, "Invalid credentials", nil,
			headerAccountNumber+" must be an account number")
	}
	if fields := common.Validate(creds); fields != nil {
		return nil, common.ProblemDetailsJSON(c, "Missing credentials", nil,
			headerAccountNumber+" and "+headerPinCode+" headers are required", fields)
	}
	return &creds, nil
}

func bindQuery[T any](c *fiber.Ctx) (*T, error) {
	var q T
	if err := c.QueryParser(&q); err != nil {
		return nil, common.ProblemDetailsJSON(c, "Invalid query", nil, err.Error())
	}
	if fields := common.Validate(q); fields != nil {
		return nil, common.ProblemDetailsJSON(c, "Validation failed", nil, fields)
	}
	return &q, nil
}
