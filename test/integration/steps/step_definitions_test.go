package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mos3c/budget-guy/config"
	"github.com/mos3c/budget-guy/internal/infra/dependency"
	"github.com/mos3c/budget-guy/internal/integration/persistence/model"
	"github.com/mos3c/budget-guy/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

const seedDateLayout = "2006-01-02"

var (
	serverOnce sync.Once
	baseURL    string
	testDB     *mock.Db
)

var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// testContext carries per-scenario state: the last HTTP response and the
// placeholder values captured while seeding and executing requests.
type testContext struct {
	accessToken  string
	response     *http.Response
	responseBody []byte
	jsonBody     interface{}
	placeholders map[string]string
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// InitializeScenario registers all step definitions and scenario hooks.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	tc := &testContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := testDB.Reset(); err != nil {
			return c, err
		}
		mock.ClearRedis()
		tc.accessToken = ""
		tc.response = nil
		tc.responseBody = nil
		tc.jsonBody = nil
		tc.placeholders = make(map[string]string)
		return c, nil
	})

	ctx.Step(`^a user exists with username "([^"]*)" and password "([^"]*)"$`, tc.aUserExists)
	ctx.Step(`^a user exists with username "([^"]*)", email "([^"]*)" and password "([^"]*)"$`, tc.aUserExistsWithEmail)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, tc.iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, tc.iAmNotAuthenticated)
	ctx.Step(`^"([^"]*)" has a valid refresh token$`, tc.hasAValidRefreshToken)
	ctx.Step(`^the refresh token of "([^"]*)" has been invalidated$`, tc.refreshTokenHasBeenInvalidated)
	ctx.Step(`^a category "([^"]*)" of type "([^"]*)" exists for "([^"]*)"$`, tc.aCategoryExists)
	ctx.Step(`^an inactive category "([^"]*)" of type "([^"]*)" exists for "([^"]*)"$`, tc.anInactiveCategoryExists)
	ctx.Step(`^a "([^"]*)" transaction of ([0-9.]+) in category "([^"]*)" on "([^"]*)" exists for "([^"]*)"$`, tc.aTransactionExists)
	ctx.Step(`^a budget of ([0-9.]+) for category "([^"]*)" in (\d+)/(\d+) exists for "([^"]*)"$`, tc.aBudgetExists)
	ctx.Step(`^an investment "([^"]*)" of type "([^"]*)" with amount ([0-9.]+) and current value ([0-9.]+) exists for "([^"]*)"$`, tc.anInvestmentExists)

	ctx.Step(`^I send a (GET|POST|PUT|DELETE) request to "([^"]*)"$`, tc.iSendARequest)
	ctx.Step(`^I send a (GET|POST|PUT|DELETE) request to "([^"]*)" with body:$`, tc.iSendARequestWithBody)

	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, tc.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, tc.theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, tc.theResponseListShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, tc.theResponseHeaderShouldContain)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, tc.iStoreTheResponseField)
	ctx.Step(`^the "([^"]*)" table should have (\d+) rows?$`, tc.theTableShouldHaveRows)
	ctx.Step(`^the "([^"]*)" table should contain a row where "([^"]*)" is "([^"]*)"$`, tc.theTableShouldContainARowWhere)
}

// startServer boots the full application once, wired against the shared
// in-memory database and in-process Redis, listening on a random port.
func startServer() {
	serverOnce.Do(func() {
		os.Setenv("ENV", "test")

		testDB = mock.NewDb(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.BudgetModel{},
			&model.InvestmentModel{},
		)
		redisClient := mock.NewRedis()

		port, err := findAvailablePort()
		if err != nil {
			panic(fmt.Sprintf("failed to find available port: %v", err))
		}

		cfg := &config.Config{
			Server: config.ServerConfig{
				Host:        "127.0.0.1",
				Port:        port,
				Environment: "test",
			},
			JWT: config.JWTConfig{
				Secret:             testJWTSecret,
				AccessTokenExpiry:  15 * time.Minute,
				RefreshTokenExpiry: 7 * 24 * time.Hour,
			},
		}

		injector := dependency.NewInjector(cfg, testDB.DbConn, redisClient)
		engine := injector.Router.Setup(cfg.Server.Environment)

		addr := fmt.Sprintf("127.0.0.1:%d", port)
		baseURL = "http://" + addr

		srv := &http.Server{
			Addr:    addr,
			Handler: engine,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				panic(fmt.Sprintf("test server failed: %v", err))
			}
		}()

		if err := waitForServer(); err != nil {
			panic(err)
		}
	})
}

func findAvailablePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}

func waitForServer() error {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("test server did not become healthy at %s", baseURL)
}

// Seeding steps

func (tc *testContext) aUserExists(username, password string) error {
	return tc.aUserExistsWithEmail(username, username+"@example.com", password)
}

func (tc *testContext) aUserExistsWithEmail(username, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := testDB.DbConn.Create(user).Error; err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	tc.placeholders["user_id"] = user.ID.String()
	tc.placeholders["user_id:"+username] = user.ID.String()
	return nil
}

func (tc *testContext) iAmAuthenticatedAs(username string) error {
	user, err := tc.findUser(username)
	if err != nil {
		return err
	}

	token, err := signToken(user.ID, user.Username, "access", 15*time.Minute)
	if err != nil {
		return err
	}

	tc.accessToken = token
	tc.placeholders["access_token"] = token
	return nil
}

func (tc *testContext) iAmNotAuthenticated() error {
	tc.accessToken = ""
	return nil
}

func (tc *testContext) hasAValidRefreshToken(username string) error {
	user, err := tc.findUser(username)
	if err != nil {
		return err
	}

	ttl := 7 * 24 * time.Hour
	token, err := signToken(user.ID, user.Username, "refresh", ttl)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	row := &model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := testDB.DbConn.Create(row).Error; err != nil {
		return fmt.Errorf("failed to seed refresh token: %w", err)
	}

	tc.placeholders["refresh_token"] = token
	return nil
}

func (tc *testContext) refreshTokenHasBeenInvalidated(username string) error {
	user, err := tc.findUser(username)
	if err != nil {
		return err
	}

	result := testDB.DbConn.Model(&model.RefreshTokenModel{}).
		Where("user_id = ?", user.ID).
		Update("invalidated", true)
	if result.Error != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no refresh token found for user %q", username)
	}
	return nil
}

func (tc *testContext) aCategoryExists(name, categoryType, username string) error {
	return tc.seedCategory(name, categoryType, username, true)
}

func (tc *testContext) anInactiveCategoryExists(name, categoryType, username string) error {
	return tc.seedCategory(name, categoryType, username, false)
}

func (tc *testContext) seedCategory(name, categoryType, username string, isActive bool) error {
	user, err := tc.findUser(username)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	category := &model.CategoryModel{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      name,
		Type:      categoryType,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := testDB.DbConn.Create(category).Error; err != nil {
		return fmt.Errorf("failed to seed category: %w", err)
	}

	tc.placeholders["category_id"] = category.ID.String()
	tc.placeholders["category_id:"+name] = category.ID.String()
	return nil
}

func (tc *testContext) aTransactionExists(transactionType, amount, categoryName, date, username string) error {
	user, err := tc.findUser(username)
	if err != nil {
		return err
	}

	var category model.CategoryModel
	err = testDB.DbConn.
		Where("user_id = ? AND name = ?", user.ID, categoryName).
		First(&category).Error
	if err != nil {
		return fmt.Errorf("category %q not found for user %q: %w", categoryName, username, err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	txnDate, err := time.Parse(seedDateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := time.Now().UTC()
	txn := &model.TransactionModel{
		ID:          uuid.New(),
		UserID:      user.ID,
		CategoryID:  category.ID,
		Type:        transactionType,
		Amount:      value,
		Description: fmt.Sprintf("%s in %s", transactionType, categoryName),
		Date:        txnDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := testDB.DbConn.Create(txn).Error; err != nil {
		return fmt.Errorf("failed to seed transaction: %w", err)
	}

	tc.placeholders["transaction_id"] = txn.ID.String()
	return nil
}

func (tc *testContext) aBudgetExists(limit, categoryName, month, year, username string) error {
	user, err := tc.findUser(username)
	if err != nil {
		return err
	}

	var category model.CategoryModel
	err = testDB.DbConn.
		Where("user_id = ? AND name = ?", user.ID, categoryName).
		First(&category).Error
	if err != nil {
		return fmt.Errorf("category %q not found for user %q: %w", categoryName, username, err)
	}

	value, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}

	monthValue, err := strconv.Atoi(month)
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", month, err)
	}
	yearValue, err := strconv.Atoi(year)
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", year, err)
	}

	now := time.Now().UTC()
	budget := &model.BudgetModel{
		ID:           uuid.New(),
		UserID:       user.ID,
		CategoryID:   category.ID,
		MonthlyLimit: value,
		Month:        monthValue,
		Year:         yearValue,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := testDB.DbConn.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to seed budget: %w", err)
	}

	tc.placeholders["budget_id"] = budget.ID.String()
	return nil
}

func (tc *testContext) anInvestmentExists(name, investmentType, amount, currentValue, username string) error {
	user, err := tc.findUser(username)
	if err != nil {
		return err
	}

	invested, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	current, err := decimal.NewFromString(currentValue)
	if err != nil {
		return fmt.Errorf("invalid current value %q: %w", currentValue, err)
	}

	purchaseDate, err := time.Parse(seedDateLayout, "2024-01-15")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	investment := &model.InvestmentModel{
		ID:             uuid.New(),
		UserID:         user.ID,
		Name:           name,
		Type:           investmentType,
		AmountInvested: invested,
		CurrentValue:   current,
		PurchaseDate:   purchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := testDB.DbConn.Create(investment).Error; err != nil {
		return fmt.Errorf("failed to seed investment: %w", err)
	}

	tc.placeholders["investment_id"] = investment.ID.String()
	return nil
}

// Request steps

func (tc *testContext) iSendARequest(method, path string) error {
	return tc.execute(method, path, "")
}

func (tc *testContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return tc.execute(method, path, body.Content)
}

func (tc *testContext) execute(method, path, body string) error {
	path = tc.replacePlaceholders(path)
	body = tc.replacePlaceholders(body)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.response = resp
	tc.responseBody = responseBody
	tc.jsonBody = nil
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, &tc.jsonBody); err != nil {
			return fmt.Errorf("failed to decode JSON response: %w", err)
		}
	}

	return nil
}

// Assertion steps

func (tc *testContext) theResponseStatusShouldBe(expected int) error {
	if tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func (tc *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := tc.getField(path)
	if err != nil {
		return err
	}

	expected = tc.replacePlaceholders(expected)
	actual := formatValue(value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func (tc *testContext) theResponseFieldShouldExist(path string) error {
	value, err := tc.getField(path)
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("field %q is null", path)
	}
	return nil
}

func (tc *testContext) theResponseListShouldHaveItems(path string, count int) error {
	value, err := tc.getField(path)
	if err != nil {
		return err
	}

	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(list))
	}
	return nil
}

func (tc *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	actual := tc.response.Header.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("expected header %q to contain %q, got %q", header, expected, actual)
	}
	return nil
}

func (tc *testContext) iStoreTheResponseField(path, name string) error {
	value, err := tc.getField(path)
	if err != nil {
		return err
	}
	tc.placeholders[name] = formatValue(value)
	return nil
}

func (tc *testContext) theTableShouldHaveRows(table string, expected int) error {
	var count int64
	if err := testDB.DbConn.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %q, got %d", expected, table, count)
	}
	return nil
}

func (tc *testContext) theTableShouldContainARowWhere(table, column, value string) error {
	value = tc.replacePlaceholders(value)

	var count int64
	err := testDB.DbConn.Table(table).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to query %q: %w", table, err)
	}
	if count == 0 {
		return fmt.Errorf("no row in %q where %s = %q", table, column, value)
	}
	return nil
}

// Helpers

func (tc *testContext) findUser(username string) (*model.UserModel, error) {
	var user model.UserModel
	if err := testDB.DbConn.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user %q not found: %w", username, err)
	}
	return &user, nil
}

func (tc *testContext) replacePlaceholders(input string) string {
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(match, "{{"), "}}")
		if value, ok := tc.placeholders[key]; ok {
			return value
		}
		return match
	})
}

// getField resolves a dot-separated path into the decoded JSON response.
// Numeric segments index into arrays, e.g. "transactions.0.amount".
func (tc *testContext) getField(path string) (interface{}, error) {
	if tc.jsonBody == nil {
		return nil, fmt.Errorf("response has no JSON body")
	}

	current := tc.jsonBody
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, string(tc.responseBody))
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("expected numeric index in path %q, got %q", path, segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index %d out of range for path %q", index, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func signToken(userID uuid.UUID, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"username":   username,
		"token_type": tokenType,
		"exp":        now.Add(ttl).Unix(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"iss":        "budget-guy",
		"sub":        userID.String(),
		"jti":        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}
