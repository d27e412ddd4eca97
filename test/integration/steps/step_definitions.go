package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/xuri/excelize/v2"
)

var resetTokenPattern = regexp.MustCompile(`token=([0-9a-f]+)`)

type testContext struct {
	uri         string
	client      *http.Client
	headers     map[string]string
	accessToken string
	tokens      map[string]string
	vars        map[string]string
	response    *response
}

type response struct {
	status int
	header http.Header
	raw    []byte
	body   any
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// User steps
	ctx.Given(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Business steps
	ctx.Given(`^I own a business named "([^"]*)"$`, test.iOwnABusinessNamed)
	ctx.Given(`^"([^"]*)" has joined the business$`, test.hasJoinedTheBusiness)
	ctx.Given(`^the business has a category "([^"]*)"$`, test.theBusinessHasACategory)
	ctx.Given(`^the business has a product "([^"]*)" in "([^"]*)" priced "([^"]*)" with cost "([^"]*)"$`, test.theBusinessHasAProduct)
	ctx.Given(`^(\d+) "([^"]*)" (?:was|were) sold$`, test.wereSold)
	ctx.Given(`^a goal "([^"]*)" exists from "([^"]*)" to "([^"]*)" targeting:$`, test.aGoalExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Email steps
	ctx.When(`^the email worker runs$`, test.theEmailWorkerRuns)
	ctx.Then(`^an email with subject "([^"]*)" should have been sent to "([^"]*)"$`, test.anEmailShouldHaveBeenSentTo)
	ctx.Then(`^no email should have been sent$`, test.noEmailShouldHaveBeenSent)
	ctx.Then(`^the last email should have been sent with the Resend API key$`, test.theLastEmailShouldUseTheAPIKey)
	ctx.Then(`^I save the reset token from the last email$`, test.iSaveTheResetTokenFromTheLastEmail)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Then(`^the spreadsheet cell "([^"]*)" should be "([^"]*)"$`, test.theSpreadsheetCellShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.uri = env.server.URL
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.tokens = make(map[string]string)
	t.vars = make(map[string]string)
	t.response = nil
	return env.reset()
}

func (t *testContext) theAPIServerIsRunning() error {
	if err := t.executeRequest(http.MethodGet, "/health", nil); err != nil {
		return err
	}
	return t.theResponseStatusShouldBe(http.StatusOK)
}

func (t *testContext) todayIs(day string) error {
	date, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", day, err)
	}
	env.timeMock.SetCurrentTime(date.Add(12 * time.Hour))
	return nil
}

func (t *testContext) iAmRegisteredAs(emailAddress string) error {
	body := fmt.Sprintf(`{"email":%q,"name":%q,"password":%q}`, emailAddress, nameOf(emailAddress), defaultPassword)
	t.accessToken = ""
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", []byte(body)); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(http.StatusCreated); err != nil {
		return err
	}

	token, _ := t.field("access_token").(string)
	userID, _ := t.field("user.id").(string)
	if token == "" || userID == "" {
		return fmt.Errorf("register response lacks token or user id: %v", t.response.body)
	}
	t.tokens[emailAddress] = token
	t.vars["user:"+emailAddress] = userID
	t.accessToken = token
	return nil
}

func (t *testContext) iAmLoggedInAs(emailAddress string) error {
	token, ok := t.tokens[emailAddress]
	if !ok {
		return t.iAmRegisteredAs(emailAddress)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iOwnABusinessNamed(name string) error {
	if err := t.mustSend(http.MethodPost, "/api/v1/businesses", fmt.Sprintf(`{"name":%q}`, name), http.StatusCreated); err != nil {
		return err
	}
	t.vars["business"], _ = t.field("id").(string)
	t.vars["join_code"], _ = t.field("join_code").(string)
	return nil
}

// hasJoinedTheBusiness registers the user if needed and joins with the
// business code, then restores the current session.
func (t *testContext) hasJoinedTheBusiness(emailAddress string) error {
	current := t.accessToken
	defer func() { t.accessToken = current }()

	if err := t.iAmLoggedInAs(emailAddress); err != nil {
		return err
	}
	return t.mustSend(http.MethodPost, "/api/v1/businesses/join", fmt.Sprintf(`{"join_code":%q}`, t.vars["join_code"]), http.StatusCreated)
}

func (t *testContext) theBusinessHasACategory(name string) error {
	path := "/api/v1/businesses/{{business}}/categories"
	if err := t.mustSend(http.MethodPost, path, fmt.Sprintf(`{"name":%q}`, name), http.StatusCreated); err != nil {
		return err
	}
	t.vars["category:"+name], _ = t.field("id").(string)
	return nil
}

func (t *testContext) theBusinessHasAProduct(name, categoryName, price, cost string) error {
	body := fmt.Sprintf(`{"name":%q,"category_id":"{{category:%s}}","price":%q,"cost":%q}`, name, categoryName, price, cost)
	if err := t.mustSend(http.MethodPost, "/api/v1/businesses/{{business}}/products", body, http.StatusCreated); err != nil {
		return err
	}
	t.vars["product:"+name], _ = t.field("id").(string)
	return nil
}

func (t *testContext) wereSold(quantity int, productName string) error {
	body := fmt.Sprintf(`{"items":[{"product_id":"{{product:%s}}","quantity":%d}]}`, productName, quantity)
	return t.mustSend(http.MethodPost, "/api/v1/businesses/{{business}}/sales", body, http.StatusCreated)
}

func (t *testContext) aGoalExists(name, start, end string, table *godog.Table) error {
	targets := make([]map[string]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 2 {
			return fmt.Errorf("target rows need | category | revenue_target |")
		}
		targets = append(targets, map[string]string{
			"category_id":    t.replacePlaceholders("{{category:" + row.Cells[0].Value + "}}"),
			"revenue_target": row.Cells[1].Value,
		})
	}

	payload, err := json.Marshal(map[string]any{
		"name":             name,
		"period_start":     start,
		"period_end":       end,
		"category_targets": targets,
	})
	if err != nil {
		return err
	}

	if err := t.mustSend(http.MethodPost, "/api/v1/businesses/{{business}}/goals", string(payload), http.StatusCreated); err != nil {
		return err
	}
	id, _ := t.field("id").(string)
	t.vars["goal"] = id
	t.vars["goal:"+name] = id
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	value := t.field(field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.bodyForError())
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

// mustSend sends a request and requires the expected status.
func (t *testContext) mustSend(method, path, body string, expectedStatus int) error {
	if err := t.executeRequest(method, t.replacePlaceholders(path), []byte(t.replacePlaceholders(body))); err != nil {
		return err
	}
	return t.theResponseStatusShouldBe(expectedStatus)
}

// replacePlaceholders substitutes {{name}} with saved values.
func (t *testContext) replacePlaceholders(content string) string {
	for name, value := range t.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		header: resp.Header,
		raw:    raw,
	}

	var body any
	if err := json.Unmarshal(raw, &body); err == nil {
		t.response.body = body
	}
	return nil
}

func (t *testContext) field(path string) any {
	if t.response == nil {
		return nil
	}
	return getFieldValue(t.response.body, path)
}

func (t *testContext) bodyForError() any {
	if t.response == nil {
		return nil
	}
	if t.response.body != nil {
		return t.response.body
	}
	return fmt.Sprintf("%d raw bytes", len(t.response.raw))
}

func (t *testContext) theEmailWorkerRuns() error {
	env.worker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) lastEmail() (map[string]any, error) {
	count := env.resend.CountRequests(http.MethodPost, resendEmailsPath)
	if count == 0 {
		return nil, errors.New("no email was sent")
	}
	return env.resend.GetRequestBody(http.MethodPost, resendEmailsPath, count-1), nil
}

func (t *testContext) anEmailShouldHaveBeenSentTo(subject, recipient string) error {
	email, err := t.lastEmail()
	if err != nil {
		return err
	}

	if email["subject"] != subject {
		return fmt.Errorf("expected subject %q, got %v", subject, email["subject"])
	}
	to, _ := email["to"].([]any)
	for _, address := range to {
		if address == recipient {
			return nil
		}
	}
	return fmt.Errorf("email was sent to %v, not %q", email["to"], recipient)
}

func (t *testContext) theLastEmailShouldUseTheAPIKey() error {
	count := env.resend.CountRequests(http.MethodPost, resendEmailsPath)
	if count == 0 {
		return errors.New("no email was sent")
	}
	headers := env.resend.GetRequestHeaders(http.MethodPost, resendEmailsPath, count-1)
	if got, want := headers.Get("Authorization"), "Bearer "+testResendAPIKey; got != want {
		return fmt.Errorf("expected Authorization %q, got %q", want, got)
	}
	return nil
}

func (t *testContext) noEmailShouldHaveBeenSent() error {
	if count := env.resend.CountRequests(http.MethodPost, resendEmailsPath); count != 0 {
		return fmt.Errorf("expected no email, got %d", count)
	}
	return nil
}

func (t *testContext) iSaveTheResetTokenFromTheLastEmail() error {
	email, err := t.lastEmail()
	if err != nil {
		return err
	}

	text, _ := email["text"].(string)
	if !strings.Contains(text, testFrontendURL+"/reset-password?token=") {
		return fmt.Errorf("email text has no reset link: %q", text)
	}
	match := resetTokenPattern.FindStringSubmatch(text)
	if match == nil {
		return fmt.Errorf("email text has no reset token: %q", text)
	}
	t.vars["reset_token"] = match[1]
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.bodyForError())
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not a JSON object: %s", t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}
	if _, exists := t.response.body.(map[string]any)[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value := t.field(field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.bodyForError())
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.field(field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.bodyForError())
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if value := t.field(field); value != nil {
		return fmt.Errorf("field '%s' should not exist, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	items, ok := t.field(field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, t.bodyForError())
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.header.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header %s expected to contain %q, got %q", header, expected, actual)
	}
	return nil
}

func (t *testContext) theSpreadsheetCellShouldBe(cell, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(t.response.raw))
	if err != nil {
		return fmt.Errorf("response is not a spreadsheet: %w", err)
	}
	defer workbook.Close()

	value, err := workbook.GetCellValue(workbook.GetSheetName(0), cell)
	if err != nil {
		return err
	}
	if value != expected {
		return fmt.Errorf("cell %s expected %q, got %q", cell, expected, value)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if _, ok := env.db.GetModel(table); !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	var count int64
	if err := env.db.DbConn.Table(table).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	if _, ok := env.db.GetModel(table); !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	query := env.db.DbConn.Table(table)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}

func nameOf(emailAddress string) string {
	local, _, _ := strings.Cut(emailAddress, "@")
	return local
}
