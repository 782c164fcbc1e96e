package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"

	"github.com/HeshanJay/hotel-manager-app/internal/engine"
	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
)

// mockDynamo stores items per table keyed by the single string PK attribute.
type mockDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (m *mockDynamo) ensureTable(tbl string) {
	if _, ok := m.tables[tbl]; !ok {
		m.tables[tbl] = map[string]map[string]types.AttributeValue{}
	}
}

func pkOf(attrs map[string]types.AttributeValue) string {
	for _, name := range []string{"booking_id", "event_id", "order_id", "employee_id"} {
		if v, ok := attrs[name]; ok {
			return v.(*types.AttributeValueMemberS).Value
		}
	}
	return ""
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)
	pk := pkOf(params.Item)
	if params.ConditionExpression != nil && strings.HasPrefix(*params.ConditionExpression, "attribute_not_exists(") {
		if _, exists := m.tables[table][pk]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	m.tables[table][pk] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)
	item, ok := m.tables[table][pkOf(params.Key)]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)
	pk := pkOf(params.Key)
	item, ok := m.tables[table][pk]
	if !ok {
		item = params.Key
	}
	if strings.Contains(*params.UpdateExpression, "seq") {
		n := 0
		if curr, ok := item["seq"].(*types.AttributeValueMemberN); ok {
			n, _ = strconv.Atoi(curr.Value)
		}
		n++
		item["seq"] = &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
	}
	m.tables[table][pk] = item
	return &dyn.UpdateItemOutput{Attributes: item}, nil
}

// mockSQS records sent message bodies.
type mockSQS struct {
	mu     sync.Mutex
	bodies []string
}

func (m *mockSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bodies = append(m.bodies, *params.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *mockDynamo, *mockSQS) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng, err := engine.New(pricing.DefaultRates())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}

	dynamo := newMockDynamo()
	queue := &mockSQS{}
	cfg := HandlerConfig{
		DynamoDBClient: dynamo,
		SQSClient:      queue,
		Engine:         eng,
		BookingsTable:  "hotel-bookings",
		EventsTable:    "hotel-events",
		KitchenTable:   "hotel-kitchen",
		EmployeesTable: "hotel-employees",
		QueueURL:       "https://sqs.test/queue",
	}

	r := gin.New()
	RegisterRoutes(r, cfg)
	return r, dynamo, queue
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingPayload() map[string]interface{} {
	checkIn := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 8).Format("2006-01-02")
	return map[string]interface{}{
		"bookingId":     "BK-HTTP1",
		"fullName":      "Jane Doe",
		"email":         "jane@example.com",
		"phone":         "0712345678",
		"address1":      "12 Lake Road",
		"state":         "Western",
		"zip":           "10100",
		"country":       "Sri Lanka",
		"checkIn":       checkIn,
		"checkOut":      checkOut,
		"adults":        2,
		"roomType":      "deluxe",
		"numberOfRooms": 2,
		"agreeTerms":    true,
		"breakfast":     true,
	}
}

func TestPostBookingAccepted(t *testing.T) {
	r, dynamo, queue := newTestRouter(t)

	w := postJSON(t, r, "/api/bookings", bookingPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message   string  `json:"message"`
		BookingID string  `json:"bookingId"`
		TotalCost float64 `json:"totalCost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "Booking saved successfully" || resp.BookingID != "BK-HTTP1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.TotalCost != 960 {
		t.Fatalf("totalCost = %v, want 960", resp.TotalCost)
	}

	if _, ok := dynamo.tables["hotel-bookings"]["BK-HTTP1"]; !ok {
		t.Fatal("booking not persisted")
	}
	if len(queue.bodies) != 1 || !strings.Contains(queue.bodies[0], `"kind":"booking"`) {
		t.Fatalf("unexpected queue messages: %v", queue.bodies)
	}
}

func TestPostBookingValidationFailure(t *testing.T) {
	r, dynamo, queue := newTestRouter(t)

	payload := bookingPayload()
	payload["email"] = "not-an-email"
	payload["agreeTerms"] = false

	w := postJSON(t, r, "/api/bookings", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "validation_failed" {
		t.Fatalf("error = %q", resp.Error)
	}
	if resp.Errors["email"] != "Email is invalid" {
		t.Fatalf("email = %q", resp.Errors["email"])
	}
	if resp.Errors["agreeTerms"] != "You must agree to the terms and conditions" {
		t.Fatalf("agreeTerms = %q", resp.Errors["agreeTerms"])
	}

	if len(dynamo.tables["hotel-bookings"]) != 0 {
		t.Fatal("rejected booking must not be persisted")
	}
	if len(queue.bodies) != 0 {
		t.Fatal("rejected booking must not be enqueued")
	}
}

func TestPostBookingDuplicateID(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if w := postJSON(t, r, "/api/bookings", bookingPayload()); w.Code != http.StatusCreated {
		t.Fatalf("first request: status = %d", w.Code)
	}

	w := postJSON(t, r, "/api/bookings", bookingPayload())
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "duplicate_identifier" || resp.Errors["bookingId"] != "Booking ID already exists" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPostBookingGeneratesID(t *testing.T) {
	r, _, _ := newTestRouter(t)

	payload := bookingPayload()
	delete(payload, "bookingId")

	w := postJSON(t, r, "/api/bookings", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		BookingID string `json:"bookingId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.HasPrefix(resp.BookingID, "BK-") || len(resp.BookingID) != 11 {
		t.Fatalf("generated id %q does not fit the BK-XXXXXXXX shape", resp.BookingID)
	}
}

func TestPostBookingMalformedBody(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_request_body") {
		t.Fatalf("body = %s", w.Body.String())
	}
}
