package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
)

// ErrStatusMismatch indicates a conditional status transition failed.
var ErrStatusMismatch = errors.New("status mismatch/conditional failed")

// Store encapsulates operations on the event bookings table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new event bookings Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Create persists an event booking. The id is engine-generated, so the
// conditional write only guards against a UUID collision ever overwriting an
// existing record.
func (s *Store) Create(ctx context.Context, booking EventBooking) error {
	now := s.nowFunc()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	item, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return fmt.Errorf("marshal event booking: %w", err)
	}

	input := &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(event_id)"),
	}
	if _, err := s.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("put event booking: %w", err)
	}
	return nil
}

// Get fetches an event booking by id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, eventID string) (*EventBooking, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get event booking: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var b EventBooking
	if err := attributevalue.UnmarshalMap(out.Item, &b); err != nil {
		return nil, fmt.Errorf("unmarshal event booking: %w", err)
	}
	return &b, nil
}

// UpdateStatus conditionally transitions the booking status. Returns
// ErrStatusMismatch if the current status is not expectedStatus.
func (s *Store) UpdateStatus(ctx context.Context, eventID, expectedStatus, newStatus string) error {
	now := s.nowFunc()
	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID},
		},
		UpdateExpression:         awsString("SET #s = :new, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":      &types.AttributeValueMemberS{Value: newStatus},
			":expected": &types.AttributeValueMemberS{Value: expectedStatus},
			":ua":       &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		},
		ConditionExpression: awsString("#s = :expected"),
	}
	if _, err := s.client.UpdateItem(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException" {
			return ErrStatusMismatch
		}
		return fmt.Errorf("update event booking status: %w", err)
	}
	return nil
}

func awsString(s string) *string { return &s }
